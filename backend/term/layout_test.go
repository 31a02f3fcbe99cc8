package term

import (
	"testing"

	"github.com/crossgui/gui"
)

func newTestWindow() *window {
	return &window{drv: &Driver{width: 80, height: 24}, visible: true, isMain: true}
}

func newTestText(w *window, label string) *text {
	return newTextMirror(w, gui.TextConfig{Label: label, Enabled: true})
}

func TestCellConversion(t *testing.T) {
	cases := []struct {
		px, wantX, wantY int
	}{
		{0, 0, 0},
		{-5, 0, 0},
		{1, 1, 1},
		{8, 1, 1},
		{9, 2, 1},
		{12, 2, 1},
		{13, 2, 2},
		{24, 3, 2},
	}
	for _, c := range cases {
		if got := cellsX(c.px); got != c.wantX {
			t.Errorf("cellsX(%d) = %d, want %d", c.px, got, c.wantX)
		}
		if got := cellsY(c.px); got != c.wantY {
			t.Errorf("cellsY(%d) = %d, want %d", c.px, got, c.wantY)
		}
	}
}

func TestMeasureVBox(t *testing.T) {
	w := newTestWindow()
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: newTestText(w, "hello")},
			{Kind: gui.LayoutItemWidget, Widget: newTestText(w, "a longer label")},
			{Kind: gui.LayoutItemSpace, SpaceW: 8, SpaceH: 12},
		},
	}
	got := measure(spec)
	want := gui.Size{W: 14, H: 3}
	if got != want {
		t.Errorf("measure = %+v, want %+v", got, want)
	}
}

func TestMeasureSkipsHiddenWidgets(t *testing.T) {
	w := newTestWindow()
	hidden := newTestText(w, "invisible but wide")
	hidden.hidden = true
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: newTestText(w, "short")},
			{Kind: gui.LayoutItemWidget, Widget: hidden},
		},
	}
	got := measure(spec)
	if got.W != 5 || got.H != 1 {
		t.Errorf("measure = %+v, want {5 1}", got)
	}
}

func TestArrangeVBoxStretch(t *testing.T) {
	w := newTestWindow()
	top := newTestText(w, "top")
	bottom := newTestText(w, "bottom")
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: top, Align: gui.AlignExpand},
			{Kind: gui.LayoutItemStretch},
			{Kind: gui.LayoutItemWidget, Widget: bottom, Align: gui.AlignExpand},
		},
	}
	arrange(spec, rect{x: 0, y: 0, w: 20, h: 10})

	if top.rect.y != 0 {
		t.Errorf("top row at y=%d, want 0", top.rect.y)
	}
	// Two 1-cell rows leave 8 cells to the single stretch item.
	if bottom.rect.y != 9 {
		t.Errorf("bottom row at y=%d, want 9", bottom.rect.y)
	}
	if top.rect.w != 20 {
		t.Errorf("expanded row width = %d, want 20", top.rect.w)
	}
}

func TestArrangeAlignment(t *testing.T) {
	w := newTestWindow()
	centered := newTestText(w, "hi")
	right := newTestText(w, "hi")
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: centered, Align: gui.AlignHCenter},
			{Kind: gui.LayoutItemWidget, Widget: right, Align: gui.AlignRight},
		},
	}
	arrange(spec, rect{x: 0, y: 0, w: 10, h: 2})

	if centered.rect.x != 4 {
		t.Errorf("centered x = %d, want 4", centered.rect.x)
	}
	if right.rect.x != 8 {
		t.Errorf("right-aligned x = %d, want 8", right.rect.x)
	}
}

func TestArrangeBorderInsets(t *testing.T) {
	w := newTestWindow()
	inner := newTestText(w, "x")
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{
				Kind:   gui.LayoutItemWidget,
				Widget: inner,
				Align:  gui.AlignExpand,
				Border: gui.Insets{Left: 8, Top: 12, Right: 8, Bottom: 12},
			},
		},
	}
	arrange(spec, rect{x: 0, y: 0, w: 10, h: 5})

	// The 8x12px border converts to one cell on every side.
	want := rect{x: 1, y: 1, w: 8, h: 1}
	if inner.rect != want {
		t.Errorf("inset rect = %+v, want %+v", inner.rect, want)
	}
}

func TestArrangeGrid(t *testing.T) {
	w := newTestWindow()
	a := newTestText(w, "aa")
	b := newTestText(w, "bbbb")
	c := newTestText(w, "c")
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutGrid,
		Rows: 2,
		Cols: 2,
		HGap: 8,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: a, Row: 0, Col: 0, Align: gui.AlignExpand},
			{Kind: gui.LayoutItemWidget, Widget: b, Row: 0, Col: 1, Align: gui.AlignExpand},
			{Kind: gui.LayoutItemWidget, Widget: c, Row: 1, Col: 0, Align: gui.AlignExpand},
		},
	}
	arrange(spec, rect{x: 0, y: 0, w: 7, h: 2})

	if a.rect.x != 0 || a.rect.w != 2 {
		t.Errorf("cell (0,0) = %+v, want x=0 w=2", a.rect)
	}
	// Column 1 starts after column 0 plus the 1-cell gap.
	if b.rect.x != 3 || b.rect.w != 4 {
		t.Errorf("cell (0,1) = %+v, want x=3 w=4", b.rect)
	}
	if c.rect.y != 1 {
		t.Errorf("cell (1,0) y = %d, want 1", c.rect.y)
	}
}

func TestArrangeGridStretch(t *testing.T) {
	w := newTestWindow()
	a := newTestText(w, "a")
	b := newTestText(w, "b")
	spec := &gui.LayoutSpec{
		Kind:       gui.LayoutGrid,
		Rows:       1,
		Cols:       2,
		ColStretch: []int{0, 1},
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: a, Row: 0, Col: 0, Align: gui.AlignExpand},
			{Kind: gui.LayoutItemWidget, Widget: b, Row: 0, Col: 1, Align: gui.AlignExpand},
		},
	}
	arrange(spec, rect{x: 0, y: 0, w: 12, h: 1})

	if a.rect.w != 1 {
		t.Errorf("fixed column width = %d, want 1", a.rect.w)
	}
	if b.rect.w != 11 {
		t.Errorf("stretched column width = %d, want 11", b.rect.w)
	}
}

func TestArrangeNested(t *testing.T) {
	w := newTestWindow()
	inner := newTestText(w, "inner")
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemNested, Align: gui.AlignExpand, Nested: &gui.LayoutSpec{
				Kind: gui.LayoutHBox,
				Items: []gui.LayoutItemSpec{
					{Kind: gui.LayoutItemWidget, Widget: inner, Align: gui.AlignExpand},
				},
			}},
		},
	}
	arrange(spec, rect{x: 2, y: 3, w: 10, h: 1})

	if inner.rect.x != 2 || inner.rect.y != 3 {
		t.Errorf("nested widget at (%d,%d), want (2,3)", inner.rect.x, inner.rect.y)
	}
}
