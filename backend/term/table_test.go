package term

import (
	"testing"
	"time"

	"github.com/crossgui/gui"
)

func testSnapshot() *gui.TableSnapshot {
	cells := [][]gui.TableCell{
		{{Value: "alpha"}, {Value: "1"}},
		{{Value: "beta"}, {Value: "22"}},
		{{Value: "gamma"}, {Value: "333", Renderer: gui.RenderBoolean}},
	}
	return &gui.TableSnapshot{
		Rows:       3,
		Cols:       2,
		Cells:      cells,
		RowHeaders: []string{"r0", "r1", "r2"},
		ColHeaders: []string{"name", "count"},
	}
}

func TestTableAutoWidths(t *testing.T) {
	w := newTestWindow()
	tbl := &table{widgetBase: widgetBase{win: w, enabled: true}, widths: map[int]int{}}
	tbl.Reload(testSnapshot())

	// Column 0: widest of "name" and "alpha"/"gamma" plus padding.
	if got := tbl.ColWidth(0); got != 7 {
		t.Errorf("ColWidth(0) = %d, want 7", got)
	}
	// Column 1: the "count" header is wider than any cell, boolean cells
	// render as "[ ]".
	if got := tbl.ColWidth(1); got != 7 {
		t.Errorf("ColWidth(1) = %d, want 7", got)
	}
	if tbl.hdrW != 4 {
		t.Errorf("row header width = %d, want 4", tbl.hdrW)
	}

	tbl.SetColWidth(0, 12)
	if got := tbl.ColWidth(0); got != 12 {
		t.Errorf("ColWidth(0) after override = %d, want 12", got)
	}
}

func TestTableMinSize(t *testing.T) {
	w := newTestWindow()
	tbl := &table{widgetBase: widgetBase{win: w, enabled: true}, widths: map[int]int{}}
	tbl.Reload(testSnapshot())

	got := tbl.minSize()
	want := gui.Size{W: 4 + 7 + 7, H: 4}
	if got != want {
		t.Errorf("minSize = %+v, want %+v", got, want)
	}
}

func TestTableHit(t *testing.T) {
	w := newTestWindow()
	tbl := &table{widgetBase: widgetBase{win: w, enabled: true}, widths: map[int]int{}}
	tbl.Reload(testSnapshot())
	tbl.rect = rect{x: 5, y: 2, w: 18, h: 4}

	cases := []struct {
		name     string
		pos      gui.Point
		row, col int
		ok       bool
	}{
		{"corner", gui.Point{X: 5, Y: 2}, 0, 0, false},
		{"column header", gui.Point{X: 10, Y: 2}, -1, 0, true},
		{"row header", gui.Point{X: 6, Y: 3}, 0, -1, true},
		{"first cell", gui.Point{X: 10, Y: 3}, 0, 0, true},
		{"second column", gui.Point{X: 17, Y: 5}, 2, 1, true},
		{"below last row", gui.Point{X: 10, Y: 6}, 0, 0, false},
	}
	for _, c := range cases {
		row, col, ok := tbl.hit(c.pos)
		if ok != c.ok {
			t.Errorf("%s: ok = %v, want %v", c.name, ok, c.ok)
			continue
		}
		if ok && (row != c.row || col != c.col) {
			t.Errorf("%s: hit = (%d,%d), want (%d,%d)", c.name, row, col, c.row, c.col)
		}
	}
}

func TestTableHitHiddenHeaders(t *testing.T) {
	w := newTestWindow()
	tbl := &table{widgetBase: widgetBase{win: w, enabled: true}, widths: map[int]int{}}
	snap := testSnapshot()
	snap.HideRowHdr = true
	snap.HideColHdr = true
	tbl.Reload(snap)
	tbl.rect = rect{x: 0, y: 0, w: 14, h: 3}

	row, col, ok := tbl.hit(gui.Point{X: 0, Y: 0})
	if !ok || row != 0 || col != 0 {
		t.Errorf("hit = (%d,%d,%v), want (0,0,true)", row, col, ok)
	}
}

func TestTableDoubleClick(t *testing.T) {
	type click struct {
		row, col int
		double   bool
	}
	var clicks []click
	w := newTestWindow()
	tbl := &table{
		widgetBase: widgetBase{win: w, enabled: true},
		widths:     map[int]int{},
		onClick: func(row, col int, button gui.MouseButton, double bool) {
			clicks = append(clicks, click{row, col, double})
		},
	}
	tbl.Reload(testSnapshot())

	tbl.fire(1, 0, gui.MouseLeft)
	tbl.fire(1, 0, gui.MouseLeft)
	tbl.fire(1, 0, gui.MouseLeft)

	want := []click{{1, 0, false}, {1, 0, true}, {1, 0, false}}
	if len(clicks) != len(want) {
		t.Fatalf("got %d clicks, want %d", len(clicks), len(want))
	}
	for i := range want {
		if clicks[i] != want[i] {
			t.Errorf("click %d = %+v, want %+v", i, clicks[i], want[i])
		}
	}
}

func TestTableDoubleClickNeedsSameCell(t *testing.T) {
	var doubles int
	w := newTestWindow()
	tbl := &table{
		widgetBase: widgetBase{win: w, enabled: true},
		widths:     map[int]int{},
		onClick: func(row, col int, button gui.MouseButton, double bool) {
			if double {
				doubles++
			}
		},
	}
	tbl.Reload(testSnapshot())

	tbl.fire(0, 0, gui.MouseLeft)
	tbl.fire(0, 1, gui.MouseLeft)
	tbl.fire(0, 1, gui.MouseRight)
	if doubles != 0 {
		t.Errorf("got %d double clicks across different cells/buttons, want 0", doubles)
	}
	tbl.lastClickAt = time.Now().Add(-time.Second)
	tbl.fire(0, 1, gui.MouseRight)
	if doubles != 0 {
		t.Errorf("stale click counted as double")
	}
}
