package nk

import (
	"testing"

	"github.com/crossgui/gui"
)

func TestTextWidth(t *testing.T) {
	if got := textWidth(""); got != textPadX {
		t.Errorf("textWidth(\"\") = %d, want %d", got, textPadX)
	}
	if got := textWidth("abcd"); got != 4*charWidth+textPadX {
		t.Errorf("textWidth = %d, want %d", got, 4*charWidth+textPadX)
	}
	// Rune count, not byte count.
	if got := textWidth("日本"); got != 2*charWidth+textPadX {
		t.Errorf("textWidth of multibyte runes = %d, want %d", got, 2*charWidth+textPadX)
	}
}

func TestLayoutHintVBox(t *testing.T) {
	wide := newTextMirror(nil, gui.TextConfig{Label: "a fairly long label", Enabled: true})
	short := newTextMirror(nil, gui.TextConfig{Label: "ok", Enabled: true})
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutVBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: wide},
			{Kind: gui.LayoutItemWidget, Widget: short},
		},
	}
	hint := layoutHint(spec)
	if hint.W != wide.widthHint() {
		t.Errorf("hint width = %d, want the widest item %d", hint.W, wide.widthHint())
	}
	if hint.H != wide.heightHint()+short.heightHint() {
		t.Errorf("hint height = %d, want %d", hint.H, wide.heightHint()+short.heightHint())
	}
}

func TestLayoutHintSkipsHidden(t *testing.T) {
	hidden := newTextMirror(nil, gui.TextConfig{Label: "very wide hidden label", Hidden: true})
	spec := &gui.LayoutSpec{
		Kind: gui.LayoutHBox,
		Items: []gui.LayoutItemSpec{
			{Kind: gui.LayoutItemWidget, Widget: hidden},
		},
	}
	hint := layoutHint(spec)
	if hint.W > spaceDefault {
		t.Errorf("hidden item contributed width %d", hint.W)
	}
}

func TestMenuItemText(t *testing.T) {
	plain := gui.MenuItemSpec{Label: "Open"}
	if got := menuItemText(&plain); got != "Open" {
		t.Errorf("menuItemText = %q, want %q", got, "Open")
	}
	accel := gui.MenuItemSpec{Label: "Open", Accelerator: "Ctrl+O"}
	if got := menuItemText(&accel); got != "Open   Ctrl+O" {
		t.Errorf("menuItemText = %q, want %q", got, "Open   Ctrl+O")
	}
}

func TestCellText(t *testing.T) {
	cases := []struct {
		cell gui.TableCell
		want string
	}{
		{gui.TableCell{Value: "plain"}, "plain"},
		{gui.TableCell{Value: "1", Renderer: gui.RenderBoolean}, "[x]"},
		{gui.TableCell{Value: "True", Renderer: gui.RenderBoolean}, "[x]"},
		{gui.TableCell{Value: "0", Renderer: gui.RenderBoolean}, "[ ]"},
	}
	for _, c := range cases {
		if got := cellText(&c.cell); got != c.want {
			t.Errorf("cellText(%q) = %q, want %q", c.cell.Value, got, c.want)
		}
	}
}

func TestCellAlign(t *testing.T) {
	if cellAlign(gui.CellAlignLeft) != "LC" {
		t.Error("left alignment should map to LC")
	}
	if cellAlign(gui.CellAlignCenter) != "CC" {
		t.Error("center alignment should map to CC")
	}
	if cellAlign(gui.CellAlignRight) != "RC" {
		t.Error("right alignment should map to RC")
	}
}
