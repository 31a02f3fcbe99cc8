package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crossgui/gui"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextControlEditing(t *testing.T) {
	var changes []string
	w := newTestWindow()
	tc := &textControl{
		text:     *newTestText(w, ""),
		onChange: func(s string) { changes = append(changes, s) },
	}

	tc.key(keyRunes("ab"))
	tc.key(tea.KeyMsg{Type: tea.KeySpace})
	tc.key(keyRunes("c"))
	if got := tc.Text(); got != "ab c" {
		t.Errorf("Text = %q, want %q", got, "ab c")
	}

	tc.key(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := tc.Text(); got != "ab " {
		t.Errorf("Text after backspace = %q, want %q", got, "ab ")
	}

	tc.key(tea.KeyMsg{Type: tea.KeyHome})
	tc.key(tea.KeyMsg{Type: tea.KeyDelete})
	if got := tc.Text(); got != "b " {
		t.Errorf("Text after delete at home = %q, want %q", got, "b ")
	}

	want := []string{"ab", "ab ", "ab c", "ab ", "b "}
	if len(changes) != len(want) {
		t.Fatalf("got %d change callbacks, want %d: %v", len(changes), len(want), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestTextControlCaretInsertion(t *testing.T) {
	w := newTestWindow()
	tc := &textControl{text: *newTestText(w, "")}
	tc.SetLabel("hello")
	tc.caret = len(tc.buf)

	tc.key(tea.KeyMsg{Type: tea.KeyLeft})
	tc.key(tea.KeyMsg{Type: tea.KeyLeft})
	tc.key(keyRunes("XY"))
	if got := tc.Text(); got != "helXYlo" {
		t.Errorf("Text = %q, want %q", got, "helXYlo")
	}
}

func TestSpinControlBounds(t *testing.T) {
	var values []int
	w := newTestWindow()
	s := &spinControl{
		widgetBase:     widgetBase{win: w, enabled: true},
		onValueChanged: func(v int) { values = append(values, v) },
	}
	s.SetRange(2, 4, true, true)
	s.SetValue(3)

	s.step(1)
	s.step(1) // clamped at 4, no callback
	s.step(-1)
	if s.value != 3 {
		t.Errorf("value = %d, want 3", s.value)
	}
	want := []int{4, 3}
	if len(values) != len(want) {
		t.Fatalf("callbacks = %v, want %v", values, want)
	}
}

func TestSpinControlDefaultBounds(t *testing.T) {
	w := newTestWindow()
	s := &spinControl{widgetBase: widgetBase{win: w, enabled: true}}
	s.SetValue(-5)
	if s.value != gui.DefaultSpinMin {
		t.Errorf("value = %d, want the default minimum %d", s.value, gui.DefaultSpinMin)
	}
	s.SetValue(1000)
	if s.value != gui.DefaultSpinMax {
		t.Errorf("value = %d, want the default maximum %d", s.value, gui.DefaultSpinMax)
	}
}

func TestCheckBoxToggle(t *testing.T) {
	var got []bool
	w := newTestWindow()
	cb := &checkBox{
		widgetBase: widgetBase{win: w, enabled: true},
		onClick:    func(v bool) { got = append(got, v) },
	}
	cb.click(gui.MouseLeft, true, gui.Point{})
	cb.click(gui.MouseLeft, true, gui.Point{})
	cb.SetEnabled(false)
	cb.click(gui.MouseLeft, true, gui.Point{})

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("toggles = %v, want [true false]", got)
	}
}

func TestRadioBoxSelection(t *testing.T) {
	var picks []int
	w := newTestWindow()
	r := &radioBox{
		widgetBase: widgetBase{win: w, enabled: true},
		label:      "mode",
		choices:    []string{"one", "two", "three"},
		onSelect:   func(i int) { picks = append(picks, i) },
	}
	r.rect = rect{x: 0, y: 0, w: 10, h: 4}

	// Choice rows start one row below the group label.
	r.click(gui.MouseLeft, true, gui.Point{X: 1, Y: 2})
	r.click(gui.MouseLeft, true, gui.Point{X: 1, Y: 2}) // same choice, no event
	r.click(gui.MouseLeft, true, gui.Point{X: 1, Y: 0}) // label row, no event
	r.key(tea.KeyMsg{Type: tea.KeyDown})

	if len(picks) != 2 || picks[0] != 1 || picks[1] != 2 {
		t.Errorf("selections = %v, want [1 2]", picks)
	}
}

func TestFocusCycling(t *testing.T) {
	w := newTestWindow()
	b1 := &button{widgetBase: widgetBase{win: w, enabled: true}, label: "a"}
	lbl := newTestText(w, "static")
	b2 := &button{widgetBase: widgetBase{win: w, enabled: true}, label: "b"}
	w.widgets = []anyWidget{b1, lbl, b2}

	w.cycleFocus(1)
	if w.focus != b1 {
		t.Fatal("first tab should land on the first focusable widget")
	}
	w.cycleFocus(1)
	if w.focus != b2 {
		t.Error("static text must not take focus")
	}
	w.cycleFocus(1)
	if w.focus != b1 {
		t.Error("tab should wrap around")
	}
	w.cycleFocus(-1)
	if w.focus != b2 {
		t.Error("shift-tab should cycle backwards")
	}
}
