package term

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crossgui/gui"
)

func testMenuSpec(onOpen, onSub func()) *gui.MenuSpec {
	return &gui.MenuSpec{
		Label: "File",
		Items: []gui.MenuItemSpec{
			{Label: "Open", Enabled: true, OnClick: onOpen, Accelerator: "Ctrl+O"},
			{Separator: true},
			{Label: "Disabled"},
			{Label: "More", Enabled: true, Sub: &gui.MenuSpec{
				Label: "More",
				Items: []gui.MenuItemSpec{
					{Label: "Deep", Enabled: true, OnClick: onSub},
				},
			}},
		},
	}
}

func TestMenuSize(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	s := menuSize(spec)
	// "Open" plus the accelerator gap and "Ctrl+O", plus borders.
	if s.W != 4+2+6+4 {
		t.Errorf("menu width = %d, want %d", s.W, 16)
	}
	if s.H != len(spec.Items)+2 {
		t.Errorf("menu height = %d, want %d", s.H, len(spec.Items)+2)
	}
}

func TestMenuClickLeaf(t *testing.T) {
	fired := false
	spec := testMenuSpec(func() { fired = true }, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: -1}}}

	// First item sits one row below the border.
	close, action := m.click(gui.Point{X: 2, Y: 1})
	if !close {
		t.Error("clicking a leaf should close the menu")
	}
	if action == nil {
		t.Fatal("clicking a leaf should return its handler")
	}
	action()
	if !fired {
		t.Error("handler did not run")
	}
}

func TestMenuClickIgnoresDisabledAndSeparator(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: -1}}}

	for _, row := range []int{2, 3} {
		close, action := m.click(gui.Point{X: 2, Y: row})
		if close || action != nil {
			t.Errorf("row %d should be inert, got close=%v", row, close)
		}
	}
}

func TestMenuClickOutsideCloses(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: -1}}}

	close, action := m.click(gui.Point{X: 70, Y: 20})
	if !close || action != nil {
		t.Errorf("outside click: close=%v action=%v, want close with no action", close, action != nil)
	}
}

func TestMenuHoverOpensSubmenu(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: -1}}}

	// Row 4 is the submenu entry.
	m.motion(gui.Point{X: 2, Y: 4})
	if len(m.levels) != 2 {
		t.Fatalf("expected a second pane after hovering the submenu, got %d", len(m.levels))
	}
	// Moving back to a plain item collapses the deeper pane.
	m.motion(gui.Point{X: 2, Y: 1})
	if len(m.levels) != 1 {
		t.Errorf("expected deeper panes to collapse, got %d", len(m.levels))
	}
}

func TestMenuKeySeekSkipsInert(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: -1}}}

	m.key(tea.KeyMsg{Type: tea.KeyDown})
	if m.levels[0].hover != 0 {
		t.Errorf("first down lands on %d, want 0", m.levels[0].hover)
	}
	// The separator and the disabled entry are skipped.
	m.key(tea.KeyMsg{Type: tea.KeyDown})
	if m.levels[0].hover != 3 {
		t.Errorf("second down lands on %d, want 3", m.levels[0].hover)
	}
	// Wraps back around.
	m.key(tea.KeyMsg{Type: tea.KeyDown})
	if m.levels[0].hover != 0 {
		t.Errorf("third down lands on %d, want 0", m.levels[0].hover)
	}
}

func TestMenuKeyEnterOnSubOpensPane(t *testing.T) {
	fired := false
	spec := testMenuSpec(nil, func() { fired = true })
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: 3}}}

	close, _ := m.key(tea.KeyMsg{Type: tea.KeyEnter})
	if close {
		t.Error("entering a submenu should not close the menu")
	}
	if len(m.levels) != 2 {
		t.Fatalf("expected 2 panes, got %d", len(m.levels))
	}

	m.key(tea.KeyMsg{Type: tea.KeyDown})
	close, action := m.key(tea.KeyMsg{Type: tea.KeyEnter})
	if !close || action == nil {
		t.Fatal("selecting the submenu leaf should close with its handler")
	}
	action()
	if !fired {
		t.Error("submenu handler did not run")
	}
}

func TestPopUpMenuWatchdogFromTheme(t *testing.T) {
	theme := gui.DefaultTheme()
	theme.MenuWatchdog = time.Millisecond
	d := &Driver{width: 80, height: 24, theme: theme}
	w := &window{drv: d, visible: true, isMain: true}
	d.windows = append(d.windows, w)

	start := time.Now()
	w.PopUpMenu(testMenuSpec(nil, nil))
	elapsed := time.Since(start)

	if elapsed >= gui.DefaultTheme().MenuWatchdog {
		t.Errorf("PopUpMenu blocked %v, want the configured 1ms watchdog", elapsed)
	}
	if w.menu == nil {
		t.Error("menu overlay should stay open after PopUpMenu returns")
	}
}

func TestMenuKeyLeftClosesPane(t *testing.T) {
	spec := testMenuSpec(nil, nil)
	m := &openMenu{levels: []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: 0}, hover: 3}}}
	m.key(tea.KeyMsg{Type: tea.KeyRight})
	if len(m.levels) != 2 {
		t.Fatalf("expected submenu pane, got %d levels", len(m.levels))
	}
	m.key(tea.KeyMsg{Type: tea.KeyLeft})
	if len(m.levels) != 1 {
		t.Errorf("expected pane to close, got %d levels", len(m.levels))
	}
}
