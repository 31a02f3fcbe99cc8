package term

import (
	tea "github.com/charmbracelet/bubbletea"
)

// wakeMsg asks for one dispatch pass on the UI goroutine.
type wakeMsg struct{}

type model struct {
	drv *Driver
}

// Init replays the Wake calls that arrived before the program started.
func (m *model) Init() tea.Cmd {
	d := m.drv
	d.mu.Lock()
	pending := d.pendingWakes
	d.pendingWakes = 0
	d.mu.Unlock()
	if pending == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, pending)
	for i := range cmds {
		cmds[i] = func() tea.Msg { return wakeMsg{} }
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := m.drv
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		for _, w := range d.windows {
			w.place()
			w.needLayout = true
		}
	case wakeMsg:
		if d.dispatch != nil {
			d.dispatch()
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if w := d.top(); w != nil {
			w.keyMsg(msg)
		}
	case tea.MouseMsg:
		if w := d.top(); w != nil {
			w.mouseMsg(msg)
		}
	}
	if d.quit || !d.anyLive() {
		return m, tea.Quit
	}
	return m, nil
}

func (d *Driver) anyLive() bool {
	if !d.hadWindows {
		return true
	}
	for _, w := range d.windows {
		if !w.destroyed {
			return true
		}
	}
	return false
}

func (m *model) View() string {
	d := m.drv
	c := newCanvas(d.width, d.height)
	for _, w := range d.windows {
		if w.visible && !w.destroyed {
			w.render(c)
		}
	}
	return c.flush()
}
