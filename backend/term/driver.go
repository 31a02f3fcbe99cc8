// Package term implements the terminal backend on bubbletea. Windows are
// boxes drawn into a cell canvas; widgets carry their geometry in character
// cells and the same layout arithmetic as the pixel backends runs on them.
//
// Importing the package registers the driver:
//
//	import _ "github.com/crossgui/gui/backend/term"
//	app, err := gui.Initialize(gui.BackendTerm)
package term

import (
	"errors"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

func init() {
	gui.RegisterDriver(gui.BackendTerm, New)
}

// Driver is the terminal gui.Driver.
type Driver struct {
	mu           sync.Mutex
	prog         *tea.Program
	pendingWakes int

	dispatch func()
	windows  []*window
	modals   []*window
	locale   *locales.Table
	theme    gui.Theme

	width, height int
	quit          bool
	hadWindows    bool
	mouse         gui.Point
}

// New probes the terminal and creates the driver. It fails when stdout is
// not a TTY.
func New() (gui.Driver, error) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, errors.New("stdout is not a terminal")
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	return &Driver{locale: locales.Lookup("en"), theme: gui.DefaultTheme(), width: w, height: h}, nil
}

func (d *Driver) Name() string { return "term" }

// SetTheme receives the resolved theme at initialization. PopUpMenu bounds
// its wait on the theme's watchdog interval.
func (d *Driver) SetTheme(t gui.Theme) { d.theme = t }

// Run enters the bubbletea loop. Wake calls made before Run are delivered
// by the model's Init command.
func (d *Driver) Run(dispatch func()) error {
	d.dispatch = dispatch
	p := tea.NewProgram(&model{drv: d}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	d.mu.Lock()
	d.prog = p
	d.mu.Unlock()
	_, err := p.Run()
	return err
}

// Wake is the only method safe to call off the UI thread.
func (d *Driver) Wake() {
	d.mu.Lock()
	p := d.prog
	if p == nil {
		d.pendingWakes++
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	p.Send(wakeMsg{})
}

func (d *Driver) Quit() {
	d.quit = true
	d.mu.Lock()
	p := d.prog
	d.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (d *Driver) SetLocale(languageCode string) {
	d.locale = locales.Lookup(languageCode)
}

func (d *Driver) removeWindow(w *window) {
	for i, q := range d.windows {
		if q == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}

func (d *Driver) pushModal(w *window) {
	d.modals = append(d.modals, w)
}

func (d *Driver) popModal(w *window) {
	for i := len(d.modals) - 1; i >= 0; i-- {
		if d.modals[i] == w {
			d.modals = append(d.modals[:i], d.modals[i+1:]...)
			return
		}
	}
}

func (d *Driver) modalTop() *window {
	if len(d.modals) == 0 {
		return nil
	}
	return d.modals[len(d.modals)-1]
}

// top returns the window that receives input: the top of the modal stack,
// or the topmost visible window.
func (d *Driver) top() *window {
	if m := d.modalTop(); m != nil {
		return m
	}
	for i := len(d.windows) - 1; i >= 0; i-- {
		if w := d.windows[i]; w.visible && !w.destroyed {
			return w
		}
	}
	return nil
}
