// Package opengl implements the GLFW/OpenGL backend. Each top-level window
// is a GLFW window with its own GL context; widgets are drawn with an
// immediate-quad painter over an 8x8 bitmap font atlas.
//
// Importing the package registers the driver:
//
//	import _ "github.com/crossgui/gui/backend/opengl"
//	app, err := gui.Initialize(gui.BackendOpenGL)
package opengl

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

func init() {
	// GLFW event handling must stay on the thread that ran main.
	runtime.LockOSThread()
	gui.RegisterDriver(gui.BackendOpenGL, New)
}

// pollInterval bounds the latency of Wake calls made between native events.
const pollInterval = 0.05

// Driver is the GLFW/OpenGL gui.Driver.
type Driver struct {
	windows  []*window
	dispatch func()
	woken    atomic.Bool
	quit     bool
	started  bool
	locale   *locales.Table
	modals   []*window

	arrowCursor  *glfw.Cursor
	sizingCursor *glfw.Cursor
}

// New initializes GLFW and creates the driver. It fails when no display is
// available.
func New() (gui.Driver, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	return &Driver{locale: locales.Lookup("en")}, nil
}

func (d *Driver) Name() string { return "opengl" }

// Run enters the main loop. It returns when Quit is called or the last
// window is destroyed.
func (d *Driver) Run(dispatch func()) error {
	d.dispatch = dispatch
	d.started = true
	defer glfw.Terminate()
	for d.pump() {
	}
	return nil
}

// pump runs one main loop iteration: wait for events, deliver queued
// dispatches, render every live window. Nested modal loops reuse it.
func (d *Driver) pump() bool {
	glfw.WaitEventsTimeout(pollInterval)
	if d.woken.Swap(false) && d.dispatch != nil {
		d.dispatch()
	}
	live := false
	for _, w := range append([]*window(nil), d.windows...) {
		if w.destroyed {
			continue
		}
		live = true
		w.render()
	}
	return live && !d.quit
}

// Wake is the only method safe to call off the UI thread.
func (d *Driver) Wake() {
	d.woken.Store(true)
	glfw.PostEmptyEvent()
}

func (d *Driver) Quit() {
	d.quit = true
	glfw.PostEmptyEvent()
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

func (d *Driver) cursor(style gui.CursorStyle) *glfw.Cursor {
	switch style {
	case gui.CursorSizing:
		if d.sizingCursor == nil {
			d.sizingCursor = glfw.CreateStandardCursor(glfw.HResizeCursor)
		}
		return d.sizingCursor
	default:
		if d.arrowCursor == nil {
			d.arrowCursor = glfw.CreateStandardCursor(glfw.ArrowCursor)
		}
		return d.arrowCursor
	}
}
