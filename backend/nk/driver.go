// Package nk implements the nucular backend. The first window created
// becomes the nucular master window; every other window and dialog renders
// as a nucular popup inside it. Widget state lives in mirrors walked by the
// per-frame update function.
//
// Importing the package registers the driver:
//
//	import _ "github.com/crossgui/gui/backend/nk"
//	app, err := gui.Initialize(gui.BackendNucular)
package nk

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/font"
	"github.com/aarzilli/nucular/style"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

func init() {
	gui.RegisterDriver(gui.BackendNucular, New)
}

const (
	fontSize  = 16
	uiScaling = 1.0
)

// Driver is the nucular gui.Driver. The dispatch callback runs on a
// dedicated goroutine; mirror state is guarded by mu, which both the
// dispatch goroutine and the frame update function hold while running.
type Driver struct {
	mu sync.Mutex

	master  nucular.MasterWindow
	main    *window
	windows []*window
	locale  *locales.Table

	wakeCh     chan struct{}
	started    atomic.Bool
	inDispatch bool
	inFrame    bool
	mousePos   gui.Point
}

// New creates the driver. The nucular master window is created lazily by
// the first NewWindow call.
func New() (gui.Driver, error) {
	return &Driver{
		locale: locales.Lookup("en"),
		wakeCh: make(chan struct{}, 1),
	}, nil
}

func (d *Driver) Name() string { return "nucular" }

// Run starts the dispatch goroutine and enters the nucular main loop.
func (d *Driver) Run(dispatch func()) error {
	if d.master == nil {
		// No window was created before Run; give nucular something to
		// pump so queued events still dispatch.
		d.master = nucular.NewMasterWindowSize(0, "", image.Point{X: 200, Y: 100},
			func(*nucular.Window) {})
		d.applyStyle()
	}
	d.started.Store(true)

	go func() {
		for range d.wakeCh {
			d.mu.Lock()
			d.inDispatch = true
			dispatch()
			d.inDispatch = false
			d.mu.Unlock()
			d.master.Changed()
		}
	}()

	d.master.Main()
	return nil
}

func (d *Driver) applyStyle() {
	st := style.FromTheme(style.DarkTheme, uiScaling)
	st.Font = font.DefaultFont(fontSize, 1)
	d.master.SetStyle(st)
}

// Wake schedules one dispatch pass on the dispatch goroutine.
func (d *Driver) Wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

func (d *Driver) Quit() {
	if d.master != nil {
		d.master.Close()
	}
}

func (d *Driver) SetLocale(languageCode string) {
	d.locale = locales.Lookup(languageCode)
}

// block parks the caller until ch closes, releasing the mirror lock so
// frames keep rendering. It is how nested modal loops are expressed on an
// immediate-mode toolkit. From a frame callback or before Run it would
// stall rendering forever, so it degrades to a no-op there; callers fall
// back to their close callbacks in that case.
func (d *Driver) block(ch chan struct{}) {
	if !d.started.Load() || d.inFrame {
		return
	}
	d.mu.Unlock()
	<-ch
	d.mu.Lock()
}
