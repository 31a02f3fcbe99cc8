package gui

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Backend identifies one of the three supported GUI toolkits.
type Backend int

const (
	// BackendOpenGL renders with GLFW windows and an OpenGL painter.
	BackendOpenGL Backend = iota
	// BackendNucular delegates to the nucular toolkit.
	BackendNucular
	// BackendTerm renders into the terminal.
	BackendTerm
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendOpenGL:
		return "opengl"
	case BackendNucular:
		return "nucular"
	case BackendTerm:
		return "term"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// DriverFactory creates a driver instance, returning an error when the
// underlying toolkit cannot be loaded (no display, no TTY, missing GL).
type DriverFactory func() (Driver, error)

var (
	registryMu sync.Mutex
	registry   = map[Backend]DriverFactory{}

	currentMu sync.Mutex
	current   *App
)

// RegisterDriver makes a backend available to Initialize. It is called from
// the init function of each backend package; importing a backend package is
// what compiles its toolkit in.
func RegisterDriver(b Backend, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[b] = factory
}

// App is the process-wide library configuration: the selected driver, the
// event queue and the theme. It is created once by Initialize and injected
// into every window; it never changes afterwards.
type App struct {
	backend Backend
	driver  Driver
	queue   eventQueue
	theme   Theme
	logger  *log.Logger
	postEv  *Event
}

// AppOption configures an App at initialization.
type AppOption func(*App)

// WithTheme sets the color/timing theme.
func WithTheme(t Theme) AppOption {
	return func(a *App) { a.theme = t }
}

// WithLogging enables diagnostic logging to w. Logging is discarded by
// default.
func WithLogging(w io.Writer) AppOption {
	return func(a *App) { a.logger = log.New(w, "gui: ", log.LstdFlags) }
}

// Initialize selects the backend and creates the App. It must be called
// exactly once, before any window or widget constructor; initializing again
// with a different backend returns ErrAlreadyInitialized, and initializing
// again with the same backend returns the existing App.
func Initialize(b Backend, opts ...AppOption) (*App, error) {
	currentMu.Lock()
	defer currentMu.Unlock()
	if current != nil {
		if current.backend != b {
			return nil, fmt.Errorf("%w: have %s, requested %s",
				ErrAlreadyInitialized, current.backend, b)
		}
		return current, nil
	}
	registryMu.Lock()
	factory, ok := registry[b]
	registryMu.Unlock()
	if !ok {
		return nil, &BackendError{Backend: b.String(), Err: ErrUnknownBackend}
	}
	driver, err := factory()
	if err != nil {
		return nil, &BackendError{Backend: b.String(), Err: err}
	}
	app := New(driver, opts...)
	app.backend = b
	current = app
	return app, nil
}

// New creates an App around an explicit driver. Initialize is the normal
// entry point; New exists so tests and embedders can supply their own
// driver, mirroring how renderers are injected in immediate-mode libraries.
func New(driver Driver, opts ...AppOption) *App {
	app := &App{
		driver: driver,
		theme:  DefaultTheme(),
		logger: log.New(io.Discard, "", 0),
		postEv: NewEvent(),
	}
	app.postEv.Connect(func(arg any) {
		if fn, ok := arg.(func()); ok && fn != nil {
			fn()
		}
	})
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if ts, ok := driver.(themeSetter); ok {
		ts.SetTheme(app.theme)
	}
	return app
}

// themeSetter is implemented by drivers that render theme colors or honor
// theme timings themselves. New hands them the resolved theme once the
// options have run.
type themeSetter interface {
	SetTheme(Theme)
}

// Backend returns the selected backend.
func (a *App) Backend() Backend { return a.backend }

// Theme returns the active theme.
func (a *App) Theme() Theme { return a.theme }

// Run enters the backend main loop. It blocks until Quit is called or the
// last window is closed.
func (a *App) Run() error {
	a.logger.Printf("running %s backend", a.driver.Name())
	return a.driver.Run(a.queue.drain)
}

// Quit asks the main loop to exit.
func (a *App) Quit() {
	a.driver.Quit()
}

// SetLocale configures the toolkit locale where supported. Falls back to
// English for unknown codes.
func (a *App) SetLocale(languageCode string) {
	a.driver.SetLocale(languageCode)
}

// Trigger enqueues the event for delivery on the UI thread. Safe to call
// from any goroutine; this is the only sanctioned cross-thread entry point.
func (a *App) Trigger(ev *Event, arg any) {
	a.queue.push(ev, arg)
	a.driver.Wake()
}

// Post schedules fn to run on the UI thread. Safe from any goroutine.
func (a *App) Post(fn func()) {
	a.Trigger(a.postEv, fn)
}

func (a *App) logf(format string, args ...any) {
	a.logger.Printf(format, args...)
}
