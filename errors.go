package gui

import (
	"errors"
	"fmt"
)

// Usage errors. These indicate a bug in the embedding application and are
// raised as panics by the operation that detects them.
var (
	// ErrNotInitialized is raised when a widget or window constructor is
	// called before Initialize has selected a backend.
	ErrNotInitialized = errors.New("gui: not initialized, call Initialize first")

	// ErrMenuAlreadyBuilt is raised when a menu is built a second time.
	// A menu can be materialized into native entries exactly once; create
	// a new instance to show the same menu again.
	ErrMenuAlreadyBuilt = errors.New("gui: menu has already been built once")

	// ErrDialogAlreadyShown is raised when ShowModal is called twice on the
	// same dialog.
	ErrDialogAlreadyShown = errors.New("gui: dialog cannot be shown more than once")

	// ErrLayoutAlreadySet is raised when a second layout is attached to a
	// window that already has one.
	ErrLayoutAlreadySet = errors.New("gui: a layout has already been set")

	// ErrMenuBarUnsupported is raised when a label-based menu is attached
	// as a window menubar, which only native menus support.
	ErrMenuBarUnsupported = errors.New("gui: label menus cannot be used as a menubar")
)

// ErrAlreadyInitialized is returned by Initialize when the library has
// already been initialized with a different backend.
var ErrAlreadyInitialized = errors.New("gui: already initialized with a different backend")

// ErrUnknownBackend is returned by Initialize when the requested backend has
// no registered driver (typically its package was not imported).
var ErrUnknownBackend = errors.New("gui: unknown or unregistered backend")

// BackendError reports that a backend failed to initialize. It carries the
// backend name and the underlying toolkit error.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("gui: backend %q cannot be loaded: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
