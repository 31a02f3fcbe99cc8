package gui

// Container is the parent a widget attaches to at construction time. Frame
// and Dialog implement it.
type Container interface {
	frame() *Frame
}

// Widget is the property contract every control satisfies: the enabled and
// hidden flags, applied to the native control as soon as they change.
type Widget interface {
	// Enabled reports whether the user can interact with the widget.
	Enabled() bool
	// Enable sets the enabled state.
	Enable(enabled bool)
	// Hidden reports whether the widget is currently not displayed.
	Hidden() bool
	// Hide sets the hidden state.
	Hide(hidden bool)

	nativeHandle() ControlHandle
}

// widget is the state shared by every control: the owning window, the native
// handle and the enabled/hidden flags. Flag mutators update the flag and push
// it to the toolkit in the same call, never deferred.
type widget struct {
	app     *App
	win     *Frame
	handle  ControlHandle
	enabled bool
	hidden  bool
}

func newWidget(parent Container, o options) widget {
	if parent == nil {
		panic(ErrNotInitialized)
	}
	f := parent.frame()
	if f == nil || f.app == nil {
		panic(ErrNotInitialized)
	}
	return widget{
		app:     f.app,
		win:     f,
		enabled: getOpt(o, OptEnabled),
		hidden:  getOpt(o, OptHidden),
	}
}

// attach records the native handle once the concrete control has created it.
func (w *widget) attach(h ControlHandle) { w.handle = h }

func (w *widget) nativeHandle() ControlHandle { return w.handle }

// Enabled reports whether the user can interact with the widget.
func (w *widget) Enabled() bool { return w.enabled }

// Enable sets the enabled state and applies it to the native control.
func (w *widget) Enable(enabled bool) {
	w.enabled = enabled
	w.handle.SetEnabled(enabled)
}

// Hidden reports whether the widget is currently not displayed.
func (w *widget) Hidden() bool { return w.hidden }

// Hide sets the hidden state and applies it to the native control.
func (w *widget) Hide(hidden bool) {
	w.hidden = hidden
	w.handle.SetHidden(hidden)
}

// MouseEvents is the set of raw pointer hooks exposed by mouse-aware widgets
// (Bitmap, Text). Assign the fields to receive events; unset hooks are
// ignored. All hooks run on the UI thread with window-local positions.
type MouseEvents struct {
	OnLeftDown  func(pos Point)
	OnLeftUp    func(pos Point)
	OnRightDown func(pos Point)
	OnRightUp   func(pos Point)
	// OnWheel receives a signed rotation, positive for upward scrolling.
	OnWheel  func(pos Point, rotation int)
	OnMotion func(pos Point)
	OnEnter  func()
	OnLeave  func()
}

// callbacks builds the driver-facing callback set. The closures read the hook
// fields at dispatch time, so hooks may be assigned after construction.
func (m *MouseEvents) callbacks() MouseCallbacks {
	return MouseCallbacks{
		OnLeftDown: func(pos Point) {
			if m.OnLeftDown != nil {
				m.OnLeftDown(pos)
			}
		},
		OnLeftUp: func(pos Point) {
			if m.OnLeftUp != nil {
				m.OnLeftUp(pos)
			}
		},
		OnRightDown: func(pos Point) {
			if m.OnRightDown != nil {
				m.OnRightDown(pos)
			}
		},
		OnRightUp: func(pos Point) {
			if m.OnRightUp != nil {
				m.OnRightUp(pos)
			}
		},
		OnWheel: func(pos Point, rotation int) {
			if m.OnWheel != nil {
				m.OnWheel(pos, rotation)
			}
		},
		OnMotion: func(pos Point) {
			if m.OnMotion != nil {
				m.OnMotion(pos)
			}
		},
		OnEnter: func() {
			if m.OnEnter != nil {
				m.OnEnter()
			}
		},
		OnLeave: func() {
			if m.OnLeave != nil {
				m.OnLeave()
			}
		},
	}
}
