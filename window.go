package gui

// Frame is a general-purpose top-level window. Frames form a tree: a frame
// created with a parent is owned by it, and closing a frame closes all of
// its descendants first.
//
// Close and UpdateGUI are safe to call from any goroutine: both funnel
// through the event queue and run their work on the UI thread. Every other
// method is UI-thread-only.
type Frame struct {
	app       *App
	handle    WindowHandle
	parent    *Frame
	children  []*Frame
	title     string
	icon      string
	layoutSet bool
	closed    bool

	closeEv  *Event
	updateEv *Event

	// OnClose is the user hook run while the frame is closing, after its
	// children have closed and before the native window is destroyed.
	OnClose func()

	// OnUpdateGUI is the user hook run by UpdateGUI with the data passed to
	// it, before the update recurses into child frames.
	OnUpdateGUI func(data any)
}

// NewFrame creates a frame. parent may be nil for a top-level frame.
// Recognized options: OptTitle, OptIcon, OptFrameStyle, OptPos, OptSize.
func NewFrame(app *App, parent Container, opts ...Option) *Frame {
	o := applyOptions(opts)
	f := &Frame{}
	initFrame(f, app, parent, o, getOpt(o, OptFrameStyle))
	return f
}

// initFrame initializes f in place. The frame must not be copied afterwards:
// the close and update handlers capture its address.
func initFrame(f *Frame, app *App, parent Container, o options, style FrameStyle) {
	if app == nil {
		panic(ErrNotInitialized)
	}
	f.app = app
	f.title = getOpt(o, OptTitle)
	f.icon = getOpt(o, OptIcon)
	f.closeEv = NewEvent()
	f.updateEv = NewEvent()
	if parent != nil {
		if p := parent.frame(); p != nil {
			f.parent = p
			p.children = append(p.children, f)
		}
	}
	f.closeEv.Connect(func(any) { f.closeNow() })
	f.updateEv.Connect(func(data any) { f.updateNow(data) })
	f.handle = app.driver.NewWindow(WindowConfig{
		Title:          f.title,
		Icon:           f.icon,
		Style:          style,
		Pos:            getOpt(o, OptPos),
		Size:           getOpt(o, OptSize),
		OnCloseRequest: f.Close,
	})
}

func (f *Frame) frame() *Frame { return f }

// Title returns the window title.
func (f *Frame) Title() string { return f.title }

// SetTitle replaces the window title.
func (f *Frame) SetTitle(title string) {
	f.title = title
	f.handle.SetTitle(title)
}

// Icon returns the window icon path.
func (f *Frame) Icon() string { return f.icon }

// SetIcon replaces the window icon with the image at path.
func (f *Frame) SetIcon(path string) {
	f.icon = path
	f.handle.SetIcon(path)
}

// Show displays the frame.
func (f *Frame) Show() { f.handle.Show() }

// Hide removes the frame from the screen without closing it.
func (f *Frame) Hide() { f.handle.Hide() }

// SetFocus raises the frame and gives it input focus.
func (f *Frame) SetFocus() { f.handle.Raise() }

// SetCursor changes the pointer shape shown over the frame.
func (f *Frame) SetCursor(cursor CursorStyle) { f.handle.SetCursor(cursor) }

// SetLayout attaches the top-level layout of the frame. A frame accepts
// exactly one layout; a second call panics with ErrLayoutAlreadySet.
func (f *Frame) SetLayout(l Layout) {
	if f.layoutSet {
		panic(ErrLayoutAlreadySet)
	}
	f.layoutSet = true
	root := NewVBoxLayout()
	root.AddLayout(l, WithOpt(OptAlign, AlignExpand), WithOpt(OptStretch, 1))
	f.handle.SetLayout(root.build())
}

// Closed reports whether the frame has finished closing.
func (f *Frame) Closed() bool { return f.closed }

// Children returns the frames currently owned by this one.
func (f *Frame) Children() []*Frame {
	return append([]*Frame(nil), f.children...)
}

// Close requests the close sequence: detach from the parent, close all
// children, run OnClose, destroy the native window. The request is delivered
// through the event queue, so Close is safe from any goroutine.
func (f *Frame) Close() {
	f.app.Trigger(f.closeEv, nil)
}

// UpdateGUI requests a content update with data. The update runs OnUpdateGUI
// on this frame and every descendant, then refits the layout. Safe from any
// goroutine.
func (f *Frame) UpdateGUI(data any) {
	f.app.Trigger(f.updateEv, data)
}

// closeNow performs the close sequence on the UI thread. Closing an already
// closed frame is a no-op, so a queued close request and a parent cascade
// cannot run the sequence twice.
func (f *Frame) closeNow() {
	if f.closed {
		return
	}
	f.closed = true
	if f.parent != nil {
		f.parent.removeChild(f)
		f.parent = nil
	}
	children := f.children
	f.children = nil
	for _, child := range children {
		child.closeNow()
	}
	if f.OnClose != nil {
		f.OnClose()
	}
	f.handle.Destroy()
}

func (f *Frame) updateNow(data any) {
	if f.closed {
		return
	}
	if f.OnUpdateGUI != nil {
		f.OnUpdateGUI(data)
	}
	for _, child := range f.children {
		child.updateNow(data)
	}
	f.handle.Fit()
}

func (f *Frame) removeChild(child *Frame) {
	for i, c := range f.children {
		if c == child {
			f.children = append(f.children[:i], f.children[i+1:]...)
			return
		}
	}
}
