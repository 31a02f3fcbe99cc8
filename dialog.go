package gui

// Dialog is a modal window offering the user an OK or Cancel choice. A
// dialog can be shown exactly once; create a new instance to show the same
// dialog again.
type Dialog struct {
	Frame

	shown  bool
	result bool

	// OnOK and OnCancel are user hooks run when the matching choice is
	// selected, before ShowModal returns.
	OnOK     func()
	OnCancel func()
}

// NewDialog creates a dialog. It recognizes the same options as NewFrame;
// the frame style defaults to FrameDialog.
func NewDialog(app *App, parent Container, opts ...Option) *Dialog {
	o := applyOptions(opts)
	style := FrameDialog
	if hasOpt(o, OptFrameStyle) {
		style = getOpt(o, OptFrameStyle)
	}
	d := &Dialog{}
	initFrame(&d.Frame, app, parent, o, style)
	return d
}

// SetLayout attaches the top-level layout of the dialog. Like a frame, a
// dialog accepts exactly one layout.
func (d *Dialog) SetLayout(l Layout) {
	if d.layoutSet {
		panic(ErrLayoutAlreadySet)
	}
	d.layoutSet = true
	d.handle.SetLayout(l.build())
}

// CreateOKButton creates a button wired to the OK choice: clicking it runs
// OnOK, records a true result and ends the modal loop.
func (d *Dialog) CreateOKButton(label string) *Button {
	b := NewButton(d, WithOpt(OptLabel, label))
	b.OnClick = func() { d.finish(true) }
	return b
}

// CreateCancelButton creates a button wired to the Cancel choice.
func (d *Dialog) CreateCancelButton(label string) *Button {
	b := NewButton(d, WithOpt(OptLabel, label))
	b.OnClick = func() { d.finish(false) }
	return b
}

// ShowModal displays the dialog on top of all other windows and blocks until
// the user selects OK or Cancel, returning true for OK. Calling ShowModal a
// second time panics with ErrDialogAlreadyShown.
func (d *Dialog) ShowModal() bool {
	if d.shown {
		panic(ErrDialogAlreadyShown)
	}
	d.shown = true
	d.handle.Show()
	d.handle.RunModal()
	return d.result
}

func (d *Dialog) finish(ok bool) {
	if ok {
		if d.OnOK != nil {
			d.OnOK()
		}
	} else {
		if d.OnCancel != nil {
			d.OnCancel()
		}
	}
	d.result = ok
	d.handle.EndModal()
	d.Close()
}

// ErrorMessageDialog displays an error message and a single OK button. Like
// Dialog it can be shown exactly once; no layout or extra widgets can be
// attached.
type ErrorMessageDialog struct {
	Dialog
	message string
}

// NewErrorMessageDialog creates an error message dialog. Recognized options:
// OptMessage, OptTitle, OptIcon.
func NewErrorMessageDialog(app *App, parent Container, opts ...Option) *ErrorMessageDialog {
	o := applyOptions(opts)
	e := &ErrorMessageDialog{message: getOpt(o, OptMessage)}
	initFrame(&e.Dialog.Frame, app, parent, o, FrameDialog)
	return e
}

// Message returns the displayed message.
func (e *ErrorMessageDialog) Message() string { return e.message }

// SetMessage replaces the message. It has no effect once the dialog has been
// shown.
func (e *ErrorMessageDialog) SetMessage(message string) { e.message = message }

// ShowModal displays the message and blocks until the user confirms it.
func (e *ErrorMessageDialog) ShowModal() {
	if e.shown {
		panic(ErrDialogAlreadyShown)
	}
	text := NewText(&e.Frame, WithOpt(OptLabel, e.message))
	ok := e.CreateOKButton("OK")

	layout := NewVBoxLayout()
	layout.Add(text, WithOpt(OptAlign, AlignCenter), WithOpt(OptBorder, 10))
	layout.Add(ok, WithOpt(OptAlign, AlignCenter), WithOpt(OptBorder, 10))
	e.Dialog.SetLayout(layout)

	e.Dialog.ShowModal()
}
