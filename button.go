package gui

// Button is a push button with a text label.
type Button struct {
	widget
	handle ButtonHandle
	label  string

	// OnClick is the user hook fired when the button is clicked.
	OnClick func()
}

// NewButton creates a button inside parent. Recognized options: OptLabel,
// OptEnabled, OptHidden.
func NewButton(parent Container, opts ...Option) *Button {
	o := applyOptions(opts)
	b := &Button{
		widget: newWidget(parent, o),
		label:  getOpt(o, OptLabel),
	}
	b.handle = b.win.handle.NewButton(ButtonConfig{
		Label:   b.label,
		Enabled: b.enabled,
		Hidden:  b.hidden,
		OnClick: func() {
			if b.OnClick != nil {
				b.OnClick()
			}
		},
	})
	b.attach(b.handle)
	return b
}

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) {
	b.label = label
	b.handle.SetLabel(label)
}
