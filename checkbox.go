package gui

// CheckBox is a toggle with a text label. The toolkit owns the true toggle
// state: Value re-reads the native control, because user clicks change the
// state without going through SetValue.
type CheckBox struct {
	widget
	handle CheckBoxHandle
	label  string

	// OnClick is the user hook fired when the user toggles the box. It is
	// not fired by SetValue.
	OnClick func(value bool)
}

// NewCheckBox creates a checkbox inside parent. Recognized options: OptLabel,
// OptValue, OptEnabled, OptHidden.
func NewCheckBox(parent Container, opts ...Option) *CheckBox {
	o := applyOptions(opts)
	c := &CheckBox{
		widget: newWidget(parent, o),
		label:  getOpt(o, OptLabel),
	}
	c.handle = c.win.handle.NewCheckBox(CheckBoxConfig{
		Label:   c.label,
		Value:   getOpt(o, OptValue),
		Enabled: c.enabled,
		Hidden:  c.hidden,
		OnClick: func(value bool) {
			if c.OnClick != nil {
				c.OnClick(value)
			}
		},
	})
	c.attach(c.handle)
	return c
}

// Label returns the checkbox label.
func (c *CheckBox) Label() string { return c.label }

// SetLabel replaces the checkbox label.
func (c *CheckBox) SetLabel(label string) {
	c.label = label
	c.handle.SetLabel(label)
}

// Value returns the current toggle state, read from the native control.
func (c *CheckBox) Value() bool { return c.handle.Value() }

// SetValue sets the toggle state. OnClick is not fired.
func (c *CheckBox) SetValue(value bool) { c.handle.SetValue(value) }
