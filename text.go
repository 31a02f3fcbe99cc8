package gui

// Text is a static text widget with styling controls and raw pointer event
// hooks.
type Text struct {
	widget
	handle TextHandle
	label  string
	style  TextStyle
	size   int
	fg, bg *Color

	// Mouse carries the pointer event hooks for this widget.
	Mouse MouseEvents
}

// NewText creates a static text inside parent. Recognized options: OptLabel,
// OptTextStyle, OptTextSize, OptForeground, OptBackground, OptEnabled,
// OptHidden.
func NewText(parent Container, opts ...Option) *Text {
	o := applyOptions(opts)
	t := &Text{
		widget: newWidget(parent, o),
		label:  getOpt(o, OptLabel),
		style:  getOpt(o, OptTextStyle),
		size:   getOpt(o, OptTextSize),
		fg:     getOpt(o, OptForeground),
		bg:     getOpt(o, OptBackground),
	}
	t.handle = t.win.handle.NewText(textConfig(t))
	t.attach(t.handle)
	return t
}

func textConfig(t *Text) TextConfig {
	return TextConfig{
		Label:      t.label,
		Style:      t.style,
		TextSize:   t.size,
		Foreground: t.fg,
		Background: t.bg,
		Enabled:    t.enabled,
		Hidden:     t.hidden,
		Mouse:      t.Mouse.callbacks(),
	}
}

// Label returns the displayed text.
func (t *Text) Label() string { return t.label }

// SetLabel replaces the displayed text.
func (t *Text) SetLabel(label string) {
	t.label = label
	t.handle.SetLabel(label)
}

// TextStyle returns the font variant of the text.
func (t *Text) TextStyle() TextStyle { return t.style }

// SetTextStyle changes the font variant of the text.
func (t *Text) SetTextStyle(style TextStyle) {
	t.style = style
	t.handle.SetTextStyle(style)
}

// TextSize returns the point size of the text.
func (t *Text) TextSize() int { return t.size }

// SetTextSize changes the point size of the text.
func (t *Text) SetTextSize(size int) {
	t.size = size
	t.handle.SetTextSize(size)
}

// Foreground returns the text color, nil for the toolkit default.
func (t *Text) Foreground() *Color { return t.fg }

// SetForeground changes the text color. Pass nil to restore the toolkit
// default.
func (t *Text) SetForeground(c *Color) {
	t.fg = c
	t.handle.SetForeground(c)
}

// Background returns the background color, nil for the toolkit default.
func (t *Text) Background() *Color { return t.bg }

// SetBackground changes the background color. Pass nil to restore the
// toolkit default.
func (t *Text) SetBackground(c *Color) {
	t.bg = c
	t.handle.SetBackground(c)
}

// TextControl is an editable text field. The toolkit owns the true text:
// Label re-reads the native control, because user edits change the content
// without going through SetLabel.
type TextControl struct {
	widget
	handle TextControlHandle
	style  TextStyle
	size   int
	fg, bg *Color

	// Mouse carries the pointer event hooks for this widget.
	Mouse MouseEvents

	// OnChange is the user hook fired when the user edits the text. It is
	// not fired by SetLabel.
	OnChange func(text string)
}

// NewTextControl creates an editable text field inside parent. It recognizes
// the same options as NewText.
func NewTextControl(parent Container, opts ...Option) *TextControl {
	o := applyOptions(opts)
	t := &TextControl{
		widget: newWidget(parent, o),
		style:  getOpt(o, OptTextStyle),
		size:   getOpt(o, OptTextSize),
		fg:     getOpt(o, OptForeground),
		bg:     getOpt(o, OptBackground),
	}
	t.handle = t.win.handle.NewTextControl(TextConfig{
		Label:      getOpt(o, OptLabel),
		Style:      t.style,
		TextSize:   t.size,
		Foreground: t.fg,
		Background: t.bg,
		Enabled:    t.enabled,
		Hidden:     t.hidden,
		Mouse:      t.Mouse.callbacks(),
		OnChange: func(text string) {
			if t.OnChange != nil {
				t.OnChange(text)
			}
		},
	})
	t.attach(t.handle)
	return t
}

// Label returns the current text, read from the native control.
func (t *TextControl) Label() string { return t.handle.Text() }

// SetLabel replaces the text. OnChange is not fired.
func (t *TextControl) SetLabel(label string) { t.handle.SetLabel(label) }

// TextStyle returns the font variant of the text.
func (t *TextControl) TextStyle() TextStyle { return t.style }

// SetTextStyle changes the font variant of the text.
func (t *TextControl) SetTextStyle(style TextStyle) {
	t.style = style
	t.handle.SetTextStyle(style)
}

// TextSize returns the point size of the text.
func (t *TextControl) TextSize() int { return t.size }

// SetTextSize changes the point size of the text.
func (t *TextControl) SetTextSize(size int) {
	t.size = size
	t.handle.SetTextSize(size)
}

// Foreground returns the text color, nil for the toolkit default.
func (t *TextControl) Foreground() *Color { return t.fg }

// SetForeground changes the text color.
func (t *TextControl) SetForeground(c *Color) {
	t.fg = c
	t.handle.SetForeground(c)
}

// Background returns the background color, nil for the toolkit default.
func (t *TextControl) Background() *Color { return t.bg }

// SetBackground changes the background color.
func (t *TextControl) SetBackground(c *Color) {
	t.bg = c
	t.handle.SetBackground(c)
}
