package gui

// RadioBox is a group of mutually exclusive choices. The selection index is
// always valid: out-of-range writes are silently ignored, and an empty choice
// list normalizes to a single empty-string choice.
type RadioBox struct {
	widget
	handle    RadioBoxHandle
	label     string
	choices   []string
	selection int

	// OnSelect is the user hook fired when the user picks a choice. It is
	// not fired by SetSelection.
	OnSelect func(index int)
}

// NewRadioBox creates a radio group inside parent. Recognized options:
// OptLabel, OptChoices, OptNumChoices (empty choices when OptChoices is not
// given), OptSelection, OptEnabled, OptHidden.
func NewRadioBox(parent Container, opts ...Option) *RadioBox {
	o := applyOptions(opts)
	choices := getOpt(o, OptChoices)
	if len(choices) == 0 {
		n := getOpt(o, OptNumChoices)
		if n < 1 {
			n = 1
		}
		choices = make([]string, n)
	} else {
		choices = append([]string(nil), choices...)
	}
	r := &RadioBox{
		widget:  newWidget(parent, o),
		label:   getOpt(o, OptLabel),
		choices: choices,
	}
	if sel := getOpt(o, OptSelection); sel >= 0 && sel < len(choices) {
		r.selection = sel
	}
	r.handle = r.win.handle.NewRadioBox(RadioBoxConfig{
		Label:     r.label,
		Choices:   r.choices,
		Selection: r.selection,
		Enabled:   r.enabled,
		Hidden:    r.hidden,
		OnSelect: func(index int) {
			if index >= 0 && index < len(r.choices) {
				r.selection = index
			}
			if r.OnSelect != nil {
				r.OnSelect(r.selection)
			}
		},
	})
	r.attach(r.handle)
	return r
}

// Label returns the group label.
func (r *RadioBox) Label() string { return r.label }

// Choices returns a copy of the choice labels.
func (r *RadioBox) Choices() []string {
	return append([]string(nil), r.choices...)
}

// Selection returns the index of the selected choice.
func (r *RadioBox) Selection() int { return r.selection }

// SetSelection selects the choice at index. Out-of-range indices are ignored
// and the current selection is kept. OnSelect is not fired.
func (r *RadioBox) SetSelection(index int) {
	if index < 0 || index >= len(r.choices) {
		return
	}
	r.selection = index
	r.handle.SetSelection(index)
}

// SetChoice replaces the label of the choice at index. Out-of-range indices
// are ignored.
func (r *RadioBox) SetChoice(index int, label string) {
	if index < 0 || index >= len(r.choices) {
		return
	}
	r.choices[index] = label
	r.handle.SetChoice(index, label)
}
