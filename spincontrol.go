package gui

// SpinControl is a numeric up/down control with optional bounds. The value is
// clamped into the bounds on every write, and a bound update that would
// invert the range is silently ignored. Backends apply DefaultSpinMin and
// DefaultSpinMax natively when a bound is left unset.
type SpinControl struct {
	widget
	handle SpinHandle
	min    int
	max    int
	hasMin bool
	hasMax bool
	value  int

	// OnValueChanged is the user hook fired when the user changes the
	// value. It is not fired by SetValue.
	OnValueChanged func(value int)
}

// NewSpinControl creates a spin control inside parent. Recognized options:
// OptMinValue, OptMaxValue, OptSpinValue, OptEnabled, OptHidden.
func NewSpinControl(parent Container, opts ...Option) *SpinControl {
	o := applyOptions(opts)
	s := &SpinControl{
		widget: newWidget(parent, o),
		value:  getOpt(o, OptSpinValue),
	}
	if min := getOpt(o, OptMinValue); min != nil {
		s.applyMin(*min)
	}
	if max := getOpt(o, OptMaxValue); max != nil {
		s.applyMax(*max)
	}
	s.value = s.clamp(s.value)
	s.handle = s.win.handle.NewSpinControl(SpinConfig{
		Min:     s.min,
		Max:     s.max,
		HasMin:  s.hasMin,
		HasMax:  s.hasMax,
		Value:   s.value,
		Enabled: s.enabled,
		Hidden:  s.hidden,
		OnValueChanged: func(value int) {
			s.value = value
			if s.OnValueChanged != nil {
				s.OnValueChanged(value)
			}
		},
	})
	s.attach(s.handle)
	return s
}

// MinValue returns the lower bound, with ok false when unbounded.
func (s *SpinControl) MinValue() (min int, ok bool) { return s.min, s.hasMin }

// SetMinValue sets the lower bound. A bound above the current upper bound is
// ignored; the value is clamped up if the new bound passes it.
func (s *SpinControl) SetMinValue(min int) {
	s.applyMin(min)
	s.push()
}

// ClearMinValue removes the lower bound.
func (s *SpinControl) ClearMinValue() {
	s.hasMin = false
	s.min = 0
	s.push()
}

// MaxValue returns the upper bound, with ok false when unbounded.
func (s *SpinControl) MaxValue() (max int, ok bool) { return s.max, s.hasMax }

// SetMaxValue sets the upper bound. A bound below the current lower bound is
// ignored; the value is clamped down if the new bound passes it.
func (s *SpinControl) SetMaxValue(max int) {
	s.applyMax(max)
	s.push()
}

// ClearMaxValue removes the upper bound.
func (s *SpinControl) ClearMaxValue() {
	s.hasMax = false
	s.max = 0
	s.push()
}

// Value returns the current value.
func (s *SpinControl) Value() int { return s.value }

// SetValue sets the value, clamped into the current bounds. OnValueChanged
// is not fired.
func (s *SpinControl) SetValue(value int) {
	s.value = s.clamp(value)
	s.handle.SetValue(s.value)
}

func (s *SpinControl) applyMin(min int) {
	if !s.hasMax || min <= s.max {
		s.min = min
		s.hasMin = true
	}
	if s.hasMin && s.value < s.min {
		s.value = s.min
	}
}

func (s *SpinControl) applyMax(max int) {
	if !s.hasMin || max >= s.min {
		s.max = max
		s.hasMax = true
	}
	if s.hasMax && s.value > s.max {
		s.value = s.max
	}
}

func (s *SpinControl) clamp(value int) int {
	if s.hasMin && value < s.min {
		value = s.min
	}
	if s.hasMax && value > s.max {
		value = s.max
	}
	return value
}

func (s *SpinControl) push() {
	s.handle.SetRange(s.min, s.max, s.hasMin, s.hasMax)
	s.handle.SetValue(s.value)
}
