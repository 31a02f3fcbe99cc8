package gui

import "time"

// Calendar displays a month view with an optional selectable date range.
// A zero time.Time means "no bound". The widget keeps its dates consistent
// by construction: a bound update that would invert the range is silently
// ignored, and the selected date is clamped back inside the range whenever
// a bound moves past it.
type Calendar struct {
	widget
	handle   CalendarHandle
	lower    time.Time
	upper    time.Time
	selected time.Time

	// OnDateChanged is the user hook fired when the user picks a date. It
	// is not fired by SetSelectedDate.
	OnDateChanged func(date time.Time)
}

// NewCalendar creates a calendar inside parent. Recognized options:
// OptLowerDate, OptUpperDate, OptSelectedDate (defaults to today),
// OptEnabled, OptHidden.
func NewCalendar(parent Container, opts ...Option) *Calendar {
	o := applyOptions(opts)
	c := &Calendar{
		widget:   newWidget(parent, o),
		selected: time.Now(),
	}
	if sel := getOpt(o, OptSelectedDate); !sel.IsZero() {
		c.selected = sel
	}
	c.applyLower(getOpt(o, OptLowerDate))
	c.applyUpper(getOpt(o, OptUpperDate))
	c.handle = c.win.handle.NewCalendar(CalendarConfig{
		Lower:    c.lower,
		Upper:    c.upper,
		HasLower: !c.lower.IsZero(),
		HasUpper: !c.upper.IsZero(),
		Selected: c.selected,
		Enabled:  c.enabled,
		Hidden:   c.hidden,
		OnDateChanged: func(date time.Time) {
			c.selected = date
			if c.OnDateChanged != nil {
				c.OnDateChanged(date)
			}
		},
	})
	c.attach(c.handle)
	return c
}

// LowerDate returns the first selectable date, zero when unbounded.
func (c *Calendar) LowerDate() time.Time { return c.lower }

// SetLowerDate moves the first selectable date. Pass a zero time to remove
// the bound. A bound above the current upper date is ignored; the selected
// date is clamped up if the new bound passes it.
func (c *Calendar) SetLowerDate(lower time.Time) {
	c.applyLower(lower)
	c.push()
}

// UpperDate returns the last selectable date, zero when unbounded.
func (c *Calendar) UpperDate() time.Time { return c.upper }

// SetUpperDate moves the last selectable date. Pass a zero time to remove
// the bound. A bound below the current lower date is ignored; the selected
// date is clamped down if the new bound passes it.
func (c *Calendar) SetUpperDate(upper time.Time) {
	c.applyUpper(upper)
	c.push()
}

// SelectedDate returns the selected date.
func (c *Calendar) SelectedDate() time.Time { return c.selected }

// SetSelectedDate selects a date. Dates outside the current range are
// ignored and the current selection is kept. OnDateChanged is not fired.
func (c *Calendar) SetSelectedDate(date time.Time) {
	c.applySelected(date)
	c.handle.SetSelectedDate(c.selected)
}

// SetLanguage sets the calendar display language to an ISO 639 code, where
// the toolkit supports it.
func (c *Calendar) SetLanguage(languageCode string) {
	c.handle.SetLanguage(languageCode)
}

func (c *Calendar) applyLower(lower time.Time) {
	if lower.IsZero() || c.upper.IsZero() || !lower.After(c.upper) {
		c.lower = lower
	}
	if !c.lower.IsZero() && c.selected.Before(c.lower) {
		c.applySelected(c.lower)
	}
}

func (c *Calendar) applyUpper(upper time.Time) {
	if upper.IsZero() || c.lower.IsZero() || !upper.Before(c.lower) {
		c.upper = upper
	}
	if !c.upper.IsZero() && c.selected.After(c.upper) {
		c.applySelected(c.upper)
	}
}

func (c *Calendar) applySelected(date time.Time) {
	if !c.lower.IsZero() && date.Before(c.lower) {
		return
	}
	if !c.upper.IsZero() && date.After(c.upper) {
		return
	}
	c.selected = date
}

func (c *Calendar) push() {
	c.handle.SetDateRange(c.lower, c.upper, !c.lower.IsZero(), !c.upper.IsZero())
	c.handle.SetSelectedDate(c.selected)
}
