package gui_test

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/crossgui/gui"
)

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestButtonClick(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	clicks := 0
	b := gui.NewButton(frame, gui.WithOpt(gui.OptLabel, "Run"))
	b.OnClick = func() { clicks++ }

	native := d.windows[0].buttons[0]
	if native.label != "Run" {
		t.Errorf("native label = %q, want %q", native.label, "Run")
	}
	native.click()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	b.SetLabel("Stop")
	if b.Label() != "Stop" || native.label != "Stop" {
		t.Errorf("label = %q / native %q, want Stop", b.Label(), native.label)
	}
}

func TestWidgetFlagsReachNative(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)
	b := gui.NewButton(frame)

	b.Enable(false)
	b.Hide(true)
	native := d.windows[0].buttons[0]
	if len(native.enabled) != 1 || native.enabled[0] != false {
		t.Errorf("enabled pushes = %v, want [false]", native.enabled)
	}
	if len(native.hidden) != 1 || native.hidden[0] != true {
		t.Errorf("hidden pushes = %v, want [true]", native.hidden)
	}
	if b.Enabled() || !b.Hidden() {
		t.Errorf("flags = enabled %v hidden %v", b.Enabled(), b.Hidden())
	}
}

func TestCheckBoxRereadsNativeState(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	var reported []bool
	cb := gui.NewCheckBox(frame, gui.WithOpt(gui.OptValue, true))
	cb.OnClick = func(value bool) { reported = append(reported, value) }

	if !cb.Value() {
		t.Fatal("initial value should be true")
	}

	// A user toggle flips the native state without going through SetValue.
	native := d.windows[0].checkboxes[0]
	native.toggle()
	if cb.Value() {
		t.Error("value should re-read the native state after a user toggle")
	}
	if len(reported) != 1 || reported[0] != false {
		t.Errorf("OnClick reports = %v, want [false]", reported)
	}

	cb.SetValue(true)
	if !cb.Value() {
		t.Error("SetValue(true) not visible through Value")
	}
	if len(reported) != 1 {
		t.Error("SetValue must not fire OnClick")
	}
}

func TestTextControlRereadsNativeText(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	var edits []string
	tc := gui.NewTextControl(frame, gui.WithOpt(gui.OptLabel, "initial"))
	tc.OnChange = func(text string) { edits = append(edits, text) }

	if tc.Label() != "initial" {
		t.Fatalf("label = %q, want initial", tc.Label())
	}
	d.windows[0].textCtrls[0].edit("typed")
	if tc.Label() != "typed" {
		t.Errorf("label = %q, want typed (re-read from native)", tc.Label())
	}
	if len(edits) != 1 || edits[0] != "typed" {
		t.Errorf("edits = %v, want [typed]", edits)
	}

	tc.SetLabel("reset")
	if tc.Label() != "reset" {
		t.Errorf("label = %q, want reset", tc.Label())
	}
	if len(edits) != 1 {
		t.Error("SetLabel must not fire OnChange")
	}
}

func TestRadioBoxSelection(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	r := gui.NewRadioBox(frame,
		gui.WithOpt(gui.OptChoices, []string{"a", "b", "c"}),
		gui.WithOpt(gui.OptSelection, 1))
	if r.Selection() != 1 {
		t.Fatalf("selection = %d, want 1", r.Selection())
	}

	// Out-of-range writes are silently ignored.
	r.SetSelection(5)
	if r.Selection() != 1 {
		t.Errorf("selection = %d after out-of-range write, want 1", r.Selection())
	}
	r.SetSelection(-1)
	if r.Selection() != 1 {
		t.Errorf("selection = %d after negative write, want 1", r.Selection())
	}

	r.SetSelection(2)
	if r.Selection() != 2 || d.windows[0].radios[0].selection != 2 {
		t.Errorf("selection = %d / native %d, want 2", r.Selection(), d.windows[0].radios[0].selection)
	}

	r.SetChoice(0, "alpha")
	if got := r.Choices()[0]; got != "alpha" {
		t.Errorf("choice 0 = %q, want alpha", got)
	}
	r.SetChoice(7, "nope")
	if got := r.Choices(); len(got) != 3 {
		t.Errorf("choices = %v, out-of-range SetChoice must be ignored", got)
	}
}

func TestRadioBoxNormalizesEmptyChoices(t *testing.T) {
	app, _ := newTestApp()
	frame := gui.NewFrame(app, nil)

	r := gui.NewRadioBox(frame)
	if got := r.Choices(); len(got) != 1 || got[0] != "" {
		t.Errorf("choices = %v, want one empty choice", got)
	}
	if r.Selection() != 0 {
		t.Errorf("selection = %d, want 0", r.Selection())
	}

	r3 := gui.NewRadioBox(frame, gui.WithOpt(gui.OptNumChoices, 3))
	if got := r3.Choices(); len(got) != 3 {
		t.Errorf("choices = %v, want three empty choices", got)
	}
}

func TestRadioBoxUserSelection(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	var picks []int
	r := gui.NewRadioBox(frame, gui.WithOpt(gui.OptChoices, []string{"x", "y"}))
	r.OnSelect = func(index int) { picks = append(picks, index) }

	d.windows[0].radios[0].selectIndex(1)
	if r.Selection() != 1 {
		t.Errorf("selection = %d, want 1", r.Selection())
	}
	if len(picks) != 1 || picks[0] != 1 {
		t.Errorf("picks = %v, want [1]", picks)
	}
}

func TestSpinControlClamp(t *testing.T) {
	app, _ := newTestApp()
	frame := gui.NewFrame(app, nil)

	min, max := 0, 10
	s := gui.NewSpinControl(frame,
		gui.WithOpt(gui.OptMinValue, &min),
		gui.WithOpt(gui.OptMaxValue, &max),
		gui.WithOpt(gui.OptSpinValue, 5))

	s.SetValue(42)
	if s.Value() != 10 {
		t.Errorf("value = %d, want clamped 10", s.Value())
	}
	s.SetValue(-3)
	if s.Value() != 0 {
		t.Errorf("value = %d, want clamped 0", s.Value())
	}

	// Moving a bound past the value drags the value with it.
	s.SetValue(10)
	s.SetMaxValue(7)
	if s.Value() != 7 {
		t.Errorf("value = %d after lowering max, want 7", s.Value())
	}

	// Inverting bounds is silently rejected.
	s.SetMinValue(20)
	if got, _ := s.MinValue(); got != 0 {
		t.Errorf("min = %d after inverted write, want 0", got)
	}
	s.SetMaxValue(-5)
	if got, _ := s.MaxValue(); got != 7 {
		t.Errorf("max = %d after inverted write, want 7", got)
	}

	s.ClearMaxValue()
	if _, ok := s.MaxValue(); ok {
		t.Error("max should be unset after ClearMaxValue")
	}
	s.SetValue(1000)
	if s.Value() != 1000 {
		t.Errorf("value = %d with no max, want 1000", s.Value())
	}
}

func TestSpinControlUserChange(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	var values []int
	s := gui.NewSpinControl(frame)
	s.OnValueChanged = func(value int) { values = append(values, value) }

	d.windows[0].spins[0].spin(7)
	if s.Value() != 7 {
		t.Errorf("value = %d, want 7", s.Value())
	}
	if len(values) != 1 || values[0] != 7 {
		t.Errorf("values = %v, want [7]", values)
	}

	s.SetValue(3)
	if len(values) != 1 {
		t.Error("SetValue must not fire OnValueChanged")
	}
}

func TestCalendarClamp(t *testing.T) {
	app, _ := newTestApp()
	frame := gui.NewFrame(app, nil)

	c := gui.NewCalendar(frame,
		gui.WithOpt(gui.OptLowerDate, date(2024, 1, 1)),
		gui.WithOpt(gui.OptUpperDate, date(2024, 12, 31)),
		gui.WithOpt(gui.OptSelectedDate, date(2024, 6, 15)))

	// Moving the upper bound below the selection clamps the selection down.
	c.SetUpperDate(date(2024, 5, 1))
	if !c.SelectedDate().Equal(date(2024, 5, 1)) {
		t.Errorf("selected = %v, want 2024-05-01", c.SelectedDate())
	}

	// Out-of-range selections are silently ignored.
	c.SetSelectedDate(date(2025, 1, 1))
	if !c.SelectedDate().Equal(date(2024, 5, 1)) {
		t.Errorf("selected = %v after out-of-range write, want 2024-05-01", c.SelectedDate())
	}

	// Inverting the range is silently rejected.
	c.SetLowerDate(date(2024, 8, 1))
	if !c.LowerDate().Equal(date(2024, 1, 1)) {
		t.Errorf("lower = %v after inverted write, want 2024-01-01", c.LowerDate())
	}

	// Removing a bound reopens the range.
	c.SetUpperDate(time.Time{})
	c.SetSelectedDate(date(2030, 1, 1))
	if !c.SelectedDate().Equal(date(2030, 1, 1)) {
		t.Errorf("selected = %v with no upper bound, want 2030-01-01", c.SelectedDate())
	}
}

func TestCalendarUserPick(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	var picks []time.Time
	c := gui.NewCalendar(frame)
	c.OnDateChanged = func(dt time.Time) { picks = append(picks, dt) }

	d.windows[0].calendars[0].pick(date(2024, 3, 3))
	if !c.SelectedDate().Equal(date(2024, 3, 3)) {
		t.Errorf("selected = %v, want 2024-03-03", c.SelectedDate())
	}
	if len(picks) != 1 {
		t.Errorf("picks = %v, want one entry", picks)
	}
}

func TestMouseHooksLateBinding(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	txt := gui.NewText(frame, gui.WithOpt(gui.OptLabel, "hover me"))

	// Hooks assigned after construction must still receive events.
	var entered, left int
	var downs []gui.Point
	txt.Mouse.OnEnter = func() { entered++ }
	txt.Mouse.OnLeave = func() { left++ }
	txt.Mouse.OnLeftDown = func(pos gui.Point) { downs = append(downs, pos) }

	native := d.windows[0].texts[0]
	native.cfg.Mouse.OnEnter()
	native.cfg.Mouse.OnLeftDown(gui.Point{X: 3, Y: 4})
	native.cfg.Mouse.OnLeave()

	if entered != 1 || left != 1 {
		t.Errorf("entered = %d, left = %d, want 1/1", entered, left)
	}
	if len(downs) != 1 || downs[0] != (gui.Point{X: 3, Y: 4}) {
		t.Errorf("downs = %v, want [{3 4}]", downs)
	}
}

func TestBitmapImage(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := gui.NewBitmap(frame, img)
	if b.Image() != img {
		t.Error("image not stored")
	}
	b.SetImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if d.windows[0].bitmaps[0].images != 1 {
		t.Errorf("native image pushes = %d, want 1", d.windows[0].bitmaps[0].images)
	}
}

func TestConstructorsRequireParent(t *testing.T) {
	mustPanic(t, gui.ErrNotInitialized, func() {
		gui.NewButton(nil)
	})
	mustPanic(t, gui.ErrNotInitialized, func() {
		gui.NewFrame(nil, nil)
	})
}
