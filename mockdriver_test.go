package gui_test

import (
	"image"
	"time"

	"github.com/crossgui/gui"
)

// mockDriver is a test driver that renders nothing. Run captures the
// dispatch callback and returns immediately; tests call pump to drain the
// event queue on the test goroutine, which stands in for the UI thread.
type mockDriver struct {
	dispatch  func()
	woke      chan struct{}
	quits     int
	locale    string
	windows   []*mockWindow
	theme     gui.Theme
	themeSets int
}

func newMockDriver() *mockDriver {
	return &mockDriver{woke: make(chan struct{}, 64)}
}

func (d *mockDriver) Name() string { return "mock" }

func (d *mockDriver) Run(dispatch func()) error {
	d.dispatch = dispatch
	dispatch()
	return nil
}

func (d *mockDriver) Wake() {
	select {
	case d.woke <- struct{}{}:
	default:
	}
}

func (d *mockDriver) Quit() { d.quits++ }

func (d *mockDriver) SetLocale(languageCode string) { d.locale = languageCode }

func (d *mockDriver) SetTheme(t gui.Theme) {
	d.theme = t
	d.themeSets++
}

func (d *mockDriver) NewWindow(cfg gui.WindowConfig) gui.WindowHandle {
	w := &mockWindow{cfg: cfg}
	d.windows = append(d.windows, w)
	return w
}

// pump drains the event queue once, like one iteration of the native loop.
func (d *mockDriver) pump() {
	if d.dispatch != nil {
		d.dispatch()
	}
}

// waitWake blocks until Wake has been called, then pumps.
func (d *mockDriver) waitWake() bool {
	select {
	case <-d.woke:
		d.pump()
		return true
	case <-time.After(5 * time.Second):
		return false
	}
}

type mockWindow struct {
	cfg       gui.WindowConfig
	title     string
	icon      string
	shows     int
	hides     int
	raises    int
	fits      int
	cursor    gui.CursorStyle
	destroyed bool
	layout    *gui.LayoutSpec
	menubar   *gui.MenuSpec
	popupMenu *gui.MenuSpec
	popups    []*mockPopup
	modals    int
	endModals int

	// onRunModal simulates the user's interaction during the modal loop.
	onRunModal func()

	buttons    []*mockButton
	checkboxes []*mockCheckBox
	radios     []*mockRadioBox
	bitmaps    []*mockBitmap
	texts      []*mockText
	textCtrls  []*mockTextControl
	calendars  []*mockCalendar
	spins      []*mockSpin
	tables     []*mockTable
}

func (w *mockWindow) SetTitle(title string)            { w.title = title }
func (w *mockWindow) SetIcon(path string)              { w.icon = path }
func (w *mockWindow) Show()                            { w.shows++ }
func (w *mockWindow) Hide()                            { w.hides++ }
func (w *mockWindow) Raise()                           { w.raises++ }
func (w *mockWindow) SetCursor(cursor gui.CursorStyle) { w.cursor = cursor }
func (w *mockWindow) Fit()                             { w.fits++ }
func (w *mockWindow) Destroy()                         { w.destroyed = true }
func (w *mockWindow) SetLayout(spec *gui.LayoutSpec)   { w.layout = spec }
func (w *mockWindow) SetMenuBar(spec *gui.MenuSpec)    { w.menubar = spec }
func (w *mockWindow) PopUpMenu(spec *gui.MenuSpec) {
	w.popupMenu = spec
	if spec.OnClose != nil {
		spec.OnClose()
	}
}

func (w *mockWindow) NewPopup() gui.PopupHandle {
	p := &mockPopup{}
	w.popups = append(w.popups, p)
	return p
}

func (w *mockWindow) RunModal() {
	w.modals++
	if w.onRunModal != nil {
		w.onRunModal()
	}
}

func (w *mockWindow) EndModal() { w.endModals++ }

func (w *mockWindow) NewButton(cfg gui.ButtonConfig) gui.ButtonHandle {
	h := &mockButton{cfg: cfg, label: cfg.Label}
	w.buttons = append(w.buttons, h)
	return h
}

func (w *mockWindow) NewCheckBox(cfg gui.CheckBoxConfig) gui.CheckBoxHandle {
	h := &mockCheckBox{cfg: cfg, value: cfg.Value}
	w.checkboxes = append(w.checkboxes, h)
	return h
}

func (w *mockWindow) NewRadioBox(cfg gui.RadioBoxConfig) gui.RadioBoxHandle {
	h := &mockRadioBox{cfg: cfg, selection: cfg.Selection}
	h.choices = append(h.choices, cfg.Choices...)
	w.radios = append(w.radios, h)
	return h
}

func (w *mockWindow) NewBitmap(cfg gui.BitmapConfig) gui.BitmapHandle {
	h := &mockBitmap{cfg: cfg}
	w.bitmaps = append(w.bitmaps, h)
	return h
}

func (w *mockWindow) NewText(cfg gui.TextConfig) gui.TextHandle {
	h := &mockText{cfg: cfg, label: cfg.Label}
	w.texts = append(w.texts, h)
	return h
}

func (w *mockWindow) NewTextControl(cfg gui.TextConfig) gui.TextControlHandle {
	h := &mockTextControl{mockText: mockText{cfg: cfg, label: cfg.Label}}
	w.textCtrls = append(w.textCtrls, h)
	return h
}

func (w *mockWindow) NewCalendar(cfg gui.CalendarConfig) gui.CalendarHandle {
	h := &mockCalendar{cfg: cfg}
	w.calendars = append(w.calendars, h)
	return h
}

func (w *mockWindow) NewSpinControl(cfg gui.SpinConfig) gui.SpinHandle {
	h := &mockSpin{cfg: cfg, value: cfg.Value}
	w.spins = append(w.spins, h)
	return h
}

func (w *mockWindow) NewTable(cfg gui.TableConfig) gui.TableHandle {
	h := &mockTable{cfg: cfg, widths: map[int]int{}}
	w.tables = append(w.tables, h)
	return h
}

type mockPopup struct {
	texts     []*mockText
	shown     bool
	modal     bool
	destroyed bool
}

func (p *mockPopup) NewText(cfg gui.TextConfig) gui.TextHandle {
	h := &mockText{cfg: cfg, label: cfg.Label}
	p.texts = append(p.texts, h)
	return h
}

func (p *mockPopup) Show(modal bool) {
	p.shown = true
	p.modal = modal
}

func (p *mockPopup) Destroy() { p.destroyed = true }

type mockControl struct {
	enabled []bool
	hidden  []bool
}

func (c *mockControl) SetEnabled(enabled bool) { c.enabled = append(c.enabled, enabled) }
func (c *mockControl) SetHidden(hidden bool)   { c.hidden = append(c.hidden, hidden) }

type mockButton struct {
	mockControl
	cfg   gui.ButtonConfig
	label string
}

func (b *mockButton) SetLabel(label string) { b.label = label }

// click simulates a user click on the native button.
func (b *mockButton) click() {
	if b.cfg.OnClick != nil {
		b.cfg.OnClick()
	}
}

type mockCheckBox struct {
	mockControl
	cfg   gui.CheckBoxConfig
	label string
	value bool
}

func (c *mockCheckBox) SetLabel(label string) { c.label = label }
func (c *mockCheckBox) SetValue(value bool)   { c.value = value }
func (c *mockCheckBox) Value() bool           { return c.value }

// toggle simulates a user toggle: the native state flips first, then the
// callback fires.
func (c *mockCheckBox) toggle() {
	c.value = !c.value
	if c.cfg.OnClick != nil {
		c.cfg.OnClick(c.value)
	}
}

type mockRadioBox struct {
	mockControl
	cfg       gui.RadioBoxConfig
	choices   []string
	selection int
}

func (r *mockRadioBox) SetSelection(index int)            { r.selection = index }
func (r *mockRadioBox) SetChoice(index int, label string) { r.choices[index] = label }

func (r *mockRadioBox) selectIndex(index int) {
	r.selection = index
	if r.cfg.OnSelect != nil {
		r.cfg.OnSelect(index)
	}
}

type mockBitmap struct {
	mockControl
	cfg    gui.BitmapConfig
	images int
}

func (b *mockBitmap) SetImage(img image.Image) { b.images++ }

type mockText struct {
	mockControl
	cfg   gui.TextConfig
	label string
	style gui.TextStyle
	size  int
	fg    *gui.Color
	bg    *gui.Color
}

func (t *mockText) SetLabel(label string)            { t.label = label }
func (t *mockText) SetTextStyle(style gui.TextStyle) { t.style = style }
func (t *mockText) SetTextSize(size int)             { t.size = size }
func (t *mockText) SetForeground(c *gui.Color)       { t.fg = c }
func (t *mockText) SetBackground(c *gui.Color)       { t.bg = c }

type mockTextControl struct {
	mockText
}

func (t *mockTextControl) Text() string { return t.label }

// edit simulates the user typing new content.
func (t *mockTextControl) edit(text string) {
	t.label = text
	if t.cfg.OnChange != nil {
		t.cfg.OnChange(text)
	}
}

type mockCalendar struct {
	mockControl
	cfg      gui.CalendarConfig
	lower    time.Time
	upper    time.Time
	selected time.Time
	language string
}

func (c *mockCalendar) SetDateRange(lower, upper time.Time, hasLower, hasUpper bool) {
	c.lower, c.upper = lower, upper
}
func (c *mockCalendar) SetSelectedDate(date time.Time) { c.selected = date }
func (c *mockCalendar) SetLanguage(code string)        { c.language = code }

func (c *mockCalendar) pick(date time.Time) {
	c.selected = date
	if c.cfg.OnDateChanged != nil {
		c.cfg.OnDateChanged(date)
	}
}

type mockSpin struct {
	mockControl
	cfg   gui.SpinConfig
	min   int
	max   int
	value int
}

func (s *mockSpin) SetRange(min, max int, hasMin, hasMax bool) { s.min, s.max = min, max }
func (s *mockSpin) SetValue(value int)                         { s.value = value }

func (s *mockSpin) spin(value int) {
	s.value = value
	if s.cfg.OnValueChanged != nil {
		s.cfg.OnValueChanged(value)
	}
}

type mockTable struct {
	mockControl
	cfg    gui.TableConfig
	snaps  []*gui.TableSnapshot
	widths map[int]int
}

func (t *mockTable) Reload(snap *gui.TableSnapshot) { t.snaps = append(t.snaps, snap) }
func (t *mockTable) ColWidth(col int) int {
	if w, ok := t.widths[col]; ok {
		return w
	}
	return 80 + col
}
func (t *mockTable) SetColWidth(col, width int) { t.widths[col] = width }

func (t *mockTable) click(row, col int, button gui.MouseButton, double bool) {
	if t.cfg.OnClick != nil {
		t.cfg.OnClick(row, col, button, double)
	}
}

// newTestApp builds an App around a fresh mock driver and enters (and
// immediately leaves) the run loop so the dispatch hook is captured.
func newTestApp(opts ...gui.AppOption) (*gui.App, *mockDriver) {
	d := newMockDriver()
	app := gui.New(d, opts...)
	if err := app.Run(); err != nil {
		panic(err)
	}
	return app, d
}
