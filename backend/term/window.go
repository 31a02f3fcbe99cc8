package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

// window is a gui.WindowHandle drawn as a box on the cell canvas. The first
// window fills the screen; later ones render as bordered boxes above it.
type window struct {
	drv    *Driver
	cfg    gui.WindowConfig
	title  string
	isMain bool

	x, y          int
	width, height int

	visible    bool
	destroyed  bool
	needLayout bool

	widgets []anyWidget
	layout  *gui.LayoutSpec
	menubar *gui.MenuSpec
	popups  []*popup

	menu        *openMenu
	menuFromBar bool

	focus anyWidget
	hover anyWidget
	grab  anyWidget

	loc   *locales.Table
	endCh chan struct{}
}

func (d *Driver) NewWindow(cfg gui.WindowConfig) gui.WindowHandle {
	w := &window{
		drv:        d,
		cfg:        cfg,
		title:      cfg.Title,
		isMain:     len(d.windows) == 0,
		loc:        d.locale,
		needLayout: true,
	}
	d.windows = append(d.windows, w)
	d.hadWindows = true
	w.place()
	return w
}

// place computes the window box from the config and the screen size.
func (w *window) place() {
	d := w.drv
	if w.isMain {
		w.x, w.y = 0, 0
		w.width, w.height = d.width, d.height
		return
	}
	sz := measure(w.layout)
	if w.menubar != nil {
		sz.H++
	}
	if w.cfg.Size != nil {
		sz = gui.Size{W: cellsX(w.cfg.Size.W), H: cellsY(w.cfg.Size.H)}
	}
	w.width = clamp(sz.W, 10, max(d.width-2, 10))
	w.height = clamp(sz.H, 1, max(d.height-2, 1))
	if w.cfg.Pos != nil {
		w.x = clamp(cellsX(w.cfg.Pos.X), 0, max(d.width-w.width-2, 0))
		w.y = clamp(cellsY(w.cfg.Pos.Y), 0, max(d.height-w.height-2, 0))
		return
	}
	w.x = max((d.width-w.width-2)/2, 0)
	w.y = max((d.height-w.height-2)/2, 0)
}

// contentX and contentY are the screen coordinates of the content origin.
func (w *window) contentX() int {
	if w.isMain {
		return 0
	}
	return w.x + 1
}

func (w *window) contentY() int {
	if w.isMain {
		return 0
	}
	return w.y + 1
}

// relayout arranges the widget tree in absolute screen cells, leaving a row
// for the menubar.
func (w *window) relayout() {
	top := w.contentY()
	h := w.height
	if w.menubar != nil {
		top++
		h--
	}
	arrange(w.layout, rect{x: w.contentX(), y: top, w: w.width, h: h})
}

func (w *window) render(c *canvas) {
	if w.needLayout {
		w.place()
		w.relayout()
		w.needLayout = false
	}
	if !w.isMain {
		box := rect{x: w.x, y: w.y, w: w.width + 2, h: w.height + 2}
		c.fill(box, attr{})
		c.box(box, w.title, fgAttr(textColor))
	}
	if w.menubar != nil {
		w.drawMenuBar(c)
	}
	for _, wd := range w.widgets {
		if !wd.base().hidden {
			wd.draw(c)
		}
	}
	for _, p := range w.popups {
		if p.shown && !p.destroyed {
			p.draw(c)
		}
	}
	if w.menu != nil {
		w.menu.draw(c)
	}
}

// modalPopup returns the topmost modal popup, if any.
func (w *window) modalPopup() *popup {
	for i := len(w.popups) - 1; i >= 0; i-- {
		if p := w.popups[i]; p.shown && p.modal && !p.destroyed {
			return p
		}
	}
	return nil
}

// target resolves the widget at a screen position. Popup rows sit on top;
// a modal popup swallows everything else.
func (w *window) target(pos gui.Point) anyWidget {
	for i := len(w.popups) - 1; i >= 0; i-- {
		p := w.popups[i]
		if !p.shown || p.destroyed {
			continue
		}
		if row := p.rowAt(pos); row != nil {
			return row
		}
		if p.modal {
			return nil
		}
	}
	for i := len(w.widgets) - 1; i >= 0; i-- {
		wd := w.widgets[i]
		if !wd.base().hidden && wd.base().rect.contains(pos) {
			return wd
		}
	}
	return nil
}

func (w *window) keyMsg(msg tea.KeyMsg) {
	if w.menu != nil {
		if msg.Type == tea.KeyEscape {
			w.closeMenu(nil)
			return
		}
		if close, action := w.menu.key(msg); close {
			w.closeMenu(action)
		}
		return
	}
	switch msg.Type {
	case tea.KeyTab:
		w.cycleFocus(1)
		return
	case tea.KeyShiftTab:
		w.cycleFocus(-1)
		return
	}
	if kt, ok := w.focus.(keyTarget); ok {
		kt.key(msg)
	}
}

func (w *window) cycleFocus(dir int) {
	var stops []anyWidget
	cur := -1
	for _, wd := range w.widgets {
		if wd.base().hidden || !wd.wantsFocus() {
			continue
		}
		if wd == w.focus {
			cur = len(stops)
		}
		stops = append(stops, wd)
	}
	if len(stops) == 0 {
		w.focus = nil
		return
	}
	if cur < 0 {
		if dir > 0 {
			w.focus = stops[0]
		} else {
			w.focus = stops[len(stops)-1]
		}
		return
	}
	w.focus = stops[(cur+dir+len(stops))%len(stops)]
}

func (w *window) mouseMsg(msg tea.MouseMsg) {
	pos := gui.Point{X: msg.X, Y: msg.Y}
	w.drv.mouse = pos

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		rotation := 1
		if msg.Button == tea.MouseButtonWheelDown {
			rotation = -1
		}
		if wt, ok := w.target(pos).(wheelTarget); ok {
			wt.wheel(pos, rotation)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		w.pointerMoved(pos)
	case tea.MouseActionPress:
		if btn, ok := mapButton(msg.Button); ok {
			w.mousePressed(btn, true, pos)
		}
	case tea.MouseActionRelease:
		if btn, ok := mapButton(msg.Button); ok {
			w.mousePressed(btn, false, pos)
		}
	}
}

func mapButton(b tea.MouseButton) (gui.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return gui.MouseLeft, true
	case tea.MouseButtonRight:
		return gui.MouseRight, true
	}
	return 0, false
}

func (w *window) pointerMoved(pos gui.Point) {
	if w.menu != nil {
		w.menu.motion(pos)
		return
	}
	t := w.target(pos)
	if t != w.hover {
		if ht, ok := w.hover.(hoverTarget); ok {
			ht.pointerLeave()
		}
		w.hover = t
		if ht, ok := t.(hoverTarget); ok && t != nil {
			ht.pointerEnter()
		}
	}
	if mt, ok := t.(motionTarget); ok {
		mt.motion(pos)
	}
}

func (w *window) mousePressed(btn gui.MouseButton, down bool, pos gui.Point) {
	if w.menu != nil {
		if !down {
			return
		}
		close, action := w.menu.click(pos)
		if close {
			w.closeMenu(action)
		}
		return
	}
	if down && w.menubar != nil {
		bar := w.menuBarLabelRect()
		abs := rect{x: bar.x + w.contentX(), y: bar.y + w.contentY(), w: bar.w, h: bar.h}
		if abs.contains(pos) {
			w.openMenuBar()
			return
		}
	}

	if down {
		t := w.target(pos)
		w.grab = t
		if t != nil && t.wantsFocus() {
			w.focus = t
		} else if t == nil {
			w.focus = nil
		}
		if ct, ok := t.(clickTarget); ok {
			ct.click(btn, true, pos)
		}
		return
	}
	if ct, ok := w.grab.(clickTarget); ok {
		ct.click(btn, false, pos)
	}
	w.grab = nil
}

func (w *window) openMenuBar() {
	w.menu = &openMenu{
		levels: []menuLevel{{
			spec:  w.menubar,
			pos:   gui.Point{X: w.contentX(), Y: w.contentY() + 1},
			hover: -1,
		}},
		onDismiss: w.menubar.OnClose,
	}
	w.menuFromBar = true
}

// closeMenu dismisses the menu overlay. Dismissal callbacks run before the
// handler so handler code observes a closed menu, matching native toolkits.
func (w *window) closeMenu(action func()) {
	m := w.menu
	if m == nil {
		return
	}
	w.menu = nil
	w.menuFromBar = false
	if m.onDismiss != nil {
		m.onDismiss()
	}
	if action != nil {
		action()
	}
}

func (w *window) SetTitle(title string) { w.title = title }

// SetIcon is a no-op: terminals have no window icon.
func (w *window) SetIcon(path string) {}

func (w *window) Show() {
	w.visible = true
	w.Raise()
}

func (w *window) Hide() { w.visible = false }

// Raise moves the window to the top of the draw order.
func (w *window) Raise() {
	d := w.drv
	for i, q := range d.windows {
		if q == w {
			d.windows = append(append(d.windows[:i], d.windows[i+1:]...), w)
			return
		}
	}
}

// SetCursor is a no-op: the terminal pointer is not ours to shape.
func (w *window) SetCursor(cursor gui.CursorStyle) {}

func (w *window) Fit() {
	w.needLayout = true
}

func (w *window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, p := range append([]*popup(nil), w.popups...) {
		p.Destroy()
	}
	if w.endCh != nil {
		close(w.endCh)
		w.endCh = nil
	}
	w.drv.popModal(w)
	w.drv.removeWindow(w)
}

func (w *window) SetLayout(spec *gui.LayoutSpec) {
	w.layout = spec
	w.needLayout = true
}

func (w *window) SetMenuBar(spec *gui.MenuSpec) {
	w.menubar = spec
	w.needLayout = true
}

// PopUpMenu opens the menu overlay at the pointer. The terminal loop cannot
// nest, so the blocking contract is bounded by the theme watchdog; dismissal
// is reported through OnClose when it actually happens.
func (w *window) PopUpMenu(spec *gui.MenuSpec) {
	pos := w.drv.mouse
	s := menuSize(spec)
	pos.X = clamp(pos.X, 0, max(w.drv.width-s.W, 0))
	pos.Y = clamp(pos.Y, 0, max(w.drv.height-s.H, 0))
	w.menu = &openMenu{
		levels:    []menuLevel{{spec: spec, pos: pos, hover: -1}},
		onDismiss: spec.OnClose,
	}
	w.menuFromBar = false
	time.Sleep(w.drv.theme.MenuWatchdog)
}

func (w *window) NewPopup() gui.PopupHandle {
	p := &popup{win: w}
	w.popups = append(w.popups, p)
	return p
}

func (w *window) removePopup(p *popup) {
	for i, q := range w.popups {
		if q == p {
			w.popups = append(w.popups[:i], w.popups[i+1:]...)
			return
		}
	}
}

// RunModal keeps the window on top and routes all input to it until
// EndModal. The single terminal loop cannot nest, so it returns immediately
// with the modal state latched.
func (w *window) RunModal() {
	w.drv.pushModal(w)
	w.Raise()
}

func (w *window) EndModal() {
	w.drv.popModal(w)
}

func (w *window) add(wd anyWidget) anyWidget {
	w.widgets = append(w.widgets, wd)
	w.needLayout = true
	return wd
}

func (w *window) NewButton(cfg gui.ButtonConfig) gui.ButtonHandle {
	b := &button{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		onClick:    cfg.OnClick,
	}
	w.add(b)
	return b
}

func (w *window) NewCheckBox(cfg gui.CheckBoxConfig) gui.CheckBoxHandle {
	cb := &checkBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		value:      cfg.Value,
		onClick:    cfg.OnClick,
	}
	w.add(cb)
	return cb
}

func (w *window) NewRadioBox(cfg gui.RadioBoxConfig) gui.RadioBoxHandle {
	r := &radioBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		choices:    append([]string(nil), cfg.Choices...),
		sel:        cfg.Selection,
		onSelect:   cfg.OnSelect,
	}
	w.add(r)
	return r
}

func (w *window) NewBitmap(cfg gui.BitmapConfig) gui.BitmapHandle {
	b := &bitmap{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		mouse:      cfg.Mouse,
	}
	b.SetImage(cfg.Image)
	w.add(b)
	return b
}

func (w *window) NewText(cfg gui.TextConfig) gui.TextHandle {
	t := newTextMirror(w, cfg)
	w.add(t)
	return t
}

func (w *window) NewTextControl(cfg gui.TextConfig) gui.TextControlHandle {
	t := &textControl{text: *newTextMirror(w, cfg), onChange: cfg.OnChange}
	t.buf = []rune(cfg.Label)
	t.caret = len(t.buf)
	w.add(t)
	return t
}

func (w *window) NewCalendar(cfg gui.CalendarConfig) gui.CalendarHandle {
	c := &calendar{
		widgetBase:    widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		loc:           w.loc,
		onDateChanged: cfg.OnDateChanged,
	}
	c.SetDateRange(cfg.Lower, cfg.Upper, cfg.HasLower, cfg.HasUpper)
	c.SetSelectedDate(cfg.Selected)
	w.add(c)
	return c
}

func (w *window) NewSpinControl(cfg gui.SpinConfig) gui.SpinHandle {
	s := &spinControl{
		widgetBase:     widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		onValueChanged: cfg.OnValueChanged,
	}
	s.SetRange(cfg.Min, cfg.Max, cfg.HasMin, cfg.HasMax)
	s.value = clamp(cfg.Value, s.lo(), s.hi())
	w.add(s)
	return s
}

func (w *window) NewTable(cfg gui.TableConfig) gui.TableHandle {
	t := &table{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		widths:     map[int]int{},
		onClick:    cfg.OnClick,
	}
	w.add(t)
	return t
}
