package nk

import (
	"fmt"
	"image"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/rect"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

// overlay tracks the lifecycle of one nucular popup we opened. nucular gives
// no close notification, so the owner's update function marks seen every
// frame and the main frame sweep treats a missed frame as a dismissal. grace
// covers the frames between PopupOpen and the first update call.
type overlay struct {
	launched bool
	opened   bool
	seen     bool
	grace    int
}

// window is a gui.WindowHandle. The first window maps to the nucular master
// window; every later one renders as a nucular popup inside it.
type window struct {
	drv    *Driver
	cfg    gui.WindowConfig
	title  string
	isMain bool

	visible   bool
	destroyed bool
	closing   bool
	ov        overlay

	layout  *gui.LayoutSpec
	menubar *gui.MenuSpec
	menu    *popupMenu
	popups  []*popup
	loc     *locales.Table

	endCh    chan struct{}
	groupSeq int
}

func (d *Driver) NewWindow(cfg gui.WindowConfig) gui.WindowHandle {
	w := &window{drv: d, cfg: cfg, title: cfg.Title, loc: d.locale}
	if d.main == nil {
		w.isMain = true
		d.main = w
		size := image.Point{X: 640, Y: 480}
		if cfg.Size != nil {
			size = image.Point{X: cfg.Size.W, Y: cfg.Size.H}
		}
		d.master = nucular.NewMasterWindowSize(0, cfg.Title, size, d.frame)
		d.applyStyle()
		return w
	}
	d.windows = append(d.windows, w)
	return w
}

// frame is the master window update function. It renders the main window
// content, then sweeps every nucular popup we own: opening the pending ones
// and reaping the ones the user dismissed.
func (d *Driver) frame(nw *nucular.Window) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFrame = true
	defer func() { d.inFrame = false }()

	if in := nw.Input(); in != nil {
		d.mousePos = gui.Point{X: in.Mouse.Pos.X, Y: in.Mouse.Pos.Y}
	}

	if w := d.main; w != nil && !w.destroyed && w.visible {
		w.groupSeq = 0
		if w.menubar != nil {
			w.renderMenuBar(nw)
		}
		if w.layout != nil {
			w.renderLayout(nw, w.layout)
		}
	}
	d.sweep(nw)
}

func (d *Driver) all() []*window {
	ws := make([]*window, 0, len(d.windows)+1)
	if d.main != nil {
		ws = append(ws, d.main)
	}
	return append(ws, d.windows...)
}

func (d *Driver) sweep(nw *nucular.Window) {
	for _, w := range d.all() {
		if !w.isMain {
			switch {
			case w.ov.opened:
				d.tick(&w.ov, w.userClosed)
			case w.visible && !w.destroyed && !w.ov.launched:
				d.open(&w.ov, w.title, w.flags(), w.bounds(), w.update)
			}
		}
		if m := w.menu; m != nil {
			switch {
			case m.ov.opened:
				d.tick(&m.ov, w.finishMenu)
			case !m.ov.launched:
				// A zero-size contextual sizes itself to its widest entry.
				// The offset trigger rect keeps it from colliding with a
				// window whose header rect is zero.
				nw.ContextualOpen(0, image.Point{}, rect.Rect{X: -1, Y: -1}, m.update)
				m.ov.launched, m.ov.opened = true, true
				m.ov.grace = 2
			}
		}
		for _, p := range append([]*popup(nil), w.popups...) {
			switch {
			case p.ov.opened:
				d.tick(&p.ov, p.dismissed)
			case p.shown && !p.destroyed && !p.ov.launched:
				d.open(&p.ov, popupTitle(p), p.flags(), p.bounds(), p.update)
			}
		}
	}
}

func (d *Driver) open(o *overlay, title string, flags nucular.WindowFlags, b rect.Rect, fn nucular.UpdateFn) {
	d.master.PopupOpen(title, flags, b, true, fn)
	o.launched, o.opened = true, true
	o.grace = 2
}

// tick decides whether the popup behind o is still alive. seen is set by its
// update function later in the same frame walk, so a stale false here means
// nucular dropped the window.
func (d *Driver) tick(o *overlay, onClose func()) {
	if o.seen {
		o.seen = false
		return
	}
	if o.grace > 0 {
		o.grace--
		return
	}
	o.opened = false
	onClose()
}

// update is the per-frame renderer of a secondary window.
func (w *window) update(nw *nucular.Window) {
	d := w.drv
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := d.inFrame
	d.inFrame = true
	defer func() { d.inFrame = prev }()

	w.ov.seen = true
	if w.destroyed || !w.visible {
		w.closing = true
		nw.Close()
		return
	}
	w.groupSeq = 0
	if w.layout != nil {
		w.renderLayout(nw, w.layout)
	}
}

// userClosed fires after the window's nucular popup disappeared. A close we
// requested ourselves just resets the overlay; anything else came from the
// title bar close button and goes through the regular close chain.
func (w *window) userClosed() {
	w.ov.launched = false
	if w.closing {
		w.closing = false
		return
	}
	w.visible = false
	if w.destroyed {
		return
	}
	if w.cfg.OnCloseRequest != nil {
		w.cfg.OnCloseRequest()
	} else {
		w.Destroy()
	}
}

func (w *window) flags() nucular.WindowFlags {
	flags := nucular.WindowTitle | nucular.WindowBorder | nucular.WindowMovable |
		nucular.WindowClosable
	switch w.cfg.Style {
	case gui.FrameNormal:
		flags |= nucular.WindowScalable | nucular.WindowNonmodal
	case gui.FrameFixedSize:
		flags |= nucular.WindowNonmodal
	}
	return flags
}

func (w *window) bounds() rect.Rect {
	sz := gui.Size{W: 400, H: 300}
	if w.cfg.Size != nil {
		sz = *w.cfg.Size
	} else if w.layout != nil {
		sz = layoutHint(w.layout)
		sz.W += 24
		sz.H += 48
	}
	pos := gui.Point{X: 40, Y: 40}
	if w.cfg.Pos != nil {
		pos = *w.cfg.Pos
	}
	return rect.Rect{X: pos.X, Y: pos.Y, W: sz.W, H: sz.H}
}

func (w *window) SetTitle(title string) { w.title = title }

// SetIcon is a no-op: nucular windows carry no icon.
func (w *window) SetIcon(path string) {}

func (w *window) Show() { w.visible = true }

func (w *window) Hide() { w.visible = false }

// Raise is a no-op: nucular popups already stack above the master content.
func (w *window) Raise() {}

// SetCursor is a no-op: nucular does not expose the system cursor.
func (w *window) SetCursor(cursor gui.CursorStyle) {}

// Fit is a no-op: immediate mode re-lays the content every frame.
func (w *window) Fit() {}

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
	if w.isMain {
		w.drv.Quit()
		return
	}
	for i, q := range w.drv.windows {
		if q == w {
			w.drv.windows = append(w.drv.windows[:i], w.drv.windows[i+1:]...)
			break
		}
	}
}

func (w *window) SetLayout(spec *gui.LayoutSpec) { w.layout = spec }

func (w *window) SetMenuBar(spec *gui.MenuSpec) { w.menubar = spec }

// PopUpMenu shows the menu as a nucular popup near the pointer. It blocks
// the dispatch goroutine until dismissal; from a frame callback it returns
// immediately and OnClose still fires on dismissal.
func (w *window) PopUpMenu(spec *gui.MenuSpec) {
	m := &popupMenu{win: w, spec: spec, at: w.drv.mousePos, done: make(chan struct{})}
	w.menu = m
	w.drv.block(m.done)
}

func (w *window) finishMenu() {
	m := w.menu
	if m == nil {
		return
	}
	w.menu = nil
	if m.spec.OnClose != nil {
		m.spec.OnClose()
	}
	if m.clicked != nil {
		m.clicked()
	}
	close(m.done)
}

func (w *window) NewPopup() gui.PopupHandle {
	p := &popup{win: w, done: make(chan struct{})}
	w.popups = append(w.popups, p)
	return p
}

// RunModal blocks the dispatch goroutine until EndModal. The nucular popup
// behind a dialog is modal on its own, so input exclusion holds either way.
func (w *window) RunModal() {
	if w.endCh == nil {
		w.endCh = make(chan struct{})
	}
	w.drv.block(w.endCh)
}

func (w *window) EndModal() {
	if w.endCh != nil {
		close(w.endCh)
		w.endCh = nil
	}
}

func (w *window) groupName() string {
	w.groupSeq++
	return fmt.Sprintf("cell-%d", w.groupSeq)
}

func (w *window) NewButton(cfg gui.ButtonConfig) gui.ButtonHandle {
	return &button{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		onClick:    cfg.OnClick,
	}
}

func (w *window) NewCheckBox(cfg gui.CheckBoxConfig) gui.CheckBoxHandle {
	return &checkBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		value:      cfg.Value,
		onClick:    cfg.OnClick,
	}
}

func (w *window) NewRadioBox(cfg gui.RadioBoxConfig) gui.RadioBoxHandle {
	return &radioBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		choices:    append([]string(nil), cfg.Choices...),
		sel:        cfg.Selection,
		onSelect:   cfg.OnSelect,
	}
}

func (w *window) NewBitmap(cfg gui.BitmapConfig) gui.BitmapHandle {
	b := &bitmap{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		mouse:      cfg.Mouse,
	}
	b.SetImage(cfg.Image)
	return b
}

func (w *window) NewText(cfg gui.TextConfig) gui.TextHandle {
	return newTextMirror(w, cfg)
}

func (w *window) NewTextControl(cfg gui.TextConfig) gui.TextControlHandle {
	t := &textControl{text: *newTextMirror(w, cfg), onChange: cfg.OnChange}
	t.ed.Flags = nucular.EditField
	t.ed.Buffer = []rune(cfg.Label)
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
	return c
}

func (w *window) NewSpinControl(cfg gui.SpinConfig) gui.SpinHandle {
	s := &spinControl{
		widgetBase:     widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		onValueChanged: cfg.OnValueChanged,
	}
	s.SetRange(cfg.Min, cfg.Max, cfg.HasMin, cfg.HasMax)
	s.value = clamp(cfg.Value, s.lo(), s.hi())
	return s
}

func (w *window) NewTable(cfg gui.TableConfig) gui.TableHandle {
	return &table{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		widths:     map[int]int{},
		onClick:    cfg.OnClick,
	}
}
