package opengl

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/crossgui/gui"
)

// window is the native side of a Frame or Dialog: a GLFW window with its
// own GL context, painter and widget mirrors.
type window struct {
	drv     *Driver
	glfw    *glfw.Window
	painter *painter
	cfg     gui.WindowConfig

	width, height int
	visible       bool
	destroyed     bool
	needLayout    bool

	widgets []anyWidget
	layout  *gui.LayoutSpec
	menubar *gui.MenuSpec
	popups  []*popup

	menu        *openMenu
	menuFromBar bool

	modal bool

	mouse gui.Point
	hover anyWidget
	grab  anyWidget
	focus *textControl
}

func (d *Driver) NewWindow(cfg gui.WindowConfig) gui.WindowHandle {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if cfg.Style != gui.FrameNormal {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	width, height := 640, 480
	if cfg.Size != nil {
		width, height = cfg.Size.W, cfg.Size.H
	}

	gw, err := glfw.CreateWindow(width, height, cfg.Title, nil, nil)
	if err != nil {
		panic("opengl: create window: " + err.Error())
	}
	if cfg.Pos != nil {
		gw.SetPos(cfg.Pos.X, cfg.Pos.Y)
	}
	if cfg.Icon != "" {
		setWindowIcon(gw, cfg.Icon)
	}

	gw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		gw.Destroy()
		panic("opengl: init gl: " + err.Error())
	}
	glfw.SwapInterval(1)

	p, err := newPainter()
	if err != nil {
		gw.Destroy()
		panic(err.Error())
	}

	w := &window{
		drv:     d,
		glfw:    gw,
		painter: p,
		cfg:     cfg,
		width:   width,
		height:  height,
	}

	gw.SetCloseCallback(func(*glfw.Window) {
		gw.SetShouldClose(false)
		if cfg.OnCloseRequest != nil {
			cfg.OnCloseRequest()
		}
	})
	gw.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		w.needLayout = true
	})
	gw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.pointerMoved(gui.Point{X: int(x), Y: int(y)})
	})
	gw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := mapButton(button)
		if !ok {
			return
		}
		w.mousePressed(btn, action == glfw.Press)
	})
	gw.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scrolled(yoff)
	})
	gw.SetCharCallback(func(_ *glfw.Window, ch rune) {
		if w.blocked() || w.focus == nil {
			return
		}
		w.focus.charInput(ch)
	})
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		w.keyPressed(key)
	})

	d.windows = append(d.windows, w)
	return w
}

func setWindowIcon(gw *glfw.Window, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return
	}
	gw.SetIcon([]image.Image{img})
}

func mapButton(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseRight, true
	}
	return 0, false
}

// blocked reports whether another window holds a modal loop.
func (w *window) blocked() bool {
	top := w.drv.modalTop()
	return top != nil && top != w
}

// modalPopup returns the shown modal popup, if any.
func (w *window) modalPopup() *popup {
	for i := len(w.popups) - 1; i >= 0; i-- {
		if w.popups[i].shown && w.popups[i].modal {
			return w.popups[i]
		}
	}
	return nil
}

// target finds the interactive widget under pos: popup rows first, then
// layout widgets.
func (w *window) target(pos gui.Point) anyWidget {
	for i := len(w.popups) - 1; i >= 0; i-- {
		if !w.popups[i].shown {
			continue
		}
		if row := w.popups[i].rowAt(pos); row != nil {
			return row
		}
	}
	if w.modalPopup() != nil {
		return nil
	}
	for i := len(w.widgets) - 1; i >= 0; i-- {
		wd := w.widgets[i]
		b := wd.base()
		if !b.hidden && b.rect.contains(pos) {
			return wd
		}
	}
	return nil
}

func (w *window) pointerMoved(pos gui.Point) {
	w.mouse = pos
	if w.blocked() {
		return
	}
	if w.menu != nil {
		w.menu.motion(pos)
		return
	}

	target := w.target(pos)
	if target != w.hover {
		if h, ok := w.hover.(hoverTarget); ok {
			h.pointerLeave()
		}
		w.hover = target
		if h, ok := target.(hoverTarget); ok {
			h.pointerEnter()
		}
	}
	if m, ok := target.(motionTarget); ok {
		m.pointerMove(pos)
	}
}

func (w *window) mousePressed(btn gui.MouseButton, down bool) {
	if w.blocked() {
		return
	}
	if w.menu != nil {
		if down {
			close, action := w.menu.click(w.mouse)
			if close {
				w.closeMenu(action)
			}
		}
		return
	}
	if down && btn == gui.MouseLeft && w.menubar != nil && w.menuBarLabelRect().contains(w.mouse) {
		w.openMenuBar()
		return
	}

	if down {
		target := w.target(w.mouse)
		w.grab = target
		if tc, ok := target.(*textControl); !ok || tc != w.focus {
			w.focus = nil
		}
		if m, ok := target.(mouseTarget); ok {
			m.mouseButton(btn, true, w.mouse)
		}
		return
	}
	if m, ok := w.grab.(mouseTarget); ok {
		m.mouseButton(btn, false, w.mouse)
	}
	w.grab = nil
}

func (w *window) scrolled(yoff float64) {
	if w.blocked() || w.menu != nil {
		return
	}
	rotation := 0
	if yoff > 0 {
		rotation = 1
	} else if yoff < 0 {
		rotation = -1
	}
	if rotation == 0 {
		return
	}
	if t, ok := w.target(w.mouse).(wheelTarget); ok {
		t.wheel(w.mouse, rotation)
	}
}

func (w *window) keyPressed(key glfw.Key) {
	if w.blocked() {
		return
	}
	if key == glfw.KeyEscape && w.menu != nil {
		w.closeMenu(nil)
		return
	}
	if w.focus == nil {
		return
	}
	switch key {
	case glfw.KeyBackspace:
		w.focus.keyInput(keyBackspace)
	case glfw.KeyDelete:
		w.focus.keyInput(keyDelete)
	case glfw.KeyLeft:
		w.focus.keyInput(keyLeft)
	case glfw.KeyRight:
		w.focus.keyInput(keyRight)
	case glfw.KeyHome:
		w.focus.keyInput(keyHome)
	case glfw.KeyEnd:
		w.focus.keyInput(keyEnd)
	}
}

func (w *window) openMenuBar() {
	spec := w.menubar
	w.menuFromBar = true
	w.menu = &openMenu{
		levels:    []menuLevel{{spec: spec, pos: gui.Point{X: 0, Y: menuBarH}, hover: -1}},
		onDismiss: spec.OnClose,
	}
}

// closeMenu dismisses the popup menu, then runs the clicked handler.
// Dismissal callbacks run before the handler so handler code observes a
// closed menu, matching native toolkits.
func (w *window) closeMenu(action func()) {
	m := w.menu
	w.menu = nil
	w.menuFromBar = false
	if m != nil && m.onDismiss != nil {
		m.onDismiss()
	}
	if action != nil {
		action()
	}
}

// render draws one frame if the window is visible.
func (w *window) render() {
	if !w.visible || w.destroyed {
		return
	}
	w.glfw.MakeContextCurrent()
	if w.needLayout {
		w.relayout()
		w.needLayout = false
	}

	fbw, fbh := w.glfw.GetFramebufferSize()
	w.painter.begin(fbw, fbh, windowBG)

	for _, wd := range w.widgets {
		if !wd.base().hidden {
			wd.draw(w.painter)
		}
	}
	if w.menubar != nil {
		w.drawMenuBar(w.painter)
	}
	for _, p := range w.popups {
		if p.shown {
			p.draw(w.painter)
		}
	}
	if w.menu != nil {
		w.menu.draw(w.painter)
	}

	w.painter.end()
	w.glfw.SwapBuffers()
}

func (w *window) contentTop() int {
	if w.menubar != nil {
		return menuBarH
	}
	return 0
}

func (w *window) relayout() {
	top := w.contentTop()
	arrange(w.layout, rect{x: 0, y: top, w: w.width, h: w.height - top})
}

// WindowHandle

func (w *window) SetTitle(title string) { w.glfw.SetTitle(title) }
func (w *window) SetIcon(path string)   { setWindowIcon(w.glfw, path) }

func (w *window) Show() {
	w.visible = true
	w.glfw.Show()
}

func (w *window) Hide() {
	w.visible = false
	w.glfw.Hide()
}

func (w *window) Raise() { w.glfw.Focus() }

func (w *window) SetCursor(cursor gui.CursorStyle) {
	w.glfw.SetCursor(w.drv.cursor(cursor))
}

// Fit shrinks the window to the minimum size of its layout.
func (w *window) Fit() {
	if w.layout == nil {
		return
	}
	m := measure(w.layout)
	w.glfw.SetSize(max(m.W, 1), max(m.H+w.contentTop(), 1))
	w.needLayout = true
}

func (w *window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.modal = false
	for _, p := range w.popups {
		p.destroyed = true
	}
	w.popups = nil
	w.glfw.MakeContextCurrent()
	w.painter.delete()
	w.glfw.Destroy()
	w.drv.removeWindow(w)
}

func (w *window) SetLayout(spec *gui.LayoutSpec) {
	w.layout = spec
	w.needLayout = true
	if w.cfg.Size == nil {
		w.Fit()
	}
}

func (w *window) SetMenuBar(spec *gui.MenuSpec) {
	w.menubar = spec
	w.needLayout = true
}

// PopUpMenu shows the menu at the pointer and blocks until it is dismissed.
func (w *window) PopUpMenu(spec *gui.MenuSpec) {
	dismissed := false
	w.menu = &openMenu{
		levels: []menuLevel{{spec: spec, pos: w.mouse, hover: -1}},
		onDismiss: func() {
			dismissed = true
			if spec.OnClose != nil {
				spec.OnClose()
			}
		},
	}
	for !dismissed && !w.destroyed && !w.drv.quit {
		if !w.drv.pump() {
			break
		}
	}
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

// RunModal pumps a nested loop until EndModal, blocking input to other
// windows.
func (w *window) RunModal() {
	w.modal = true
	w.drv.pushModal(w)
	defer w.drv.popModal(w)
	for w.modal && !w.destroyed && !w.drv.quit {
		if !w.drv.pump() {
			break
		}
	}
}

func (w *window) EndModal() { w.modal = false }

// Control factories.

func (w *window) add(wd anyWidget) {
	w.widgets = append(w.widgets, wd)
	w.needLayout = true
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
	c := &checkBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		value:      cfg.Value,
		onClick:    cfg.OnClick,
	}
	w.add(c)
	return c
}

func (w *window) NewRadioBox(cfg gui.RadioBoxConfig) gui.RadioBoxHandle {
	r := &radioBox{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		choices:    append([]string(nil), cfg.Choices...),
		selection:  cfg.Selection,
		onSelect:   cfg.OnSelect,
	}
	w.add(r)
	return r
}

func (w *window) NewBitmap(cfg gui.BitmapConfig) gui.BitmapHandle {
	b := &bitmap{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		img:        cfg.Image,
		dirty:      cfg.Image != nil,
		mouse:      cfg.Mouse,
	}
	w.add(b)
	return b
}

func newTextMirror(w *window, cfg gui.TextConfig) *text {
	return &text{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		style:      cfg.Style,
		size:       cfg.TextSize,
		fg:         cfg.Foreground,
		bg:         cfg.Background,
		mouse:      cfg.Mouse,
	}
}

func (w *window) NewText(cfg gui.TextConfig) gui.TextHandle {
	t := newTextMirror(w, cfg)
	w.add(t)
	return t
}

func (w *window) NewTextControl(cfg gui.TextConfig) gui.TextControlHandle {
	t := &textControl{
		text:     *newTextMirror(w, cfg),
		buf:      []rune(cfg.Label),
		onChange: cfg.OnChange,
	}
	t.caret = len(t.buf)
	w.add(t)
	return t
}

func (w *window) NewCalendar(cfg gui.CalendarConfig) gui.CalendarHandle {
	c := &calendar{
		widgetBase:    widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		loc:           w.drv.locale,
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
		onClick:    cfg.OnClick,
	}
	w.add(t)
	return t
}
