package term

import (
	"fmt"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/crossgui/gui"
)

var (
	textColor     = gui.RGB(230, 230, 230)
	disabledColor = gui.RGB(128, 128, 128)
	accentColor   = gui.RGB(0, 120, 215)
	fieldBG       = gui.RGB(40, 40, 40)
)

func sw(s string) int { return runewidth.StringWidth(s) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// anyWidget is the cell-geometry contract every mirror satisfies. rect is
// window-local and assigned by arrange.
type anyWidget interface {
	gui.ControlHandle
	base() *widgetBase
	minSize() gui.Size
	draw(c *canvas)
	// wantsFocus reports whether tab stops on the widget.
	wantsFocus() bool
}

// keyTarget handles keyboard input while focused. It reports whether the
// key was consumed.
type keyTarget interface {
	key(msg tea.KeyMsg) bool
}

// clickTarget receives window-absolute press/release positions.
type clickTarget interface {
	click(btn gui.MouseButton, down bool, pos gui.Point)
}

type wheelTarget interface {
	wheel(pos gui.Point, rotation int)
}

type motionTarget interface {
	motion(pos gui.Point)
}

type hoverTarget interface {
	pointerEnter()
	pointerLeave()
}

type widgetBase struct {
	win     *window
	rect    rect
	enabled bool
	hidden  bool
	inside  bool
}

func (b *widgetBase) base() *widgetBase { return b }

func (b *widgetBase) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *widgetBase) SetHidden(hidden bool) {
	b.hidden = hidden
	b.win.needLayout = true
}

func (b *widgetBase) fg() gui.Color {
	if !b.enabled {
		return disabledColor
	}
	return textColor
}

func (b *widgetBase) focused() bool {
	return b.win.focus != nil && b.win.focus.base() == b
}

// Focusable mirrors shadow this.
func (b *widgetBase) wantsFocus() bool { return false }

func fireMouse(cb *gui.MouseCallbacks, btn gui.MouseButton, down bool, pos gui.Point) {
	switch {
	case btn == gui.MouseLeft && down && cb.OnLeftDown != nil:
		cb.OnLeftDown(pos)
	case btn == gui.MouseLeft && !down && cb.OnLeftUp != nil:
		cb.OnLeftUp(pos)
	case btn == gui.MouseRight && down && cb.OnRightDown != nil:
		cb.OnRightDown(pos)
	case btn == gui.MouseRight && !down && cb.OnRightUp != nil:
		cb.OnRightUp(pos)
	}
}

type button struct {
	widgetBase
	label   string
	onClick func()
}

func (b *button) wantsFocus() bool { return b.enabled }

func (b *button) SetLabel(label string) {
	b.label = label
	b.win.needLayout = true
}

func (b *button) minSize() gui.Size {
	return gui.Size{W: sw(b.label) + 4, H: 1}
}

func (b *button) draw(c *canvas) {
	a := fgAttr(b.fg())
	if b.focused() {
		a.reverse = true
	}
	s := runewidth.Truncate("[ "+b.label+" ]", b.rect.w, "")
	c.setString(b.rect.x, b.rect.y, s, a)
}

func (b *button) activate() {
	if b.enabled && b.onClick != nil {
		b.onClick()
	}
}

func (b *button) key(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
		b.activate()
		return true
	}
	return false
}

func (b *button) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn == gui.MouseLeft && !down {
		b.activate()
	}
}

type checkBox struct {
	widgetBase
	label   string
	value   bool
	onClick func(bool)
}

func (cb *checkBox) wantsFocus() bool { return cb.enabled }

func (cb *checkBox) SetLabel(label string) {
	cb.label = label
	cb.win.needLayout = true
}

func (cb *checkBox) SetValue(value bool) { cb.value = value }
func (cb *checkBox) Value() bool         { return cb.value }

func (cb *checkBox) minSize() gui.Size {
	return gui.Size{W: sw(cb.label) + 4, H: 1}
}

func (cb *checkBox) draw(c *canvas) {
	mark := "[ ] "
	if cb.value {
		mark = "[x] "
	}
	a := fgAttr(cb.fg())
	if cb.focused() {
		a.reverse = true
	}
	c.setString(cb.rect.x, cb.rect.y, runewidth.Truncate(mark+cb.label, cb.rect.w, ""), a)
}

func (cb *checkBox) toggle() {
	if !cb.enabled {
		return
	}
	cb.value = !cb.value
	if cb.onClick != nil {
		cb.onClick(cb.value)
	}
}

func (cb *checkBox) key(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
		cb.toggle()
		return true
	}
	return false
}

func (cb *checkBox) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn == gui.MouseLeft && down {
		cb.toggle()
	}
}

type radioBox struct {
	widgetBase
	label    string
	choices  []string
	sel      int
	onSelect func(int)
}

func (r *radioBox) wantsFocus() bool { return r.enabled }

func (r *radioBox) SetSelection(index int) { r.sel = index }

func (r *radioBox) SetChoice(index int, label string) {
	if index >= 0 && index < len(r.choices) {
		r.choices[index] = label
		r.win.needLayout = true
	}
}

func (r *radioBox) minSize() gui.Size {
	w := sw(r.label)
	for _, c := range r.choices {
		w = max(w, sw(c)+4)
	}
	return gui.Size{W: w, H: len(r.choices) + 1}
}

func (r *radioBox) draw(c *canvas) {
	c.setString(r.rect.x, r.rect.y, runewidth.Truncate(r.label, r.rect.w, ""), fgAttr(r.fg()))
	for i, choice := range r.choices {
		mark := "( ) "
		if i == r.sel {
			mark = "(o) "
		}
		a := fgAttr(r.fg())
		if r.focused() && i == r.sel {
			a.reverse = true
		}
		c.setString(r.rect.x, r.rect.y+1+i, runewidth.Truncate(mark+choice, r.rect.w, ""), a)
	}
}

func (r *radioBox) selectIndex(i int) {
	if !r.enabled || i < 0 || i >= len(r.choices) || i == r.sel {
		return
	}
	r.sel = i
	if r.onSelect != nil {
		r.onSelect(i)
	}
}

func (r *radioBox) key(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp:
		r.selectIndex(r.sel - 1)
		return true
	case tea.KeyDown:
		r.selectIndex(r.sel + 1)
		return true
	}
	return false
}

func (r *radioBox) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down {
		return
	}
	r.selectIndex(pos.Y - r.rect.y - 1)
}

// bitmap has no pixels to show; it reserves a shaded box of the image's
// cell footprint and keeps the mouse contract alive.
type bitmap struct {
	widgetBase
	w, h  int
	mouse gui.MouseCallbacks
}

func (b *bitmap) SetImage(img image.Image) {
	if img == nil {
		b.w, b.h = 0, 0
	} else {
		bounds := img.Bounds()
		b.w, b.h = max(cellsX(bounds.Dx()), 2), max(cellsY(bounds.Dy()), 1)
	}
	b.win.needLayout = true
}

func (b *bitmap) minSize() gui.Size { return gui.Size{W: b.w, H: b.h} }

func (b *bitmap) draw(c *canvas) {
	a := fgAttr(disabledColor)
	for y := b.rect.y; y < b.rect.y+b.rect.h; y++ {
		for x := b.rect.x; x < b.rect.x+b.rect.w; x++ {
			c.set(x, y, '▒', a)
		}
	}
}

func (b *bitmap) local(pos gui.Point) gui.Point {
	return gui.Point{X: pos.X - b.rect.x, Y: pos.Y - b.rect.y}
}

func (b *bitmap) click(btn gui.MouseButton, down bool, pos gui.Point) {
	fireMouse(&b.mouse, btn, down, b.local(pos))
}

func (b *bitmap) wheel(pos gui.Point, rotation int) {
	if b.mouse.OnWheel != nil {
		b.mouse.OnWheel(b.local(pos), rotation)
	}
}

func (b *bitmap) motion(pos gui.Point) {
	if b.mouse.OnMotion != nil {
		b.mouse.OnMotion(b.local(pos))
	}
}

func (b *bitmap) pointerEnter() {
	if b.mouse.OnEnter != nil {
		b.mouse.OnEnter()
	}
}

func (b *bitmap) pointerLeave() {
	if b.mouse.OnLeave != nil {
		b.mouse.OnLeave()
	}
}

type text struct {
	widgetBase
	label string
	style gui.TextStyle
	fgCol *gui.Color
	bgCol *gui.Color
	mouse gui.MouseCallbacks
}

func newTextMirror(w *window, cfg gui.TextConfig) *text {
	return &text{
		widgetBase: widgetBase{win: w, enabled: cfg.Enabled, hidden: cfg.Hidden},
		label:      cfg.Label,
		style:      cfg.Style,
		fgCol:      cfg.Foreground,
		bgCol:      cfg.Background,
		mouse:      cfg.Mouse,
	}
}

func (t *text) SetLabel(label string) {
	t.label = label
	t.win.needLayout = true
}

func (t *text) SetTextStyle(style gui.TextStyle) { t.style = style }

// SetTextSize is a no-op: terminal glyphs have one size.
func (t *text) SetTextSize(size int) {}

func (t *text) SetForeground(c *gui.Color) { t.fgCol = c }
func (t *text) SetBackground(c *gui.Color) { t.bgCol = c }

func (t *text) minSize() gui.Size {
	return gui.Size{W: max(sw(t.label), 1), H: 1}
}

func (t *text) attrs() attr {
	a := fgAttr(t.fg())
	if t.enabled && t.fgCol != nil {
		a = fgAttr(*t.fgCol)
	}
	if t.bgCol != nil {
		a.bg, a.hasBg = *t.bgCol, true
	}
	a.bold = t.style == gui.TextBold || t.style == gui.TextBoldItalic
	a.italic = t.style == gui.TextItalic || t.style == gui.TextBoldItalic
	return a
}

func (t *text) draw(c *canvas) {
	a := t.attrs()
	if t.bgCol != nil {
		c.fill(t.rect, a)
	}
	c.setString(t.rect.x, t.rect.y, runewidth.Truncate(t.label, t.rect.w, ""), a)
}

func (t *text) local(pos gui.Point) gui.Point {
	return gui.Point{X: pos.X - t.rect.x, Y: pos.Y - t.rect.y}
}

func (t *text) click(btn gui.MouseButton, down bool, pos gui.Point) {
	fireMouse(&t.mouse, btn, down, t.local(pos))
}

func (t *text) wheel(pos gui.Point, rotation int) {
	if t.mouse.OnWheel != nil {
		t.mouse.OnWheel(t.local(pos), rotation)
	}
}

func (t *text) motion(pos gui.Point) {
	if t.mouse.OnMotion != nil {
		t.mouse.OnMotion(t.local(pos))
	}
}

func (t *text) pointerEnter() {
	if t.mouse.OnEnter != nil {
		t.mouse.OnEnter()
	}
}

func (t *text) pointerLeave() {
	if t.mouse.OnLeave != nil {
		t.mouse.OnLeave()
	}
}

type textControl struct {
	text
	buf      []rune
	caret    int
	onChange func(string)
}

func (t *textControl) wantsFocus() bool { return t.enabled }

func (t *textControl) SetLabel(label string) {
	t.buf = []rune(label)
	t.caret = clamp(t.caret, 0, len(t.buf))
	t.label = label
}

func (t *textControl) Text() string { return string(t.buf) }

func (t *textControl) minSize() gui.Size {
	return gui.Size{W: max(len(t.buf)+2, 20), H: 1}
}

func (t *textControl) draw(c *canvas) {
	a := attr{fg: t.fg(), bg: fieldBG, hasFg: true, hasBg: true}
	c.fill(t.rect, a)

	// Scroll so the caret stays visible.
	start := 0
	if t.caret >= t.rect.w {
		start = t.caret - t.rect.w + 1
	}
	c.setString(t.rect.x, t.rect.y, runewidth.Truncate(string(t.buf[start:]), t.rect.w, ""), a)
	if t.focused() {
		cx := t.rect.x + t.caret - start
		r := ' '
		if t.caret < len(t.buf) {
			r = t.buf[t.caret]
		}
		ca := a
		ca.reverse = true
		c.set(cx, t.rect.y, r, ca)
	}
}

func (t *textControl) changed() {
	t.label = string(t.buf)
	if t.onChange != nil {
		t.onChange(t.label)
	}
}

func (t *textControl) key(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		t.buf = append(t.buf[:t.caret], append(append([]rune(nil), runes...), t.buf[t.caret:]...)...)
		t.caret += len(runes)
		t.changed()
		return true
	case tea.KeyBackspace:
		if t.caret > 0 {
			t.buf = append(t.buf[:t.caret-1], t.buf[t.caret:]...)
			t.caret--
			t.changed()
		}
		return true
	case tea.KeyDelete:
		if t.caret < len(t.buf) {
			t.buf = append(t.buf[:t.caret], t.buf[t.caret+1:]...)
			t.changed()
		}
		return true
	case tea.KeyLeft:
		t.caret = max(t.caret-1, 0)
		return true
	case tea.KeyRight:
		t.caret = min(t.caret+1, len(t.buf))
		return true
	case tea.KeyHome:
		t.caret = 0
		return true
	case tea.KeyEnd:
		t.caret = len(t.buf)
		return true
	}
	return false
}

func (t *textControl) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn == gui.MouseLeft && down {
		t.caret = clamp(pos.X-t.rect.x, 0, len(t.buf))
	}
}

type spinControl struct {
	widgetBase
	min, max       int
	hasMin, hasMax bool
	value          int
	onValueChanged func(int)
}

func (s *spinControl) wantsFocus() bool { return s.enabled }

func (s *spinControl) lo() int {
	if s.hasMin {
		return s.min
	}
	return gui.DefaultSpinMin
}

func (s *spinControl) hi() int {
	if s.hasMax {
		return s.max
	}
	return gui.DefaultSpinMax
}

func (s *spinControl) SetRange(min, max int, hasMin, hasMax bool) {
	s.min, s.max = min, max
	s.hasMin, s.hasMax = hasMin, hasMax
	s.value = clamp(s.value, s.lo(), s.hi())
}

func (s *spinControl) SetValue(value int) {
	s.value = clamp(value, s.lo(), s.hi())
}

func (s *spinControl) minSize() gui.Size {
	w := max(len(fmt.Sprint(s.lo())), len(fmt.Sprint(s.hi())))
	return gui.Size{W: w + 6, H: 1}
}

func (s *spinControl) draw(c *canvas) {
	a := fgAttr(s.fg())
	if s.focused() {
		a.reverse = true
	}
	c.setString(s.rect.x, s.rect.y, "< ", a)
	val := fmt.Sprint(s.value)
	c.setString(s.rect.x+2, s.rect.y, val, a)
	c.setString(s.rect.x+s.rect.w-2, s.rect.y, " >", a)
}

func (s *spinControl) step(d int) {
	if !s.enabled {
		return
	}
	v := clamp(s.value+d, s.lo(), s.hi())
	if v == s.value {
		return
	}
	s.value = v
	if s.onValueChanged != nil {
		s.onValueChanged(v)
	}
}

func (s *spinControl) key(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyRight:
		s.step(1)
		return true
	case tea.KeyDown, tea.KeyLeft:
		s.step(-1)
		return true
	}
	return false
}

func (s *spinControl) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down {
		return
	}
	switch {
	case pos.X < s.rect.x+2:
		s.step(-1)
	case pos.X >= s.rect.x+s.rect.w-2:
		s.step(1)
	}
}

func (s *spinControl) wheel(pos gui.Point, rotation int) {
	if rotation > 0 {
		s.step(1)
	} else if rotation < 0 {
		s.step(-1)
	}
}
