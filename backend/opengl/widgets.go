package opengl

import (
	"image"
	"strconv"

	"github.com/crossgui/gui"
)

// Widget chrome palette.
var (
	windowBG    = gui.RGB(240, 240, 240)
	faceBG      = gui.RGB(225, 225, 225)
	facePressed = gui.RGB(200, 200, 200)
	fieldBG     = gui.RGB(255, 255, 255)
	borderCol   = gui.RGB(130, 130, 130)
	textCol     = gui.RGB(20, 20, 20)
	disabledCol = gui.RGB(150, 150, 150)
	accentCol   = gui.RGB(0, 120, 215)
)

const (
	padX = 10
	padY = 6
)

// anyWidget is what every control mirror satisfies on top of the exported
// handle contract: geometry for the layout engine and a draw pass.
type anyWidget interface {
	gui.ControlHandle
	base() *widgetBase
	minSize() gui.Size
	draw(p *painter)
}

// mouseTarget receives routed button events while the pointer is over the
// widget. pos is in window coordinates.
type mouseTarget interface {
	mouseButton(btn gui.MouseButton, down bool, pos gui.Point)
}

// hoverTarget receives pointer enter/leave notifications.
type hoverTarget interface {
	pointerEnter()
	pointerLeave()
}

type motionTarget interface {
	pointerMove(pos gui.Point)
}

type wheelTarget interface {
	wheel(pos gui.Point, rotation int)
}

// editKey is the subset of keyboard input routed to focused widgets.
type editKey int

const (
	keyBackspace editKey = iota
	keyDelete
	keyLeft
	keyRight
	keyHome
	keyEnd
)

type keyTarget interface {
	charInput(ch rune)
	keyInput(key editKey)
}

type widgetBase struct {
	win     *window
	rect    rect
	enabled bool
	hidden  bool
}

func (b *widgetBase) base() *widgetBase { return b }

func (b *widgetBase) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *widgetBase) SetHidden(hidden bool) {
	b.hidden = hidden
	if b.win != nil {
		b.win.needLayout = true
	}
}

func (b *widgetBase) textColor() gui.Color {
	if !b.enabled {
		return disabledCol
	}
	return textCol
}

func drawCentered(p *painter, r rect, s string, c gui.Color, size int, style gui.TextStyle) {
	if size <= 0 {
		size = defaultTextSize
	}
	x := r.x + (r.w-textWidth(s, size))/2
	y := r.y + (r.h-size)/2
	p.text(x, y, s, c, size, style)
}

// fireMouse routes a raw button event into user mouse callbacks.
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

// button

type button struct {
	widgetBase
	label   string
	pressed bool
	onClick func()
}

func (b *button) SetLabel(label string) { b.label = label; b.win.needLayout = true }

func (b *button) minSize() gui.Size {
	return gui.Size{W: textWidth(b.label, defaultTextSize) + 2*padX, H: defaultTextSize + 2*padY}
}

func (b *button) draw(p *painter) {
	bg := faceBG
	if b.pressed {
		bg = facePressed
	}
	p.rect(b.rect, bg)
	p.frame(b.rect, borderCol)
	drawCentered(p, b.rect, b.label, b.textColor(), 0, gui.TextNormal)
}

func (b *button) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft {
		return
	}
	if down {
		b.pressed = true
		return
	}
	fire := b.pressed && b.enabled && b.rect.contains(pos)
	b.pressed = false
	if fire && b.onClick != nil {
		b.onClick()
	}
}

// checkbox

const checkSize = 14

type checkBox struct {
	widgetBase
	label   string
	value   bool
	onClick func(bool)
}

func (c *checkBox) SetLabel(label string) { c.label = label; c.win.needLayout = true }
func (c *checkBox) SetValue(value bool)   { c.value = value }
func (c *checkBox) Value() bool           { return c.value }

func (c *checkBox) minSize() gui.Size {
	return gui.Size{
		W: checkSize + 6 + textWidth(c.label, defaultTextSize),
		H: max(checkSize, defaultTextSize) + 4,
	}
}

func (c *checkBox) draw(p *painter) {
	box := rect{x: c.rect.x, y: c.rect.y + (c.rect.h-checkSize)/2, w: checkSize, h: checkSize}
	p.rect(box, fieldBG)
	p.frame(box, borderCol)
	if c.value {
		mark := accentCol
		if !c.enabled {
			mark = disabledCol
		}
		p.rect(rect{x: box.x + 3, y: box.y + 3, w: checkSize - 6, h: checkSize - 6}, mark)
	}
	p.text(c.rect.x+checkSize+6, c.rect.y+(c.rect.h-defaultTextSize)/2,
		c.label, c.textColor(), 0, gui.TextNormal)
}

func (c *checkBox) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down || !c.enabled {
		return
	}
	c.value = !c.value
	if c.onClick != nil {
		c.onClick(c.value)
	}
}

// radio group

const radioRowH = defaultTextSize + 8

type radioBox struct {
	widgetBase
	label     string
	choices   []string
	selection int
	onSelect  func(int)
}

func (r *radioBox) SetSelection(index int) {
	if index >= 0 && index < len(r.choices) {
		r.selection = index
	}
}

func (r *radioBox) SetChoice(index int, label string) {
	if index >= 0 && index < len(r.choices) {
		r.choices[index] = label
		r.win.needLayout = true
	}
}

func (r *radioBox) minSize() gui.Size {
	w := textWidth(r.label, defaultTextSize)
	for _, c := range r.choices {
		w = max(w, checkSize+6+textWidth(c, defaultTextSize))
	}
	return gui.Size{W: w + 8, H: radioRowH * (len(r.choices) + 1)}
}

func (r *radioBox) draw(p *painter) {
	p.text(r.rect.x, r.rect.y+4, r.label, r.textColor(), 0, gui.TextBold)
	for i, choice := range r.choices {
		y := r.rect.y + radioRowH*(i+1)
		box := rect{x: r.rect.x + 2, y: y + (radioRowH-checkSize)/2, w: checkSize, h: checkSize}
		p.rect(box, fieldBG)
		p.frame(box, borderCol)
		if i == r.selection {
			mark := accentCol
			if !r.enabled {
				mark = disabledCol
			}
			p.rect(rect{x: box.x + 4, y: box.y + 4, w: checkSize - 8, h: checkSize - 8}, mark)
		}
		p.text(r.rect.x+2+checkSize+6, y+(radioRowH-defaultTextSize)/2,
			choice, r.textColor(), 0, gui.TextNormal)
	}
}

func (r *radioBox) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down || !r.enabled {
		return
	}
	row := (pos.Y - r.rect.y) / radioRowH
	index := row - 1
	if index < 0 || index >= len(r.choices) || index == r.selection {
		return
	}
	r.selection = index
	if r.onSelect != nil {
		r.onSelect(index)
	}
}

// bitmap

type bitmap struct {
	widgetBase
	img   image.Image
	tex   uint32
	dirty bool
	mouse gui.MouseCallbacks
}

func (b *bitmap) SetImage(img image.Image) {
	b.img = img
	b.dirty = true
	b.win.needLayout = true
}

func (b *bitmap) minSize() gui.Size {
	if b.img == nil {
		return gui.Size{}
	}
	bounds := b.img.Bounds()
	return gui.Size{W: bounds.Dx(), H: bounds.Dy()}
}

func (b *bitmap) draw(p *painter) {
	if b.dirty {
		freeTexture(b.tex)
		b.tex = 0
		if b.img != nil {
			b.tex = uploadImage(b.img)
		}
		b.dirty = false
	}
	if b.tex != 0 {
		p.image(b.tex, b.rect)
	}
}

func (b *bitmap) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	fireMouse(&b.mouse, btn, down, pos)
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

func (b *bitmap) pointerMove(pos gui.Point) {
	if b.mouse.OnMotion != nil {
		b.mouse.OnMotion(pos)
	}
}

func (b *bitmap) wheel(pos gui.Point, rotation int) {
	if b.mouse.OnWheel != nil {
		b.mouse.OnWheel(pos, rotation)
	}
}

// static text

type text struct {
	widgetBase
	label string
	style gui.TextStyle
	size  int
	fg    *gui.Color
	bg    *gui.Color
	mouse gui.MouseCallbacks
}

func (t *text) SetLabel(label string)            { t.label = label; t.win.needLayout = true }
func (t *text) SetTextStyle(style gui.TextStyle) { t.style = style }
func (t *text) SetTextSize(size int)             { t.size = size; t.win.needLayout = true }
func (t *text) SetForeground(c *gui.Color)       { t.fg = c }
func (t *text) SetBackground(c *gui.Color)       { t.bg = c }

func (t *text) textSize() int {
	if t.size > 0 {
		return t.size
	}
	return defaultTextSize
}

func (t *text) minSize() gui.Size {
	return gui.Size{W: textWidth(t.label, t.textSize()) + 4, H: t.textSize() + 4}
}

func (t *text) draw(p *painter) {
	if t.bg != nil {
		p.rect(t.rect, *t.bg)
	}
	fg := t.textColor()
	if t.fg != nil && t.enabled {
		fg = *t.fg
	}
	p.text(t.rect.x+2, t.rect.y+(t.rect.h-t.textSize())/2, t.label, fg, t.textSize(), t.style)
}

func (t *text) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	fireMouse(&t.mouse, btn, down, pos)
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

func (t *text) pointerMove(pos gui.Point) {
	if t.mouse.OnMotion != nil {
		t.mouse.OnMotion(pos)
	}
}

func (t *text) wheel(pos gui.Point, rotation int) {
	if t.mouse.OnWheel != nil {
		t.mouse.OnWheel(pos, rotation)
	}
}

// editable text control

type textControl struct {
	text
	buf      []rune
	caret    int
	onChange func(string)
}

func (t *textControl) SetLabel(label string) {
	t.buf = []rune(label)
	t.caret = len(t.buf)
}

func (t *textControl) Text() string { return string(t.buf) }

func (t *textControl) minSize() gui.Size {
	w := max(textWidth(string(t.buf), t.textSize()), 12*t.textSize())
	return gui.Size{W: w + 2*padX, H: t.textSize() + 2*padY}
}

func (t *textControl) draw(p *painter) {
	p.rect(t.rect, fieldBG)
	border := borderCol
	if t.win.focus == t {
		border = accentCol
	}
	p.frame(t.rect, border)

	p.pushClip(t.rect.inset(gui.UniformInsets(2)))
	ty := t.rect.y + (t.rect.h-t.textSize())/2
	p.text(t.rect.x+padX/2, ty, string(t.buf), t.textColor(), t.textSize(), t.style)
	if t.win.focus == t && t.enabled {
		cx := t.rect.x + padX/2 + textWidth(string(t.buf[:t.caret]), t.textSize())
		p.rect(rect{x: cx, y: ty, w: 1, h: t.textSize()}, textCol)
	}
	p.popClip()
}

func (t *textControl) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn == gui.MouseLeft && down && t.enabled {
		t.win.focus = t
		size := t.textSize()
		t.caret = clamp((pos.X-t.rect.x-padX/2+size/2)/size, 0, len(t.buf))
	}
	fireMouse(&t.mouse, btn, down, pos)
}

func (t *textControl) charInput(ch rune) {
	if !t.enabled {
		return
	}
	t.buf = append(t.buf[:t.caret], append([]rune{ch}, t.buf[t.caret:]...)...)
	t.caret++
	t.changed()
}

func (t *textControl) keyInput(key editKey) {
	if !t.enabled {
		return
	}
	switch key {
	case keyBackspace:
		if t.caret > 0 {
			t.buf = append(t.buf[:t.caret-1], t.buf[t.caret:]...)
			t.caret--
			t.changed()
		}
	case keyDelete:
		if t.caret < len(t.buf) {
			t.buf = append(t.buf[:t.caret], t.buf[t.caret+1:]...)
			t.changed()
		}
	case keyLeft:
		t.caret = max(t.caret-1, 0)
	case keyRight:
		t.caret = min(t.caret+1, len(t.buf))
	case keyHome:
		t.caret = 0
	case keyEnd:
		t.caret = len(t.buf)
	}
}

func (t *textControl) changed() {
	if t.onChange != nil {
		t.onChange(string(t.buf))
	}
}

// spin control

const spinArrowW = 18

type spinControl struct {
	widgetBase
	value          int
	minVal, maxVal int
	hasMin, hasMax bool
	onValueChanged func(int)
}

func (s *spinControl) lo() int {
	if s.hasMin {
		return s.minVal
	}
	return gui.DefaultSpinMin
}

func (s *spinControl) hi() int {
	if s.hasMax {
		return s.maxVal
	}
	return gui.DefaultSpinMax
}

func (s *spinControl) SetRange(min, max int, hasMin, hasMax bool) {
	s.minVal, s.maxVal = min, max
	s.hasMin, s.hasMax = hasMin, hasMax
	s.value = clamp(s.value, s.lo(), s.hi())
}

func (s *spinControl) SetValue(value int) {
	s.value = clamp(value, s.lo(), s.hi())
}

func (s *spinControl) minSize() gui.Size {
	w := max(textWidth(strconv.Itoa(s.lo()), defaultTextSize),
		textWidth(strconv.Itoa(s.hi()), defaultTextSize))
	return gui.Size{W: w + 2*padX + spinArrowW, H: defaultTextSize + 2*padY}
}

func (s *spinControl) draw(p *painter) {
	field := rect{x: s.rect.x, y: s.rect.y, w: s.rect.w - spinArrowW, h: s.rect.h}
	p.rect(field, fieldBG)
	p.frame(field, borderCol)
	p.text(field.x+padX/2, field.y+(field.h-defaultTextSize)/2,
		strconv.Itoa(s.value), s.textColor(), 0, gui.TextNormal)

	up, down := s.arrowRects()
	for i, a := range []rect{up, down} {
		p.rect(a, faceBG)
		p.frame(a, borderCol)
		glyph := "+"
		if i == 1 {
			glyph = "-"
		}
		drawCentered(p, a, glyph, s.textColor(), 10, gui.TextNormal)
	}
}

func (s *spinControl) arrowRects() (up, down rect) {
	x := s.rect.x + s.rect.w - spinArrowW
	half := s.rect.h / 2
	up = rect{x: x, y: s.rect.y, w: spinArrowW, h: half}
	down = rect{x: x, y: s.rect.y + half, w: spinArrowW, h: s.rect.h - half}
	return up, down
}

func (s *spinControl) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down || !s.enabled {
		return
	}
	up, dn := s.arrowRects()
	switch {
	case up.contains(pos):
		s.step(1)
	case dn.contains(pos):
		s.step(-1)
	}
}

func (s *spinControl) wheel(pos gui.Point, rotation int) {
	if !s.enabled {
		return
	}
	if rotation > 0 {
		s.step(1)
	} else if rotation < 0 {
		s.step(-1)
	}
}

func (s *spinControl) step(d int) {
	nv := clamp(s.value+d, s.lo(), s.hi())
	if nv == s.value {
		return
	}
	s.value = nv
	if s.onValueChanged != nil {
		s.onValueChanged(nv)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
