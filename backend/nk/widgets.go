package nk

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/label"
	nkrect "github.com/aarzilli/nucular/rect"
	"golang.org/x/mobile/event/mouse"

	"github.com/crossgui/gui"
)

var (
	grayColor   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	accentColor = color.RGBA{R: 0, G: 120, B: 215, A: 255}
)

const (
	rowHeight  = 26
	charWidth  = 8
	textPadX   = 16
	rowSpacing = 4
)

func toRGBA(c gui.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func textWidth(s string) int {
	return len([]rune(s))*charWidth + textPadX
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

// anyWidget is what the layout renderer drives. render emits the widget's
// own rows into the current window, so a mirror may span several rows.
type anyWidget interface {
	gui.ControlHandle
	base() *widgetBase
	// widthHint and heightHint size the widget's cell in horizontal and
	// grid layouts.
	widthHint() int
	heightHint() int
	render(nw *nucular.Window)
}

type widgetBase struct {
	win     *window
	enabled bool
	hidden  bool
	inside  bool
}

func (b *widgetBase) base() *widgetBase       { return b }
func (b *widgetBase) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *widgetBase) SetHidden(hidden bool)   { b.hidden = hidden }

// routeMouse translates nucular's polled input over bounds into the
// callback events of the abstract mouse contract. nucular reports one
// click per press/release pair, so a press inside bounds fires the down
// and up hooks back to back.
func (b *widgetBase) routeMouse(nw *nucular.Window, bounds nkrect.Rect, cb *gui.MouseCallbacks) {
	in := nw.Input()
	if in == nil {
		return
	}
	hov := in.Mouse.HoveringRect(bounds)
	if hov != b.inside {
		b.inside = hov
		if hov {
			if cb.OnEnter != nil {
				cb.OnEnter()
			}
		} else if cb.OnLeave != nil {
			cb.OnLeave()
		}
	}
	if !hov {
		return
	}
	pos := gui.Point{X: in.Mouse.Pos.X - bounds.X, Y: in.Mouse.Pos.Y - bounds.Y}
	if cb.OnMotion != nil && (in.Mouse.Delta != image.Point{}) {
		cb.OnMotion(pos)
	}
	if in.Mouse.IsClickDownInRect(mouse.ButtonLeft, bounds, true) && cb.OnLeftDown != nil {
		cb.OnLeftDown(pos)
	}
	if in.Mouse.IsClickDownInRect(mouse.ButtonLeft, bounds, false) && cb.OnLeftUp != nil {
		cb.OnLeftUp(pos)
	}
	if in.Mouse.IsClickDownInRect(mouse.ButtonRight, bounds, true) && cb.OnRightDown != nil {
		cb.OnRightDown(pos)
	}
	if in.Mouse.IsClickDownInRect(mouse.ButtonRight, bounds, false) && cb.OnRightUp != nil {
		cb.OnRightUp(pos)
	}
	if in.Mouse.ScrollDelta != 0 && cb.OnWheel != nil {
		cb.OnWheel(pos, int(in.Mouse.ScrollDelta))
	}
}

type button struct {
	widgetBase
	label   string
	onClick func()
}

func (b *button) SetLabel(label string) { b.label = label }

func (b *button) widthHint() int  { return textWidth(b.label) + textPadX }
func (b *button) heightHint() int { return rowHeight + rowSpacing }

func (b *button) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	if !b.enabled {
		nw.LabelColored(b.label, "CC", grayColor)
		return
	}
	if nw.ButtonText(b.label) && b.onClick != nil {
		b.onClick()
	}
}

type checkBox struct {
	widgetBase
	label   string
	value   bool
	onClick func(bool)
}

func (c *checkBox) SetLabel(label string) { c.label = label }
func (c *checkBox) SetValue(value bool)   { c.value = value }
func (c *checkBox) Value() bool           { return c.value }

func (c *checkBox) widthHint() int  { return textWidth(c.label) + rowHeight }
func (c *checkBox) heightHint() int { return rowHeight + rowSpacing }

func (c *checkBox) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	if !c.enabled {
		nw.LabelColored(c.label, "LC", grayColor)
		return
	}
	v := c.value
	if nw.CheckboxText(c.label, &v) {
		c.value = v
		if c.onClick != nil {
			c.onClick(v)
		}
	}
}

type radioBox struct {
	widgetBase
	label    string
	choices  []string
	sel      int
	onSelect func(int)
}

func (r *radioBox) SetSelection(index int) { r.sel = index }

func (r *radioBox) SetChoice(index int, label string) {
	if index >= 0 && index < len(r.choices) {
		r.choices[index] = label
	}
}

func (r *radioBox) widthHint() int {
	w := textWidth(r.label)
	for _, c := range r.choices {
		w = max(w, textWidth(c)+rowHeight)
	}
	return w
}

func (r *radioBox) heightHint() int {
	return (len(r.choices) + 1) * (rowHeight + rowSpacing)
}

func (r *radioBox) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	nw.Label(r.label, "LC")
	for i, c := range r.choices {
		nw.Row(rowHeight).Dynamic(1)
		if !r.enabled {
			nw.LabelColored(c, "LC", grayColor)
			continue
		}
		if nw.OptionText(c, i == r.sel) && i != r.sel {
			r.sel = i
			if r.onSelect != nil {
				r.onSelect(i)
			}
		}
	}
}

type bitmap struct {
	widgetBase
	img   *image.RGBA
	w, h  int
	mouse gui.MouseCallbacks
}

func (b *bitmap) SetImage(img image.Image) {
	if img == nil {
		b.img, b.w, b.h = nil, 0, 0
		return
	}
	bounds := img.Bounds()
	b.w, b.h = bounds.Dx(), bounds.Dy()
	if rgba, ok := img.(*image.RGBA); ok {
		b.img = rgba
		return
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	b.img = rgba
}

func (b *bitmap) widthHint() int  { return b.w }
func (b *bitmap) heightHint() int { return b.h + rowSpacing }

func (b *bitmap) render(nw *nucular.Window) {
	if b.img == nil {
		return
	}
	nw.Row(b.h).Static(b.w)
	bounds := nw.WidgetBounds()
	b.routeMouse(nw, bounds, &b.mouse)
	nw.Image(b.img)
}

// text is the static label mirror; popup rows reuse it.
type text struct {
	widgetBase
	label string
	style gui.TextStyle
	size  int
	fg    *gui.Color
	bg    *gui.Color
	mouse gui.MouseCallbacks
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

func (t *text) SetLabel(label string)            { t.label = label }
func (t *text) SetTextStyle(style gui.TextStyle) { t.style = style }
func (t *text) SetTextSize(size int)             { t.size = size }
func (t *text) SetForeground(c *gui.Color)       { t.fg = c }
func (t *text) SetBackground(c *gui.Color)       { t.bg = c }

func (t *text) widthHint() int  { return textWidth(t.label) }
func (t *text) heightHint() int { return rowHeight + rowSpacing }

func (t *text) foreground() color.RGBA {
	if !t.enabled {
		return grayColor
	}
	if t.fg != nil {
		return toRGBA(*t.fg)
	}
	return color.RGBA{R: 205, G: 205, B: 205, A: 255}
}

func (t *text) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	t.renderCell(nw, "LC")
}

// renderCell emits the label into the already opened row slot.
func (t *text) renderCell(nw *nucular.Window, align label.Align) {
	bounds := nw.WidgetBounds()
	if t.bg != nil {
		nw.Commands().FillRect(bounds, 0, toRGBA(*t.bg))
	}
	t.routeMouse(nw, bounds, &t.mouse)
	nw.LabelColored(t.label, align, t.foreground())
}

type textControl struct {
	text
	ed       nucular.TextEditor
	onChange func(string)
}

func (t *textControl) SetLabel(label string) {
	t.label = label
	t.ed.Buffer = []rune(label)
	t.ed.Cursor = clamp(t.ed.Cursor, 0, len(t.ed.Buffer))
}

func (t *textControl) Text() string { return string(t.ed.Buffer) }

func (t *textControl) widthHint() int { return max(textWidth(t.label), 120) }

func (t *textControl) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	if !t.enabled {
		nw.LabelColored(string(t.ed.Buffer), "LC", grayColor)
		return
	}
	before := string(t.ed.Buffer)
	t.ed.Edit(nw)
	if now := string(t.ed.Buffer); now != before {
		t.label = now
		if t.onChange != nil {
			t.onChange(now)
		}
	}
}

type spinControl struct {
	widgetBase
	min, max       int
	hasMin, hasMax bool
	value          int
	onValueChanged func(int)
}

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

func (s *spinControl) widthHint() int  { return 110 }
func (s *spinControl) heightHint() int { return rowHeight + rowSpacing }

func (s *spinControl) render(nw *nucular.Window) {
	nw.Row(rowHeight).Dynamic(1)
	if !s.enabled {
		nw.LabelColored("", "LC", grayColor)
		return
	}
	v := s.value
	nw.PropertyInt("", s.lo(), &v, s.hi(), 1, 1)
	if v != s.value {
		s.value = v
		if s.onValueChanged != nil {
			s.onValueChanged(v)
		}
	}
}
