package term

import (
	"github.com/crossgui/gui"
)

// popup is a borderless box of text rows shown at the pointer. Label-based
// menus build their items out of these.
type popup struct {
	win       *window
	rows      []*text
	bounds    rect
	shown     bool
	modal     bool
	destroyed bool
}

func (p *popup) NewText(cfg gui.TextConfig) gui.TextHandle {
	t := newTextMirror(p.win, cfg)
	p.rows = append(p.rows, t)
	return t
}

// Show sizes the popup to its rows and places it at the pointer, clamped to
// the screen. A modal popup cannot block the single terminal loop; input
// exclusivity is enforced by the window's hit testing instead.
func (p *popup) Show(modal bool) {
	if p.destroyed {
		return
	}
	d := p.win.drv

	w, h := 0, 0
	for _, row := range p.rows {
		if row.hidden {
			continue
		}
		w = max(w, row.minSize().W)
		h++
	}
	p.bounds = rect{
		x: clamp(d.mouse.X, 0, max(d.width-w-2, 0)),
		y: clamp(d.mouse.Y, 0, max(d.height-h, 0)),
		w: w + 2,
		h: h,
	}

	y := p.bounds.y
	for _, row := range p.rows {
		if row.hidden {
			continue
		}
		row.rect = rect{x: p.bounds.x + 1, y: y, w: w, h: 1}
		y++
	}
	p.modal = modal
	p.shown = true
}

func (p *popup) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.shown = false
	p.win.removePopup(p)
}

// rowAt returns the text row under pos, or nil.
func (p *popup) rowAt(pos gui.Point) *text {
	if !p.bounds.contains(pos) {
		return nil
	}
	for _, row := range p.rows {
		if !row.hidden && row.rect.contains(pos) {
			return row
		}
	}
	return nil
}

func (p *popup) draw(c *canvas) {
	c.fill(p.bounds, colorAttr(textColor, menuBG))
	for _, row := range p.rows {
		if !row.hidden {
			row.draw(c)
		}
	}
}
