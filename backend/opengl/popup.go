package opengl

import "github.com/crossgui/gui"

// popup is a borderless overlay panel owned by a window. Label-based menus
// stack their item rows inside it.
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

// Show sizes the popup to its rows, places it at the pointer clamped to the
// window, and displays it. Modal popups pump a nested loop until destroyed.
func (p *popup) Show(modal bool) {
	w, h := 0, 0
	for _, row := range p.rows {
		m := row.minSize()
		w = max(w, m.W)
		h += m.H
	}
	w += 2
	h += 2

	x := clamp(p.win.mouse.X, 0, max(p.win.width-w, 0))
	y := clamp(p.win.mouse.Y, 0, max(p.win.height-h, 0))
	p.bounds = rect{x: x, y: y, w: w, h: h}

	ry := y + 1
	for _, row := range p.rows {
		m := row.minSize()
		row.rect = rect{x: x + 1, y: ry, w: w - 2, h: m.H}
		ry += m.H
	}

	p.shown = true
	p.modal = modal
	if !modal {
		return
	}
	for !p.destroyed && !p.win.destroyed && !p.win.drv.quit {
		if !p.win.drv.pump() {
			break
		}
	}
}

func (p *popup) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.shown = false
	p.win.removePopup(p)
}

func (p *popup) draw(pt *painter) {
	pt.rect(p.bounds, fieldBG)
	pt.frame(p.bounds, borderCol)
	for _, row := range p.rows {
		if !row.hidden {
			row.draw(pt)
		}
	}
}

// rowAt returns the row under pos, or nil.
func (p *popup) rowAt(pos gui.Point) *text {
	for _, row := range p.rows {
		if !row.hidden && row.rect.contains(pos) {
			return row
		}
	}
	return nil
}
