package nk

import (
	"fmt"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/rect"

	"github.com/crossgui/gui"
)

const popupRowHeight = 22

// popup backs gui.PopupHandle: a nucular popup stacking text rows near the
// pointer, used by label-based menus.
type popup struct {
	win  *window
	rows []*text

	shown     bool
	modal     bool
	destroyed bool
	at        gui.Point
	done      chan struct{}
	ov        overlay
}

func popupTitle(p *popup) string { return fmt.Sprintf("popup-%p", p) }

func (p *popup) flags() nucular.WindowFlags {
	flags := nucular.WindowNoScrollbar
	if !p.modal {
		flags |= nucular.WindowNonmodal
	}
	return flags
}

func (p *popup) NewText(cfg gui.TextConfig) gui.TextHandle {
	t := newTextMirror(p.win, cfg)
	p.rows = append(p.rows, t)
	return t
}

// Show displays the popup at the pointer. A modal popup parks the dispatch
// goroutine until Destroy while nucular keeps input away from the windows
// underneath.
func (p *popup) Show(modal bool) {
	p.modal = modal
	p.shown = true
	p.at = p.win.drv.mousePos
	if modal {
		p.win.drv.block(p.done)
	}
}

func (p *popup) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	close(p.done)
}

// dismissed runs after the nucular popup disappeared, whether we closed it
// or the user clicked it away.
func (p *popup) dismissed() {
	if !p.destroyed {
		p.destroyed = true
		close(p.done)
	}
	w := p.win
	for i, q := range w.popups {
		if q == p {
			w.popups = append(w.popups[:i], w.popups[i+1:]...)
			return
		}
	}
}

func (p *popup) bounds() rect.Rect {
	w, h := 80, 8
	for _, row := range p.rows {
		if row.hidden {
			continue
		}
		w = max(w, row.widthHint())
		h += popupRowHeight
	}
	return rect.Rect{X: p.at.X, Y: p.at.Y, W: w + 16, H: h}
}

func (p *popup) update(nw *nucular.Window) {
	d := p.win.drv
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := d.inFrame
	d.inFrame = true
	defer func() { d.inFrame = prev }()

	p.ov.seen = true
	if p.destroyed {
		nw.Close()
		return
	}
	for _, row := range p.rows {
		if row.hidden {
			continue
		}
		nw.Row(popupRowHeight).Dynamic(1)
		row.renderCell(nw, "LC")
	}
}
