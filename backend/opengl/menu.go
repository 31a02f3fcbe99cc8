package opengl

import "github.com/crossgui/gui"

const (
	menuBarH   = 26
	menuItemH  = 24
	menuSepH   = 7
	menuPadX   = 12
	menuAccGap = 24
)

// menuLevel is one open pane of a popup menu chain.
type menuLevel struct {
	spec  *gui.MenuSpec
	pos   gui.Point
	hover int
}

// openMenu is the active popup menu overlay of a window. Levels beyond the
// first are submenus opened by hovering.
type openMenu struct {
	levels    []menuLevel
	onDismiss func()
}

func menuSize(spec *gui.MenuSpec) gui.Size {
	w := 0
	h := 0
	for i := range spec.Items {
		item := &spec.Items[i]
		if item.Separator {
			h += menuSepH
			continue
		}
		h += menuItemH
		iw := textWidth(item.Label, cellTextSize)
		if item.Accelerator != "" {
			iw += menuAccGap + textWidth(item.Accelerator, cellTextSize)
		}
		if item.Sub != nil {
			iw += menuAccGap
		}
		w = max(w, iw)
	}
	return gui.Size{W: w + 2*menuPadX, H: h + 2}
}

func (m *openMenu) levelRect(i int) rect {
	s := menuSize(m.levels[i].spec)
	return rect{x: m.levels[i].pos.X, y: m.levels[i].pos.Y, w: s.W, h: s.H}
}

// itemAt returns the item index at pos within level i, or -1.
func (m *openMenu) itemAt(i int, pos gui.Point) int {
	r := m.levelRect(i)
	if !r.contains(pos) {
		return -1
	}
	y := r.y + 1
	for idx := range m.levels[i].spec.Items {
		h := menuItemH
		if m.levels[i].spec.Items[idx].Separator {
			h = menuSepH
		}
		if pos.Y < y+h {
			return idx
		}
		y += h
	}
	return -1
}

// hit returns the topmost level containing pos, or -1.
func (m *openMenu) hit(pos gui.Point) int {
	for i := len(m.levels) - 1; i >= 0; i-- {
		if m.levelRect(i).contains(pos) {
			return i
		}
	}
	return -1
}

// motion tracks hover and opens submenus under the pointer.
func (m *openMenu) motion(pos gui.Point) {
	level := m.hit(pos)
	if level < 0 {
		return
	}
	idx := m.itemAt(level, pos)
	m.levels[level].hover = idx
	// Hovering collapses any deeper panes.
	m.levels = m.levels[:level+1]
	if idx < 0 {
		return
	}
	item := &m.levels[level].spec.Items[idx]
	if item.Sub != nil && item.Enabled {
		r := m.levelRect(level)
		m.levels = append(m.levels, menuLevel{
			spec:  item.Sub,
			pos:   gui.Point{X: r.x + r.w - 2, Y: pos.Y - 4},
			hover: -1,
		})
	}
}

// click resolves a press. It reports whether the menu should close and the
// handler to run after closing.
func (m *openMenu) click(pos gui.Point) (close bool, action func()) {
	level := m.hit(pos)
	if level < 0 {
		return true, nil
	}
	idx := m.itemAt(level, pos)
	if idx < 0 {
		return false, nil
	}
	item := &m.levels[level].spec.Items[idx]
	if item.Separator || !item.Enabled || item.Sub != nil {
		return false, nil
	}
	return true, item.OnClick
}

func (m *openMenu) draw(p *painter) {
	for li := range m.levels {
		lv := &m.levels[li]
		r := m.levelRect(li)
		p.rect(r, fieldBG)
		p.frame(r, borderCol)

		y := r.y + 1
		for i := range lv.spec.Items {
			item := &lv.spec.Items[i]
			if item.Separator {
				p.rect(rect{x: r.x + 4, y: y + menuSepH/2, w: r.w - 8, h: 1}, borderCol)
				y += menuSepH
				continue
			}

			fg := textCol
			if !item.Enabled {
				fg = disabledCol
			}
			if i == lv.hover && item.Enabled {
				p.rect(rect{x: r.x + 1, y: y, w: r.w - 2, h: menuItemH}, accentCol)
				fg = fieldBG
			}
			ty := y + (menuItemH-cellTextSize)/2
			p.text(r.x+menuPadX, ty, item.Label, fg, cellTextSize, gui.TextNormal)
			if item.Accelerator != "" {
				ax := r.x + r.w - menuPadX - textWidth(item.Accelerator, cellTextSize)
				p.text(ax, ty, item.Accelerator, fg, cellTextSize, gui.TextNormal)
			}
			if item.Sub != nil {
				p.text(r.x+r.w-menuPadX-cellTextSize, ty, ">", fg, cellTextSize, gui.TextNormal)
			}
			y += menuItemH
		}
	}
}

// drawMenuBar renders the menubar strip at the top of the window.
func (w *window) drawMenuBar(p *painter) {
	bar := rect{x: 0, y: 0, w: w.width, h: menuBarH}
	p.rect(bar, faceBG)
	p.rect(rect{x: 0, y: menuBarH - 1, w: w.width, h: 1}, borderCol)

	r := w.menuBarLabelRect()
	if w.menu != nil && w.menuFromBar {
		p.rect(r, accentCol)
		drawCentered(p, r, w.menubar.Label, fieldBG, cellTextSize, gui.TextNormal)
		return
	}
	drawCentered(p, r, w.menubar.Label, textCol, cellTextSize, gui.TextNormal)
}

func (w *window) menuBarLabelRect() rect {
	return rect{x: 0, y: 0, w: textWidth(w.menubar.Label, cellTextSize) + 2*menuPadX, h: menuBarH}
}
