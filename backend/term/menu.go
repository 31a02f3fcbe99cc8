package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crossgui/gui"
)

var (
	menuBG       = gui.RGB(50, 50, 50)
	menuBarBG    = gui.RGB(60, 60, 60)
	menuBorderFG = gui.RGB(150, 150, 150)
)

// menuLevel is one open pane of a popup menu chain.
type menuLevel struct {
	spec  *gui.MenuSpec
	pos   gui.Point
	hover int
}

// openMenu is the active popup menu overlay of a window. Levels beyond the
// first are submenus opened by hovering or with the right arrow.
type openMenu struct {
	levels    []menuLevel
	onDismiss func()
}

// menuSize is the pane size in cells, border included.
func menuSize(spec *gui.MenuSpec) gui.Size {
	w := 0
	for i := range spec.Items {
		item := &spec.Items[i]
		if item.Separator {
			continue
		}
		iw := sw(item.Label)
		if item.Accelerator != "" {
			iw += 2 + sw(item.Accelerator)
		}
		if item.Sub != nil {
			iw += 2
		}
		w = max(w, iw)
	}
	return gui.Size{W: w + 4, H: len(spec.Items) + 2}
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
	idx := pos.Y - r.y - 1
	if idx < 0 || idx >= len(m.levels[i].spec.Items) {
		return -1
	}
	return idx
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
		m.openSub(item.Sub, gui.Point{X: r.x + r.w - 1, Y: pos.Y - 1})
	}
}

func (m *openMenu) openSub(sub *gui.MenuSpec, pos gui.Point) {
	m.levels = append(m.levels, menuLevel{spec: sub, pos: pos, hover: -1})
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

// key drives keyboard navigation on the deepest pane.
func (m *openMenu) key(msg tea.KeyMsg) (close bool, action func()) {
	lv := &m.levels[len(m.levels)-1]
	items := lv.spec.Items
	switch msg.Type {
	case tea.KeyUp:
		lv.hover = m.seek(items, lv.hover, -1)
	case tea.KeyDown:
		lv.hover = m.seek(items, lv.hover, 1)
	case tea.KeyLeft:
		if len(m.levels) > 1 {
			m.levels = m.levels[:len(m.levels)-1]
		}
	case tea.KeyRight:
		if lv.hover >= 0 && items[lv.hover].Sub != nil && items[lv.hover].Enabled {
			r := m.levelRect(len(m.levels) - 1)
			m.openSub(items[lv.hover].Sub, gui.Point{X: r.x + r.w - 1, Y: r.y + lv.hover})
		}
	case tea.KeyEnter:
		if lv.hover < 0 {
			return false, nil
		}
		item := &items[lv.hover]
		switch {
		case item.Separator || !item.Enabled:
		case item.Sub != nil:
			r := m.levelRect(len(m.levels) - 1)
			m.openSub(item.Sub, gui.Point{X: r.x + r.w - 1, Y: r.y + lv.hover})
		default:
			return true, item.OnClick
		}
	}
	return false, nil
}

// seek moves the hover index over selectable items, wrapping around.
func (m *openMenu) seek(items []gui.MenuItemSpec, from, dir int) int {
	if len(items) == 0 {
		return -1
	}
	i := from
	for range items {
		i += dir
		if i < 0 {
			i = len(items) - 1
		}
		if i >= len(items) {
			i = 0
		}
		if !items[i].Separator && items[i].Enabled {
			return i
		}
	}
	return from
}

func (m *openMenu) draw(c *canvas) {
	for li := range m.levels {
		lv := &m.levels[li]
		r := m.levelRect(li)
		base := colorAttr(textColor, menuBG)
		c.fill(r, base)
		c.box(r, "", colorAttr(menuBorderFG, menuBG))

		for i := range lv.spec.Items {
			item := &lv.spec.Items[i]
			y := r.y + 1 + i
			if item.Separator {
				for x := r.x + 1; x < r.x+r.w-1; x++ {
					c.set(x, y, '─', colorAttr(menuBorderFG, menuBG))
				}
				continue
			}

			a := base
			if !item.Enabled {
				a = colorAttr(disabledColor, menuBG)
			}
			if i == lv.hover && item.Enabled {
				a = colorAttr(textColor, accentColor)
				c.fill(rect{x: r.x + 1, y: y, w: r.w - 2, h: 1}, a)
			}
			c.setString(r.x+2, y, item.Label, a)
			if item.Accelerator != "" {
				c.setString(r.x+r.w-2-sw(item.Accelerator), y, item.Accelerator, a)
			}
			if item.Sub != nil {
				c.setString(r.x+r.w-2, y, "▸", a)
			}
		}
	}
}

// drawMenuBar renders the menubar strip on the first content row.
func (w *window) drawMenuBar(c *canvas) {
	bar := rect{x: w.contentX(), y: w.contentY(), w: w.width, h: 1}
	c.fill(bar, colorAttr(textColor, menuBarBG))

	label := " " + w.menubar.Label + " "
	a := colorAttr(textColor, menuBarBG)
	if w.menu != nil && w.menuFromBar {
		a = colorAttr(textColor, accentColor)
	}
	c.setString(bar.x, bar.y, label, a)
}

// menuBarLabelRect is in window coordinates.
func (w *window) menuBarLabelRect() rect {
	return rect{x: 0, y: 0, w: sw(w.menubar.Label) + 2, h: 1}
}
