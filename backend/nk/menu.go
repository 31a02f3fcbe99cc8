package nk

import (
	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/label"

	"github.com/crossgui/gui"
)

const menuItemHeight = 24

// popupMenu is one PopUpMenu invocation, shown as a nucular contextual
// window so clicking elsewhere dismisses it natively. Submenus expand
// inline as tree nodes.
type popupMenu struct {
	win     *window
	spec    *gui.MenuSpec
	at      gui.Point
	clicked func()
	done    chan struct{}
	ov      overlay
}

func (m *popupMenu) update(nw *nucular.Window) {
	d := m.win.drv
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := d.inFrame
	d.inFrame = true
	defer func() { d.inFrame = prev }()

	m.ov.seen = true
	renderMenuItems(nw, m.spec, m)
}

// renderMenuItems emits one pane of menu entries. For contextual menus the
// clicked action is parked on m and runs after OnClose; menubar panes pass
// a nil m and fire the handler directly.
func renderMenuItems(nw *nucular.Window, spec *gui.MenuSpec, m *popupMenu) {
	for i := range spec.Items {
		it := &spec.Items[i]
		switch {
		case it.Separator:
			nw.Row(4).Dynamic(1)
			nw.Spacing(1)
		case it.Sub != nil:
			if !it.Enabled {
				nw.Row(menuItemHeight).Dynamic(1)
				nw.LabelColored(it.Label, "LC", grayColor)
				continue
			}
			if nw.TreePush(nucular.TreeNode, it.Label, false) {
				renderMenuItems(nw, it.Sub, m)
				nw.TreePop()
			}
		case !it.Enabled:
			nw.Row(menuItemHeight).Dynamic(1)
			nw.LabelColored(menuItemText(it), "LC", grayColor)
		default:
			nw.Row(menuItemHeight).Dynamic(1)
			if nw.MenuItem(label.TA(menuItemText(it), "LC")) {
				if m != nil {
					m.clicked = it.OnClick
				} else if it.OnClick != nil {
					it.OnClick()
				}
			}
		}
	}
}

func menuItemText(it *gui.MenuItemSpec) string {
	if it.Accelerator == "" {
		return it.Label
	}
	return it.Label + "   " + it.Accelerator
}

func (w *window) renderMenuBar(nw *nucular.Window) {
	spec := w.menubar
	nw.MenubarBegin()
	nw.Row(rowHeight).Static(max(textWidth(spec.Label)+textPadX, 60))
	nw.Menu(label.TA(spec.Label, "LC"), 0, func(mw *nucular.Window) {
		renderMenuItems(mw, spec, nil)
	})
	nw.MenubarEnd()
}
