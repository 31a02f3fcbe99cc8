package gui

// TextTimedMenu is a timed menu rendered from plain text rows in a borderless
// popup instead of native menu entries. Hover and click behavior is wired by
// hand on every row, with distinct color pairs for the hovered and disabled
// states. Nested submenus are flattened inline, with the enabled flag ANDed
// down the tree, because text rows cannot open native submenus.
//
// A text timed menu cannot be attached as a window menubar.
type TextTimedMenu struct {
	TimedMenu

	popup PopupHandle
	rows  []*menuRow
}

type menuRow struct {
	handle TextHandle
	label  string
	inside bool
}

// NewTextTimedMenu creates an empty label-based menu owned by parent. It
// recognizes the same options as NewMenu.
func NewTextTimedMenu(parent Container, opts ...Option) *TextTimedMenu {
	o := applyOptions(opts)
	m := &TextTimedMenu{
		TimedMenu: TimedMenu{Menu: newMenuBase(parent, o)},
	}
	m.insideFn = m.pointerInside
	m.closeFn = m.destroyPopup
	return m
}

// AttachMenubar always panics: label-based menus have no native menubar
// representation.
func (m *TextTimedMenu) AttachMenubar() {
	panic(ErrMenuBarUnsupported)
}

// PopUp builds the menu and shows it at the pointer position. Unlike native
// menus it does not block; the menu closes on click or when the pointer
// stays away past the auto-close delay.
func (m *TextTimedMenu) PopUp() { m.popUp(false) }

// PopUpModal is PopUp with an input grab: all other windows are disabled
// until the menu closes.
func (m *TextTimedMenu) PopUpModal() { m.popUp(true) }

func (m *TextTimedMenu) popUp(modal bool) {
	if m.built {
		panic(ErrMenuAlreadyBuilt)
	}
	m.built = true
	m.popup = m.owner.handle.NewPopup()
	m.appendRows(m.items, true)
	m.popup.Show(modal)
}

// appendRows splices the entries into the popup, recursing into submenus
// inline.
func (m *TextTimedMenu) appendRows(items []menuEntry, enabled bool) {
	for _, it := range items {
		if it.sub != nil {
			m.appendRows(it.sub.items, enabled && it.enabled)
			continue
		}
		m.appendRow(it, enabled)
	}
}

func (m *TextTimedMenu) appendRow(it menuEntry, enabled bool) {
	theme := m.app.Theme()
	row := &menuRow{label: it.label}
	m.rows = append(m.rows, row)

	active := !it.separator && enabled && it.enabled
	cfg := TextConfig{
		Label:   it.label,
		Enabled: true,
	}
	if active {
		pair := theme.MenuNormal
		cfg.Foreground, cfg.Background = &pair.Fg, &pair.Bg
		onClick := it.onClick
		label := it.label
		click := func(Point) {
			m.ForceClose()
			switch {
			case onClick != nil:
				onClick()
			case m.OnClick != nil:
				m.OnClick(label)
			}
		}
		cfg.Mouse = MouseCallbacks{
			OnLeftDown:  click,
			OnRightDown: click,
			OnEnter: func() {
				row.inside = true
				m.setColors(row, theme.MenuHighlight)
				m.pointerEnter()
			},
			OnLeave: func() {
				row.inside = false
				m.setColors(row, theme.MenuNormal)
				if !m.pointerInside() {
					m.pointerLeave()
				}
			},
		}
	} else {
		pair := theme.MenuDisabled
		cfg.Foreground, cfg.Background = &pair.Fg, &pair.Bg
		// Disabled rows still feed the hover tracking, so the menu does
		// not close while the pointer rests on them.
		cfg.Mouse = MouseCallbacks{
			OnEnter: func() {
				row.inside = true
				m.pointerEnter()
			},
			OnLeave: func() {
				row.inside = false
				if !m.pointerInside() {
					m.pointerLeave()
				}
			},
		}
	}
	row.handle = m.popup.NewText(cfg)
}

func (m *TextTimedMenu) setColors(row *menuRow, pair ColorPair) {
	fg, bg := pair.Fg, pair.Bg
	row.handle.SetForeground(&fg)
	row.handle.SetBackground(&bg)
}

// pointerInside reports whether the pointer is over any row.
func (m *TextTimedMenu) pointerInside() bool {
	for _, row := range m.rows {
		if row.inside {
			return true
		}
	}
	return false
}

func (m *TextTimedMenu) destroyPopup() {
	if m.popup != nil {
		m.popup.Destroy()
	}
}
