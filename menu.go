package gui

import "strings"

// Menu is a tree of clickable items rendered through the toolkit's native
// menu machinery. Items are appended while the menu is unbuilt; showing the
// menu (PopUp or AttachMenubar) builds it, which may happen exactly once.
// Create a new instance to show the same menu again.
type Menu struct {
	app   *App
	owner *Frame
	label string
	items []menuEntry
	built bool

	// InheritOnClick makes this menu adopt the click handler of the menu it
	// is nested in, resolved at build time. It only applies when OnClick is
	// left unset.
	InheritOnClick bool

	// OnClick is fired with the item label when an item without its own
	// handler is clicked.
	OnClick func(item string)

	// OnClose is fired when the menu is dismissed, clicked or not. Not all
	// toolkits report dismissal of menubar submenus.
	OnClose func()
}

type menuEntry struct {
	label     string
	separator bool
	sub       *Menu
	enabled   bool
	onClick   func()
}

// NewMenu creates an empty menu owned by parent. Recognized options:
// OptLabel (the title shown when the menu is nested or attached to a
// menubar), OptInheritOnClick.
func NewMenu(parent Container, opts ...Option) *Menu {
	o := applyOptions(opts)
	m := newMenuBase(parent, o)
	return &m
}

func newMenuBase(parent Container, o options) Menu {
	if parent == nil {
		panic(ErrNotInitialized)
	}
	f := parent.frame()
	if f == nil || f.app == nil {
		panic(ErrNotInitialized)
	}
	return Menu{
		app:            f.app,
		owner:          f,
		label:          getOpt(o, OptLabel),
		InheritOnClick: getOpt(o, OptInheritOnClick),
	}
}

// Label returns the menu title.
func (m *Menu) Label() string { return m.label }

// SetLabel replaces the menu title. It has no effect once the menu has been
// built.
func (m *Menu) SetLabel(label string) { m.label = label }

// Append adds an enabled item without its own click handler; clicks are
// routed to OnClick.
func (m *Menu) Append(label string) {
	m.AppendItem(label, true, nil)
}

// AppendItem adds an item with an explicit enabled flag and click handler
// (nil routes clicks to OnClick). Appending after the menu has been built has
// no effect.
func (m *Menu) AppendItem(label string, enabled bool, onClick func()) {
	if m.built {
		return
	}
	m.items = append(m.items, menuEntry{label: label, enabled: enabled, onClick: onClick})
}

// AppendSubMenu nests another menu as a submenu entry.
func (m *Menu) AppendSubMenu(sub *Menu, enabled bool) {
	if m.built {
		return
	}
	m.items = append(m.items, menuEntry{sub: sub, enabled: enabled})
}

// AppendSeparator adds a separator line.
func (m *Menu) AppendSeparator() {
	if m.built {
		return
	}
	m.items = append(m.items, menuEntry{separator: true})
}

// PopUp builds the menu and shows it at the pointer position, blocking until
// it is dismissed.
func (m *Menu) PopUp() {
	spec := m.buildSpec(nil)
	m.owner.handle.PopUpMenu(spec)
}

// AttachMenubar builds the menu and attaches it as the menubar of its owner
// window.
func (m *Menu) AttachMenubar() {
	spec := m.buildSpec(nil)
	m.owner.handle.SetMenuBar(spec)
}

// buildSpec materializes the menu tree into native entries, resolving click
// handlers and inheritance. Panics on a second build.
func (m *Menu) buildSpec(inherited func(item string)) *MenuSpec {
	if m.built {
		panic(ErrMenuAlreadyBuilt)
	}
	m.built = true
	if m.InheritOnClick && m.OnClick == nil {
		m.OnClick = inherited
	}
	spec := &MenuSpec{
		Label: stripMenuMarkers(m.label),
		OnClose: func() {
			if m.OnClose != nil {
				m.OnClose()
			}
		},
	}
	for _, it := range m.items {
		switch {
		case it.separator:
			spec.Items = append(spec.Items, MenuItemSpec{Separator: true})
		case it.sub != nil:
			label, shortcut, _ := parseMenuLabel(it.sub.label)
			spec.Items = append(spec.Items, MenuItemSpec{
				Label:    label,
				Enabled:  it.enabled,
				Sub:      it.sub.buildSpec(m.OnClick),
				Shortcut: shortcut,
			})
		default:
			label, shortcut, accel := parseMenuLabel(it.label)
			handler := it.onClick
			if handler == nil && m.OnClick != nil {
				onClick, item := m.OnClick, it.label
				handler = func() { onClick(item) }
			}
			spec.Items = append(spec.Items, MenuItemSpec{
				Label:       label,
				Enabled:     it.enabled,
				OnClick:     handler,
				Shortcut:    shortcut,
				Accelerator: accel,
			})
		}
	}
	return spec
}

// parseMenuLabel splits an item label into its display text, the Alt
// shortcut marked by a leading '&', and the accelerator text after a tab.
func parseMenuLabel(label string) (text string, shortcut rune, accel string) {
	if i := strings.IndexByte(label, '\t'); i >= 0 {
		accel = label[i+1:]
		label = label[:i]
	}
	if i := strings.IndexByte(label, '&'); i >= 0 && i+1 < len(label) {
		for _, r := range label[i+1:] {
			shortcut = r
			break
		}
		label = label[:i] + label[i+1:]
	}
	return label, shortcut, accel
}

func stripMenuMarkers(label string) string {
	text, _, _ := parseMenuLabel(label)
	return text
}
