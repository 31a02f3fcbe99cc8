package gui

import (
	"sync"
	"time"
)

// MenuState is the lifecycle state of a timed menu.
type MenuState int

const (
	// MenuOpen means the menu is displayed and the pointer is inside it.
	MenuOpen MenuState = iota
	// MenuPendingClose means the pointer has left and the close timer is
	// armed.
	MenuPendingClose
	// MenuClosed means the menu has been dismissed.
	MenuClosed
)

// TimedMenu is a menu that closes by itself a short while after the pointer
// leaves it. It embeds the auto-close state machine shared by label-based
// menus: the pointer leaving arms a delay timer, the pointer re-entering
// cancels it, and expiry closes the menu. The timer fires off the UI thread
// and requests the close through the event queue, never directly.
type TimedMenu struct {
	Menu

	mu    sync.Mutex
	timer *time.Timer
	state MenuState

	// closeFn tears down the concrete menu's native state. It runs on the
	// UI thread.
	closeFn func()
	// insideFn reports whether the pointer is currently over any part of
	// the concrete menu.
	insideFn func() bool

	// OnMouseEnter and OnMouseLeave are user hooks fired when the pointer
	// enters or leaves the menu as a whole.
	OnMouseEnter func()
	OnMouseLeave func()
}

// State returns the current lifecycle state.
func (m *TimedMenu) State() MenuState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CommandClose arms the auto-close timer. It does nothing while the pointer
// is still inside the menu or while a timer is already pending.
func (m *TimedMenu) CommandClose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == MenuClosed || m.timer != nil {
		return
	}
	if m.insideFn != nil && m.insideFn() {
		return
	}
	m.state = MenuPendingClose
	m.timer = time.AfterFunc(m.app.Theme().TimedMenuDelay, func() {
		// Timer goroutine: marshal the close onto the UI thread.
		m.app.Post(m.timerExpired)
	})
}

// PreventClose cancels a pending auto-close.
func (m *TimedMenu) PreventClose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == MenuClosed {
		return
	}
	m.cancelTimerLocked()
	m.state = MenuOpen
}

// ForceClose closes the menu immediately, canceling any pending timer.
func (m *TimedMenu) ForceClose() {
	m.mu.Lock()
	m.cancelTimerLocked()
	closed := m.state == MenuClosed
	m.state = MenuClosed
	m.mu.Unlock()
	if !closed {
		m.dismiss()
	}
}

func (m *TimedMenu) timerExpired() {
	m.mu.Lock()
	m.timer = nil
	if m.state != MenuPendingClose {
		m.mu.Unlock()
		return
	}
	m.state = MenuClosed
	m.mu.Unlock()
	m.dismiss()
}

// dismiss runs on the UI thread after the state has moved to MenuClosed.
func (m *TimedMenu) dismiss() {
	if m.closeFn != nil {
		m.closeFn()
	}
	if m.OnClose != nil {
		m.OnClose()
	}
}

func (m *TimedMenu) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// pointerEnter and pointerLeave are the entry points the concrete menu wires
// its per-item hover tracking to.
func (m *TimedMenu) pointerEnter() {
	m.PreventClose()
	if m.OnMouseEnter != nil {
		m.OnMouseEnter()
	}
}

func (m *TimedMenu) pointerLeave() {
	m.CommandClose()
	if m.OnMouseLeave != nil {
		m.OnMouseLeave()
	}
}
