package term

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

const calDayW = 3

type calendar struct {
	widgetBase
	lower, upper       time.Time
	hasLower, hasUpper bool
	selected           time.Time
	viewYear           int
	viewMonth          time.Month
	loc                *locales.Table
	onDateChanged      func(time.Time)
}

func (c *calendar) wantsFocus() bool { return c.enabled }

func (c *calendar) SetDateRange(lower, upper time.Time, hasLower, hasUpper bool) {
	c.lower, c.upper = dateOnly(lower), dateOnly(upper)
	c.hasLower, c.hasUpper = hasLower, hasUpper
}

func (c *calendar) SetSelectedDate(date time.Time) {
	c.selected = dateOnly(date)
	c.viewYear, c.viewMonth = c.selected.Year(), c.selected.Month()
}

func (c *calendar) SetLanguage(languageCode string) {
	c.loc = locales.Lookup(languageCode)
}

func (c *calendar) inRange(d time.Time) bool {
	if c.hasLower && d.Before(c.lower) {
		return false
	}
	if c.hasUpper && d.After(c.upper) {
		return false
	}
	return true
}

func (c *calendar) minSize() gui.Size {
	return gui.Size{W: 7 * calDayW, H: 8}
}

func (c *calendar) draw(cv *canvas) {
	a := fgAttr(c.fg())
	head := a
	head.bold = true

	title := fmt.Sprintf("%s %d", c.loc.Months[c.viewMonth-1], c.viewYear)
	cv.setString(c.rect.x, c.rect.y, "<", head)
	cv.setCentered(rect{x: c.rect.x, y: c.rect.y, w: c.rect.w, h: 1}, title, head)
	cv.setString(c.rect.x+c.rect.w-1, c.rect.y, ">", head)

	for i, d := range c.loc.Days {
		cv.setString(c.rect.x+i*calDayW, c.rect.y+1, d, fgAttr(disabledColor))
	}

	first := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, time.UTC)
	offset := mondayIndex(first.Weekday())
	days := daysIn(c.viewYear, c.viewMonth)
	for day := 1; day <= days; day++ {
		slot := offset + day - 1
		x := c.rect.x + (slot%7)*calDayW
		y := c.rect.y + 2 + slot/7
		date := time.Date(c.viewYear, c.viewMonth, day, 0, 0, 0, 0, time.UTC)

		da := a
		if !c.inRange(date) {
			da = fgAttr(disabledColor)
		}
		if date.Equal(c.selected) {
			da.bg, da.hasBg = accentColor, true
			if c.focused() {
				da.bold = true
			}
		}
		cv.setString(x, y, fmt.Sprintf("%2d", day), da)
	}
}

func (c *calendar) moveSelection(days int) {
	date := c.selected.AddDate(0, 0, days)
	if !c.inRange(date) {
		return
	}
	c.selected = date
	c.viewYear, c.viewMonth = date.Year(), date.Month()
	if c.onDateChanged != nil {
		c.onDateChanged(date)
	}
}

func (c *calendar) key(msg tea.KeyMsg) bool {
	if !c.enabled {
		return false
	}
	switch msg.Type {
	case tea.KeyLeft:
		c.moveSelection(-1)
		return true
	case tea.KeyRight:
		c.moveSelection(1)
		return true
	case tea.KeyUp:
		c.moveSelection(-7)
		return true
	case tea.KeyDown:
		c.moveSelection(7)
		return true
	case tea.KeyPgUp:
		c.shiftMonth(-1)
		return true
	case tea.KeyPgDown:
		c.shiftMonth(1)
		return true
	}
	return false
}

func (c *calendar) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down || !c.enabled {
		return
	}
	if pos.Y == c.rect.y {
		switch {
		case pos.X == c.rect.x:
			c.shiftMonth(-1)
		case pos.X == c.rect.x+c.rect.w-1:
			c.shiftMonth(1)
		}
		return
	}
	row := pos.Y - c.rect.y - 2
	col := (pos.X - c.rect.x) / calDayW
	if row < 0 || row > 5 || col < 0 || col > 6 {
		return
	}

	first := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, time.UTC)
	day := row*7 + col - mondayIndex(first.Weekday()) + 1
	if day < 1 || day > daysIn(c.viewYear, c.viewMonth) {
		return
	}
	date := time.Date(c.viewYear, c.viewMonth, day, 0, 0, 0, 0, time.UTC)
	if !c.inRange(date) || date.Equal(c.selected) {
		return
	}
	c.selected = date
	if c.onDateChanged != nil {
		c.onDateChanged(date)
	}
}

func (c *calendar) shiftMonth(d int) {
	t := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, d, 0)
	c.viewYear, c.viewMonth = t.Year(), t.Month()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mondayIndex(d time.Weekday) int {
	// time.Weekday is Sunday-based.
	return (int(d) + 6) % 7
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
