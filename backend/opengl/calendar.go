package opengl

import (
	"fmt"
	"time"

	"github.com/crossgui/gui"
	"github.com/crossgui/gui/internal/locales"
)

const (
	calCellW   = 30
	calCellH   = 22
	calHeaderH = 26
	calDaysH   = 18
)

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
	return gui.Size{W: 7*calCellW + 2, H: calHeaderH + calDaysH + 6*calCellH + 2}
}

func (c *calendar) draw(p *painter) {
	p.rect(c.rect, fieldBG)
	p.frame(c.rect, borderCol)

	header := rect{x: c.rect.x, y: c.rect.y, w: c.rect.w, h: calHeaderH}
	p.rect(header, faceBG)
	title := fmt.Sprintf("%s %d", c.loc.Months[c.viewMonth-1], c.viewYear)
	drawCentered(p, header, title, c.textColor(), 12, gui.TextBold)
	prev, next := c.arrowRects()
	drawCentered(p, prev, "<", c.textColor(), 12, gui.TextBold)
	drawCentered(p, next, ">", c.textColor(), 12, gui.TextBold)

	for i, d := range c.loc.Days {
		cell := c.dayCell(-1, i)
		drawCentered(p, rect{x: cell.x, y: header.y + calHeaderH, w: calCellW, h: calDaysH},
			d, disabledCol, 10, gui.TextNormal)
	}

	first := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, time.UTC)
	offset := mondayIndex(first.Weekday())
	days := daysIn(c.viewYear, c.viewMonth)
	for day := 1; day <= days; day++ {
		slot := offset + day - 1
		cell := c.dayCell(slot/7, slot%7)
		date := time.Date(c.viewYear, c.viewMonth, day, 0, 0, 0, 0, time.UTC)

		color := c.textColor()
		if !c.inRange(date) {
			color = disabledCol
		}
		if date.Equal(c.selected) {
			p.rect(cell, accentCol)
			color = fieldBG
		}
		drawCentered(p, cell, fmt.Sprintf("%d", day), color, 11, gui.TextNormal)
	}
}

func (c *calendar) arrowRects() (prev, next rect) {
	prev = rect{x: c.rect.x, y: c.rect.y, w: calCellW, h: calHeaderH}
	next = rect{x: c.rect.x + c.rect.w - calCellW, y: c.rect.y, w: calCellW, h: calHeaderH}
	return prev, next
}

func (c *calendar) dayCell(row, col int) rect {
	return rect{
		x: c.rect.x + 1 + col*calCellW,
		y: c.rect.y + calHeaderH + calDaysH + row*calCellH,
		w: calCellW,
		h: calCellH,
	}
}

func (c *calendar) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if btn != gui.MouseLeft || !down || !c.enabled {
		return
	}
	prev, next := c.arrowRects()
	switch {
	case prev.contains(pos):
		c.shiftMonth(-1)
		return
	case next.contains(pos):
		c.shiftMonth(1)
		return
	}

	gridTop := c.rect.y + calHeaderH + calDaysH
	if pos.Y < gridTop {
		return
	}
	row := (pos.Y - gridTop) / calCellH
	col := (pos.X - c.rect.x - 1) / calCellW
	if col < 0 || col > 6 || row < 0 || row > 5 {
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
