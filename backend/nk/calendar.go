package nk

import (
	"fmt"
	"time"

	"github.com/aarzilli/nucular"

	"github.com/crossgui/gui/internal/locales"
)

const (
	calRowHeight  = 24
	calDaysHeight = 18
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

func (c *calendar) widthHint() int { return 7 * 34 }

func (c *calendar) heightHint() int {
	return calRowHeight + calDaysHeight + 6*calRowHeight + 2*rowSpacing
}

func (c *calendar) render(nw *nucular.Window) {
	nw.Row(calRowHeight).Ratio(0.15, 0.7, 0.15)
	if c.enabled {
		if nw.ButtonText("<") {
			c.shiftMonth(-1)
		}
	} else {
		nw.LabelColored("<", "CC", grayColor)
	}
	nw.Label(fmt.Sprintf("%s %d", c.loc.Months[c.viewMonth-1], c.viewYear), "CC")
	if c.enabled {
		if nw.ButtonText(">") {
			c.shiftMonth(1)
		}
	} else {
		nw.LabelColored(">", "CC", grayColor)
	}

	nw.Row(calDaysHeight).Dynamic(7)
	for _, d := range c.loc.Days {
		nw.LabelColored(d, "CC", grayColor)
	}

	first := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, time.UTC)
	offset := mondayIndex(first.Weekday())
	days := daysIn(c.viewYear, c.viewMonth)
	for row := 0; row < 6; row++ {
		nw.Row(calRowHeight).Dynamic(7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > days {
				nw.Spacing(1)
				continue
			}
			date := time.Date(c.viewYear, c.viewMonth, day, 0, 0, 0, 0, time.UTC)
			str := fmt.Sprintf("%d", day)
			switch {
			case !c.inRange(date):
				nw.LabelColored(str, "CC", grayColor)
			case !c.enabled:
				if date.Equal(c.selected) {
					nw.LabelColored(str, "CC", accentColor)
				} else {
					nw.Label(str, "CC")
				}
			default:
				sel := date.Equal(c.selected)
				if nw.SelectableLabel(str, "CC", &sel) && !date.Equal(c.selected) {
					c.selected = date
					if c.onDateChanged != nil {
						c.onDateChanged(date)
					}
				}
			}
		}
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
