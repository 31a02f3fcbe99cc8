package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/crossgui/gui"
)

// attr is the display attribute of one cell. The zero value renders with
// the terminal default colors.
type attr struct {
	fg, bg       gui.Color
	hasFg, hasBg bool
	bold, italic bool
	reverse      bool
}

func fgAttr(c gui.Color) attr         { return attr{fg: c, hasFg: true} }
func colorAttr(fg, bg gui.Color) attr { return attr{fg: fg, bg: bg, hasFg: true, hasBg: true} }

// canvas is a screen-sized cell buffer windows draw into. A zero rune marks
// the continuation cell of a wide character.
type canvas struct {
	w, h  int
	runes [][]rune
	attrs [][]attr
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), attrs: make([][]attr, h)}
	for y := range c.runes {
		c.runes[y] = make([]rune, w)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
		c.attrs[y] = make([]attr, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, a attr) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.attrs[y][x] = a
}

// setString writes s starting at x,y, advancing by display width.
func (c *canvas) setString(x, y int, s string, a attr) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r, a)
		if w == 2 {
			c.set(x+1, y, 0, a)
		}
		x += w
	}
}

// setCentered writes s centered inside the horizontal span of r.
func (c *canvas) setCentered(r rect, s string, a attr) {
	x := r.x + (r.w-runewidth.StringWidth(s))/2
	c.setString(max(x, r.x), r.y+r.h/2, s, a)
}

func (c *canvas) fill(r rect, a attr) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			c.set(x, y, ' ', a)
		}
	}
}

// box draws a single-line border around r with an optional title.
func (c *canvas) box(r rect, title string, a attr) {
	if r.w < 2 || r.h < 2 {
		return
	}
	x1, y1 := r.x+r.w-1, r.y+r.h-1
	c.set(r.x, r.y, '┌', a)
	c.set(x1, r.y, '┐', a)
	c.set(r.x, y1, '└', a)
	c.set(x1, y1, '┘', a)
	for x := r.x + 1; x < x1; x++ {
		c.set(x, r.y, '─', a)
		c.set(x, y1, '─', a)
	}
	for y := r.y + 1; y < y1; y++ {
		c.set(r.x, y, '│', a)
		c.set(x1, y, '│', a)
	}
	if title != "" {
		t := " " + runewidth.Truncate(title, max(r.w-4, 0), "…") + " "
		c.setString(r.x+1, r.y, t, a)
	}
}

var styleCache = map[attr]lipgloss.Style{}

func styleFor(a attr) lipgloss.Style {
	if s, ok := styleCache[a]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if a.hasFg {
		s = s.Foreground(lipgloss.Color(hexColor(a.fg)))
	}
	if a.hasBg {
		s = s.Background(lipgloss.Color(hexColor(a.bg)))
	}
	if a.bold {
		s = s.Bold(true)
	}
	if a.italic {
		s = s.Italic(true)
	}
	if a.reverse {
		s = s.Reverse(true)
	}
	styleCache[a] = s
	return s
}

func hexColor(c gui.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// flush renders the buffer as styled lines, batching runs that share an
// attribute so lipgloss emits one escape sequence per run.
func (c *canvas) flush() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			a := c.attrs[y][x]
			start := x
			for x < c.w && c.attrs[y][x] == a {
				x++
			}
			run := make([]rune, 0, x-start)
			for i := start; i < x; i++ {
				if r := c.runes[y][i]; r != 0 {
					run = append(run, r)
				}
			}
			b.WriteString(styleFor(a).Render(string(run)))
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
