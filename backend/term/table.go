package term

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/crossgui/gui"
)

const doubleClickWindow = 400 * time.Millisecond

type table struct {
	widgetBase
	snap    *gui.TableSnapshot
	autoW   []int
	hdrW    int
	widths  map[int]int
	onClick func(row, col int, button gui.MouseButton, double bool)

	// Keyboard cursor, used when the table has focus.
	curRow, curCol int

	lastClickAt  time.Time
	lastClickRow int
	lastClickCol int
	lastClickBtn gui.MouseButton
}

func (t *table) wantsFocus() bool { return t.enabled && t.snap != nil }

// cellText is the rendered form of a cell value.
func cellText(cell *gui.TableCell) string {
	if cell.Renderer == gui.RenderBoolean {
		if cell.Value == "1" || strings.EqualFold(cell.Value, "true") {
			return "[x]"
		}
		return "[ ]"
	}
	return cell.Value
}

func (t *table) Reload(snap *gui.TableSnapshot) {
	t.snap = snap
	t.autoW = make([]int, snap.Cols)
	t.hdrW = 0

	if !snap.HideRowHdr {
		for _, h := range snap.RowHeaders {
			t.hdrW = max(t.hdrW, sw(h)+2)
		}
	}
	for col := 0; col < snap.Cols; col++ {
		w := 0
		if !snap.HideColHdr && col < len(snap.ColHeaders) {
			w = sw(snap.ColHeaders[col]) + 2
		}
		for row := 0; row < snap.Rows; row++ {
			w = max(w, sw(cellText(&snap.Cells[row][col]))+2)
		}
		t.autoW[col] = w
	}
	t.curRow = clamp(t.curRow, 0, max(snap.Rows-1, 0))
	t.curCol = clamp(t.curCol, 0, max(snap.Cols-1, 0))
	t.win.needLayout = true
}

func (t *table) colWidth(col int) int {
	if w, ok := t.widths[col]; ok {
		return w
	}
	if col >= 0 && col < len(t.autoW) {
		return t.autoW[col]
	}
	return 0
}

func (t *table) ColWidth(col int) int { return t.colWidth(col) }

func (t *table) SetColWidth(col, width int) {
	if t.widths == nil {
		t.widths = map[int]int{}
	}
	t.widths[col] = width
	t.win.needLayout = true
}

func (t *table) colHdrH() int {
	if t.snap == nil || t.snap.HideColHdr {
		return 0
	}
	return 1
}

func (t *table) rowHdrW() int {
	if t.snap == nil || t.snap.HideRowHdr {
		return 0
	}
	return t.hdrW
}

func (t *table) minSize() gui.Size {
	if t.snap == nil {
		return gui.Size{W: 1, H: 1}
	}
	w := t.rowHdrW()
	for col := 0; col < t.snap.Cols; col++ {
		w += t.colWidth(col)
	}
	return gui.Size{W: w, H: t.snap.Rows + t.colHdrH()}
}

func (t *table) draw(c *canvas) {
	if t.snap == nil {
		return
	}
	snap := t.snap
	hdr := colorAttr(snap.HeaderColor.Fg, snap.HeaderColor.Bg)
	hdr.bold = true
	x0 := t.rect.x + t.rowHdrW()
	y0 := t.rect.y + t.colHdrH()

	if !snap.HideColHdr {
		x := x0
		for col := 0; col < snap.Cols; col++ {
			s := ""
			if col < len(snap.ColHeaders) {
				s = snap.ColHeaders[col]
			}
			t.drawCell(c, rect{x: x, y: t.rect.y, w: t.colWidth(col), h: 1}, s,
				gui.CellAlignCenter, hdr)
			x += t.colWidth(col)
		}
	}
	if !snap.HideRowHdr {
		for row := 0; row < snap.Rows; row++ {
			s := ""
			if row < len(snap.RowHeaders) {
				s = snap.RowHeaders[row]
			}
			t.drawCell(c, rect{x: t.rect.x, y: y0 + row, w: t.hdrW, h: 1}, s,
				gui.CellAlignCenter, hdr)
		}
	}

	for row := 0; row < snap.Rows; row++ {
		x := x0
		for col := 0; col < snap.Cols; col++ {
			cell := &snap.Cells[row][col]
			a := colorAttr(cell.Color.Fg, cell.Color.Bg)
			a.bold = cell.Style == gui.TextBold || cell.Style == gui.TextBoldItalic
			a.italic = cell.Style == gui.TextItalic || cell.Style == gui.TextBoldItalic
			if t.focused() && row == t.curRow && col == t.curCol {
				a.reverse = true
			}
			t.drawCell(c, rect{x: x, y: y0 + row, w: t.colWidth(col), h: 1},
				cellText(cell), cell.Align, a)
			x += t.colWidth(col)
		}
	}
}

func (t *table) drawCell(c *canvas, r rect, s string, align gui.CellAlign, a attr) {
	c.fill(r, a)
	s = runewidth.Truncate(s, max(r.w-1, 0), "…")
	x := r.x + 1
	switch align {
	case gui.CellAlignCenter:
		x = r.x + max((r.w-sw(s))/2, 0)
	case gui.CellAlignRight:
		x = r.x + max(r.w-sw(s)-1, 0)
	}
	c.setString(x, r.y, s, a)
}

func (t *table) fire(row, col int, btn gui.MouseButton) {
	if t.onClick == nil {
		return
	}
	now := time.Now()
	double := btn == t.lastClickBtn && row == t.lastClickRow && col == t.lastClickCol &&
		now.Sub(t.lastClickAt) <= doubleClickWindow
	t.lastClickAt = now
	t.lastClickRow, t.lastClickCol = row, col
	t.lastClickBtn = btn
	if double {
		// A triple click starts a fresh sequence.
		t.lastClickAt = time.Time{}
	}
	t.onClick(row, col, btn, double)
}

func (t *table) key(msg tea.KeyMsg) bool {
	if t.snap == nil || t.snap.Rows == 0 || t.snap.Cols == 0 {
		return false
	}
	switch msg.Type {
	case tea.KeyUp:
		t.curRow = max(t.curRow-1, 0)
		return true
	case tea.KeyDown:
		t.curRow = min(t.curRow+1, t.snap.Rows-1)
		return true
	case tea.KeyLeft:
		t.curCol = max(t.curCol-1, 0)
		return true
	case tea.KeyRight:
		t.curCol = min(t.curCol+1, t.snap.Cols-1)
		return true
	case tea.KeyEnter:
		t.fire(t.curRow, t.curCol, gui.MouseLeft)
		return true
	}
	return false
}

func (t *table) click(btn gui.MouseButton, down bool, pos gui.Point) {
	if !down || !t.enabled || t.snap == nil {
		return
	}
	row, col, ok := t.hit(pos)
	if !ok {
		return
	}
	if row >= 0 && col >= 0 {
		t.curRow, t.curCol = row, col
	}
	t.fire(row, col, btn)
}

// hit maps a window position to table coordinates. Header hits carry -1 in
// the corresponding axis.
func (t *table) hit(pos gui.Point) (row, col int, ok bool) {
	snap := t.snap
	x := pos.X - t.rect.x
	y := pos.Y - t.rect.y

	col = -1
	cx := t.rowHdrW()
	if x >= cx {
		for c := 0; c < snap.Cols; c++ {
			cx += t.colWidth(c)
			if x < cx {
				col = c
				break
			}
		}
		if col == -1 {
			return 0, 0, false
		}
	} else if snap.HideRowHdr {
		return 0, 0, false
	}

	row = -1
	if y >= t.colHdrH() {
		row = y - t.colHdrH()
		if row >= snap.Rows {
			return 0, 0, false
		}
	} else if snap.HideColHdr {
		return 0, 0, false
	}

	if row == -1 && col == -1 {
		return 0, 0, false
	}
	return row, col, true
}
