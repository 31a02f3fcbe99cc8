package opengl

import (
	"strings"
	"time"

	"github.com/crossgui/gui"
)

const (
	cellPadX     = 8
	cellPadY     = 5
	cellTextSize = 12
	// autoWrapMax caps the width of auto-wrapped columns.
	autoWrapMax = 240

	doubleClickWindow = 400 * time.Millisecond
)

type table struct {
	widgetBase
	snap    *gui.TableSnapshot
	autoW   []int
	rowH    []int
	hdrW    int
	widths  map[int]int
	onClick func(row, col int, button gui.MouseButton, double bool)

	lastClickAt  time.Time
	lastClickRow int
	lastClickCol int
	lastClickBtn gui.MouseButton
}

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
	t.rowH = make([]int, snap.Rows)
	t.hdrW = 0

	if !snap.HideRowHdr {
		for _, h := range snap.RowHeaders {
			t.hdrW = max(t.hdrW, textWidth(h, cellTextSize)+2*cellPadX)
		}
	}
	for col := 0; col < snap.Cols; col++ {
		w := 0
		if !snap.HideColHdr && col < len(snap.ColHeaders) {
			w = textWidth(snap.ColHeaders[col], cellTextSize) + 2*cellPadX
		}
		for row := 0; row < snap.Rows; row++ {
			cw := textWidth(cellText(&snap.Cells[row][col]), cellTextSize) + 2*cellPadX
			if snap.Cells[row][col].Renderer == gui.RenderAutoWrap {
				cw = min(cw, autoWrapMax)
			}
			w = max(w, cw)
		}
		t.autoW[col] = w
	}
	for row := 0; row < snap.Rows; row++ {
		lines := 1
		for col := 0; col < snap.Cols; col++ {
			cell := &snap.Cells[row][col]
			if cell.Renderer == gui.RenderAutoWrap {
				lines = max(lines, len(wrapText(cell.Value, t.colWidth(col)-2*cellPadX)))
			}
		}
		t.rowH[row] = lines*cellTextSize + 2*cellPadY
	}
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
	return cellTextSize + 2*cellPadY
}

func (t *table) rowHdrW() int {
	if t.snap == nil || t.snap.HideRowHdr {
		return 0
	}
	return t.hdrW
}

func (t *table) minSize() gui.Size {
	if t.snap == nil {
		return gui.Size{W: 2, H: 2}
	}
	w := t.rowHdrW()
	for col := 0; col < t.snap.Cols; col++ {
		w += t.colWidth(col)
	}
	h := t.colHdrH()
	for _, rh := range t.rowH {
		h += rh
	}
	return gui.Size{W: w + 2, H: h + 2}
}

func (t *table) draw(p *painter) {
	p.rect(t.rect, fieldBG)
	p.frame(t.rect, borderCol)
	if t.snap == nil {
		return
	}
	p.pushClip(t.rect)
	defer p.popClip()

	snap := t.snap
	x0 := t.rect.x + 1 + t.rowHdrW()
	y0 := t.rect.y + 1 + t.colHdrH()

	if !snap.HideColHdr {
		x := x0
		for col := 0; col < snap.Cols; col++ {
			r := rect{x: x, y: t.rect.y + 1, w: t.colWidth(col), h: t.colHdrH()}
			p.rect(r, snap.HeaderColor.Bg)
			p.frame(r, borderCol)
			hdr := ""
			if col < len(snap.ColHeaders) {
				hdr = snap.ColHeaders[col]
			}
			drawCentered(p, r, hdr, snap.HeaderColor.Fg, cellTextSize, gui.TextBold)
			x += r.w
		}
	}
	if !snap.HideRowHdr {
		y := y0
		for row := 0; row < snap.Rows; row++ {
			r := rect{x: t.rect.x + 1, y: y, w: t.hdrW, h: t.rowH[row]}
			p.rect(r, snap.HeaderColor.Bg)
			p.frame(r, borderCol)
			hdr := ""
			if row < len(snap.RowHeaders) {
				hdr = snap.RowHeaders[row]
			}
			drawCentered(p, r, hdr, snap.HeaderColor.Fg, cellTextSize, gui.TextBold)
			y += r.h
		}
	}

	y := y0
	for row := 0; row < snap.Rows; row++ {
		x := x0
		for col := 0; col < snap.Cols; col++ {
			cell := &snap.Cells[row][col]
			r := rect{x: x, y: y, w: t.colWidth(col), h: t.rowH[row]}
			p.rect(r, cell.Color.Bg)
			p.frame(r, borderCol)
			t.drawCell(p, cell, r)
			x += r.w
		}
		y += t.rowH[row]
	}
}

func (t *table) drawCell(p *painter, cell *gui.TableCell, r rect) {
	lines := []string{cellText(cell)}
	if cell.Renderer == gui.RenderAutoWrap {
		lines = wrapText(cell.Value, r.w-2*cellPadX)
	}
	ty := r.y + (r.h-len(lines)*cellTextSize)/2
	for _, line := range lines {
		tx := r.x + cellPadX
		switch cell.Align {
		case gui.CellAlignCenter:
			tx = r.x + (r.w-textWidth(line, cellTextSize))/2
		case gui.CellAlignRight:
			tx = r.x + r.w - cellPadX - textWidth(line, cellTextSize)
		}
		p.text(tx, ty, line, cell.Color.Fg, cellTextSize, cell.Style)
		ty += cellTextSize
	}
}

func (t *table) mouseButton(btn gui.MouseButton, down bool, pos gui.Point) {
	if !down || !t.enabled || t.snap == nil || t.onClick == nil {
		return
	}
	row, col, ok := t.hit(pos)
	if !ok {
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

// hit maps a window position to table coordinates. Header hits carry -1 in
// the corresponding axis.
func (t *table) hit(pos gui.Point) (row, col int, ok bool) {
	snap := t.snap
	x := pos.X - t.rect.x - 1
	y := pos.Y - t.rect.y - 1

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
	cy := t.colHdrH()
	if y >= cy {
		for r := 0; r < snap.Rows; r++ {
			cy += t.rowH[r]
			if y < cy {
				row = r
				break
			}
		}
		if row == -1 {
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

// wrapText greedily wraps s to the given pixel width.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if textWidth(line+" "+word, cellTextSize) <= width {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}
