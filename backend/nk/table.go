package nk

import (
	"strings"
	"time"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/label"
	"golang.org/x/mobile/event/mouse"

	"github.com/crossgui/gui"
)

const (
	tableRowHeight    = 24
	doubleClickWindow = 400 * time.Millisecond
)

type table struct {
	widgetBase
	snap    *gui.TableSnapshot
	autoW   []int
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

func cellAlign(a gui.CellAlign) label.Align {
	switch a {
	case gui.CellAlignCenter:
		return "CC"
	case gui.CellAlignRight:
		return "RC"
	default:
		return "LC"
	}
}

func (t *table) Reload(snap *gui.TableSnapshot) {
	t.snap = snap
	t.autoW = make([]int, snap.Cols)
	t.hdrW = 0

	if !snap.HideRowHdr {
		for _, h := range snap.RowHeaders {
			t.hdrW = max(t.hdrW, textWidth(h))
		}
	}
	for col := 0; col < snap.Cols; col++ {
		w := 0
		if !snap.HideColHdr && col < len(snap.ColHeaders) {
			w = textWidth(snap.ColHeaders[col])
		}
		for row := 0; row < snap.Rows; row++ {
			w = max(w, textWidth(cellText(&snap.Cells[row][col])))
		}
		t.autoW[col] = w
	}
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
}

func (t *table) rowHdrW() int {
	if t.snap == nil || t.snap.HideRowHdr {
		return 0
	}
	return t.hdrW
}

func (t *table) widthHint() int {
	if t.snap == nil {
		return 40
	}
	w := t.rowHdrW()
	for col := 0; col < t.snap.Cols; col++ {
		w += t.colWidth(col)
	}
	return w
}

func (t *table) heightHint() int {
	if t.snap == nil {
		return tableRowHeight
	}
	rows := t.snap.Rows
	if !t.snap.HideColHdr {
		rows++
	}
	return rows*(tableRowHeight+rowSpacing) + rowSpacing
}

func (t *table) render(nw *nucular.Window) {
	if t.snap == nil {
		return
	}
	snap := t.snap

	widths := make([]int, 0, snap.Cols+1)
	if !snap.HideRowHdr {
		widths = append(widths, t.hdrW)
	}
	for col := 0; col < snap.Cols; col++ {
		widths = append(widths, t.colWidth(col))
	}

	if !snap.HideColHdr {
		nw.Row(tableRowHeight).Static(widths...)
		if !snap.HideRowHdr {
			nw.Spacing(1)
		}
		for col := 0; col < snap.Cols; col++ {
			hdr := ""
			if col < len(snap.ColHeaders) {
				hdr = snap.ColHeaders[col]
			}
			t.renderCell(nw, hdr, "CC", snap.HeaderColor, -1, col)
		}
	}

	for row := 0; row < snap.Rows; row++ {
		nw.Row(tableRowHeight).Static(widths...)
		if !snap.HideRowHdr {
			hdr := ""
			if row < len(snap.RowHeaders) {
				hdr = snap.RowHeaders[row]
			}
			t.renderCell(nw, hdr, "CC", snap.HeaderColor, row, -1)
		}
		for col := 0; col < snap.Cols; col++ {
			cell := &snap.Cells[row][col]
			t.renderCell(nw, cellText(cell), cellAlign(cell.Align), cell.Color, row, col)
		}
	}
}

func (t *table) renderCell(nw *nucular.Window, str string, align label.Align, colors gui.ColorPair, row, col int) {
	bounds := nw.WidgetBounds()
	nw.Commands().FillRect(bounds, 0, toRGBA(colors.Bg))
	if t.enabled && t.onClick != nil {
		in := nw.Input()
		if in.Mouse.Clicked(mouse.ButtonLeft, bounds) {
			t.click(row, col, gui.MouseLeft)
		}
		if in.Mouse.Clicked(mouse.ButtonRight, bounds) {
			t.click(row, col, gui.MouseRight)
		}
	}
	fg := toRGBA(colors.Fg)
	if !t.enabled {
		fg = grayColor
	}
	nw.LabelColored(str, align, fg)
}

func (t *table) click(row, col int, btn gui.MouseButton) {
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
