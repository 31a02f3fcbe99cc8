package gui_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crossgui/gui"
)

// gridModel is a plain model: counts and values only.
type gridModel struct {
	rows, cols int
}

func (m *gridModel) RowCount() int { return m.rows }
func (m *gridModel) ColCount() int { return m.cols }
func (m *gridModel) Value(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// styledModel adds headers, colors and renderers on top of gridModel.
type styledModel struct {
	gridModel
}

func (m *styledModel) RowHeader(row int) string { return fmt.Sprintf("row %d", row) }
func (m *styledModel) ColHeader(col int) string { return fmt.Sprintf("col %d", col) }

func (m *styledModel) CellColor(row, col int) gui.ColorPair {
	if row == 0 {
		return gui.ColorPair{Fg: gui.RGB(255, 0, 0), Bg: gui.RGB(0, 0, 0)}
	}
	return gui.ColorPair{Fg: gui.RGB(0, 0, 0), Bg: gui.RGB(255, 255, 255)}
}

func (m *styledModel) CellStyle(row, col int) gui.TextStyle {
	if col == 0 {
		return gui.TextBold
	}
	return gui.TextNormal
}

func (m *styledModel) CellAlign(row, col int) gui.CellAlign { return gui.CellAlignRight }

func (m *styledModel) CellRenderer(row, col int) gui.CellRenderer {
	if col == 1 {
		return gui.RenderBoolean
	}
	return gui.RenderNormal
}

func TestTableRefreshPullsModel(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	model := &styledModel{gridModel{rows: 2, cols: 2}}
	table := gui.NewTable(frame, model)
	table.Refresh()

	native := d.windows[0].tables[0]
	if len(native.snaps) != 1 {
		t.Fatalf("reloads = %d, want 1", len(native.snaps))
	}

	red := gui.ColorPair{Fg: gui.RGB(255, 0, 0), Bg: gui.RGB(0, 0, 0)}
	plain := gui.ColorPair{Fg: gui.RGB(0, 0, 0), Bg: gui.RGB(255, 255, 255)}
	want := &gui.TableSnapshot{
		Rows: 2,
		Cols: 2,
		Cells: [][]gui.TableCell{
			{
				{Value: "r0c0", Color: red, Style: gui.TextBold, Align: gui.CellAlignRight},
				{Value: "r0c1", Color: red, Align: gui.CellAlignRight, Renderer: gui.RenderBoolean},
			},
			{
				{Value: "r1c0", Color: plain, Style: gui.TextBold, Align: gui.CellAlignRight},
				{Value: "r1c1", Color: plain, Align: gui.CellAlignRight, Renderer: gui.RenderBoolean},
			},
		},
		RowHeaders:  []string{"row 0", "row 1"},
		ColHeaders:  []string{"col 0", "col 1"},
		HeaderColor: app.Theme().TableHeader,
	}
	if diff := cmp.Diff(want, native.snaps[0]); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	// Growing the model shows up on the next refresh without any other call.
	model.rows = 3
	table.Refresh()
	if got := native.snaps[1].Rows; got != 3 {
		t.Errorf("rows = %d after model growth, want 3", got)
	}
}

func TestTableDefaultsWithoutCapabilities(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	table := gui.NewTable(frame, &gridModel{rows: 1, cols: 1},
		gui.WithOpt(gui.OptHideRowHeaders, true))
	table.Refresh()

	snap := d.windows[0].tables[0].snaps[0]
	cell := snap.Cells[0][0]
	if cell.Color != app.Theme().TableCell {
		t.Errorf("cell color = %v, want theme default", cell.Color)
	}
	if cell.Style != gui.TextNormal || cell.Align != gui.CellAlignLeft || cell.Renderer != gui.RenderNormal {
		t.Errorf("cell = %+v, want plain defaults", cell)
	}
	if snap.RowHeaders[0] != "" || snap.ColHeaders[0] != "" {
		t.Errorf("headers = %v/%v, want empty", snap.RowHeaders, snap.ColHeaders)
	}
	if !snap.HideRowHdr || snap.HideColHdr {
		t.Errorf("hide flags = %v/%v, want true/false", snap.HideRowHdr, snap.HideColHdr)
	}
}

func TestTableFreezeColsWidth(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	table := gui.NewTable(frame, &gridModel{rows: 1, cols: 2})
	native := d.windows[0].tables[0]

	// The mock reports width 80+col while unfrozen.
	table.FreezeColsWidth()
	table.Refresh()
	if native.widths[0] != 80 || native.widths[1] != 81 {
		t.Errorf("widths = %v, want frozen 80/81", native.widths)
	}

	table.UnfreezeColsWidth()
	native.widths = map[int]int{}
	table.Refresh()
	if len(native.widths) != 0 {
		t.Errorf("widths = %v, want none applied after unfreeze", native.widths)
	}
}

func TestTableSetColsWidthAs(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	first := gui.NewTable(frame, &gridModel{rows: 1, cols: 2})
	second := gui.NewTable(frame, &gridModel{rows: 1, cols: 2})

	firstNative := d.windows[0].tables[0]
	firstNative.SetColWidth(0, 120)
	firstNative.SetColWidth(1, 44)

	second.SetColsWidthAs(first)
	second.Refresh()

	secondNative := d.windows[0].tables[1]
	if secondNative.widths[0] != 120 || secondNative.widths[1] != 44 {
		t.Errorf("widths = %v, want copied 120/44", secondNative.widths)
	}
}

func TestTableClickRouting(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	table := gui.NewTable(frame, &gridModel{rows: 2, cols: 2})
	native := d.windows[0].tables[0]

	type hit struct {
		name     string
		row, col int
	}
	var hits []hit
	record := func(name string) func(int, int) {
		return func(row, col int) { hits = append(hits, hit{name, row, col}) }
	}
	table.OnCellLeftClick = record("cell-left")
	table.OnCellLeftDoubleClick = record("cell-left-double")
	table.OnCellRightClick = record("cell-right")
	table.OnCellRightDoubleClick = record("cell-right-double")
	table.OnHeaderLeftClick = record("header-left")
	table.OnHeaderRightDoubleClick = record("header-right-double")

	native.click(1, 0, gui.MouseLeft, false)
	native.click(1, 0, gui.MouseLeft, true)
	native.click(0, 1, gui.MouseRight, false)
	native.click(0, 1, gui.MouseRight, true)
	native.click(-1, 1, gui.MouseLeft, false) // column header
	native.click(0, -1, gui.MouseRight, true) // row header

	want := []hit{
		{"cell-left", 1, 0},
		{"cell-left-double", 1, 0},
		{"cell-right", 0, 1},
		{"cell-right-double", 0, 1},
		{"header-left", -1, 1},
		{"header-right-double", 0, -1},
	}
	if diff := cmp.Diff(want, hits, cmp.AllowUnexported(hit{})); diff != "" {
		t.Errorf("click routing mismatch (-want +got):\n%s", diff)
	}
}
