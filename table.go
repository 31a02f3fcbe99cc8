package gui

// TableModel supplies the content of a Table. The table stores no rows of
// its own: counts and values are re-queried on every Refresh.
type TableModel interface {
	RowCount() int
	ColCount() int
	Value(row, col int) string
}

// Optional model capabilities. A model implements the ones it needs; the
// table falls back to theme defaults for the rest.
type (
	// TableHeaderModel supplies row and column header captions.
	TableHeaderModel interface {
		RowHeader(row int) string
		ColHeader(col int) string
	}

	// TableColorModel supplies per-cell colors.
	TableColorModel interface {
		CellColor(row, col int) ColorPair
	}

	// TableHeaderColorModel supplies the header color pair.
	TableHeaderColorModel interface {
		HeaderColor() ColorPair
	}

	// TableStyleModel supplies per-cell font styles.
	TableStyleModel interface {
		CellStyle(row, col int) TextStyle
	}

	// TableAlignModel supplies per-cell content alignment.
	TableAlignModel interface {
		CellAlign(row, col int) CellAlign
	}

	// TableRendererModel selects per-cell renderers (plain text, boolean
	// check glyph, auto-wrapped text).
	TableRendererModel interface {
		CellRenderer(row, col int) CellRenderer
	}
)

// Table displays a two-dimensional grid of data pulled from a TableModel.
// Refresh re-queries the model and reloads the native grid; between
// refreshes the display does not change, however the model does.
type Table struct {
	widget
	handle TableHandle
	model  TableModel

	// colWidths holds the frozen column widths, nil while auto-sizing.
	colWidths []int

	// Click hooks. Header hits carry -1 in the header's axis.
	OnCellLeftClick          func(row, col int)
	OnCellLeftDoubleClick    func(row, col int)
	OnCellRightClick         func(row, col int)
	OnCellRightDoubleClick   func(row, col int)
	OnHeaderLeftClick        func(row, col int)
	OnHeaderLeftDoubleClick  func(row, col int)
	OnHeaderRightClick       func(row, col int)
	OnHeaderRightDoubleClick func(row, col int)

	hideRowHeaders bool
	hideColHeaders bool
}

// NewTable creates a table inside parent pulling its content from model.
// Recognized options: OptHideRowHeaders, OptHideColHeaders, OptEnabled,
// OptHidden. The table is empty until the first Refresh.
func NewTable(parent Container, model TableModel, opts ...Option) *Table {
	o := applyOptions(opts)
	t := &Table{
		widget:         newWidget(parent, o),
		model:          model,
		hideRowHeaders: getOpt(o, OptHideRowHeaders),
		hideColHeaders: getOpt(o, OptHideColHeaders),
	}
	t.handle = t.win.handle.NewTable(TableConfig{
		Enabled: t.enabled,
		Hidden:  t.hidden,
		OnClick: t.dispatchClick,
	})
	t.attach(t.handle)
	return t
}

// Refresh re-queries the model and reloads the displayed content. Frozen
// column widths are re-applied after the reload; otherwise columns are
// auto-sized.
func (t *Table) Refresh() {
	t.handle.Reload(t.snapshot())
	for col, width := range t.colWidths {
		t.handle.SetColWidth(col, width)
	}
}

// FreezeColsWidth snapshots the current column widths. Refresh applies the
// snapshot instead of auto-sizing until UnfreezeColsWidth is called.
func (t *Table) FreezeColsWidth() {
	cols := t.model.ColCount()
	t.colWidths = make([]int, cols)
	for col := range t.colWidths {
		t.colWidths[col] = t.handle.ColWidth(col)
	}
}

// SetColsWidthAs freezes this table's column widths to the current widths of
// another table.
func (t *Table) SetColsWidthAs(other *Table) {
	cols := other.model.ColCount()
	t.colWidths = make([]int, cols)
	for col := range t.colWidths {
		t.colWidths[col] = other.handle.ColWidth(col)
	}
}

// UnfreezeColsWidth restores column auto-sizing.
func (t *Table) UnfreezeColsWidth() {
	t.colWidths = nil
}

func (t *Table) dispatchClick(row, col int, button MouseButton, double bool) {
	header := row < 0 || col < 0
	var hook func(row, col int)
	switch {
	case header && button == MouseLeft && !double:
		hook = t.OnHeaderLeftClick
	case header && button == MouseLeft && double:
		hook = t.OnHeaderLeftDoubleClick
	case header && button == MouseRight && !double:
		hook = t.OnHeaderRightClick
	case header && button == MouseRight && double:
		hook = t.OnHeaderRightDoubleClick
	case button == MouseLeft && !double:
		hook = t.OnCellLeftClick
	case button == MouseLeft && double:
		hook = t.OnCellLeftDoubleClick
	case button == MouseRight && !double:
		hook = t.OnCellRightClick
	default:
		hook = t.OnCellRightDoubleClick
	}
	if hook != nil {
		hook(row, col)
	}
}

// snapshot materializes the model into the cell grid handed to the driver.
func (t *Table) snapshot() *TableSnapshot {
	theme := t.app.Theme()
	rows, cols := t.model.RowCount(), t.model.ColCount()
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	colors, _ := t.model.(TableColorModel)
	styles, _ := t.model.(TableStyleModel)
	aligns, _ := t.model.(TableAlignModel)
	renderers, _ := t.model.(TableRendererModel)

	cells := make([][]TableCell, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]TableCell, cols)
		for col := 0; col < cols; col++ {
			cell := TableCell{
				Value: t.model.Value(row, col),
				Color: theme.TableCell,
			}
			if colors != nil {
				cell.Color = colors.CellColor(row, col)
			}
			if styles != nil {
				cell.Style = styles.CellStyle(row, col)
			}
			if aligns != nil {
				cell.Align = aligns.CellAlign(row, col)
			}
			if renderers != nil {
				cell.Renderer = renderers.CellRenderer(row, col)
			}
			cells[row][col] = cell
		}
	}

	snap := &TableSnapshot{
		Rows:        rows,
		Cols:        cols,
		Cells:       cells,
		RowHeaders:  make([]string, rows),
		ColHeaders:  make([]string, cols),
		HeaderColor: theme.TableHeader,
		HideRowHdr:  t.hideRowHeaders,
		HideColHdr:  t.hideColHeaders,
	}
	if headers, ok := t.model.(TableHeaderModel); ok {
		for row := 0; row < rows; row++ {
			snap.RowHeaders[row] = headers.RowHeader(row)
		}
		for col := 0; col < cols; col++ {
			snap.ColHeaders[col] = headers.ColHeader(col)
		}
	}
	if hc, ok := t.model.(TableHeaderColorModel); ok {
		snap.HeaderColor = hc.HeaderColor()
	}
	return snap
}
