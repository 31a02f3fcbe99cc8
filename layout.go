package gui

// Layout is a box or grid layout description. Layouts are plain value
// builders: the geometry arithmetic happens in the backend once the layout
// is attached to a window.
type Layout interface {
	build() *LayoutSpec
}

// BoxLayout arranges its items in a single column or row. Create one with
// NewVBoxLayout or NewHBoxLayout.
type BoxLayout struct {
	kind  LayoutKind
	items []LayoutItemSpec
}

// NewVBoxLayout creates a vertical box layout.
func NewVBoxLayout() *BoxLayout {
	return &BoxLayout{kind: LayoutVBox}
}

// NewHBoxLayout creates a horizontal box layout.
func NewHBoxLayout() *BoxLayout {
	return &BoxLayout{kind: LayoutHBox}
}

// Add appends a widget. Recognized options: OptAlign (default AlignStart),
// OptBorder or OptBorderInsets, OptStretch.
func (l *BoxLayout) Add(w Widget, opts ...Option) {
	o := applyOptions(opts)
	l.items = append(l.items, LayoutItemSpec{
		Kind:    LayoutItemWidget,
		Widget:  w.nativeHandle(),
		Align:   boxAlign(o),
		Border:  itemBorder(o),
		Stretch: getOpt(o, OptStretch),
	})
}

// AddLayout appends a nested layout. It recognizes the same options as Add.
func (l *BoxLayout) AddLayout(nested Layout, opts ...Option) {
	o := applyOptions(opts)
	l.items = append(l.items, LayoutItemSpec{
		Kind:    LayoutItemNested,
		Nested:  nested.build(),
		Align:   boxAlign(o),
		Border:  itemBorder(o),
		Stretch: getOpt(o, OptStretch),
	})
}

// AddSpace appends a fixed-size spacer along the layout direction.
func (l *BoxLayout) AddSpace(space int) {
	l.items = append(l.items, LayoutItemSpec{
		Kind:   LayoutItemSpace,
		SpaceW: space,
		SpaceH: space,
	})
}

// AddStretch appends an empty stretchable cell with the given weight.
func (l *BoxLayout) AddStretch(stretch int) {
	l.items = append(l.items, LayoutItemSpec{
		Kind:    LayoutItemStretch,
		Stretch: stretch,
	})
}

func (l *BoxLayout) build() *LayoutSpec {
	return &LayoutSpec{
		Kind:  l.kind,
		Items: append([]LayoutItemSpec(nil), l.items...),
	}
}

// GridLayout arranges its items in a fixed rows-by-cols table with optional
// per-row and per-column stretch weights.
type GridLayout struct {
	rows, cols int
	vgap, hgap int
	items      []LayoutItemSpec
	rowStretch []int
	colStretch []int
}

// NewGridLayout creates a grid layout with the given dimensions and gaps
// between rows and columns.
func NewGridLayout(rows, cols, vgap, hgap int) *GridLayout {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &GridLayout{
		rows:       rows,
		cols:       cols,
		vgap:       vgap,
		hgap:       hgap,
		rowStretch: make([]int, rows),
		colStretch: make([]int, cols),
	}
}

// Add places a widget in the given cell. Recognized options: OptAlign
// (default AlignCenter), OptBorder or OptBorderInsets. Cells outside the
// grid are ignored.
func (l *GridLayout) Add(row, col int, w Widget, opts ...Option) {
	if !l.inGrid(row, col) {
		return
	}
	o := applyOptions(opts)
	l.items = append(l.items, LayoutItemSpec{
		Kind:   LayoutItemWidget,
		Widget: w.nativeHandle(),
		Align:  gridAlign(o),
		Border: itemBorder(o),
		Row:    row,
		Col:    col,
	})
}

// AddLayout places a nested layout in the given cell. It recognizes the same
// options as Add.
func (l *GridLayout) AddLayout(row, col int, nested Layout, opts ...Option) {
	if !l.inGrid(row, col) {
		return
	}
	o := applyOptions(opts)
	l.items = append(l.items, LayoutItemSpec{
		Kind:   LayoutItemNested,
		Nested: nested.build(),
		Align:  gridAlign(o),
		Border: itemBorder(o),
		Row:    row,
		Col:    col,
	})
}

// AddSpace places a fixed-size spacer in the given cell.
func (l *GridLayout) AddSpace(row, col, width, height int) {
	if !l.inGrid(row, col) {
		return
	}
	l.items = append(l.items, LayoutItemSpec{
		Kind:   LayoutItemSpace,
		SpaceW: width,
		SpaceH: height,
		Row:    row,
		Col:    col,
	})
}

// SetRowStretch sets the stretch weight of a row.
func (l *GridLayout) SetRowStretch(row, stretch int) {
	if row >= 0 && row < l.rows {
		l.rowStretch[row] = stretch
	}
}

// SetColStretch sets the stretch weight of a column.
func (l *GridLayout) SetColStretch(col, stretch int) {
	if col >= 0 && col < l.cols {
		l.colStretch[col] = stretch
	}
}

func (l *GridLayout) inGrid(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

func (l *GridLayout) build() *LayoutSpec {
	return &LayoutSpec{
		Kind:       LayoutGrid,
		Rows:       l.rows,
		Cols:       l.cols,
		VGap:       l.vgap,
		HGap:       l.hgap,
		Items:      append([]LayoutItemSpec(nil), l.items...),
		RowStretch: append([]int(nil), l.rowStretch...),
		ColStretch: append([]int(nil), l.colStretch...),
	}
}

func boxAlign(o options) Align {
	if hasOpt(o, OptAlign) {
		return getOpt(o, OptAlign)
	}
	return AlignStart
}

func gridAlign(o options) Align {
	if hasOpt(o, OptAlign) {
		return getOpt(o, OptAlign)
	}
	return AlignCenter
}

func itemBorder(o options) Insets {
	if hasOpt(o, OptBorderInsets) {
		return getOpt(o, OptBorderInsets)
	}
	return UniformInsets(getOpt(o, OptBorder))
}
