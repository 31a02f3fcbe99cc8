package nk

import (
	"github.com/aarzilli/nucular"

	"github.com/crossgui/gui"
)

const (
	spaceDefault = 6
	stretchWidth = 30
)

func widgetOf(item *gui.LayoutItemSpec) anyWidget {
	wd, _ := item.Widget.(anyWidget)
	return wd
}

func itemWidth(item *gui.LayoutItemSpec) int {
	pad := item.Border.Left + item.Border.Right
	switch item.Kind {
	case gui.LayoutItemWidget:
		wd := widgetOf(item)
		if wd == nil || wd.base().hidden {
			return 1
		}
		return wd.widthHint() + pad
	case gui.LayoutItemNested:
		return layoutHint(item.Nested).W + pad
	case gui.LayoutItemSpace:
		return max(item.SpaceW, 1)
	default:
		return stretchWidth
	}
}

func itemHeight(item *gui.LayoutItemSpec) int {
	pad := item.Border.Top + item.Border.Bottom
	switch item.Kind {
	case gui.LayoutItemWidget:
		wd := widgetOf(item)
		if wd == nil || wd.base().hidden {
			return 1
		}
		return wd.heightHint() + pad
	case gui.LayoutItemNested:
		return layoutHint(item.Nested).H + pad
	case gui.LayoutItemSpace:
		return max(item.SpaceH, spaceDefault)
	default:
		return spaceDefault
	}
}

// layoutHint estimates the natural size of a layout tree for popup bounds
// and cell sizing. Immediate mode needs only a hint, not exact geometry.
func layoutHint(spec *gui.LayoutSpec) gui.Size {
	var sz gui.Size
	switch spec.Kind {
	case gui.LayoutVBox:
		for i := range spec.Items {
			sz.W = max(sz.W, itemWidth(&spec.Items[i]))
			sz.H += itemHeight(&spec.Items[i]) + spec.VGap
		}
	case gui.LayoutHBox:
		for i := range spec.Items {
			sz.W += itemWidth(&spec.Items[i]) + spec.HGap
			sz.H = max(sz.H, itemHeight(&spec.Items[i]))
		}
	case gui.LayoutGrid:
		colW, rowH := gridCellSizes(spec)
		for _, w := range colW {
			sz.W += w + spec.HGap
		}
		for _, h := range rowH {
			sz.H += h + spec.VGap
		}
	}
	return sz
}

func gridCellSizes(spec *gui.LayoutSpec) (colW, rowH []int) {
	colW = make([]int, spec.Cols)
	rowH = make([]int, spec.Rows)
	for i := range spec.Items {
		item := &spec.Items[i]
		if item.Col < spec.Cols {
			colW[item.Col] = max(colW[item.Col], itemWidth(item))
		}
		if item.Row < spec.Rows {
			rowH[item.Row] = max(rowH[item.Row], itemHeight(item))
		}
	}
	return colW, rowH
}

// renderLayout walks a layout tree, emitting nucular rows. Vertical boxes
// let each widget place its own rows; horizontal boxes and grids open one
// fixed row and wrap every cell in a group so multi-row widgets keep
// working inside it.
func (w *window) renderLayout(nw *nucular.Window, spec *gui.LayoutSpec) {
	switch spec.Kind {
	case gui.LayoutVBox:
		for i := range spec.Items {
			item := &spec.Items[i]
			switch item.Kind {
			case gui.LayoutItemWidget:
				if wd := widgetOf(item); wd != nil && !wd.base().hidden {
					wd.render(nw)
				}
			case gui.LayoutItemNested:
				w.renderLayout(nw, item.Nested)
			case gui.LayoutItemSpace:
				nw.Row(max(item.SpaceH, spaceDefault)).Dynamic(1)
				nw.Spacing(1)
			}
		}
	case gui.LayoutHBox:
		h := 0
		widths := make([]int, len(spec.Items))
		for i := range spec.Items {
			h = max(h, itemHeight(&spec.Items[i]))
			widths[i] = itemWidth(&spec.Items[i])
		}
		nw.Row(h).Static(widths...)
		for i := range spec.Items {
			w.renderCell(nw, &spec.Items[i])
		}
	case gui.LayoutGrid:
		colW, rowH := gridCellSizes(spec)
		cells := make(map[int]map[int]*gui.LayoutItemSpec)
		for i := range spec.Items {
			item := &spec.Items[i]
			if cells[item.Row] == nil {
				cells[item.Row] = make(map[int]*gui.LayoutItemSpec)
			}
			cells[item.Row][item.Col] = item
		}
		for r := 0; r < spec.Rows; r++ {
			nw.Row(max(rowH[r], 1)).Static(colW...)
			for c := 0; c < spec.Cols; c++ {
				if item := cells[r][c]; item != nil {
					w.renderCell(nw, item)
				} else {
					nw.Spacing(1)
				}
			}
		}
	}
}

// renderCell fills one slot of an already opened row.
func (w *window) renderCell(nw *nucular.Window, item *gui.LayoutItemSpec) {
	switch item.Kind {
	case gui.LayoutItemWidget:
		wd := widgetOf(item)
		if wd == nil || wd.base().hidden {
			nw.Spacing(1)
			return
		}
		gw := nw.GroupBegin(w.groupName(), nucular.WindowNoScrollbar)
		if gw == nil {
			return
		}
		wd.render(gw)
		gw.GroupEnd()
	case gui.LayoutItemNested:
		gw := nw.GroupBegin(w.groupName(), nucular.WindowNoScrollbar)
		if gw == nil {
			return
		}
		w.renderLayout(gw, item.Nested)
		gw.GroupEnd()
	default:
		nw.Spacing(1)
	}
}
