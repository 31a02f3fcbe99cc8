package opengl

import "github.com/crossgui/gui"

type rect struct {
	x, y, w, h int
}

func (r rect) contains(p gui.Point) bool {
	return p.X >= r.x && p.X < r.x+r.w && p.Y >= r.y && p.Y < r.y+r.h
}

func (r rect) intersect(o rect) rect {
	x1 := max(r.x, o.x)
	y1 := max(r.y, o.y)
	x2 := min(r.x+r.w, o.x+o.w)
	y2 := min(r.y+r.h, o.y+o.h)
	return rect{x: x1, y: y1, w: x2 - x1, h: y2 - y1}
}

func (r rect) inset(in gui.Insets) rect {
	return rect{
		x: r.x + in.Left,
		y: r.y + in.Top,
		w: r.w - in.Left - in.Right,
		h: r.h - in.Top - in.Bottom,
	}
}

// itemMin is the minimum size of a layout item including its border.
func itemMin(item *gui.LayoutItemSpec) gui.Size {
	var s gui.Size
	switch item.Kind {
	case gui.LayoutItemWidget:
		if w, ok := item.Widget.(anyWidget); ok && !w.base().hidden {
			s = w.minSize()
		}
	case gui.LayoutItemNested:
		s = measure(item.Nested)
	case gui.LayoutItemSpace:
		s = gui.Size{W: item.SpaceW, H: item.SpaceH}
	case gui.LayoutItemStretch:
		return gui.Size{}
	}
	if s.W > 0 || s.H > 0 {
		s.W += item.Border.Left + item.Border.Right
		s.H += item.Border.Top + item.Border.Bottom
	}
	return s
}

// measure computes the minimum size of a layout tree.
func measure(spec *gui.LayoutSpec) gui.Size {
	if spec == nil {
		return gui.Size{}
	}
	switch spec.Kind {
	case gui.LayoutVBox:
		var s gui.Size
		for i := range spec.Items {
			m := itemMin(&spec.Items[i])
			s.H += m.H
			s.W = max(s.W, m.W)
		}
		return s
	case gui.LayoutHBox:
		var s gui.Size
		for i := range spec.Items {
			m := itemMin(&spec.Items[i])
			s.W += m.W
			s.H = max(s.H, m.H)
		}
		return s
	case gui.LayoutGrid:
		colW, rowH := gridCellSizes(spec)
		var s gui.Size
		for _, w := range colW {
			s.W += w
		}
		for _, h := range rowH {
			s.H += h
		}
		if spec.Cols > 1 {
			s.W += (spec.Cols - 1) * spec.HGap
		}
		if spec.Rows > 1 {
			s.H += (spec.Rows - 1) * spec.VGap
		}
		return s
	}
	return gui.Size{}
}

func gridCellSizes(spec *gui.LayoutSpec) (colW, rowH []int) {
	colW = make([]int, spec.Cols)
	rowH = make([]int, spec.Rows)
	for i := range spec.Items {
		item := &spec.Items[i]
		if item.Row < 0 || item.Row >= spec.Rows || item.Col < 0 || item.Col >= spec.Cols {
			continue
		}
		m := itemMin(item)
		colW[item.Col] = max(colW[item.Col], m.W)
		rowH[item.Row] = max(rowH[item.Row], m.H)
	}
	return colW, rowH
}

// arrange assigns bounds to every widget in the layout tree within r.
func arrange(spec *gui.LayoutSpec, r rect) {
	if spec == nil {
		return
	}
	switch spec.Kind {
	case gui.LayoutVBox, gui.LayoutHBox:
		arrangeBox(spec, r)
	case gui.LayoutGrid:
		arrangeGrid(spec, r)
	}
}

func arrangeBox(spec *gui.LayoutSpec, r rect) {
	vertical := spec.Kind == gui.LayoutVBox

	minMain := 0
	totalStretch := 0
	for i := range spec.Items {
		m := itemMin(&spec.Items[i])
		if vertical {
			minMain += m.H
		} else {
			minMain += m.W
		}
		totalStretch += spec.Items[i].Stretch
		if spec.Items[i].Kind == gui.LayoutItemStretch && spec.Items[i].Stretch == 0 {
			totalStretch++
		}
	}

	avail := r.h
	if !vertical {
		avail = r.w
	}
	extra := max(avail-minMain, 0)

	pos := 0
	for i := range spec.Items {
		item := &spec.Items[i]
		m := itemMin(item)

		stretch := item.Stretch
		if item.Kind == gui.LayoutItemStretch && stretch == 0 {
			stretch = 1
		}
		grow := 0
		if totalStretch > 0 && stretch > 0 {
			grow = extra * stretch / totalStretch
		}

		var cell rect
		if vertical {
			cell = rect{x: r.x, y: r.y + pos, w: r.w, h: m.H + grow}
			pos += cell.h
		} else {
			cell = rect{x: r.x + pos, y: r.y, w: m.W + grow, h: r.h}
			pos += cell.w
		}
		placeItem(item, cell, m)
	}
}

func arrangeGrid(spec *gui.LayoutSpec, r rect) {
	colW, rowH := gridCellSizes(spec)

	grow(colW, spec.ColStretch, r.w-sum(colW)-(spec.Cols-1)*spec.HGap)
	grow(rowH, spec.RowStretch, r.h-sum(rowH)-(spec.Rows-1)*spec.VGap)

	colX := make([]int, spec.Cols)
	x := r.x
	for c := 0; c < spec.Cols; c++ {
		colX[c] = x
		x += colW[c] + spec.HGap
	}
	rowY := make([]int, spec.Rows)
	y := r.y
	for row := 0; row < spec.Rows; row++ {
		rowY[row] = y
		y += rowH[row] + spec.VGap
	}

	for i := range spec.Items {
		item := &spec.Items[i]
		if item.Row < 0 || item.Row >= spec.Rows || item.Col < 0 || item.Col >= spec.Cols {
			continue
		}
		cell := rect{x: colX[item.Col], y: rowY[item.Row], w: colW[item.Col], h: rowH[item.Row]}
		placeItem(item, cell, itemMin(item))
	}
}

// grow distributes extra space across sizes in proportion to stretch.
func grow(sizes []int, stretch []int, extra int) {
	if extra <= 0 {
		return
	}
	total := 0
	for i := range sizes {
		if i < len(stretch) {
			total += stretch[i]
		}
	}
	if total == 0 {
		return
	}
	for i := range sizes {
		if i < len(stretch) && stretch[i] > 0 {
			sizes[i] += extra * stretch[i] / total
		}
	}
}

func sum(vs []int) int {
	t := 0
	for _, v := range vs {
		t += v
	}
	return t
}

// placeItem positions the item content inside its cell, honoring the
// border insets and alignment flags.
func placeItem(item *gui.LayoutItemSpec, cell rect, m gui.Size) {
	inner := cell.inset(item.Border)
	content := gui.Size{
		W: m.W - item.Border.Left - item.Border.Right,
		H: m.H - item.Border.Top - item.Border.Bottom,
	}

	target := inner
	if !item.Align.Has(gui.AlignExpand) {
		target.w = min(content.W, inner.w)
		target.h = min(content.H, inner.h)
		switch {
		case item.Align.Has(gui.AlignHCenter):
			target.x = inner.x + (inner.w-target.w)/2
		case item.Align.Has(gui.AlignRight):
			target.x = inner.x + inner.w - target.w
		}
		switch {
		case item.Align.Has(gui.AlignVCenter):
			target.y = inner.y + (inner.h-target.h)/2
		case item.Align.Has(gui.AlignBottom):
			target.y = inner.y + inner.h - target.h
		}
	}

	switch item.Kind {
	case gui.LayoutItemWidget:
		if w, ok := item.Widget.(anyWidget); ok {
			w.base().rect = target
		}
	case gui.LayoutItemNested:
		arrange(item.Nested, target)
	}
}
