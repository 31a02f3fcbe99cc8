package gui

// Point is a position in window-local coordinates, in backend pixels
// (or character cells on the terminal backend).
type Point struct {
	X, Y int
}

// Size is a width/height pair in the same units as Point.
type Size struct {
	W, H int
}

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from individual channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorPair combines a foreground and a background color. It is the unit
// of color configuration for menu items and table cells.
type ColorPair struct {
	Fg, Bg Color
}

// TextStyle selects the font variant used by text widgets and table cells.
type TextStyle int

const (
	TextNormal TextStyle = iota
	TextBold
	TextItalic
	TextBoldItalic
)

// String returns a human-readable name for the text style.
func (s TextStyle) String() string {
	switch s {
	case TextBold:
		return "bold"
	case TextItalic:
		return "italic"
	case TextBoldItalic:
		return "bold-italic"
	default:
		return "normal"
	}
}

// CellAlign is the horizontal alignment of a table cell's content.
type CellAlign int

const (
	CellAlignLeft CellAlign = iota
	CellAlignCenter
	CellAlignRight
)

// CellRenderer selects how a table cell's value is rendered.
type CellRenderer int

const (
	// RenderNormal displays the cell value as plain text.
	RenderNormal CellRenderer = iota
	// RenderBoolean displays the cell value as a check glyph
	// (checked for "1"/"true", unchecked otherwise).
	RenderBoolean
	// RenderAutoWrap wraps the cell text, capping the column width.
	RenderAutoWrap
)

// Align is a set of alignment flags used when placing a widget in a layout.
type Align uint8

const (
	AlignLeft Align = 1 << iota
	AlignHCenter
	AlignRight
	AlignTop
	AlignVCenter
	AlignBottom
	// AlignExpand stretches the widget to fill its layout cell.
	AlignExpand

	AlignStart  = AlignLeft | AlignTop
	AlignCenter = AlignHCenter | AlignVCenter
	AlignEnd    = AlignRight | AlignBottom
)

// Has reports whether all flags in other are set.
func (a Align) Has(other Align) bool {
	return a&other == other
}

// FrameStyle selects the window decoration of a Frame.
type FrameStyle int

const (
	// FrameNormal is a regular resizable window.
	FrameNormal FrameStyle = iota
	// FrameFixedSize disables resizing and maximizing.
	FrameFixedSize
	// FrameDialog additionally removes the close and minimize buttons.
	FrameDialog
)

// CursorStyle selects the pointer shape shown over a frame.
type CursorStyle int

const (
	CursorArrow CursorStyle = iota
	CursorSizing
)

// MouseButton identifies which pointer button produced a table click event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Insets is a per-side border, in pixels, applied around a layout item.
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns an Insets with the same value on every side.
func UniformInsets(v int) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}
