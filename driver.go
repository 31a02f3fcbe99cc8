package gui

import (
	"image"
	"time"
)

// Driver is the contract a backend toolkit adapter satisfies. Exactly one
// driver is active per process, selected by Initialize. A driver owns the
// native event loop and all native widget state; the abstract layer never
// touches the toolkit directly.
//
// All methods except Wake must be called on the UI thread (the goroutine
// running the dispatch callback passed to Run). Wake is safe to call from
// any goroutine.
type Driver interface {
	// Name returns the backend name, used in error reporting.
	Name() string

	// Run enters the toolkit main loop and blocks until Quit is called or
	// the last window is destroyed. The driver must invoke dispatch on the
	// UI thread once for every Wake call received, including Wake calls
	// made before Run.
	Run(dispatch func()) error

	// Wake schedules a dispatch invocation on the UI thread.
	Wake()

	// Quit asks the main loop to exit.
	Quit()

	// NewWindow creates a native top-level window.
	NewWindow(cfg WindowConfig) WindowHandle

	// SetLocale configures the toolkit locale, where supported.
	SetLocale(languageCode string)
}

// WindowConfig carries the initial state of a native window and the
// callbacks the driver fires for window-level events.
type WindowConfig struct {
	Title string
	Icon  string
	Style FrameStyle
	Pos   *Point
	Size  *Size

	// OnCloseRequest is fired when the user asks the window manager to
	// close the window. The abstract layer routes it into the regular
	// close chain; the driver must not destroy anything by itself.
	OnCloseRequest func()
}

// WindowHandle is the native side of a Frame or Dialog.
type WindowHandle interface {
	SetTitle(title string)
	SetIcon(path string)
	Show()
	Hide()
	Raise()
	SetCursor(cursor CursorStyle)

	// Fit re-runs the window layout after a content update.
	Fit()

	// Destroy releases the native window and all widgets inside it.
	Destroy()

	// SetLayout attaches the single top-level layout of the window.
	SetLayout(spec *LayoutSpec)

	// SetMenuBar attaches a built menu tree as the window menubar.
	SetMenuBar(spec *MenuSpec)

	// PopUpMenu shows a built menu tree as a popup at the pointer position
	// and blocks until it is dismissed. Backends without a reliable
	// "menu closed" notification enforce return with a watchdog timer.
	PopUpMenu(spec *MenuSpec)

	// NewPopup creates a borderless popup window owned by this window,
	// used by label-based menus.
	NewPopup() PopupHandle

	// RunModal blocks until EndModal is called, keeping the window on top
	// and forcing interaction with it.
	RunModal()
	EndModal()

	NewButton(cfg ButtonConfig) ButtonHandle
	NewCheckBox(cfg CheckBoxConfig) CheckBoxHandle
	NewRadioBox(cfg RadioBoxConfig) RadioBoxHandle
	NewBitmap(cfg BitmapConfig) BitmapHandle
	NewText(cfg TextConfig) TextHandle
	NewTextControl(cfg TextConfig) TextControlHandle
	NewCalendar(cfg CalendarConfig) CalendarHandle
	NewSpinControl(cfg SpinConfig) SpinHandle
	NewTable(cfg TableConfig) TableHandle
}

// PopupHandle is a borderless popup window positioned near the pointer.
// Label-based menus create their item rows inside it.
type PopupHandle interface {
	NewText(cfg TextConfig) TextHandle
	// Show sizes the popup to its content and displays it. When modal is
	// true the popup grabs input until destroyed.
	Show(modal bool)
	Destroy()
}

// ControlHandle is the minimal native contract every widget satisfies:
// the enabled/hidden flags are pushed to the toolkit immediately.
type ControlHandle interface {
	SetEnabled(enabled bool)
	SetHidden(hidden bool)
}

// MouseCallbacks carries the pointer event hooks a driver fires for widgets
// that track raw mouse input. Positions are window-local, normalized by the
// backend. Wheel rotation is positive for upward scrolling.
type MouseCallbacks struct {
	OnLeftDown  func(pos Point)
	OnLeftUp    func(pos Point)
	OnRightDown func(pos Point)
	OnRightUp   func(pos Point)
	OnWheel     func(pos Point, rotation int)
	OnMotion    func(pos Point)
	OnEnter     func()
	OnLeave     func()
}

// ButtonConfig carries the initial state of a native push button.
type ButtonConfig struct {
	Label   string
	Enabled bool
	Hidden  bool
	OnClick func()
}

// ButtonHandle is the native side of a Button.
type ButtonHandle interface {
	ControlHandle
	SetLabel(label string)
}

// CheckBoxConfig carries the initial state of a native checkbox.
type CheckBoxConfig struct {
	Label   string
	Value   bool
	Enabled bool
	Hidden  bool
	// OnClick reports a user toggle with the new native value.
	OnClick func(value bool)
}

// CheckBoxHandle is the native side of a CheckBox. The toolkit owns the
// true toggle state; Value re-reads it.
type CheckBoxHandle interface {
	ControlHandle
	SetLabel(label string)
	SetValue(value bool)
	Value() bool
}

// RadioBoxConfig carries the initial state of a native radio group.
type RadioBoxConfig struct {
	Label     string
	Choices   []string
	Selection int
	Enabled   bool
	Hidden    bool
	// OnSelect reports a user selection with the new native index.
	OnSelect func(index int)
}

// RadioBoxHandle is the native side of a RadioBox.
type RadioBoxHandle interface {
	ControlHandle
	SetSelection(index int)
	SetChoice(index int, label string)
}

// BitmapConfig carries the initial state of a native image widget.
type BitmapConfig struct {
	Image   image.Image
	Enabled bool
	Hidden  bool
	Mouse   MouseCallbacks
}

// BitmapHandle is the native side of a Bitmap.
type BitmapHandle interface {
	ControlHandle
	SetImage(img image.Image)
}

// TextConfig carries the initial state of a native text widget, static or
// editable.
type TextConfig struct {
	Label      string
	Style      TextStyle
	TextSize   int
	Foreground *Color
	Background *Color
	Enabled    bool
	Hidden     bool
	Mouse      MouseCallbacks
	// OnChange reports a user edit with the new native text. Only fired
	// by editable text controls.
	OnChange func(text string)
}

// TextHandle is the native side of a static Text widget.
type TextHandle interface {
	ControlHandle
	SetLabel(label string)
	SetTextStyle(style TextStyle)
	SetTextSize(size int)
	SetForeground(c *Color)
	SetBackground(c *Color)
}

// TextControlHandle is the native side of an editable TextControl. The
// toolkit owns the true text; Text re-reads it.
type TextControlHandle interface {
	TextHandle
	Text() string
}

// CalendarConfig carries the initial state of a native calendar.
type CalendarConfig struct {
	Lower    time.Time
	Upper    time.Time
	HasLower bool
	HasUpper bool
	Selected time.Time
	Enabled  bool
	Hidden   bool
	// OnDateChanged reports a user date selection.
	OnDateChanged func(date time.Time)
}

// CalendarHandle is the native side of a Calendar.
type CalendarHandle interface {
	ControlHandle
	SetDateRange(lower, upper time.Time, hasLower, hasUpper bool)
	SetSelectedDate(date time.Time)
	SetLanguage(languageCode string)
}

// Default spin bounds applied by drivers when the abstract control leaves
// a bound unset.
const (
	DefaultSpinMin = 0
	DefaultSpinMax = 99
)

// SpinConfig carries the initial state of a native spin control.
type SpinConfig struct {
	Min     int
	Max     int
	HasMin  bool
	HasMax  bool
	Value   int
	Enabled bool
	Hidden  bool
	// OnValueChanged reports a user value change.
	OnValueChanged func(value int)
}

// SpinHandle is the native side of a SpinControl.
type SpinHandle interface {
	ControlHandle
	SetRange(min, max int, hasMin, hasMax bool)
	SetValue(value int)
}

// MenuSpec is a built menu tree handed to the driver for native rendering.
// All click handlers are fully resolved; the driver only dispatches.
type MenuSpec struct {
	Label string
	Items []MenuItemSpec
	// OnClose is fired when the menu is dismissed, clicked or not.
	OnClose func()
}

// MenuItemSpec is one native menu entry.
type MenuItemSpec struct {
	Label     string
	Separator bool
	Enabled   bool
	// Sub is non-nil for a nested submenu.
	Sub *MenuSpec
	// OnClick is the resolved click handler for a leaf entry.
	OnClick func()
	// Shortcut is the Alt-shortcut rune extracted from an '&' marker in
	// the label, 0 if none.
	Shortcut rune
	// Accelerator is the display accelerator extracted after a '\t' in
	// the label, empty if none.
	Accelerator string
}

// TableCell is one rendered cell of a table snapshot.
type TableCell struct {
	Value    string
	Color    ColorPair
	Style    TextStyle
	Align    CellAlign
	Renderer CellRenderer
}

// TableSnapshot is the fully materialized content of a table, produced by
// Table.Refresh from the user model and handed to the driver.
type TableSnapshot struct {
	Rows, Cols  int
	Cells       [][]TableCell
	RowHeaders  []string
	ColHeaders  []string
	HeaderColor ColorPair
	HideRowHdr  bool
	HideColHdr  bool
}

// TableConfig carries the callbacks of a native table.
type TableConfig struct {
	Enabled bool
	Hidden  bool
	// OnClick reports a cell or header click. A header hit carries -1 in
	// the corresponding axis.
	OnClick func(row, col int, button MouseButton, double bool)
}

// TableHandle is the native side of a Table.
type TableHandle interface {
	ControlHandle
	// Reload replaces the displayed content with a new snapshot and
	// re-runs auto-sizing.
	Reload(snap *TableSnapshot)
	ColWidth(col int) int
	SetColWidth(col, width int)
}

// LayoutKind discriminates LayoutSpec variants.
type LayoutKind int

const (
	LayoutVBox LayoutKind = iota
	LayoutHBox
	LayoutGrid
)

// LayoutItemKind discriminates LayoutItemSpec variants.
type LayoutItemKind int

const (
	LayoutItemWidget LayoutItemKind = iota
	LayoutItemNested
	LayoutItemSpace
	LayoutItemStretch
)

// LayoutItemSpec is one cell of a layout description.
type LayoutItemSpec struct {
	Kind    LayoutItemKind
	Widget  ControlHandle
	Nested  *LayoutSpec
	Align   Align
	Border  Insets
	Stretch int
	SpaceW  int
	SpaceH  int
	// Row and Col position the item in a grid layout.
	Row, Col int
}

// LayoutSpec is a built layout description handed to the driver, which
// performs the geometry arithmetic natively.
type LayoutSpec struct {
	Kind       LayoutKind
	Rows, Cols int
	VGap, HGap int
	Items      []LayoutItemSpec
	RowStretch []int
	ColStretch []int
}
