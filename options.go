package gui

import "time"

// Option configures a widget or window at construction time.
type Option func(*options)

// options holds construction configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for construction options.
//
// Built-in keys cover the common widget properties; embedders can define
// their own keys for custom backends:
//
//	var OptTooltip = gui.NewOptKey("tooltip", "")
//
//	b := gui.NewButton(frame, gui.WithOpt(gui.OptLabel, "OK"),
//		gui.WithOpt(OptTooltip, "confirm"))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// getOpt retrieves an option value, falling back to the key's default.
func getOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// hasOpt reports whether the option was explicitly set.
func hasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Built-in option keys shared by the widget and window constructors.
var (
	// OptEnabled sets the initial enabled state of a widget.
	OptEnabled = NewOptKey("enabled", true)
	// OptHidden sets the initial hidden state of a widget.
	OptHidden = NewOptKey("hidden", false)
	// OptLabel sets the initial label of a labelled widget.
	OptLabel = NewOptKey("label", "")

	// OptValue sets the initial checked state of a CheckBox.
	OptValue = NewOptKey("value", false)

	// OptChoices sets the choice labels of a RadioBox.
	OptChoices = NewOptKey[[]string]("choices", nil)
	// OptNumChoices sets the number of empty choices of a RadioBox when
	// OptChoices is not given.
	OptNumChoices = NewOptKey("numChoices", 1)
	// OptSelection sets the initially selected choice of a RadioBox.
	OptSelection = NewOptKey("selection", 0)

	// OptTextStyle, OptTextSize, OptForeground and OptBackground style a
	// Text widget.
	OptTextStyle  = NewOptKey("textStyle", TextNormal)
	OptTextSize   = NewOptKey("textSize", 9)
	OptForeground = NewOptKey[*Color]("foreground", nil)
	OptBackground = NewOptKey[*Color]("background", nil)

	// OptMinValue, OptMaxValue and OptSpinValue configure a SpinControl.
	OptMinValue  = NewOptKey[*int]("minValue", nil)
	OptMaxValue  = NewOptKey[*int]("maxValue", nil)
	OptSpinValue = NewOptKey("spinValue", 0)

	// OptLowerDate, OptUpperDate and OptSelectedDate configure a Calendar.
	OptLowerDate    = NewOptKey("lowerDate", time.Time{})
	OptUpperDate    = NewOptKey("upperDate", time.Time{})
	OptSelectedDate = NewOptKey("selectedDate", time.Time{})

	// OptInheritOnClick makes a submenu inherit the parent menu's click
	// handler at build time.
	OptInheritOnClick = NewOptKey("inheritOnClick", false)

	// OptTitle, OptIcon, OptPos, OptSize and OptFrameStyle configure a
	// Frame or Dialog.
	OptTitle      = NewOptKey("title", "")
	OptIcon       = NewOptKey("icon", "")
	OptPos        = NewOptKey[*Point]("pos", nil)
	OptSize       = NewOptKey[*Size]("size", nil)
	OptFrameStyle = NewOptKey("frameStyle", FrameNormal)

	// OptMessage sets the message of an ErrorMessageDialog.
	OptMessage = NewOptKey("message", "")

	// OptHideRowHeaders and OptHideColHeaders suppress the header band on
	// the corresponding axis of a Table.
	OptHideRowHeaders = NewOptKey("hideRowHeaders", false)
	OptHideColHeaders = NewOptKey("hideColHeaders", false)

	// OptAlign, OptBorder, OptBorderInsets and OptStretch place an item in
	// a layout. OptBorder applies a uniform border; OptBorderInsets takes
	// precedence when both are given.
	OptAlign        = NewOptKey("align", AlignStart)
	OptBorder       = NewOptKey("border", 0)
	OptBorderInsets = NewOptKey("borderInsets", Insets{})
	OptStretch      = NewOptKey("stretch", 0)
)
