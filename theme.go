package gui

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Theme holds the color pairs and timing constants shared by all backends.
type Theme struct {
	// Label-menu item colors.
	MenuNormal    ColorPair
	MenuHighlight ColorPair
	MenuDisabled  ColorPair

	// Table colors.
	TableCell   ColorPair
	TableHeader ColorPair

	// TimedMenuDelay is how long a timed menu stays open after the pointer
	// leaves it.
	TimedMenuDelay time.Duration

	// MenuWatchdog bounds the blocking popup wait on backends that never
	// report menu dismissal. Empirically chosen; raise it on slow systems.
	MenuWatchdog time.Duration
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		MenuNormal:     ColorPair{Fg: RGB(0, 0, 0), Bg: RGB(255, 255, 255)},
		MenuHighlight:  ColorPair{Fg: RGB(255, 255, 255), Bg: RGB(0, 120, 215)},
		MenuDisabled:   ColorPair{Fg: RGB(80, 80, 80), Bg: RGB(255, 255, 255)},
		TableCell:      ColorPair{Fg: RGB(0, 0, 0), Bg: RGB(255, 255, 255)},
		TableHeader:    ColorPair{Fg: RGB(0, 0, 0), Bg: RGB(240, 240, 240)},
		TimedMenuDelay: 200 * time.Millisecond,
		MenuWatchdog:   100 * time.Millisecond,
	}
}

// tomlTheme is the on-disk shape of a theme file. Colors are [r, g, b]
// triplets; durations are in milliseconds. Zero-valued fields keep their
// defaults.
type tomlTheme struct {
	MenuNormal    tomlColorPair `toml:"menu_normal"`
	MenuHighlight tomlColorPair `toml:"menu_highlight"`
	MenuDisabled  tomlColorPair `toml:"menu_disabled"`
	TableCell     tomlColorPair `toml:"table_cell"`
	TableHeader   tomlColorPair `toml:"table_header"`

	TimedMenuDelayMS int64 `toml:"timed_menu_delay_ms"`
	MenuWatchdogMS   int64 `toml:"menu_watchdog_ms"`
}

type tomlColorPair struct {
	Fg []uint8 `toml:"fg"`
	Bg []uint8 `toml:"bg"`
}

func (p tomlColorPair) apply(dst *ColorPair) error {
	if err := applyColor(p.Fg, &dst.Fg); err != nil {
		return err
	}
	return applyColor(p.Bg, &dst.Bg)
}

func applyColor(src []uint8, dst *Color) error {
	switch len(src) {
	case 0:
		return nil
	case 3:
		*dst = RGB(src[0], src[1], src[2])
		return nil
	default:
		return fmt.Errorf("color must have 3 components, got %d", len(src))
	}
}

// LoadTheme reads a theme file in TOML format, layered over DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	var raw tomlTheme
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return theme, fmt.Errorf("gui: loading theme %s: %w", path, err)
	}
	pairs := []struct {
		src tomlColorPair
		dst *ColorPair
	}{
		{raw.MenuNormal, &theme.MenuNormal},
		{raw.MenuHighlight, &theme.MenuHighlight},
		{raw.MenuDisabled, &theme.MenuDisabled},
		{raw.TableCell, &theme.TableCell},
		{raw.TableHeader, &theme.TableHeader},
	}
	for _, p := range pairs {
		if err := p.src.apply(p.dst); err != nil {
			return theme, fmt.Errorf("gui: loading theme %s: %w", path, err)
		}
	}
	if raw.TimedMenuDelayMS > 0 {
		theme.TimedMenuDelay = time.Duration(raw.TimedMenuDelayMS) * time.Millisecond
	}
	if raw.MenuWatchdogMS > 0 {
		theme.MenuWatchdog = time.Duration(raw.MenuWatchdogMS) * time.Millisecond
	}
	return theme, nil
}
