package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeOverridesDefaults(t *testing.T) {
	path := writeThemeFile(t, `
timed_menu_delay_ms = 350

[menu_highlight]
fg = [255, 0, 0]
bg = [10, 20, 30]
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	if theme.MenuHighlight.Fg != RGB(255, 0, 0) {
		t.Errorf("MenuHighlight.Fg = %v, want red", theme.MenuHighlight.Fg)
	}
	if theme.MenuHighlight.Bg != RGB(10, 20, 30) {
		t.Errorf("MenuHighlight.Bg = %v", theme.MenuHighlight.Bg)
	}
	if theme.TimedMenuDelay != 350*time.Millisecond {
		t.Errorf("TimedMenuDelay = %v, want 350ms", theme.TimedMenuDelay)
	}

	// Untouched fields keep their defaults.
	def := DefaultTheme()
	if theme.MenuNormal != def.MenuNormal {
		t.Errorf("MenuNormal = %+v, want default %+v", theme.MenuNormal, def.MenuNormal)
	}
	if theme.MenuWatchdog != def.MenuWatchdog {
		t.Errorf("MenuWatchdog = %v, want default %v", theme.MenuWatchdog, def.MenuWatchdog)
	}
}

func TestLoadThemePartialColorPair(t *testing.T) {
	path := writeThemeFile(t, `
[table_header]
bg = [1, 2, 3]
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	def := DefaultTheme()
	if theme.TableHeader.Fg != def.TableHeader.Fg {
		t.Errorf("TableHeader.Fg = %v, want default %v", theme.TableHeader.Fg, def.TableHeader.Fg)
	}
	if theme.TableHeader.Bg != RGB(1, 2, 3) {
		t.Errorf("TableHeader.Bg = %v", theme.TableHeader.Bg)
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	path := writeThemeFile(t, `
[menu_normal]
fg = [1, 2]
`)
	if _, err := LoadTheme(path); err == nil {
		t.Error("expected an error for a 2-component color")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
	// The defaults still come back usable.
	if theme.TimedMenuDelay != DefaultTheme().TimedMenuDelay {
		t.Errorf("fallback theme differs from defaults")
	}
}
