package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines colors and styles used across the UI.
type Theme struct {
	HeaderFG      color.Color // header row text
	HeaderBG      color.Color // header row background
	CellFG        color.Color // data cell text
	SelectedFG    color.Color // cursor row foreground
	SelectedBG    color.Color // cursor row background
	ToggleFG      color.Color // expand toggle glyph
	DetailLabelFG color.Color // detail row labels
	DetailValueFG color.Color // detail row values
	StatusFG      color.Color // status bar text
	StatusError   color.Color // status bar error text
	FooterFG      color.Color // footer bar text
	FooterBG      color.Color // footer bar background
}

// ThemePresets holds the built-in palettes, selectable by name.
var ThemePresets = map[string]Theme{
	"dark": {
		HeaderFG:      lipgloss.Color("81"),  // cyan title
		HeaderBG:      lipgloss.Color("236"), // charcoal
		CellFG:        lipgloss.Color("250"),
		SelectedFG:    lipgloss.Color("250"),
		SelectedBG:    lipgloss.Color("24"), // deep teal
		ToggleFG:      lipgloss.Color("214"),
		DetailLabelFG: lipgloss.Color("81"),
		DetailValueFG: lipgloss.Color("246"),
		StatusFG:      lipgloss.Color("246"),
		StatusError:   lipgloss.Color("203"),
		FooterFG:      lipgloss.Color("15"),
		FooterBG:      lipgloss.Color("240"),
	},
	"light": {
		HeaderFG:      lipgloss.Color("25"),
		HeaderBG:      lipgloss.Color("254"),
		CellFG:        lipgloss.Color("235"),
		SelectedFG:    lipgloss.Color("235"),
		SelectedBG:    lipgloss.Color("152"),
		ToggleFG:      lipgloss.Color("130"),
		DetailLabelFG: lipgloss.Color("25"),
		DetailValueFG: lipgloss.Color("240"),
		StatusFG:      lipgloss.Color("240"),
		StatusError:   lipgloss.Color("124"),
		FooterFG:      lipgloss.Color("235"),
		FooterBG:      lipgloss.Color("252"),
	},
	"mono": {
		HeaderFG:      lipgloss.Color("15"),
		HeaderBG:      lipgloss.Color("0"),
		CellFG:        lipgloss.Color("7"),
		SelectedFG:    lipgloss.Color("0"),
		SelectedBG:    lipgloss.Color("7"),
		ToggleFG:      lipgloss.Color("15"),
		DetailLabelFG: lipgloss.Color("15"),
		DetailValueFG: lipgloss.Color("7"),
		StatusFG:      lipgloss.Color("7"),
		StatusError:   lipgloss.Color("15"),
		FooterFG:      lipgloss.Color("0"),
		FooterBG:      lipgloss.Color("7"),
	},
}

var (
	themeMu      sync.RWMutex
	currentTheme = ThemePresets["dark"]
)

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return ThemePresets["dark"]
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// SetThemeByName activates a preset by name.
func SetThemeByName(name string) error {
	t, ok := ThemePresets[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, availableThemeNames())
	}
	SetTheme(t)
	return nil
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func availableThemeNames() string {
	names := make([]string, 0, len(ThemePresets))
	for name := range ThemePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
