// Package theme provides theme definitions and management for the TUI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Highlight  lipgloss.Color
}

// Theme names.
const (
	DuskName     = "dusk"
	DaylightName = "daylight"
	HarborName   = "harbor"
	LinenName    = "linen"
)

// Dusk returns the default theme: warm dark tones for evening terminals.
func Dusk() *Theme {
	return &Theme{
		Background: lipgloss.Color("#221C1A"), // Warm near-black
		Accent:     lipgloss.Color("#E0A458"), // Amber
		AccentFg:   lipgloss.Color("#221C1A"), // Dark text on accent
		AccentDim:  lipgloss.Color("#3B2F2A"), // Selection wash
		Border:     lipgloss.Color("#6B5D54"), // Soft borders
		BorderDim:  lipgloss.Color("#42382F"), // Dim borders
		MutedFg:    lipgloss.Color("#9C8B7E"), // Muted text
		TextFg:     lipgloss.Color("#F2E9E1"), // Primary text
		SuccessFg:  lipgloss.Color("#8FB573"), // Sage green
		WarnFg:     lipgloss.Color("#E8B04B"), // Warm amber
		ErrorFg:    lipgloss.Color("#D4695E"), // Terracotta red
		Highlight:  lipgloss.Color("#C98FA6"), // Rose highlight
	}
}

// Daylight returns a light theme for bright terminal backgrounds.
func Daylight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FDF9F3"),
		Accent:     lipgloss.Color("#B3743A"),
		AccentFg:   lipgloss.Color("#FDF9F3"),
		AccentDim:  lipgloss.Color("#F3E6D4"),
		Border:     lipgloss.Color("#D8CBBB"),
		BorderDim:  lipgloss.Color("#EAE0D2"),
		MutedFg:    lipgloss.Color("#8A7A69"),
		TextFg:     lipgloss.Color("#3C3228"),
		SuccessFg:  lipgloss.Color("#4E7C3A"),
		WarnFg:     lipgloss.Color("#A8742B"),
		ErrorFg:    lipgloss.Color("#B54A3F"),
		Highlight:  lipgloss.Color("#A05578"),
	}
}

// Harbor returns a cool dark theme with sea-glass accents.
func Harbor() *Theme {
	return &Theme{
		Background: lipgloss.Color("#14201F"),
		Accent:     lipgloss.Color("#6FC2B4"),
		AccentFg:   lipgloss.Color("#14201F"),
		AccentDim:  lipgloss.Color("#1F3331"),
		Border:     lipgloss.Color("#3E5D59"),
		BorderDim:  lipgloss.Color("#28403D"),
		MutedFg:    lipgloss.Color("#7E9B95"),
		TextFg:     lipgloss.Color("#E7F2EF"),
		SuccessFg:  lipgloss.Color("#85C98A"),
		WarnFg:     lipgloss.Color("#E0C068"),
		ErrorFg:    lipgloss.Color("#E08072"),
		Highlight:  lipgloss.Color("#9FB6E8"),
	}
}

// Linen returns a soft light theme with muted contrast.
func Linen() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FAF6EF"),
		Accent:     lipgloss.Color("#7A8A5A"),
		AccentFg:   lipgloss.Color("#FAF6EF"),
		AccentDim:  lipgloss.Color("#ECEADF"),
		Border:     lipgloss.Color("#CFC9B8"),
		BorderDim:  lipgloss.Color("#E2DDCF"),
		MutedFg:    lipgloss.Color("#8D8776"),
		TextFg:     lipgloss.Color("#403C31"),
		SuccessFg:  lipgloss.Color("#5D7C46"),
		WarnFg:     lipgloss.Color("#9E7B34"),
		ErrorFg:    lipgloss.Color("#A8524A"),
		Highlight:  lipgloss.Color("#8A6E9E"),
	}
}

// GetTheme returns a theme by name, or Dusk if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DaylightName:
		return Daylight()
	case HarborName:
		return Harbor()
	case LinenName:
		return Linen()
	default:
		return Dusk()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DaylightName, LinenName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DuskName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DuskName,
		DaylightName,
		HarborName,
		LinenName,
	}
}

// Normalize returns the canonical theme name if it is supported.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case DuskName, DaylightName, HarborName, LinenName:
		return name
	default:
		return ""
	}
}
