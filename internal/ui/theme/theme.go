package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors used by the panel, gutter and frame.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Blue     lipgloss.Color
	Teal     lipgloss.Color
	Lavender lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Gutter          lipgloss.Color // resting line color
	GutterActive    lipgloss.Color // line color while a drag is in progress
}

// StateColor returns the accent used to report the resize state.
func (t Theme) StateColor(resizing, hovering bool) lipgloss.Color {
	switch {
	case resizing:
		return t.Yellow
	case hovering:
		return t.Teal
	default:
		return t.Green
	}
}
