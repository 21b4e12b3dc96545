package theme

import "github.com/charmbracelet/lipgloss"

var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Mantle:  lipgloss.Color("#292e39"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Mauve:    lipgloss.Color("#b48ead"),
	Red:      lipgloss.Color("#bf616a"),
	Green:    lipgloss.Color("#a3be8c"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Blue:     lipgloss.Color("#5e81ac"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Lavender: lipgloss.Color("#b48ead"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
	Gutter:          lipgloss.Color("#434c5e"),
	GutterActive:    lipgloss.Color("#ebcb8b"),
}
