package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Mantle:  lipgloss.Color("#e6e9ef"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Mauve:    lipgloss.Color("#8839ef"),
	Red:      lipgloss.Color("#d20f39"),
	Green:    lipgloss.Color("#40a02b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Blue:     lipgloss.Color("#1e66f5"),
	Teal:     lipgloss.Color("#179299"),
	Lavender: lipgloss.Color("#7287fd"),

	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#8c8fa1"),
	Gutter:          lipgloss.Color("#9ca0b0"),
	GutterActive:    lipgloss.Color("#df8e1d"),
}
