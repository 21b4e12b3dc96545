package theme

import "github.com/charmbracelet/lipgloss"

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Mantle:  lipgloss.Color("#21222c"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d0d0d0"),
	Muted:   lipgloss.Color("#6272a4"),

	Mauve:    lipgloss.Color("#bd93f9"),
	Red:      lipgloss.Color("#ff5555"),
	Green:    lipgloss.Color("#50fa7b"),
	Yellow:   lipgloss.Color("#f1fa8c"),
	Blue:     lipgloss.Color("#6272a4"),
	Teal:     lipgloss.Color("#8be9fd"),
	Lavender: lipgloss.Color("#bd93f9"),

	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
	Gutter:          lipgloss.Color("#44475a"),
	GutterActive:    lipgloss.Color("#f1fa8c"),
}
