package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Text styles
	Title lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Hint  lipgloss.Style

	// Layout regions
	Panel     lipgloss.Style
	Frame     lipgloss.Style
	StatusBar lipgloss.Style

	// Gutter
	GutterLine   lipgloss.Style
	GutterMarker lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Error: lipgloss.NewStyle().Foreground(t.Red),
		Key:   lipgloss.NewStyle().Foreground(t.Mauve),
		Value: lipgloss.NewStyle().Foreground(t.Text),
		Hint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		Panel: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Mantle),
		Frame: lipgloss.NewStyle().
			Foreground(t.Text),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),

		GutterLine: lipgloss.NewStyle().
			Background(t.Gutter),
		GutterMarker: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}
