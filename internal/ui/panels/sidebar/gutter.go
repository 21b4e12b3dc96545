package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dottedMarker = "⋮"

func (m Model) renderGutter(w, h int) string {
	if m.opts.GutterStyle == Dotted {
		return m.renderDotted(w, h)
	}
	return m.renderLine(w, h)
}

// renderLine draws a full-height column that is always visible.
func (m Model) renderLine(w, h int) string {
	color := m.theme.Gutter
	switch {
	case m.resizing:
		color = m.theme.GutterActive
	case m.hovering:
		color = m.opts.GutterColor
	}
	style := m.styles.GutterLine.Background(color)

	lines := blank(w, h)
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// renderDotted draws an empty column with a small marker. On hover the
// marker is replaced by a GutterWidth x GutterHeight block in GutterColor,
// centered vertically.
func (m Model) renderDotted(w, h int) string {
	lines := blank(w, h)

	if !m.hovering {
		mid := h / 2
		pad := (w - 1) / 2
		lines[mid] = strings.Repeat(" ", pad) +
			m.styles.GutterMarker.Render(dottedMarker) +
			strings.Repeat(" ", w-pad-1)
		return strings.Join(lines, "\n")
	}

	bh := min(max(m.opts.GutterHeight, 0), h)
	top := (h - bh) / 2
	block := lipgloss.NewStyle().Background(m.opts.GutterColor)
	for i := top; i < top+bh; i++ {
		lines[i] = block.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}
