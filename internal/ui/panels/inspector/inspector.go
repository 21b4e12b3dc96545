// Package inspector renders live sidebar state inside the sidebar itself.
package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

// Model is sidebar content that reports on the sidebar hosting it. It is
// used through a pointer so the host can update it after handing it to
// sidebar.Model.SetContent.
type Model struct {
	opts        sidebar.Options
	width       int
	visualWidth int
	resizing    bool
	hovering    bool

	sessions int
	travel   int
	lastDrag int

	w, h   int
	theme  theme.Theme
	styles theme.Styles
}

// New creates an empty inspector.
func New(t theme.Theme, s theme.Styles) *Model {
	return &Model{theme: t, styles: s}
}

// Sync copies the current widget state.
func (m *Model) Sync(sb sidebar.Model) {
	m.opts = sb.Options()
	m.width = sb.Width()
	m.visualWidth = sb.VisualWidth()
	m.resizing = sb.Resizing()
	m.hovering = sb.Hovering()
}

// RecordMove adds the distance between two consecutive widths to the
// running drag total.
func (m *Model) RecordMove(from, to int) {
	d := to - from
	if d < 0 {
		d = -d
	}
	m.travel += d
	m.lastDrag += d
}

// RecordStart marks the beginning of a drag.
func (m *Model) RecordStart() {
	m.lastDrag = 0
}

// RecordEnd counts a finished drag.
func (m *Model) RecordEnd() {
	m.sessions++
}

// Sessions is the number of finished drags.
func (m *Model) Sessions() int { return m.sessions }

// Travel is the total number of cells dragged across all sessions.
func (m *Model) Travel() int { return m.travel }

// SetSize implements the sidebar's sizing hook.
func (m *Model) SetSize(w, h int) {
	m.w = w
	m.h = h
}

// Size returns the area last given by the sidebar.
func (m *Model) Size() (int, int) { return m.w, m.h }

// SetTheme swaps the palette.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m *Model) state() string {
	switch {
	case m.resizing:
		return "resizing"
	case m.hovering:
		return "hover"
	default:
		return "idle"
	}
}

// View renders the inspector.
func (m *Model) View() string {
	if m.w <= 0 {
		return ""
	}

	rows := [][2]string{
		{"direction", m.opts.Direction.String()},
		{"width", fmt.Sprintf("%d", m.width)},
		{"visual", fmt.Sprintf("%d", m.visualWidth)},
		{"min/max", fmt.Sprintf("%d/%d", m.opts.MinWidth, m.opts.MaxWidth)},
		{"draggable", yesNo(m.opts.Draggable)},
		{"gutter", fmt.Sprintf("%s %dx%d", m.opts.GutterStyle, m.opts.GutterWidth, m.opts.GutterHeight)},
	}

	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, len(r[0]))
	}
	keyStyle := m.styles.Key.Width(keyWidth + 1)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Sidebar"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(keyStyle.Render(r[0]))
		b.WriteString(m.styles.Value.Render(r[1]))
		b.WriteString("\n")
	}

	stateStyle := lipgloss.NewStyle().
		Foreground(m.theme.StateColor(m.resizing, m.hovering)).
		Bold(true)
	b.WriteString(keyStyle.Render("state"))
	b.WriteString(stateStyle.Render(m.state()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render(m.history()))

	return lipgloss.NewStyle().MaxWidth(m.w).Render(b.String())
}

func (m *Model) history() string {
	if m.sessions == 0 && !m.resizing {
		return "drag the gutter to resize"
	}
	lines := []string{
		fmt.Sprintf("%s cells dragged", humanize.Comma(int64(m.travel))),
	}
	if m.resizing {
		lines = append(lines, fmt.Sprintf("%s drag, %s so far",
			humanize.Ordinal(m.sessions+1), humanize.Comma(int64(m.lastDrag))))
	} else {
		lines = append(lines, fmt.Sprintf("%s drags done", humanize.Comma(int64(m.sessions))))
	}
	return strings.Join(lines, "\n")
}
