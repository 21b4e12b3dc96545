// Package sidebar implements a resizable side panel for Bubble Tea
// programs. The panel sits left or right of a content frame and can be
// resized by dragging a gutter on its inner edge.
package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

// Content is anything the panel can host.
type Content interface {
	View() string
}

// sizer is implemented by content that wants to know its area.
type sizer interface {
	SetSize(w, h int)
}

// Model is the resizable sidebar.
type Model struct {
	id      string
	opts    Options
	locator Locator
	content Content

	// width is the panel width held in state. It only changes while
	// resizing and may fall outside [MinWidth, MaxWidth].
	width    int
	resizing bool
	hovering bool
	mounted  bool

	renderWidth int
	height      int

	theme  theme.Theme
	styles theme.Styles
}

// New creates an unmounted sidebar. Zero-valued options are filled from
// DefaultOptions.
func New(opts Options, loc Locator, t theme.Theme, s theme.Styles) Model {
	opts = opts.withDefaults()
	return Model{
		id:      "sidepane-" + uuid.NewString(),
		opts:    opts,
		locator: loc,
		width:   opts.Width,
		theme:   t,
		styles:  s,
	}
}

// Mount subscribes the widget to window-level mouse events.
func (m *Model) Mount() {
	m.mounted = true
}

// Unmount drops the subscription and discards all widget state.
func (m *Model) Unmount() {
	m.mounted = false
	m.resizing = false
	m.hovering = false
	m.width = m.opts.Width
}

// Mounted reports whether the widget is receiving mouse events.
func (m Model) Mounted() bool { return m.mounted }

// Width returns the unclamped panel width held in state.
func (m Model) Width() int { return m.width }

// Resizing reports whether a gutter drag is in progress.
func (m Model) Resizing() bool { return m.resizing }

// Hovering reports whether the mouse is over the gutter.
func (m Model) Hovering() bool { return m.hovering }

// Options returns the effective options.
func (m Model) Options() Options { return m.opts }

// PanelID is the zone ID of the whole panel.
func (m Model) PanelID() string { return m.id + ":panel" }

// GutterID is the zone ID of the gutter region.
func (m Model) GutterID() string { return m.id + ":gutter" }

// SetOptions replaces the options. Widget state is left alone, the same
// way changed props do not reset a mounted component.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts.withDefaults()
	m.resizeContent()
}

// SetContent sets the component rendered inside the panel. nil renders
// an empty panel.
func (m *Model) SetContent(c Content) {
	m.content = c
	m.resizeContent()
}

// Content returns the hosted component.
func (m Model) Content() Content { return m.content }

// SetSize sets the rendered dimensions, normally taken from a
// layout.PanelLayout.
func (m *Model) SetSize(w, h int) {
	m.renderWidth = w
	m.height = h
	m.resizeContent()
}

// SetTheme swaps colors.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Placement describes the widget for layout.Calculate.
func (m Model) Placement() layout.Placement {
	return layout.Placement{
		Direction: m.opts.Direction,
		Width:     m.width,
		MinWidth:  m.opts.MinWidth,
		MaxWidth:  m.opts.MaxWidth,
		Visible:   m.mounted,
	}
}

// VisualWidth is the width the panel is drawn at.
func (m Model) VisualWidth() int {
	if m.renderWidth > 0 {
		return m.renderWidth
	}
	return max(layout.Clamp(m.width, m.opts.MinWidth, m.opts.MaxWidth), 0)
}

func (m Model) gutterWidth() int {
	if !m.opts.Draggable {
		return 0
	}
	return min(max(m.opts.GutterWidth, 0), m.VisualWidth())
}

func (m *Model) resizeContent() {
	s, ok := m.content.(sizer)
	if !ok {
		return
	}
	style := m.panelStyle()
	w := m.VisualWidth() - m.gutterWidth() - style.GetHorizontalFrameSize()
	h := max(m.height, 1) - style.GetVerticalFrameSize()
	s.SetSize(max(w, 0), max(h, 0))
}

func (m Model) panelStyle() lipgloss.Style {
	return m.opts.PanelStyle.Inherit(m.styles.Panel)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// View renders the panel with its gutter on the inner edge.
func (m Model) View() string {
	w := m.VisualWidth()
	if w <= 0 {
		return ""
	}
	h := max(m.height, 1)

	gw := m.gutterWidth()
	cw := w - gw

	var body string
	if m.content != nil {
		body = m.content.View()
	}

	var parts []string
	if cw > 0 {
		style := m.panelStyle()
		inner := style.
			Width(max(cw-style.GetHorizontalBorderSize()-style.GetHorizontalMargins(), 0)).
			Height(max(h-style.GetVerticalBorderSize()-style.GetVerticalMargins(), 0)).
			MaxWidth(cw).
			MaxHeight(h).
			Render(body)
		parts = append(parts, inner)
	}

	if gw > 0 {
		gutter := m.locator.Mark(m.GutterID(), m.renderGutter(gw, h))
		if m.opts.Direction == layout.Right {
			parts = append([]string{gutter}, parts...)
		} else {
			parts = append(parts, gutter)
		}
	}

	return m.locator.Mark(m.PanelID(), lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// blank returns h lines of w spaces.
func blank(w, h int) []string {
	lines := make([]string, h)
	row := strings.Repeat(" ", w)
	for i := range lines {
		lines[i] = row
	}
	return lines
}
