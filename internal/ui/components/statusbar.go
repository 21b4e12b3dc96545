package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sidepane/internal/ui/msgs"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message. seq ties it to the
// Flash that scheduled it, so an older tick cannot clear a newer message.
type clearStatusMsg struct {
	seq int
}

// SidebarState is the slice of widget state the status bar reports.
type SidebarState struct {
	Mounted     bool
	Direction   string
	GutterStyle string
	Draggable   bool
	Width       int
	VisualWidth int
	Resizing    bool
	Hovering    bool
}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	sidebar SidebarState
	mode    msgs.AppMode
	message string
	seq     int
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetSidebar records the sidebar state shown on the left.
func (m *StatusBar) SetSidebar(s SidebarState) {
	m.sidebar = s
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a status message that stays until replaced.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
	m.seq++
}

// Flash sets a status message and returns a Cmd that clears it after d.
func (m *StatusBar) Flash(text string, d time.Duration) tea.Cmd {
	m.SetMessage(text)
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// SetTheme swaps the palette.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		if msg.seq == m.seq {
			m.message = ""
		}
	}
	return m, nil
}

// stateLabel names the resize state for the indicator.
func (s SidebarState) stateLabel() string {
	switch {
	case !s.Mounted:
		return "hidden"
	case s.Resizing:
		return "resizing"
	case s.Hovering:
		return "hover"
	default:
		return "idle"
	}
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	// Left section: sidebar geometry and resize state
	var leftParts []string

	if m.message != "" {
		text := m.message
		if m.width > 0 {
			text = truncate(text, m.width/2)
		}
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(text))
	} else {
		state := lipgloss.NewStyle().
			Foreground(m.theme.StateColor(m.sidebar.Resizing, m.sidebar.Hovering)).
			Background(m.theme.Surface).
			Bold(true).
			Render(m.sidebar.stateLabel())
		leftParts = append(leftParts, state)

		if m.sidebar.Mounted {
			if m.sidebar.Direction != "" {
				leftParts = append(leftParts, lipgloss.NewStyle().
					Foreground(m.theme.Subtext).
					Background(m.theme.Surface).
					Render(m.sidebar.Direction))
			}

			w := fmt.Sprintf("w=%d", m.sidebar.Width)
			if m.sidebar.VisualWidth != m.sidebar.Width {
				w += fmt.Sprintf(" (%d)", m.sidebar.VisualWidth)
			}
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Subtext).
				Background(m.theme.Surface).
				Render(w))
		}
	}

	left := strings.Join(leftParts, " │ ")

	// Center: mode indicator
	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  Ctrl+K:command")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.Inline(true).MaxWidth(m.width).Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

// truncate cuts s to maxW cells, ending in "..." when there is room for it.
func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxW {
		return s
	}
	runes := []rune(s)
	if maxW <= 3 {
		return string(runes[:maxW])
	}
	if len(runes) > maxW-3 {
		runes = runes[:maxW-3]
	}
	return string(runes) + "..."
}
