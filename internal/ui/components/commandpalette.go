package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/sadopc/sidepane/internal/ui/msgs"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

const (
	paletteWidth = 60
	paletteRows  = 12
	keyColumn    = 6
)

// paletteCommand is one row of the palette. State is the current
// setting the command changes, shown between the name and the key.
type paletteCommand struct {
	Name  string
	State string
	Key   string
	Msg   tea.Msg
}

// paletteCommands lists the sidebar toggles, each with its current
// setting, followed by the app commands.
func paletteCommands(s SidebarState) []paletteCommand {
	return []paletteCommand{
		{Name: "Toggle Sidebar", State: pick(s.Mounted, "shown", "hidden"), Key: "b", Msg: msgs.ToggleSidebarMsg{}},
		{Name: "Toggle Direction", State: s.Direction, Key: "d", Msg: msgs.ToggleDirectionMsg{}},
		{Name: "Toggle Gutter Style", State: s.GutterStyle, Key: "g", Msg: msgs.ToggleGutterStyleMsg{}},
		{Name: "Toggle Draggable", State: pick(s.Draggable, "on", "off"), Key: "r", Msg: msgs.ToggleDraggableMsg{}},
		{Name: "Copy Options as YAML", Key: "y", Msg: msgs.CopyOptionsMsg{}},
		{Name: "Switch Theme", Key: "t", Msg: msgs.SwitchThemeMsg{}},
		{Name: "Help", Key: "?", Msg: msgs.ShowHelpMsg{}},
		{Name: "Quit", Key: "Ctrl+C", Msg: tea.Quit()},
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// commandSource matches a query against name and state together, so
// "right" finds the direction toggle while the sidebar sits on the right.
type commandSource []paletteCommand

func (s commandSource) String(i int) string {
	return strings.TrimSpace(s[i].Name + " " + s[i].State)
}

func (s commandSource) Len() int { return len(s) }

// CommandPalette is a fuzzy command overlay over the sidebar toggles.
// It doubles as the theme picker.
type CommandPalette struct {
	Visible  bool
	input    textinput.Model
	sidebar  SidebarState
	picking  bool
	commands []paletteCommand
	filtered []paletteCommand
	cursor   int
	theme    theme.Theme
	styles   theme.Styles
}

// NewCommandPalette creates a new command palette.
func NewCommandPalette(t theme.Theme, s theme.Styles) CommandPalette {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = paletteWidth - 6

	m := CommandPalette{
		input:  ti,
		theme:  t,
		styles: s,
	}
	m.ResetCommands()
	return m
}

// SetSidebar records the widget state shown next to each toggle. The
// theme list, if open, is left alone until it closes.
func (m *CommandPalette) SetSidebar(s SidebarState) {
	m.sidebar = s
	if m.picking {
		return
	}
	m.commands = paletteCommands(s)
	m.refilter()
}

// Open shows the command list.
func (m *CommandPalette) Open() {
	m.ResetCommands()
	m.show()
}

// Close hides the palette.
func (m *CommandPalette) Close() {
	m.Visible = false
	m.input.Blur()
}

// OpenThemePicker shows the theme list with current marked.
func (m *CommandPalette) OpenThemePicker(names []string, current string) {
	cmds := make([]paletteCommand, len(names))
	for i, name := range names {
		cmds[i] = paletteCommand{
			Name:  name,
			State: pick(name == current, "current", ""),
			Msg:   msgs.SwitchThemeMsg{Name: name},
		}
	}
	m.picking = true
	m.commands = cmds
	m.input.Placeholder = "Select theme..."
	m.show()
}

// ResetCommands leaves the theme list and rebuilds the command list
// from the last sidebar state.
func (m *CommandPalette) ResetCommands() {
	m.picking = false
	m.commands = paletteCommands(m.sidebar)
	m.filtered = m.commands
	m.input.Placeholder = "Type a command..."
}

// SetTheme swaps the palette colors.
func (m *CommandPalette) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

func (m *CommandPalette) show() {
	m.Visible = true
	m.input.SetValue("")
	m.input.Focus()
	m.filtered = m.commands
	m.cursor = 0
}

func (m *CommandPalette) refilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.commands
	} else {
		matches := fuzzy.FindFrom(query, commandSource(m.commands))
		m.filtered = make([]paletteCommand, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.commands[match.Index]
		}
	}
	m.cursor = min(m.cursor, max(len(m.filtered)-1, 0))
}

// Init implements tea.Model.
func (m CommandPalette) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.Close()
			m.ResetCommands()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}
			selected := m.filtered[m.cursor]
			m.Close()
			m.ResetCommands()
			return m, tea.Batch(
				func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} },
				func() tea.Msg { return selected.Msg },
			)
		case "up", "k":
			m.cursor = max(m.cursor-1, 0)
			return m, nil
		case "down", "j":
			m.cursor = min(m.cursor+1, max(len(m.filtered)-1, 0))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// View renders the palette box.
func (m CommandPalette) View() string {
	if !m.Visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(paletteWidth - 4).
		Align(lipgloss.Center).
		Render(pick(m.picking, "Switch Theme", "Command Palette"))

	var rows []string
	for i, c := range m.filtered {
		if i == paletteRows {
			break
		}
		rows = append(rows, m.row(c, i == m.cursor))
	}
	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No matches"))
	}

	content := title + "\n\n" + m.input.View() + "\n\n" + strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Width(paletteWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}

// row lays out name, state and a right-aligned key column.
func (m CommandPalette) row(c paletteCommand, selected bool) string {
	width := paletteWidth - 4
	key := fmt.Sprintf("%*s", keyColumn, c.Key)
	stateW := lipgloss.Width(c.State)
	name := truncate(c.Name, width-keyColumn-stateW-2)
	gap := strings.Repeat(" ", max(width-lipgloss.Width(name)-stateW-keyColumn-1, 1))

	if selected {
		return lipgloss.NewStyle().
			Background(m.theme.Overlay).
			Foreground(m.theme.Text).
			Width(width).
			Render(name + gap + c.State + " " + key)
	}
	return lipgloss.NewStyle().Foreground(m.theme.Text).Render(name) + gap +
		lipgloss.NewStyle().Foreground(m.theme.Mauve).Render(c.State) + " " +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(key)
}
