package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/ui/msgs"
)

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.CommandPalette):
		return func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.SwitchTheme):
		return func() tea.Msg { return msgs.SwitchThemeMsg{} }
	case key.Matches(msg, a.keys.ToggleSidebar):
		return func() tea.Msg { return msgs.ToggleSidebarMsg{} }
	case key.Matches(msg, a.keys.ToggleDirection):
		return func() tea.Msg { return msgs.ToggleDirectionMsg{} }
	case key.Matches(msg, a.keys.ToggleGutterStyle):
		return func() tea.Msg { return msgs.ToggleGutterStyleMsg{} }
	case key.Matches(msg, a.keys.ToggleDraggable):
		return func() tea.Msg { return msgs.ToggleDraggableMsg{} }
	case key.Matches(msg, a.keys.CopyOptions):
		return func() tea.Msg { return msgs.CopyOptionsMsg{} }
	case key.Matches(msg, a.keys.ToggleFormat):
		return func() tea.Msg { return toggleFormatMsg{} }
	}
	return nil
}

// toggleFormatMsg switches the preview between YAML and JSON.
type toggleFormatMsg struct{}
