package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	SwitchTheme    key.Binding

	// Sidebar
	ToggleSidebar     key.Binding
	ToggleDirection   key.Binding
	ToggleGutterStyle key.Binding
	ToggleDraggable   key.Binding
	CopyOptions       key.Binding

	// Preview
	ToggleFormat key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SwitchTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		ToggleDirection: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "left/right"),
		),
		ToggleGutterStyle: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gutter style"),
		),
		ToggleDraggable: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "draggable"),
		),
		CopyOptions: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy options"),
		),
		ToggleFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "yaml/json"),
		),
	}
}
