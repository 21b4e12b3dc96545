package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/msgs"
	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

func (a App) toggleSidebar() (tea.Model, tea.Cmd) {
	if a.sidebar.Mounted() {
		wasResizing := a.sidebar.Resizing()
		a.sidebar.Unmount()
		if wasResizing {
			a.endResize()
		}
		a.logger.Debug("sidebar unmounted")
	} else {
		a.sidebar.Mount()
		a.logger.Debug("sidebar mounted", "width", a.sidebar.Width())
	}
	a.sync()
	return a, nil
}

func (a App) toggleDirection() (tea.Model, tea.Cmd) {
	opts := a.sidebar.Options()
	if opts.Direction == layout.Left {
		opts.Direction = layout.Right
	} else {
		opts.Direction = layout.Left
	}
	return a.applyOptions(opts, "Direction: "+opts.Direction.String())
}

func (a App) toggleGutterStyle() (tea.Model, tea.Cmd) {
	opts := a.sidebar.Options()
	if opts.GutterStyle == sidebar.Line {
		opts.GutterStyle = sidebar.Dotted
	} else {
		opts.GutterStyle = sidebar.Line
	}
	return a.applyOptions(opts, "Gutter: "+opts.GutterStyle.String())
}

func (a App) toggleDraggable() (tea.Model, tea.Cmd) {
	opts := a.sidebar.Options()
	opts.Draggable = !opts.Draggable
	text := "Resizing disabled"
	if opts.Draggable {
		text = "Resizing enabled"
	}
	return a.applyOptions(opts, text)
}

// applyOptions hands new options to the mounted widget. Its state,
// including a drag in progress, is left alone.
func (a App) applyOptions(opts sidebar.Options, status string) (tea.Model, tea.Cmd) {
	a.sidebar.SetOptions(opts)
	a.sync()
	return a, func() tea.Msg {
		return msgs.StatusMsg{Text: status, Duration: 2 * time.Second}
	}
}

func (a App) copyOptions() (tea.Model, tea.Cmd) {
	doc, err := a.currentSidebarConfig().YAML()
	if err != nil {
		a.logger.Error("encoding options", "err", err)
		cmd := a.toast.Show("Encode error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	if err := a.writeClipboard(string(doc)); err != nil {
		a.logger.Error("clipboard write failed", "err", err)
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	cmd := a.toast.Show("Copied options as YAML", false, 2*time.Second)
	return a, cmd
}

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.Name == "" {
		a.commandPalette.OpenThemePicker(theme.Names(), a.theme.Name)
		a.setMode(msgs.ModeCommandPalette)
		return a, nil
	}

	t := theme.Resolve(msg.Name)
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s
	a.cfg.Theme = t.Name

	a.sidebar.SetTheme(t, s)
	a.inspector.SetTheme(t, s)
	a.preview.SetTheme(t, s)
	a.statusBar.SetTheme(t, s)
	a.commandPalette.SetTheme(t, s)
	a.help.SetTheme(t, s)
	a.toast.SetTheme(t, s)
	a.sync()

	cmd := a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
	return a, cmd
}
