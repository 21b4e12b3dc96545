package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/logging"
	"github.com/sadopc/sidepane/internal/ui/msgs"
	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
)

// handleMouse is the window-level mouse subscription. Every mouse event
// reaches the sidebar first, wherever it happened, so a release outside
// the panel still ends a drag. Presses the sidebar captures go no
// further. While an overlay is open, presses skip the sidebar so the
// gutter under it cannot start a drag.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	blocked := a.overlayVisible() && msg.Action == tea.MouseActionPress
	captured := !blocked && a.sidebar.Captures(msg)

	before := a.sidebar
	if !blocked {
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		cmds = append(cmds, cmd)
	}
	a.trackResize(before)

	if !captured && !a.sidebar.Resizing() && !a.overlayVisible() {
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// trackResize moves the app's resize mode, log span and drag counters
// along with the widget, comparing it to its state before the event.
func (a *App) trackResize(before sidebar.Model) {
	after := a.sidebar
	switch {
	case !before.Resizing() && after.Resizing():
		a.span = logging.StartSpan(a.logger)
		a.inspector.RecordStart()
		a.setMode(msgs.ModeResize)
	case before.Resizing() && !after.Resizing():
		a.endResize()
	case after.Resizing() && after.Width() != before.Width():
		a.inspector.RecordMove(before.Width(), after.Width())
	}

	if after.Width() != before.Width() ||
		after.Resizing() != before.Resizing() ||
		after.Hovering() != before.Hovering() {
		a.sync()
	}
}

// endResize closes the drag session opened when resizing began.
func (a *App) endResize() {
	a.inspector.RecordEnd()
	if a.mode == msgs.ModeResize {
		a.setMode(msgs.ModeNormal)
	}
	if a.span != nil {
		a.span.End("drag finished", "panel", a.sidebar.PanelID(), "width", a.sidebar.Width())
		a.span = nil
	}
}

func (a App) overlayVisible() bool {
	return a.commandPalette.Visible || a.help.Visible
}
