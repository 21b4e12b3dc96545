package sidebar

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/msgs"
)

// Update runs the resize state machine. The host forwards every mouse
// message here, wherever it happened; that is the widget's window-level
// subscription. Handlers read the current model, so a motion that
// follows a release in the same batch cannot resize.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !m.mounted {
		return m, nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button == tea.MouseButtonLeft {
			return m.startResizing(mouse)
		}
	case tea.MouseActionMotion:
		return m.handleMotion(mouse)
	case tea.MouseActionRelease:
		return m.stopResizing()
	}
	return m, nil
}

// Captures reports whether a press landed on the panel. The host should
// not pass such presses on to other components.
func (m Model) Captures(mouse tea.MouseMsg) bool {
	if !m.mounted || mouse.Action != tea.MouseActionPress {
		return false
	}
	b, ok := m.locator.Locate(m.PanelID())
	return ok && b.Contains(mouse.X, mouse.Y)
}

func (m Model) startResizing(mouse tea.MouseMsg) (Model, tea.Cmd) {
	if !m.opts.Draggable || !m.overGutter(mouse) {
		return m, nil
	}
	if m.resizing {
		return m, nil
	}
	m.resizing = true
	return m, m.emit(msgs.ResizeStartedMsg{PanelID: m.PanelID(), Width: m.width})
}

func (m Model) stopResizing() (Model, tea.Cmd) {
	if !m.resizing {
		return m, nil
	}
	m.resizing = false
	return m, m.emit(msgs.ResizeEndedMsg{PanelID: m.PanelID(), Width: m.width})
}

func (m Model) handleMotion(mouse tea.MouseMsg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if over := m.overGutter(mouse); over != m.hovering {
		m.hovering = over
		cmds = append(cmds, m.emit(msgs.GutterHoverMsg{PanelID: m.PanelID(), Hovering: over}))
	}

	if m.resizing {
		if w, ok := m.widthAt(mouse.X); ok {
			m.width = w
			cmds = append(cmds, m.emit(msgs.PanelResizedMsg{PanelID: m.PanelID(), Width: w}))
		}
	}

	return m, tea.Batch(cmds...)
}

// widthAt computes the panel width for a pointer at column x from the
// panel's rendered bounds. It reports false when the panel has not been
// rendered yet.
func (m Model) widthAt(x int) (int, bool) {
	b, ok := m.locator.Locate(m.PanelID())
	if !ok {
		return 0, false
	}
	if m.opts.Direction == layout.Right {
		return b.Right - x, true
	}
	return x - b.Left, true
}

func (m Model) overGutter(mouse tea.MouseMsg) bool {
	if !m.opts.Draggable {
		return false
	}
	b, ok := m.locator.Locate(m.GutterID())
	return ok && b.Contains(mouse.X, mouse.Y)
}

func (m Model) emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
