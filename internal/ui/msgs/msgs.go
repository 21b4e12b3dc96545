package msgs

import "time"

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeResize
	ModeCommandPalette
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeResize:
		return "RESIZE"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// --- Resize lifecycle, emitted by the sidebar widget ---

// ResizeStartedMsg is emitted when a gutter press starts a resize.
type ResizeStartedMsg struct {
	PanelID string
	Width   int
}

// PanelResizedMsg is emitted on every motion event while resizing.
// Width is the unclamped value held in widget state.
type PanelResizedMsg struct {
	PanelID string
	Width   int
}

// ResizeEndedMsg is emitted when a release ends a resize.
type ResizeEndedMsg struct {
	PanelID string
	Width   int
}

// GutterHoverMsg is emitted when the mouse enters or leaves the gutter.
type GutterHoverMsg struct {
	PanelID  string
	Hovering bool
}

// --- Host commands ---

// ToggleSidebarMsg mounts or unmounts the sidebar.
type ToggleSidebarMsg struct{}

// ToggleDirectionMsg flips the sidebar between left and right.
type ToggleDirectionMsg struct{}

// ToggleGutterStyleMsg switches between line and dotted gutters.
type ToggleGutterStyleMsg struct{}

// ToggleDraggableMsg enables or disables gutter resizing.
type ToggleDraggableMsg struct{}

// CopyOptionsMsg copies the effective sidebar options to the clipboard.
type CopyOptionsMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// SwitchThemeMsg requests switching to a named theme.
// An empty Name opens the theme picker.
type SwitchThemeMsg struct {
	Name string
}
