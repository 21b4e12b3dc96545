package app

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sadopc/sidepane/internal/config"
	"github.com/sadopc/sidepane/internal/logging"
	"github.com/sadopc/sidepane/internal/ui/components"
	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/msgs"
	"github.com/sadopc/sidepane/internal/ui/panels/inspector"
	"github.com/sadopc/sidepane/internal/ui/panels/preview"
	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

// App is the root Bubble Tea model. It hosts one resizable sidebar next
// to a preview of the sidebar's own options.
type App struct {
	sidebar   sidebar.Model
	inspector *inspector.Model
	preview   preview.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast

	zones          *zone.Manager
	locator        sidebar.Locator
	cfg            config.Config
	logger         *log.Logger
	span           *logging.Span
	writeClipboard func(string) error
	configErr      error

	mode   msgs.AppMode
	layout layout.PanelLayout
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// Option customizes an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithLocator replaces the bubblezone locator used for hit-testing.
func WithLocator(loc sidebar.Locator) Option {
	return func(a *App) { a.locator = loc }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.writeClipboard = write }
}

// New creates a new App model from cfg.
func New(cfg config.Config, opts ...Option) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	zones := zone.New()
	a := App{
		inspector: inspector.New(t, s),
		preview:   preview.New(t, s),

		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),

		zones:          zones,
		locator:        sidebar.NewZoneLocator(zones),
		cfg:            cfg,
		logger:         logging.New(io.Discard, log.InfoLevel),
		writeClipboard: clipboard.WriteAll,

		mode: msgs.ModeNormal,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
	for _, opt := range opts {
		opt(&a)
	}

	sbOpts, err := cfg.Sidebar.Options()
	if err != nil {
		a.configErr = err
		a.logger.Warn("invalid sidebar config, using defaults for bad fields", "err", err)
	}

	a.sidebar = sidebar.New(sbOpts, a.locator, t, s)
	a.sidebar.SetContent(a.inspector)
	a.sidebar.Mount()
	a.sync()

	return a
}

// Init reports config problems found in New.
func (a App) Init() tea.Cmd {
	if a.configErr == nil {
		return nil
	}
	text := "Config: " + a.configErr.Error()
	return func() tea.Msg {
		return msgs.ToastMsg{Text: text, IsError: true, Duration: 5 * time.Second}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg, a.sidebar.Placement())
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.commandPalette.Visible {
			var cmd tea.Cmd
			a.commandPalette, cmd = a.commandPalette.Update(msg)
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}

		if cmd := a.handleGlobalKey(msg); cmd != nil {
			return a, cmd
		}
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd

	// The widget's lifecycle messages are only logged. Their Cmds run
	// concurrently and may arrive in any order; handleMouse derives the
	// app's resize state from the widget directly.
	case msgs.ResizeStartedMsg:
		a.logger.Debug("resize started", "panel", msg.PanelID, "width", msg.Width)
		return a, nil

	case msgs.PanelResizedMsg:
		a.logger.Debug("panel resized", "panel", msg.PanelID, "width", msg.Width)
		return a, nil

	case msgs.ResizeEndedMsg:
		a.logger.Debug("resize ended", "panel", msg.PanelID, "width", msg.Width)
		return a, nil

	case msgs.GutterHoverMsg:
		a.logger.Debug("gutter hover", "hovering", msg.Hovering)
		return a, nil

	case msgs.ToggleSidebarMsg:
		return a.toggleSidebar()

	case msgs.ToggleDirectionMsg:
		return a.toggleDirection()

	case msgs.ToggleGutterStyleMsg:
		return a.toggleGutterStyle()

	case msgs.ToggleDraggableMsg:
		return a.toggleDraggable()

	case msgs.CopyOptionsMsg:
		return a.copyOptions()

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case toggleFormatMsg:
		a.preview.ToggleFormat()
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.setMode(msgs.ModeCommandPalette)
		a.commandPalette.Open()
		return a, nil

	case msgs.ShowHelpMsg:
		a.setMode(msgs.ModeModal)
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.StatusMsg:
		if msg.Duration > 0 {
			return a, a.statusBar.Flash(msg.Text, msg.Duration)
		}
		a.statusBar.SetMessage(msg.Text)
		return a, nil

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

// sync recomputes the layout from the sidebar's placement and pushes
// the current widget state to every component that shows it.
func (a *App) sync() {
	a.layout = layout.Calculate(a.width, a.height, a.sidebar.Placement())
	a.resizePanels()

	opts := a.sidebar.Options()
	state := components.SidebarState{
		Mounted:     a.sidebar.Mounted(),
		Direction:   opts.Direction.String(),
		GutterStyle: opts.GutterStyle.String(),
		Draggable:   opts.Draggable,
		Width:       a.sidebar.Width(),
		VisualWidth: a.layout.PanelWidth,
		Resizing:    a.sidebar.Resizing(),
		Hovering:    a.sidebar.Hovering(),
	}
	a.inspector.Sync(a.sidebar)
	a.statusBar.SetSidebar(state)
	a.commandPalette.SetSidebar(state)
	a.preview.SetConfig(a.currentSidebarConfig())
}

func (a *App) resizePanels() {
	l := a.layout
	a.sidebar.SetSize(l.PanelWidth, l.ContentHeight)
	a.preview.SetSize(max(l.FrameWidth-2, 0), l.ContentHeight)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

// currentSidebarConfig is the file form of the live options, carrying
// the dragged width rather than the configured one.
func (a App) currentSidebarConfig() config.SidebarConfig {
	opts := a.sidebar.Options()
	opts.Width = a.sidebar.Width()
	return a.cfg.Sidebar.WithOptions(opts)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	l := a.layout

	var panel string
	if l.PanelVisible && l.PanelWidth > 0 {
		panel = a.sidebar.View()
	}

	var frame string
	if l.FrameWidth > 0 {
		frame = a.styles.Frame.
			Padding(0, 1).
			Width(l.FrameWidth).
			Height(l.ContentHeight).
			MaxWidth(l.FrameWidth).
			MaxHeight(l.ContentHeight).
			Render(a.preview.View())
	}

	body := layout.Compose(l.Direction, panel, frame)
	main := lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return a.zones.Scan(main)
}
