// Package preview shows the sidebar's effective options as a highlighted
// config document.
package preview

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sidepane/internal/config"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

// Format is the document syntax shown.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// Model renders the options document in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	theme    theme.Theme
	styles   theme.Styles
	width    int
	height   int
	format   Format
	docs     [2][]byte
	err      error
}

// New creates an empty preview.
func New(t theme.Theme, s theme.Styles) Model {
	return Model{
		viewport: viewport.New(0, 0),
		theme:    t,
		styles:   s,
	}
}

// SetConfig re-encodes the document. The scroll position is kept.
func (m *Model) SetConfig(sc config.SidebarConfig) {
	m.err = nil
	y, err := sc.YAML()
	if err != nil {
		m.err = err
	}
	j, err := sc.JSON()
	if err != nil {
		m.err = err
	}
	m.docs = [2][]byte{y, j}
	m.renderContent()
}

// ToggleFormat switches between YAML and JSON.
func (m *Model) ToggleFormat() {
	if m.format == YAML {
		m.format = JSON
	} else {
		m.format = YAML
	}
	m.renderContent()
	m.viewport.GotoTop()
}

// Format returns the format shown.
func (m Model) Format() Format { return m.format }

// Document returns the raw document in the current format.
func (m Model) Document() []byte { return m.docs[m.format] }

// SetSize updates the viewport dimensions. One line is kept for the
// title.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-1, 0)
	m.renderContent()
}

// SetTheme swaps the palette and re-highlights.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.renderContent()
}

func (m *Model) renderContent() {
	src := m.docs[m.format]
	if len(src) == 0 {
		m.viewport.SetContent("")
		return
	}
	yOffset := m.viewport.YOffset
	m.viewport.SetContent(highlight(string(bytes.TrimRight(src, "\n")), m.format.String(), m.theme.Key()))
	m.viewport.SetYOffset(yOffset)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title line and the document.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	title := m.styles.Title.Render("options." + m.format.String())
	hint := m.styles.Hint.Render("  f: yaml/json  y: copy")
	header := lipgloss.NewStyle().MaxWidth(m.width).Render(title + hint)

	if m.err != nil {
		return header + "\n" + m.styles.Error.Render(m.err.Error())
	}
	if len(m.docs[m.format]) == 0 {
		return header + "\n" + m.styles.Muted.Render("No options yet")
	}
	return header + "\n" + m.viewport.View()
}

// highlight applies chroma syntax highlighting using the chroma style
// that shares the theme's name, or monokai.
func highlight(source, lexerName, styleName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style, ok := chromastyles.Registry[styleName]
	if !ok {
		style = chromastyles.Get("monokai")
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
