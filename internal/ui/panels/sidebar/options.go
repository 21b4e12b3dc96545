package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sidepane/internal/ui/layout"
)

// GutterStyle selects how the resize gutter is drawn.
type GutterStyle int

const (
	// Line is a thin, always visible column.
	Line GutterStyle = iota
	// Dotted shows a small marker and reveals the full gutter on hover.
	Dotted
)

func (g GutterStyle) String() string {
	if g == Dotted {
		return "dotted"
	}
	return "line"
}

// Default option values.
const (
	DefaultWidth        = 200
	DefaultMinWidth     = 150
	DefaultMaxWidth     = 300
	DefaultGutterWidth  = 6
	DefaultGutterHeight = 20
	DefaultGutterColor  = lipgloss.Color("#ffffff")
)

// Options configures a sidebar. Numeric fields are not validated;
// whatever is given reaches the layout untouched.
type Options struct {
	Direction layout.Direction
	Width     int
	MinWidth  int
	MaxWidth  int
	Draggable bool

	GutterStyle  GutterStyle
	GutterWidth  int
	GutterHeight int
	GutterColor  lipgloss.Color

	// PanelStyle is merged over the theme's panel style. Properties set
	// here win.
	PanelStyle lipgloss.Style
}

// DefaultOptions returns the options a sidebar gets when nothing is set.
func DefaultOptions() Options {
	return Options{
		Direction:    layout.Left,
		Width:        DefaultWidth,
		MinWidth:     DefaultMinWidth,
		MaxWidth:     DefaultMaxWidth,
		Draggable:    false,
		GutterStyle:  Line,
		GutterWidth:  DefaultGutterWidth,
		GutterHeight: DefaultGutterHeight,
		GutterColor:  DefaultGutterColor,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions. Direction,
// GutterStyle and Draggable already default to their zero values.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.MinWidth == 0 {
		o.MinWidth = d.MinWidth
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = d.MaxWidth
	}
	if o.GutterWidth == 0 {
		o.GutterWidth = d.GutterWidth
	}
	if o.GutterHeight == 0 {
		o.GutterHeight = d.GutterHeight
	}
	if o.GutterColor == "" {
		o.GutterColor = d.GutterColor
	}
	return o
}

// ParseDirection parses "left" or "right". The empty string is left.
func ParseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return layout.Left, nil
	case "right":
		return layout.Right, nil
	default:
		return layout.Left, fmt.Errorf("unknown direction %q (want left or right)", s)
	}
}

// ParseGutterStyle parses "line" or "dotted". The empty string is line.
func ParseGutterStyle(s string) (GutterStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return Line, nil
	case "dotted":
		return Dotted, nil
	default:
		return Line, fmt.Errorf("unknown gutter style %q (want line or dotted)", s)
	}
}
