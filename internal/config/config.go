package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
)

// Config holds the application configuration.
type Config struct {
	Theme   string        `yaml:"theme"`
	Sidebar SidebarConfig `yaml:"sidebar"`
	Log     LogConfig     `yaml:"log"`
}

// LogConfig selects where the TUI writes its log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// SidebarConfig is the file form of sidebar.Options.
type SidebarConfig struct {
	Direction    string      `yaml:"direction" json:"direction"`
	Width        int         `yaml:"width" json:"width"`
	MinWidth     int         `yaml:"min_width" json:"min_width"`
	MaxWidth     int         `yaml:"max_width" json:"max_width"`
	Draggable    bool        `yaml:"draggable" json:"draggable"`
	GutterStyle  string      `yaml:"gutter_style" json:"gutter_style"`
	GutterWidth  int         `yaml:"gutter_width" json:"gutter_width"`
	GutterHeight int         `yaml:"gutter_height" json:"gutter_height"`
	GutterColor  string      `yaml:"gutter_color" json:"gutter_color"`
	Panel        PanelConfig `yaml:"panel,omitempty" json:"panel,omitzero"`
}

// PanelConfig is merged over the theme's panel style.
type PanelConfig struct {
	Foreground string `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background string `yaml:"background,omitempty" json:"background,omitempty"`
	Border     string `yaml:"border,omitempty" json:"border,omitempty"`
	Padding    int    `yaml:"padding,omitempty" json:"padding,omitempty"`
}

// DefaultConfig returns the default configuration. The sidebar values are
// sized for a terminal rather than taken from sidebar.DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Theme: "catppuccin-mocha",
		Sidebar: SidebarConfig{
			Direction:    "left",
			Width:        32,
			MinWidth:     20,
			MaxWidth:     60,
			Draggable:    true,
			GutterStyle:  "line",
			GutterWidth:  1,
			GutterHeight: 3,
			GutterColor:  "#cba6f7",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

func parseBorder(name string) (lipgloss.Border, bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return lipgloss.Border{}, false, nil
	}
	b, ok := borders[name]
	if !ok {
		return lipgloss.Border{}, false, fmt.Errorf("unknown border %q", name)
	}
	return b, true, nil
}

// Style builds the lipgloss style for the panel section.
func (p PanelConfig) Style() (lipgloss.Style, error) {
	s := lipgloss.NewStyle()
	if p.Foreground != "" {
		s = s.Foreground(lipgloss.Color(p.Foreground))
	}
	if p.Background != "" {
		s = s.Background(lipgloss.Color(p.Background))
	}
	if p.Padding > 0 {
		s = s.Padding(0, p.Padding)
	}
	b, ok, err := parseBorder(p.Border)
	if err != nil {
		return s, err
	}
	if ok {
		s = s.Border(b)
	}
	return s, nil
}

// Options converts the section to widget options. Every enumeration
// problem is reported; the returned options use defaults for those fields.
func (c SidebarConfig) Options() (sidebar.Options, error) {
	var errs []error

	dir, err := sidebar.ParseDirection(c.Direction)
	if err != nil {
		errs = append(errs, err)
	}
	gs, err := sidebar.ParseGutterStyle(c.GutterStyle)
	if err != nil {
		errs = append(errs, err)
	}
	style, err := c.Panel.Style()
	if err != nil {
		errs = append(errs, fmt.Errorf("panel: %w", err))
	}

	return sidebar.Options{
		Direction:    dir,
		Width:        c.Width,
		MinWidth:     c.MinWidth,
		MaxWidth:     c.MaxWidth,
		Draggable:    c.Draggable,
		GutterStyle:  gs,
		GutterWidth:  c.GutterWidth,
		GutterHeight: c.GutterHeight,
		GutterColor:  lipgloss.Color(c.GutterColor),
		PanelStyle:   style,
	}, errors.Join(errs...)
}

// WithOptions returns c with every field taken from o except the panel
// section, which has no reverse mapping from a lipgloss style.
func (c SidebarConfig) WithOptions(o sidebar.Options) SidebarConfig {
	c.Direction = o.Direction.String()
	c.Width = o.Width
	c.MinWidth = o.MinWidth
	c.MaxWidth = o.MaxWidth
	c.Draggable = o.Draggable
	c.GutterStyle = o.GutterStyle.String()
	c.GutterWidth = o.GutterWidth
	c.GutterHeight = o.GutterHeight
	c.GutterColor = string(o.GutterColor)
	return c
}

// YAML renders the section as a standalone document under a sidebar key,
// ready to paste into config.yaml.
func (c SidebarConfig) YAML() ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Sidebar SidebarConfig `yaml:"sidebar"`
	}{c})
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	return out, nil
}

// JSON renders the section as indented JSON.
func (c SidebarConfig) JSON() ([]byte, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	return pretty.Pretty(raw), nil
}

// Validate reports every enumeration problem in cfg. Numbers are passed
// through to the layout as given and are not checked.
func Validate(cfg Config) error {
	var errs []error

	if _, err := sidebar.ParseDirection(cfg.Sidebar.Direction); err != nil {
		errs = append(errs, fmt.Errorf("sidebar.direction: %w", err))
	}
	if _, err := sidebar.ParseGutterStyle(cfg.Sidebar.GutterStyle); err != nil {
		errs = append(errs, fmt.Errorf("sidebar.gutter_style: %w", err))
	}
	if _, _, err := parseBorder(cfg.Sidebar.Panel.Border); err != nil {
		errs = append(errs, fmt.Errorf("sidebar.panel.border: %w", err))
	}
	if cfg.Log.Level != "" {
		if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	return errors.Join(errs...)
}
