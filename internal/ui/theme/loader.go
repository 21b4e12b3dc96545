package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme. Missing colors fall
// back to the default theme so a custom file only needs the overrides.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Mantle  string `yaml:"mantle"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Mauve    string `yaml:"mauve"`
	Red      string `yaml:"red"`
	Green    string `yaml:"green"`
	Yellow   string `yaml:"yellow"`
	Blue     string `yaml:"blue"`
	Teal     string `yaml:"teal"`
	Lavender string `yaml:"lavender"`

	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
	Gutter          string `yaml:"gutter"`
	GutterActive    string `yaml:"gutter_active"`
}

// LoadCustomTheme loads a theme from a YAML file.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	d := Default()
	return Theme{
		Name:            yt.Name,
		Base:            color(yt.Base, d.Base),
		Mantle:          color(yt.Mantle, d.Mantle),
		Surface:         color(yt.Surface, d.Surface),
		Overlay:         color(yt.Overlay, d.Overlay),
		Text:            color(yt.Text, d.Text),
		Subtext:         color(yt.Subtext, d.Subtext),
		Muted:           color(yt.Muted, d.Muted),
		Mauve:           color(yt.Mauve, d.Mauve),
		Red:             color(yt.Red, d.Red),
		Green:           color(yt.Green, d.Green),
		Yellow:          color(yt.Yellow, d.Yellow),
		Blue:            color(yt.Blue, d.Blue),
		Teal:            color(yt.Teal, d.Teal),
		Lavender:        color(yt.Lavender, d.Lavender),
		BorderFocused:   color(yt.BorderFocused, d.BorderFocused),
		BorderUnfocused: color(yt.BorderUnfocused, d.BorderUnfocused),
		Gutter:          color(yt.Gutter, d.Gutter),
		GutterActive:    color(yt.GutterActive, d.GutterActive),
	}, nil
}

func color(v string, fallback lipgloss.Color) lipgloss.Color {
	if v == "" {
		return fallback
	}
	return lipgloss.Color(v)
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
