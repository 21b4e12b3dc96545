package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
)

func TestSidebarConfigOptions(t *testing.T) {
	sc := DefaultConfig().Sidebar
	sc.Direction = "Right"
	sc.GutterStyle = "dotted"

	opts, err := sc.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.Direction != layout.Right {
		t.Fatalf("Direction = %v, want right", opts.Direction)
	}
	if opts.GutterStyle != sidebar.Dotted {
		t.Fatalf("GutterStyle = %v, want dotted", opts.GutterStyle)
	}
	if opts.Width != 32 || opts.MinWidth != 20 || opts.MaxWidth != 60 {
		t.Fatalf("widths = %d/%d/%d", opts.Width, opts.MinWidth, opts.MaxWidth)
	}
	if !opts.Draggable {
		t.Fatal("Draggable = false, want true")
	}
	if opts.GutterColor != lipgloss.Color("#cba6f7") {
		t.Fatalf("GutterColor = %q", opts.GutterColor)
	}
}

func TestSidebarConfigOptionsReportsEveryProblem(t *testing.T) {
	sc := DefaultConfig().Sidebar
	sc.Direction = "up"
	sc.GutterStyle = "zigzag"
	sc.Panel.Border = "wavy"

	opts, err := sc.Options()
	if err == nil {
		t.Fatal("Options() error = nil, want errors")
	}
	for _, want := range []string{"up", "zigzag", "wavy"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
	if opts.Direction != layout.Left || opts.GutterStyle != sidebar.Line {
		t.Fatal("bad enumerations should fall back to left and line")
	}
}

func TestPanelConfigStyle(t *testing.T) {
	style, err := PanelConfig{Border: "rounded", Padding: 2, Foreground: "#000000"}.Style()
	if err != nil {
		t.Fatalf("Style() error = %v", err)
	}
	if got := style.GetHorizontalBorderSize(); got != 2 {
		t.Fatalf("border size = %d, want 2", got)
	}
	if got := style.GetHorizontalPadding(); got != 4 {
		t.Fatalf("padding = %d, want 4", got)
	}

	plain, err := PanelConfig{Border: "none"}.Style()
	if err != nil {
		t.Fatalf("Style() error = %v", err)
	}
	if plain.GetHorizontalBorderSize() != 0 {
		t.Fatal("border none should not draw a border")
	}
}

func TestWithOptionsCarriesWidthAndKeepsPanel(t *testing.T) {
	sc := DefaultConfig().Sidebar
	sc.Panel = PanelConfig{Border: "double"}

	opts, err := sc.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	opts.Width = -10
	opts.Direction = layout.Right

	got := sc.WithOptions(opts)
	if got.Width != -10 {
		t.Fatalf("Width = %d, want -10", got.Width)
	}
	if got.Direction != "right" {
		t.Fatalf("Direction = %q, want right", got.Direction)
	}
	if got.Panel.Border != "double" {
		t.Fatalf("Panel = %#v, want border kept", got.Panel)
	}
}

func TestSidebarConfigYAMLRoundTripsThroughLoader(t *testing.T) {
	sc := DefaultConfig().Sidebar
	sc.Width = 44

	out, err := sc.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "sidebar:\n") {
		t.Fatalf("YAML() should nest under sidebar:, got %q", out)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Sidebar != sc {
		t.Fatalf("round trip = %#v, want %#v", cfg.Sidebar, sc)
	}
}

func TestSidebarConfigJSON(t *testing.T) {
	out, err := DefaultConfig().Sidebar.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(string(out), "\n  \"width\": 32") {
		t.Fatalf("JSON() should be indented, got %s", out)
	}
	if strings.Contains(string(out), "panel") {
		t.Fatal("an empty panel section should be omitted")
	}

	var back SidebarConfig
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != DefaultConfig().Sidebar {
		t.Fatalf("JSON round trip = %#v", back)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty enums", func(c *Config) {
			c.Sidebar.Direction = ""
			c.Sidebar.GutterStyle = ""
			c.Log.Level = ""
		}, nil},
		{"bad direction", func(c *Config) { c.Sidebar.Direction = "top" }, []string{"sidebar.direction"}},
		{"bad gutter", func(c *Config) { c.Sidebar.GutterStyle = "wave" }, []string{"sidebar.gutter_style"}},
		{"bad border", func(c *Config) { c.Sidebar.Panel.Border = "fancy" }, []string{"sidebar.panel.border"}},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, []string{"log.level"}},
		{"all joined", func(c *Config) {
			c.Sidebar.Direction = "top"
			c.Log.Level = "loud"
		}, []string{"sidebar.direction", "log.level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should mention %q", err, want)
				}
			}
		})
	}
}
