package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns ~/.config/sidepane/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sidepane", "config.yaml"), nil
}

// Load loads configuration from ~/.config/sidepane/config.yaml. Any
// problem yields the defaults.
func Load() Config {
	path, err := Path()
	if err != nil {
		return DefaultConfig()
	}
	cfg, _ := LoadFile(path)
	return cfg
}

// LoadFile merges the YAML at path over the defaults. A missing file is
// not an error. A file that does not parse leaves the defaults untouched.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	parsed := DefaultConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parsed, nil
}
