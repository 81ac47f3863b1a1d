package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with yaml tags for writing the default
// config file. Durations are written as strings ("1s") so the file
// stays hand-editable.
type fileConfig struct {
	DataDir             string `yaml:"data_dir,omitempty"`
	Browser             string `yaml:"browser,omitempty"`
	AutoRefresh         bool   `yaml:"auto_refresh"`
	AutoRefreshDebounce string `yaml:"auto_refresh_debounce"`
	UI                  struct {
		ShowURLs bool `yaml:"show_urls"`
	} `yaml:"ui"`
	Theme struct {
		Highlight string `yaml:"highlight"`
		Subtle    string `yaml:"subtle"`
		Error     string `yaml:"error"`
		Success   string `yaml:"success"`
	} `yaml:"theme"`
}

// template is the fileConfig seeded with Defaults. Theme fields are
// written empty so the built-in adaptive palette stays active until
// the user fills one in.
func template() fileConfig {
	defaults := Defaults()
	var fc fileConfig
	fc.AutoRefresh = defaults.AutoRefresh
	fc.AutoRefreshDebounce = defaults.AutoRefreshDebounce.String()
	fc.UI.ShowURLs = defaults.UI.ShowURLs
	fc.Theme.Highlight = defaults.Theme.Highlight
	fc.Theme.Subtle = defaults.Theme.Subtle
	fc.Theme.Error = defaults.Theme.Error
	fc.Theme.Success = defaults.Theme.Success
	return fc
}

// WriteDefaultConfig writes a default config file to path, creating
// parent directories as needed. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(template())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	header := []byte("# site-launcher configuration\n" +
		"# data_dir and browser are omitted; defaults apply.\n" +
		"# theme colors are optional \"#RRGGBB\" overrides; empty keeps the default.\n")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
