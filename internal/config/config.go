// Package config provides configuration types and defaults for
// site-launcher.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for site-launcher.
type Config struct {
	// DataDir is where the site database lives.
	// Default: ~/.local/share/site-launcher
	DataDir string `mapstructure:"data_dir"`

	// Browser is an optional command to open URLs with, e.g.
	// "firefox --private-window". Empty means the system default.
	Browser string `mapstructure:"browser"`

	AutoRefresh         bool          `mapstructure:"auto_refresh"`
	AutoRefreshDebounce time.Duration `mapstructure:"auto_refresh_debounce"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// ShowURLs renders each site's URL next to its name in the launcher.
	ShowURLs bool `mapstructure:"show_urls"`
}

// ThemeConfig holds optional hex color overrides for the UI palette.
// Empty fields keep the built-in adaptive colors.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DataDir:             defaultDataDir(),
		AutoRefresh:         true,
		AutoRefreshDebounce: time.Second,
		UI: UIConfig{
			ShowURLs: true,
		},
	}
}

// DBPath returns the site database path under the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "sites.db")
}

// LegacySitesPath returns the pre-database sites.json location that the
// one-time migration imports from.
func (c Config) LegacySitesPath() string {
	return filepath.Join(c.DataDir, "sites.json")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "site-launcher")
}
