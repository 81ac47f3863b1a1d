package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ryoma-abe/site-launcher/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Empty(t, cfg.Browser, "system default browser unless configured")
	assert.True(t, cfg.AutoRefresh)
	assert.Equal(t, time.Second, cfg.AutoRefreshDebounce)
	assert.True(t, cfg.UI.ShowURLs)
	assert.Equal(t, config.ThemeConfig{}, cfg.Theme, "theme overrides are opt-in")
}

func TestPaths(t *testing.T) {
	cfg := config.Config{DataDir: "/tmp/sl"}

	assert.Equal(t, filepath.Join("/tmp/sl", "sites.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join("/tmp/sl", "sites.json"), cfg.LegacySitesPath())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		AutoRefresh         bool   `yaml:"auto_refresh"`
		AutoRefreshDebounce string `yaml:"auto_refresh_debounce"`
		UI                  struct {
			ShowURLs bool `yaml:"show_urls"`
		} `yaml:"ui"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.True(t, parsed.AutoRefresh)
	assert.Equal(t, "1s", parsed.AutoRefreshDebounce)
	assert.True(t, parsed.UI.ShowURLs)
}

func TestWriteDefaultConfig_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browser: firefox\n"), 0o644))

	err := config.WriteDefaultConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "browser: firefox\n", string(data), "existing file must be untouched")
}
