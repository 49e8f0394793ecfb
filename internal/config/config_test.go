package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "bet-tracker", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "localhost:9090", cfg.Metrics.Address)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithDefaultsFromFile(t *testing.T) {
	path := writeTempConfig(t, `
app:
  name: my-tracker
  environment: production
  log_level: warn
metrics:
  enabled: true
  address: "localhost:9191"
`)

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "my-tracker", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "localhost:9191", cfg.Metrics.Address)
	// Untouched sections keep their defaults.
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithDefaultsBadYAML(t *testing.T) {
	path := writeTempConfig(t, "app: [unclosed")
	_, err := LoadWithDefaults(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad environment", func(c *Config) { c.App.Environment = "qa" }, true},
		{"bad log level", func(c *Config) { c.App.LogLevel = "verbose" }, true},
		{"missing name", func(c *Config) { c.App.Name = "" }, true},
		{"bad metrics address", func(c *Config) { c.Metrics.Address = "not-an-address" }, true},
		{"metrics enabled without address", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Address = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)

			err = Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
