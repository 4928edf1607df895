package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symo-dev/symo/internal/metrics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 300, cfg.Chart.Capacity)
	assert.Equal(t, 500*time.Millisecond, cfg.Chart.RedrawInterval)
	assert.InDelta(t, 8.0, cfg.Chart.HoverRadius, 1e-9)
	assert.Equal(t, time.Second, cfg.Sampling.Interval)
	assert.Equal(t, "/", cfg.Sampling.DiskPath)
	assert.True(t, cfg.UI.GraphsOnStart)
	assert.Empty(t, cfg.UI.Language)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	assert.True(t, filepath.IsAbs(cfg.Logging.JournalPath) || cfg.Logging.JournalPath[0] == '~')
	assert.False(t, cfg.Debug)

	for _, item := range MenuItems {
		assert.True(t, cfg.Menu.Shows(item), item)
	}
}

func TestDefault_ColorsMatchMetrics(t *testing.T) {
	colors, err := Default().Chart.SeriesColors()
	require.NoError(t, err)

	for _, m := range metrics.All() {
		assert.Equal(t, color.Color(m.Color()), colors[m], m.Key())
	}
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
chart:
  capacity: 120
  redraw_interval: 250ms
  colors:
    net_recv: "#ff0000"
sampling:
  interval: 2s
  disk_path: /home
menu:
  show:
    swap: false
ui:
  language: de
logging:
  max_size_mb: 10
  journal_path: /tmp/symo-samples.log
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Chart.Capacity)
	assert.Equal(t, 250*time.Millisecond, cfg.Chart.RedrawInterval)
	assert.Equal(t, 2*time.Second, cfg.Sampling.Interval)
	assert.Equal(t, "/home", cfg.Sampling.DiskPath)
	assert.False(t, cfg.Menu.Shows("swap"))
	assert.True(t, cfg.Menu.Shows("cpu"))
	assert.Equal(t, "de", cfg.UI.Language)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, "/tmp/symo-samples.log", cfg.Logging.JournalPath)

	colors, err := cfg.Chart.SeriesColors()
	require.NoError(t, err)
	assert.Equal(t, color.Color(color.RGBA{R: 255, A: 255}), colors[metrics.NetRecv])
	assert.Equal(t, color.Color(metrics.CPUTemp.Color()), colors[metrics.CPUTemp])
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	t.Setenv("SYMO_CHART_CAPACITY", "60")
	path := writeConfig(t, "debug: true\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Chart.Capacity)
	assert.True(t, cfg.Debug)
}

func TestLoadFromPath_Missing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"capacity zero", func(c *Config) { c.Chart.Capacity = 0 }, "chart.capacity"},
		{"redraw too fast", func(c *Config) { c.Chart.RedrawInterval = time.Millisecond }, "chart.redraw_interval"},
		{"hover radius", func(c *Config) { c.Chart.HoverRadius = 0 }, "chart.hover_radius"},
		{"bad color", func(c *Config) { c.Chart.Colors = map[string]string{"ram": "green"} }, "chart.colors.ram"},
		{"unknown metric", func(c *Config) { c.Chart.Colors = map[string]string{"gpu": "#00ff00"} }, "chart.colors"},
		{"sampling interval", func(c *Config) { c.Sampling.Interval = 2 * time.Minute }, "sampling.interval"},
		{"disk path", func(c *Config) { c.Sampling.DiskPath = "" }, "sampling.disk_path"},
		{"menu item", func(c *Config) { c.Menu.Show = map[string]bool{"gpu": true} }, "menu.show.gpu"},
		{"language", func(c *Config) { c.UI.Language = "xx" }, "ui.language"},
		{"journal size", func(c *Config) { c.Logging.MaxSizeMB = 2048 }, "logging.max_size_mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, ValidateConfig(Default()))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config/symo/x.log"), expandHome("~/.config/symo/x.log"))
	assert.Equal(t, "/var/log/x.log", expandHome("/var/log/x.log"))
}
