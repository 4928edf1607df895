package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/metrics"
)

// MenuItems lists the menu lines that can be toggled under menu.show.
var MenuItems = []string{"cpu", "ram", "swap", "disk", "net", "uptime", "keyboard_clicks", "mouse_clicks"}

// Config represents the root configuration structure
type Config struct {
	Chart    ChartConfig    `mapstructure:"chart"`
	Sampling SamplingConfig `mapstructure:"sampling"`
	Menu     MenuConfig     `mapstructure:"menu"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Debug    bool           `mapstructure:"debug"`
}

// ChartConfig holds the chart window settings
type ChartConfig struct {
	Capacity       int               `mapstructure:"capacity"`
	RedrawInterval time.Duration     `mapstructure:"redraw_interval"`
	HoverRadius    float64           `mapstructure:"hover_radius"`
	Colors         map[string]string `mapstructure:"colors"`
}

// SamplingConfig controls how often system readings are taken
type SamplingConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	DiskPath string        `mapstructure:"disk_path"`
}

// MenuConfig selects the lines shown in the menu panel
type MenuConfig struct {
	Show map[string]bool `mapstructure:"show"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	Language      string `mapstructure:"language"`
	GraphsOnStart bool   `mapstructure:"graphs_on_start"`
}

// LoggingConfig controls the per-tick sample journal
type LoggingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	JournalPath string `mapstructure:"journal_path"`
}

// Shows reports whether the menu line item is enabled. Unknown items are shown.
func (m MenuConfig) Shows(item string) bool {
	show, ok := m.Show[item]
	return !ok || show
}

// SeriesColors returns the configured color of every metric, falling back
// to the metric's default.
func (c ChartConfig) SeriesColors() (map[metrics.Metric]color.Color, error) {
	out := make(map[metrics.Metric]color.Color, metrics.Count())
	for _, m := range metrics.All() {
		out[m] = m.Color()
	}

	keys := make([]string, 0, len(c.Colors))
	for k := range c.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		m, err := metrics.ParseMetric(key)
		if err != nil {
			return nil, fmt.Errorf("chart.colors: %w", err)
		}
		parsed, err := colorful.Hex(c.Colors[key])
		if err != nil {
			return nil, fmt.Errorf("chart.colors.%s: %w", key, err)
		}
		r, g, b := parsed.RGB255()
		out[m] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}

// LoadConfig loads configuration from YAML file and environment variables
func LoadConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/symo")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file, run on defaults and environment
	}

	return decode(v)
}

// LoadFromPath loads configuration from an explicit file.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable support
	v.SetEnvPrefix("SYMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Logging.JournalPath = expandHome(cfg.Logging.JournalPath)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are static and always validate
		panic(err)
	}
	return cfg
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	// Chart
	if cfg.Chart.Capacity < 1 || cfg.Chart.Capacity > 86400 {
		return fmt.Errorf("chart.capacity must be between 1 and 86400, got %d", cfg.Chart.Capacity)
	}
	if cfg.Chart.RedrawInterval < 50*time.Millisecond || cfg.Chart.RedrawInterval > 60*time.Second {
		return fmt.Errorf("chart.redraw_interval must be between 50ms and 60s, got %v", cfg.Chart.RedrawInterval)
	}
	if cfg.Chart.HoverRadius <= 0 {
		return fmt.Errorf("chart.hover_radius must be > 0, got %v", cfg.Chart.HoverRadius)
	}
	if _, err := cfg.Chart.SeriesColors(); err != nil {
		return err
	}

	// Sampling
	if cfg.Sampling.Interval < 100*time.Millisecond || cfg.Sampling.Interval > 60*time.Second {
		return fmt.Errorf("sampling.interval must be between 100ms and 60s, got %v", cfg.Sampling.Interval)
	}
	if cfg.Sampling.DiskPath == "" {
		return fmt.Errorf("sampling.disk_path cannot be empty")
	}

	// Menu
	for item := range cfg.Menu.Show {
		if !isMenuItem(item) {
			return fmt.Errorf("menu.show.%s is not a menu item, expected one of: %v", item, MenuItems)
		}
	}

	// UI
	if cfg.UI.Language != "" && !i18n.IsSupported(cfg.UI.Language) {
		return fmt.Errorf("ui.language must be one of: %v, got %s", i18n.Supported(), cfg.UI.Language)
	}

	// Logging
	if cfg.Logging.MaxSizeMB < 1 || cfg.Logging.MaxSizeMB > 1024 {
		return fmt.Errorf("logging.max_size_mb must be between 1 and 1024, got %d", cfg.Logging.MaxSizeMB)
	}

	return nil
}

func isMenuItem(item string) bool {
	for _, m := range MenuItems {
		if m == item {
			return true
		}
	}
	return false
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	// Chart defaults
	v.SetDefault("chart.capacity", metrics.DefaultCapacity)
	v.SetDefault("chart.redraw_interval", "500ms")
	v.SetDefault("chart.hover_radius", 8.0)
	for _, m := range metrics.All() {
		c, _ := colorful.MakeColor(m.Color())
		v.SetDefault("chart.colors."+m.Key(), c.Hex())
	}

	// Sampling defaults
	v.SetDefault("sampling.interval", "1s")
	v.SetDefault("sampling.disk_path", "/")

	// Menu defaults
	for _, item := range MenuItems {
		v.SetDefault("menu.show."+item, true)
	}

	// UI defaults
	v.SetDefault("ui.language", "")
	v.SetDefault("ui.graphs_on_start", true)

	// Logging defaults
	v.SetDefault("logging.enabled", true)
	v.SetDefault("logging.max_size_mb", 5)
	v.SetDefault("logging.journal_path", "~/.config/symo/samples.log")

	// Debug default
	v.SetDefault("debug", false)
}
