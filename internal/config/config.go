// Package config loads splitkit's layout and runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"splitkit/internal/split"
)

// Config holds application configuration.
type Config struct {
	Layout    LayoutConfig
	Telemetry TelemetryConfig
}

// LayoutConfig describes the panel group to build.
type LayoutConfig struct {
	Orientation string
	Panels      []PanelConfig
}

// PanelConfig describes one panel's identity and constraints; sizes are
// percentages of the group's extent.
type PanelConfig struct {
	ID          string
	Title       string
	MinSize     float64  `mapstructure:"min_size"`
	MaxSize     float64  `mapstructure:"max_size"`
	DefaultSize *float64 `mapstructure:"default_size"`
	Collapsible bool
}

// TelemetryConfig holds tracing settings. The OTLP endpoint itself comes
// from the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

// Constraints converts the panel entry into engine constraints.
func (p PanelConfig) Constraints() split.Constraints {
	return split.Constraints{
		MinSize:     p.MinSize,
		MaxSize:     p.MaxSize,
		DefaultSize: p.DefaultSize,
		Collapsible: p.Collapsible,
	}
}

// SplitOrientation parses the configured orientation.
func (l LayoutConfig) SplitOrientation() (split.Orientation, error) {
	switch l.Orientation {
	case "", "horizontal":
		return split.Horizontal, nil
	case "vertical":
		return split.Vertical, nil
	}
	return split.Horizontal, fmt.Errorf("unknown orientation %q", l.Orientation)
}

// Load reads configuration from file and env. Env var overrides use prefix SPLITKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("layout.orientation", "horizontal")
	v.SetDefault("telemetry.service_name", "splitkit")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPLITKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "splitkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPLITKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Layout.Panels) == 0 {
		c.Layout.Panels = defaultPanels()
	}
	return c, nil
}

// defaultPanels is the three-pane demo layout used when no panels are
// configured.
func defaultPanels() []PanelConfig {
	return []PanelConfig{
		{ID: "nav", Title: "Navigator", MinSize: 10, MaxSize: 40, Collapsible: true},
		{ID: "main", Title: "Main", MinSize: 20},
		{ID: "inspector", Title: "Inspector", MinSize: 10, DefaultSize: split.Percent(25)},
	}
}
