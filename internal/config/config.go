// Package config defines the fieldkit configuration, loaded through viper
// from a YAML file, environment variables (FIELDKIT_*), and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete fieldkit configuration
type Config struct {
	Field   FieldConfig   `mapstructure:"field"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FieldConfig controls the composed text field
type FieldConfig struct {
	// Label is the caption above the input (empty uses the built-in default)
	Label string `mapstructure:"label"`
	// InitialValue seeds the shared container before any fetch completes
	InitialValue string `mapstructure:"initial_value"`
	// Prefix is the fixed decoration rendered before the input element
	Prefix string `mapstructure:"prefix"`
	// Postfix is the fixed decoration rendered after the input element
	Postfix string `mapstructure:"postfix"`
}

// TUIConfig controls the demo terminal UI
type TUIConfig struct {
	// InputWidth is the inner width of the input element in columns
	InputWidth int `mapstructure:"input_width"`
	// ShowFooter toggles the store-sequence/fetch-status footer
	ShowFooter bool `mapstructure:"show_footer"`
}

// RemoteConfig controls the fetch-on-mount collaborator
type RemoteConfig struct {
	// URL is the endpoint returning {"value": ...}; empty disables the fetch
	URL string `mapstructure:"url"`
	// TimeoutSeconds bounds the request; 0 means no deadline
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is where fieldkit.log is written; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Timeout returns the remote request deadline as a duration.
func (c *RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			Label:        "", // fall through to the renderer's default
			InitialValue: "",
			Prefix:       "",
			Postfix:      "",
		},
		TUI: TUIConfig{
			InputWidth: 40,
			ShowFooter: true,
		},
		Remote: RemoteConfig{
			URL:            "",
			TimeoutSeconds: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("field.label", defaults.Field.Label)
	viper.SetDefault("field.initial_value", defaults.Field.InitialValue)
	viper.SetDefault("field.prefix", defaults.Field.Prefix)
	viper.SetDefault("field.postfix", defaults.Field.Postfix)

	viper.SetDefault("tui.input_width", defaults.TUI.InputWidth)
	viper.SetDefault("tui.show_footer", defaults.TUI.ShowFooter)

	viper.SetDefault("remote.url", defaults.Remote.URL)
	viper.SetDefault("remote.timeout_seconds", defaults.Remote.TimeoutSeconds)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals and validates the current viper state
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fieldkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fieldkit"
	}
	return filepath.Join(home, ".config", "fieldkit")
}
