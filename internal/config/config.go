package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Formats supported by the render command.
var Formats = []string{"html", "json", "latex", "text"}

// Config holds markup CLI configuration.
type Config struct {
	// Output format: html, json, latex or text
	Format string `yaml:"format"`

	// HTML renderer settings
	HTML HTMLConfig `yaml:"html"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// HTMLConfig configures the HTML renderer.
type HTMLConfig struct {
	Highlight   bool   `yaml:"highlight"`
	ClassPrefix string `yaml:"class_prefix"`
	MathClass   string `yaml:"math_class"`
}

// LoggingConfig configures CLI logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format: "html",
		HTML: HTMLConfig{
			Highlight:   true,
			ClassPrefix: "",
			MathClass:   "math-context",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, defaults are returned if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MARKUP_FORMAT"); v != "" {
		c.Format = v
	}

	if v := os.Getenv("MARKUP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if !IsFormat(c.Format) {
		return fmt.Errorf("unsupported format %q, expected one of %v", c.Format, Formats)
	}

	if c.HTML.MathClass == "" {
		return fmt.Errorf("html.math_class is required")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Logging.Level)
	}

	return nil
}

func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}

	return false
}
