package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the user-level settings for scaling runs.
type Config struct {
	Version int           `yaml:"version" json:"version"`
	Scale   ScaleConfig   `yaml:"scale" json:"scale"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ScaleConfig controls how batch scaling behaves.
type ScaleConfig struct {
	Jobs      int   `yaml:"jobs" json:"jobs"`
	Overwrite *bool `yaml:"overwrite,omitempty" json:"overwrite,omitempty"`
	Strict    *bool `yaml:"strict,omitempty" json:"strict,omitempty"`
}

// LoggingConfig controls the global log files written per run.
type LoggingConfig struct {
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// OverwriteValue returns the effective overwrite flag applying defaults.
func (s ScaleConfig) OverwriteValue() bool {
	if s.Overwrite == nil {
		return false
	}
	return *s.Overwrite
}

// StrictValue returns the effective strict flag applying defaults.
func (s ScaleConfig) StrictValue() bool {
	if s.Strict == nil {
		return false
	}
	return *s.Strict
}

// EnabledValue returns the effective logging flag applying defaults.
func (l LoggingConfig) EnabledValue() bool {
	if l.Enabled == nil {
		return true
	}
	return *l.Enabled
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Scale: ScaleConfig{
			Jobs:      4,
			Overwrite: boolPtr(false),
			Strict:    boolPtr(false),
		},
		Logging: LoggingConfig{
			Enabled: boolPtr(true),
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures nested fields fall back to sensible defaults when the
// YAML omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Scale.Jobs <= 0 {
		c.Scale.Jobs = defaults.Scale.Jobs
	}
	if c.Scale.Overwrite == nil {
		c.Scale.Overwrite = boolPtr(false)
	}
	if c.Scale.Strict == nil {
		c.Scale.Strict = boolPtr(false)
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = boolPtr(true)
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
