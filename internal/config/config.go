// Package config provides tool configuration loaded through Viper from
// the optional .layout.yml file, LAYOUT_-prefixed environment variables,
// and command-line flags, in that ascending order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// SpecFile is the project specification consumed by generation.
	SpecFile string     `yaml:"spec_file" mapstructure:"spec_file"`
	Log      LogConfig  `yaml:"log" mapstructure:"log"`
	Scan     ScanConfig `yaml:"scan" mapstructure:"scan"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type ScanConfig struct {
	// Ignore holds doublestar patterns excluded from scanning, on top of
	// the built-in defaults.
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`
}

// DefaultScanIgnores are always excluded from scanning: VCS metadata and
// the build output directories of the supported languages.
var DefaultScanIgnores = []string{
	".git",
	".git/**",
	"node_modules",
	"node_modules/**",
	"target",
	"target/**",
	"dist",
	"dist/**",
	"__pycache__",
	"__pycache__/**",
	".venv",
	".venv/**",
}

func setDefaults() {
	viper.SetDefault("spec_file", "layout.yml")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("scan.ignore", []string{})
}

// Load builds the configuration from viper's current state.
func Load() (*Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (debug, info, warn, error)", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (text, json)", cfg.Log.Format)
	}

	if cfg.SpecFile == "" {
		return fmt.Errorf("spec_file cannot be empty")
	}

	return nil
}

// IgnorePatterns returns the effective scan exclusion patterns.
func (c *Config) IgnorePatterns() []string {
	return append(append([]string{}, DefaultScanIgnores...), c.Scan.Ignore...)
}
