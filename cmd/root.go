// Package cmd provides the command-line interface for layout with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--spec, --log-level, etc.) - highest priority
//	2. LAYOUT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (LAYOUT_SPEC_FILE, LAYOUT_LOG_LEVEL, etc.)
//	4. Configuration files (.layout.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/layoutdev/layout/internal/config"
	"github.com/layoutdev/layout/internal/logging"
	"github.com/layoutdev/layout/internal/spec"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "layout",
	Short: "A declarative project scaffolding generator",
	Long: `Layout materializes directory trees, source files, module aggregators,
and workspace manifests from a declarative YAML specification, without
ever overwriting code you have written.

Key Features:
  • Multi-project specifications with per-language file handling
  • Aggregator files (mod.rs, __init__.py, index.ts) kept in sync
  • Marker-delimited regions that preserve hand-written content
  • Cargo workspace composition across rust projects
  • External repository mounting via git

Quick Start:
  layout new                      Write a starter layout.yml
  layout up                       Generate the declared tree
  layout plan                     Preview without touching disk
  layout scan                     List files the spec does not declare`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .layout.yml, can also use LAYOUT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("spec", "s", spec.DefaultFileName, "specification file to generate from")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	viper.BindPFlag("spec_file", rootCmd.PersistentFlags().Lookup("spec"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system with support for
// multiple config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. LAYOUT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .layout.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("LAYOUT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".layout")
	}

	// Enable automatic environment variable binding with LAYOUT_ prefix
	// Examples: LAYOUT_SPEC_FILE, LAYOUT_LOG_LEVEL, LAYOUT_LOG_FORMAT
	viper.SetEnvPrefix("LAYOUT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadToolConfig loads the tool configuration from viper's merged sources.
func loadToolConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// loadSpec reads and decodes the specification named by the tool config.
func loadSpec(cfg *config.Config) (*spec.Config, error) {
	return spec.Load(cfg.SpecFile)
}

// newLogger builds the process logger from the tool config.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
