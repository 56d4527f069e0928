// Package config holds appsweep configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all appsweep configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Scan settings
	Scan ScanConfig `yaml:"scan"`

	// Execution settings
	Execution ExecutionConfig `yaml:"execution"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig configures directory scanning.
type ScanConfig struct {
	Directory string `yaml:"directory"` // target directory
	Suffix    string `yaml:"suffix"`    // filename suffix filter, case-sensitive
}

// ExecutionConfig configures the delete step.
type ExecutionConfig struct {
	DryRun bool `yaml:"dry_run"` // report intended deletions without removing
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level   string `yaml:"level"`   // debug, info, warn, error
	Format  string `yaml:"format"`  // json, text
	File    string `yaml:"file"`    // append-only log file, "" disables
	Console bool   `yaml:"console"` // mirror log output to stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "appsweep",
		Version: "1.0.0",

		Scan: ScanConfig{
			Directory: ".",
			Suffix:    ".app",
		},

		Execution: ExecutionConfig{
			DryRun: false,
		},

		Logging: LoggingConfig{
			Level:   "info",
			Format:  "text",
			File:    "app_cleanup.log",
			Console: true,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied after the file is read.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets environment variables override file values.
// Flags still take precedence over both; the CLI applies them last.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("APPSWEEP_DIRECTORY"); v != "" {
		c.Scan.Directory = v
	}
	if v := os.Getenv("APPSWEEP_SUFFIX"); v != "" {
		c.Scan.Suffix = v
	}
	if v := os.Getenv("APPSWEEP_DRY_RUN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Execution.DryRun = b
		}
	}
	if v := os.Getenv("APPSWEEP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("APPSWEEP_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Scan.Directory == "" {
		return fmt.Errorf("scan directory must not be empty")
	}
	if c.Scan.Suffix == "" {
		return fmt.Errorf("scan suffix must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
