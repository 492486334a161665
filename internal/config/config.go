// Package config loads the configuration of the calc command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxConcurrentRequests = 2
	DefaultLogLevel              = "info"
	DefaultBenchWorkers          = 10
)

// Config is the configuration of the calc command, usually stored in
// calc.yaml. Command line flags take precedence over values in the file.
type Config struct {
	// Plugin is the path to the calculator Wasm plugin. If empty, operations
	// are evaluated in-process.
	Plugin string `yaml:"plugin"`

	// MaxConcurrentRequests limits concurrent calls into the plugin.
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	Bench BenchConfig `yaml:"bench"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	// Workers is the number of goroutines calling the calculator.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxConcurrentRequests: DefaultMaxConcurrentRequests,
		LogLevel:              DefaultLogLevel,
		Bench: BenchConfig{
			Workers: DefaultBenchWorkers,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all values are within their allowed ranges.
func (c *Config) Validate() error {
	if c.MaxConcurrentRequests < 1 {
		return fmt.Errorf("max_concurrent_requests must be at least 1, got %d", c.MaxConcurrentRequests)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("bench.workers must be at least 1, got %d", c.Bench.Workers)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. It falls back to info if the level is
// invalid, Validate reports that case.
func (c *Config) Level() slog.Level {
	lvl, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLogLevel parses debug, info, warn (or warning) and error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", s)
	}
}
