package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	is := is.New(t)
	cfg := Default()
	is.Equal(cfg.Plugin, "")
	is.Equal(cfg.MaxConcurrentRequests, DefaultMaxConcurrentRequests)
	is.Equal(cfg.Bench.Workers, DefaultBenchWorkers)
	is.Equal(cfg.Level(), slog.LevelInfo)
	is.NoErr(cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("should read all values", func(t *testing.T) {
		is := is.New(t)
		path := writeConfig(t, `
plugin: ./calc-plugin.wasm
max_concurrent_requests: 4
log_level: debug
bench:
  workers: 3
`)
		cfg, err := Load(path)
		is.NoErr(err)
		is.Equal(cfg.Plugin, "./calc-plugin.wasm")
		is.Equal(cfg.MaxConcurrentRequests, 4)
		is.Equal(cfg.Level(), slog.LevelDebug)
		is.Equal(cfg.Bench.Workers, 3)
	})

	t.Run("should keep defaults for missing values", func(t *testing.T) {
		is := is.New(t)
		cfg, err := Load(writeConfig(t, "plugin: a.wasm\n"))
		is.NoErr(err)
		is.Equal(cfg.Plugin, "a.wasm")
		is.Equal(cfg.MaxConcurrentRequests, DefaultMaxConcurrentRequests)
		is.Equal(cfg.Bench.Workers, DefaultBenchWorkers)
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		is := is.New(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		is.True(err != nil)
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		is := is.New(t)
		_, err := Load(writeConfig(t, "plugin: [unterminated\n"))
		is.True(err != nil)
	})

	t.Run("should fail on invalid values", func(t *testing.T) {
		is := is.New(t)
		_, err := Load(writeConfig(t, "max_concurrent_requests: 0\n"))
		is.True(err != nil)
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "no concurrency", modify: func(c *Config) { c.MaxConcurrentRequests = 0 }},
		{name: "no workers", modify: func(c *Config) { c.Bench.Workers = -1 }},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			cfg := Default()
			tc.modify(cfg)
			is.True(cfg.Validate() != nil)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	is := is.New(t)
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		is.NoErr(err)
		is.Equal(got, want)
	}
}
