package sunbreeze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file-based application configuration. Every field maps onto
// a construction option; code-level options win when both are used.
type Config struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Addr        string `yaml:"addr"`
	Debug       bool   `yaml:"debug"`
	LogLevel    string `yaml:"log_level"`
	TemplateDir string `yaml:"template_dir"`
	StaticDir   string `yaml:"static_dir"`
	Metrics     bool   `yaml:"metrics"`

	RateLimit struct {
		Rate  float64 `yaml:"rate"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Name:        "sunbreeze",
		Version:     "0.1.0",
		Addr:        ":8000",
		LogLevel:    "info",
		TemplateDir: "templates",
		StaticDir:   "static",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer func() {
		//nolint:errcheck,gosec // read-only file
		f.Close()
	}()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options translates the configuration into construction options for New.
func (c Config) Options() []Option {
	opts := []Option{
		WithName(c.Name),
		WithVersion(c.Version),
		WithDebug(c.Debug),
		WithTemplateDir(c.TemplateDir),
		WithStaticDir(c.StaticDir),
	}
	if c.RateLimit.Rate > 0 {
		opts = append(opts, WithRateLimit(c.RateLimit.Rate, c.RateLimit.Burst))
	}
	if c.Metrics {
		opts = append(opts, WithMetrics())
	}
	return opts
}

// SlogLevel maps the configured log level onto slog. Unknown levels fall
// back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
