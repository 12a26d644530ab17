// SPDX-License-Identifier: MIT
// Package: ccgeom/config
//
// config.go - YAML configuration for logging, builder policy and store
// limits.
//
// Resolution order (later wins):
//   1) Default()
//   2) YAML document (Load / Parse); absent keys keep their defaults
//   3) CCGEOM_* environment variables (Load only)
//
// The result is validated once; an invalid value is reported with
// ErrInvalidConfig and the offending key.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment overrides applied by Load.
const (
	EnvLogLevel        = "CCGEOM_LOG_LEVEL"
	EnvLogFormat       = "CCGEOM_LOG_FORMAT"
	EnvDeriveEdges     = "CCGEOM_DERIVE_EDGES"
	EnvDeriveHalfEdges = "CCGEOM_DERIVE_HALF_EDGES"
	EnvMaxSurfaces     = "CCGEOM_MAX_SURFACES"
)

// Config is the full engine configuration.
//
// Thread Safety: safe to read concurrently; not safe to modify after use.
type Config struct {
	// Log controls the structured logger built by Logger.
	Log LogConfig `yaml:"log"`

	// Builder controls the commit-time derivation policy.
	Builder BuilderConfig `yaml:"builder"`

	// Store controls the surface store.
	Store StoreConfig `yaml:"store"`
}

// LogConfig selects level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BuilderConfig mirrors the builder derivation options.
type BuilderConfig struct {
	DeriveEdges     bool `yaml:"derive_edges"`
	DeriveHalfEdges bool `yaml:"derive_half_edges"`
}

// StoreConfig bounds the surface store; MaxSurfaces 0 means unlimited.
type StoreConfig struct {
	MaxSurfaces int `yaml:"max_surfaces"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: FormatText},
		Builder: BuilderConfig{DeriveEdges: true, DeriveHalfEdges: true},
		Store:   StoreConfig{MaxSurfaces: 0},
	}
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads path (skipped when empty), applies CCGEOM_* overrides and
// validates the result. A named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{EnvDeriveEdges, &c.Builder.DeriveEdges},
		{EnvDeriveHalfEdges, &c.Builder.DeriveHalfEdges},
	} {
		if v, ok := lookup(b.key); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", b.key, v, ErrInvalidConfig)
			}
			*b.dst = parsed
		}
	}
	if v, ok := lookup(EnvMaxSurfaces); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxSurfaces, v, ErrInvalidConfig)
		}
		c.Store.MaxSurfaces = n
	}

	return nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Store.MaxSurfaces < 0 {
		return fmt.Errorf("store.max_surfaces %d: %w", c.Store.MaxSurfaces, ErrInvalidConfig)
	}

	return nil
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", s, ErrInvalidConfig)
	}
}

// Logger builds a slog logger writing to w per c.Log. An invalid level
// falls back to info; call Validate first to reject it instead.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
