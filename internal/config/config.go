// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ithacaround/engine/recommend"
)

// DefaultConfigPaths lists where a config file is searched, in order. The
// first existing file wins.
var DefaultConfigPaths = []string{
	"ithacaround.yaml",
	"ithacaround.yml",
	"/etc/ithacaround/config.yaml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "ITHACAROUND_CONFIG_PATH"

// Store backends.
const (
	StoreBadger = "badger"
	StoreMemory = "memory"
)

// Config is the engine's full configuration.
type Config struct {
	Logging LoggingConfig     `koanf:"logging"`
	Store   StoreConfig       `koanf:"store"`
	Catalog CatalogConfig     `koanf:"catalog"`
	Scoring recommend.Weights `koanf:"scoring"`
}

// LoggingConfig controls the shared zerolog logger.
type LoggingConfig struct {
	// Level is the minimum log level (trace through disabled).
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line in log entries.
	Caller bool `koanf:"caller"`
}

// StoreConfig selects where user state (profile, favorites) is persisted.
type StoreConfig struct {
	// Backend is badger or memory.
	Backend string `koanf:"backend"`

	// Path is the badger database directory. Ignored for memory.
	Path string `koanf:"path"`
}

// CatalogConfig selects the venue catalog source.
type CatalogConfig struct {
	// Path is a JSON catalog file. Empty uses the built-in seed catalog.
	Path string `koanf:"path"`
}

// defaultConfig returns the built-in defaults, applied before file and env
// layers.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Backend: StoreBadger,
			Path:    "/data/ithacaround",
		},
		Catalog: CatalogConfig{
			Path: "", // embedded seed
		},
		Scoring: recommend.DefaultWeights(),
	}
}

// Load reads configuration with layered precedence: env over file over
// defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBadger:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the badger backend")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q",
			StoreBadger, StoreMemory, c.Store.Backend)
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

// findConfigFile returns the first existing config file path, or empty.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps ITHACAROUND_* environment variables to config paths.
// Keys are the variable names lowercased with the prefix stripped.
var envMappings = map[string]string{
	"logging_level":        "logging.level",
	"logging_format":       "logging.format",
	"logging_caller":       "logging.caller",
	"store_backend":        "store.backend",
	"store_path":           "store.path",
	"catalog_path":         "catalog.path",
	"scoring_cuisine":      "scoring.cuisine",
	"scoring_price":        "scoring.price",
	"scoring_atmosphere":   "scoring.atmosphere",
	"scoring_feature":      "scoring.feature",
	"scoring_rating_boost": "scoring.rating_boost",
}

// envTransformFunc maps an environment variable name to its config path.
// Variables outside the ITHACAROUND_ namespace are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	const prefix = "ithacaround_"
	if !strings.HasPrefix(key, prefix) {
		return ""
	}
	return envMappings[strings.TrimPrefix(key, prefix)]
}
