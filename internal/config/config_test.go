// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Store.Backend != StoreBadger {
		t.Errorf("store.backend = %q, want badger", cfg.Store.Backend)
	}
	if cfg.Scoring.Cuisine != 0.40 {
		t.Errorf("scoring.cuisine = %v, want 0.40", cfg.Scoring.Cuisine)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("catalog.path = %q, want embedded seed default", cfg.Catalog.Path)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
logging:
  level: debug
  format: console
store:
  backend: memory
scoring:
  cuisine: 0.5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Store.Backend != StoreMemory {
		t.Errorf("store.backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Scoring.Cuisine != 0.5 {
		t.Errorf("scoring.cuisine = %v, want file override 0.5", cfg.Scoring.Cuisine)
	}
	// Unset keys keep their defaults.
	if cfg.Scoring.Price != 0.25 {
		t.Errorf("scoring.price = %v, want default 0.25", cfg.Scoring.Price)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("ITHACAROUND_LOGGING_LEVEL", "error")
	t.Setenv("ITHACAROUND_STORE_PATH", "/tmp/engine-state")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("logging.level = %q, env must beat file", cfg.Logging.Level)
	}
	if cfg.Store.Path != "/tmp/engine-state" {
		t.Errorf("store.path = %q, want env override", cfg.Store.Path)
	}
}

func TestValidateRejectsBadBackend(t *testing.T) {
	cfg := defaultConfig()
	cfg.Store.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an unknown store backend")
	}

	cfg = defaultConfig()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted badger without a path")
	}

	cfg = defaultConfig()
	cfg.Store.Backend = StoreMemory
	cfg.Store.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("memory backend should not need a path: %v", err)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scoring.Cuisine = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted a negative scoring weight")
	}
}

func TestEnvTransformIgnoresForeignVariables(t *testing.T) {
	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("PATH mapped to %q, want ignored", got)
	}
	if got := envTransformFunc("ITHACAROUND_SCORING_RATING_BOOST"); got != "scoring.rating_boost" {
		t.Errorf("rating boost mapped to %q", got)
	}
	if got := envTransformFunc("ITHACAROUND_UNKNOWN_KEY"); got != "" {
		t.Errorf("unknown key mapped to %q, want ignored", got)
	}
}
