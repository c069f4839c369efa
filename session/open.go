// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package session

import (
	"fmt"

	"github.com/ithacaround/engine/catalog"
	"github.com/ithacaround/engine/internal/config"
	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/store"
)

// Open builds a session from the ambient configuration: defaults layered
// with an optional YAML file and ITHACAROUND_* environment variables. It
// configures logging, opens the persistence backend, and loads the catalog
// (the built-in seed unless catalog.path points at a JSON file). The
// returned session owns the store and closes it on Close.
func Open() (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return OpenWith(cfg)
}

// OpenWith builds a session from an already-loaded configuration.
func OpenWith(cfg *config.Config) (*Session, error) {
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	st, err := openStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	cat, err := openCatalog(cfg.Catalog)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("open session: %w", err)
	}

	sess, err := New(Options{
		Store:    st,
		Catalog:  cat,
		Weights:  cfg.Scoring,
		OwnStore: true,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return sess, nil
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreBadger:
		return store.OpenBadger(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func openCatalog(cfg config.CatalogConfig) (*catalog.Store, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Path)
}
