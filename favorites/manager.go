// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ithacaround/engine/catalog"
	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/metrics"
	"github.com/ithacaround/engine/internal/store"
	"github.com/ithacaround/engine/models"
)

// Key is the store key the favorites blob is persisted under. It matches
// the original app's UserDefaults key so existing state carries over.
const Key = "favoriteLocations"

// Manager owns one user's favorites set. Mutations are serialized by an
// internal lock.
type Manager struct {
	store store.Store
	key   string
	log   zerolog.Logger

	mu      sync.Mutex
	loaded  bool
	current models.Set[uuid.UUID]
}

// New creates a favorites manager persisting under the default key.
func New(st store.Store) *Manager {
	return NewKeyed(st, Key)
}

// NewKeyed creates a favorites manager persisting under a custom key, for
// hosts that isolate several users in one store.
func NewKeyed(st store.Store, key string) *Manager {
	return &Manager{
		store: st,
		key:   key,
		log:   logging.With().Str("component", "favorites").Logger(),
	}
}

// Toggle flips the id's membership and persists the result, reporting
// whether the id is now a favorite. The id is not required to exist in any
// catalog. A persistence failure is logged but does not fail the toggle.
func (m *Manager) Toggle(ctx context.Context, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	nowFavorite := m.current.Toggle(id)
	if nowFavorite {
		metrics.FavoriteToggles.WithLabelValues("added").Inc()
	} else {
		metrics.FavoriteToggles.WithLabelValues("removed").Inc()
	}

	if err := m.persist(ctx); err != nil {
		metrics.PersistenceFailures.WithLabelValues("favorites").Inc()
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("failed to persist favorites, in-memory state remains authoritative")
	}
	return nowFavorite
}

// IsFavorite reports whether the id is currently bookmarked.
func (m *Manager) IsFavorite(ctx context.Context, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	return m.current.Has(id)
}

// IDs returns the favorited ids, including any not present in the catalog.
// Order is unspecified.
func (m *Manager) IDs(ctx context.Context) []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	return m.current.Values()
}

// Count returns the number of favorited ids.
func (m *Manager) Count(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	return m.current.Len()
}

// List returns the favorited venues in catalog order. Favorited ids that
// are not in the catalog are skipped, not errors.
func (m *Manager) List(ctx context.Context, cat *catalog.Store) []models.Venue {
	m.mu.Lock()
	m.ensureLoaded(ctx)
	ids := m.current.Clone()
	m.mu.Unlock()

	out := make([]models.Venue, 0, ids.Len())
	for _, v := range cat.Venues() {
		if ids.Has(v.ID) {
			out = append(out, v)
		}
	}
	return out
}

// ensureLoaded populates current from the store once (must hold mu).
func (m *Manager) ensureLoaded(ctx context.Context) {
	if m.loaded {
		return
	}
	m.current = m.read(ctx)
	m.loaded = true
}

// read fetches and decodes the stored id set, falling back to empty.
func (m *Manager) read(ctx context.Context) models.Set[uuid.UUID] {
	data, err := m.store.Get(ctx, m.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.NewSet[uuid.UUID]()
	}
	if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("failed to read stored favorites, starting empty")
		return models.NewSet[uuid.UUID]()
	}

	var ids models.Set[uuid.UUID]
	if err := json.Unmarshal(data, &ids); err != nil {
		metrics.DecodeFallbacks.WithLabelValues("favorites").Inc()
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("stored favorites are corrupt, starting empty")
		return models.NewSet[uuid.UUID]()
	}
	if ids == nil {
		ids = models.NewSet[uuid.UUID]()
	}
	return ids
}

// persist writes the current id set to the store (must hold mu).
func (m *Manager) persist(ctx context.Context) error {
	data, err := json.Marshal(m.current)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}
