// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/metrics"
	"github.com/ithacaround/engine/internal/store"
	"github.com/ithacaround/engine/models"
)

// Key is the store key the profile blob is persisted under. It matches the
// original app's UserDefaults key so existing state carries over.
const Key = "userPreferences"

// Manager owns one user's preference profile. Mutations are serialized by
// an internal lock; reads hand out clones so callers never share map state
// with the manager.
type Manager struct {
	store store.Store
	key   string
	log   zerolog.Logger

	mu      sync.Mutex
	loaded  bool
	current models.PreferenceProfile
}

// New creates a profile manager persisting under the default key.
func New(st store.Store) *Manager {
	return NewKeyed(st, Key)
}

// NewKeyed creates a profile manager persisting under a custom key, for
// hosts that isolate several users in one store.
func NewKeyed(st store.Store, key string) *Manager {
	return &Manager{
		store: st,
		key:   key,
		log:   logging.With().Str("component", "profile").Logger(),
	}
}

// Load returns the current profile, reading it from the store on first use.
// A missing blob yields the defaults; an undecodable blob also yields the
// defaults, with a warning, since losing preference state is non-critical.
func (m *Manager) Load(ctx context.Context) models.PreferenceProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	return m.current.Clone()
}

// ensureLoaded populates current from the store once (must hold mu).
func (m *Manager) ensureLoaded(ctx context.Context) {
	if m.loaded {
		return
	}
	m.current = m.read(ctx)
	m.loaded = true
}

// read fetches and decodes the stored profile, falling back to defaults.
func (m *Manager) read(ctx context.Context) models.PreferenceProfile {
	data, err := m.store.Get(ctx, m.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.DefaultProfile()
	}
	if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("failed to read stored profile, using defaults")
		return models.DefaultProfile()
	}

	var p models.PreferenceProfile
	if err := json.Unmarshal(data, &p); err != nil {
		metrics.DecodeFallbacks.WithLabelValues("profile").Inc()
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("stored profile is corrupt, using defaults")
		return models.DefaultProfile()
	}
	return p.Normalize()
}

// Update applies the mutator to the current profile and persists the result.
// The returned profile is the post-mutation state. A persistence failure is
// logged but does not fail the update; the in-memory profile stays
// authoritative for the session.
func (m *Manager) Update(ctx context.Context, mutate func(*models.PreferenceProfile)) models.PreferenceProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)

	next := m.current.Clone()
	mutate(&next)
	m.current = next.Normalize()
	metrics.ProfileUpdates.Inc()

	if err := m.persist(ctx); err != nil {
		metrics.PersistenceFailures.WithLabelValues("profile").Inc()
		m.log.Warn().Err(err).Str("key", m.key).
			Msg("failed to persist profile, in-memory state remains authoritative")
	}
	return m.current.Clone()
}

// Save persists the current profile explicitly. Unlike Update, the write
// error is returned because the caller asked for persistence specifically.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureLoaded(ctx)
	return m.persist(ctx)
}

// persist writes the current profile to the store (must hold mu).
func (m *Manager) persist(ctx context.Context) error {
	data, err := json.Marshal(m.current)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
