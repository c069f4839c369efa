// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package catalog

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ithacaround/engine/internal/validation"
	"github.com/ithacaround/engine/models"
)

// ErrNotFound is returned when a venue id is not in the catalog.
var ErrNotFound = errors.New("catalog: venue not found")

// snapshot is an immutable view of the catalog. Replacing the catalog swaps
// the whole snapshot atomically.
type snapshot struct {
	venues []models.Venue
	byID   map[uuid.UUID]int
}

// Store holds the venue catalog for a session. Reads are lock-free against
// an atomic snapshot; the catalog is only ever replaced wholesale.
type Store struct {
	current atomic.Pointer[snapshot]
}

// New builds a catalog store from the given venues, validating every entry.
// The input slice is copied; the catalog keeps the given order, which the
// search engine and stable ranking rely on.
func New(venues []models.Venue) (*Store, error) {
	snap, err := buildSnapshot(venues)
	if err != nil {
		return nil, err
	}

	s := &Store{}
	s.current.Store(snap)
	return s, nil
}

// buildSnapshot validates venues and constructs the id index.
func buildSnapshot(venues []models.Venue) (*snapshot, error) {
	copied := make([]models.Venue, len(venues))
	copy(copied, venues)

	byID := make(map[uuid.UUID]int, len(copied))
	for i := range copied {
		v := &copied[i]

		if v.ID == uuid.Nil {
			return nil, fmt.Errorf("venue %q (index %d): id is required", v.Name, i)
		}
		if prev, dup := byID[v.ID]; dup {
			return nil, fmt.Errorf("venue %q (index %d): id %s already used by %q",
				v.Name, i, v.ID, copied[prev].Name)
		}
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(v); err != nil {
			return nil, fmt.Errorf("venue %q (index %d): %w", v.Name, i, err)
		}

		byID[v.ID] = i
	}

	return &snapshot{venues: copied, byID: byID}, nil
}

// Venues returns the catalog in its original order. The returned slice is a
// copy; callers may reorder it freely.
func (s *Store) Venues() []models.Venue {
	snap := s.current.Load()
	out := make([]models.Venue, len(snap.venues))
	copy(out, snap.venues)
	return out
}

// Len returns the number of venues in the catalog.
func (s *Store) Len() int {
	return len(s.current.Load().venues)
}

// Get returns the venue with the given id, or ErrNotFound.
func (s *Store) Get(id uuid.UUID) (models.Venue, error) {
	snap := s.current.Load()
	i, ok := snap.byID[id]
	if !ok {
		return models.Venue{}, ErrNotFound
	}
	return snap.venues[i], nil
}

// Has reports whether the catalog contains the given id.
func (s *Store) Has(id uuid.UUID) bool {
	_, ok := s.current.Load().byID[id]
	return ok
}

// Replace validates the new venues and swaps them in atomically. In-flight
// readers finish against the old snapshot; on validation failure the current
// catalog is left untouched.
func (s *Store) Replace(venues []models.Venue) error {
	snap, err := buildSnapshot(venues)
	if err != nil {
		return err
	}
	s.current.Store(snap)
	return nil
}
