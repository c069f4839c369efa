// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package models defines the core data model for the venue engine.
//
// The model consists of three parts:
//
//   - Venue: an immutable catalog entry identified by a stable UUID, carrying
//     a closed category enumeration, tag sets (cuisines, atmosphere, features),
//     a price range, coordinates, and rating data.
//   - PreferenceProfile: a user's mutable taste settings used by the scoring
//     engine to rank the catalog.
//   - Set: a generic tag set with deterministic JSON encoding, used both for
//     venue tags and profile preferences.
//
// All enumerations are closed: parsing or decoding an unknown label is an
// error, never a silent drop. Enumeration values serialize to their display
// labels (the same labels the original mobile app persisted), so stored
// profiles and catalogs remain hand-editable and forward compatible.
package models
