// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package recommend scores, ranks, and filters venues against a preference
// profile.
//
// All functions here are pure: they read the catalog and profile and return
// new slices, never mutating either. That makes them safe to call
// concurrently from any number of goroutines against the same catalog
// snapshot.
//
// Scoring is a weighted sum of independent signals (cuisine, price,
// atmosphere, feature overlap plus a continuous rating boost), so a venue
// with zero preference overlap still ranks by its rating. Ties keep the
// catalog's original relative order.
package recommend
