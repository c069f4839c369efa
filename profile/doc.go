// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package profile manages a user's preference profile and its persistence.
//
// Preference state is non-critical: a missing or undecodable stored blob is
// replaced with defaults (logged at warn level, never fatal), and a failed
// write leaves the in-memory profile authoritative for the rest of the
// session. Mutations always go through Update so the persisted copy and the
// in-memory copy cannot diverge after a successful write.
package profile
