// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package session is the consumer-facing surface of the engine.
//
// A Session ties one user's catalog, preference profile, and favorites
// together behind a single API, the one a UI layer talks to. Reads are safe
// from any goroutine; mutations to a session's profile and favorites are
// serialized internally, so concurrent toggles cannot lose updates.
//
// State changes are announced on the session's event bus (Subscribe) so
// consumers can react without polling.
package session
