// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package events is the in-process change notification bus.
//
// Embedding applications (a UI layer, typically) subscribe to topics to
// learn when the profile, favorites, or catalog change, instead of polling
// the session. The bus is a Watermill gochannel pub/sub, so subscribers get
// the standard Watermill message contract: ack every message, and expect
// delivery only for subscriptions opened before the publish.
package events
