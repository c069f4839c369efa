// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package store provides the local key-value persistence layer for user
// state (preference profiles and favorites).
//
// Two implementations are provided: a BadgerDB-backed store for durable
// persistence across process restarts, and an in-memory store for tests and
// ephemeral sessions. Values are opaque blobs; serialization is the caller's
// concern.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a minimal key-value store for user state blobs.
//
// Reads and writes are treated as fast local calls; implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
