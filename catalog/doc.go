// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package catalog holds the immutable venue catalog for a session.
//
// A catalog is validated in full at construction: duplicate ids, unknown
// enumeration tags, and out-of-range fields fail fast with an error naming
// the offending venue and field. Partially valid catalogs are never admitted.
//
// After construction the catalog is immutable. Reloading is done by building
// a new catalog and swapping it in wholesale (Store.Replace), so concurrent
// readers always observe one consistent snapshot, never a mix of old and
// new venues.
package catalog
