// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package favorites manages the user's bookmarked venue ids.
//
// Favorites are a plain id set, independent of the preference profile and
// of scoring. Ids are not checked against the catalog: a favorite may
// reference a venue that was removed in a catalog reload, and it simply
// drops out of List until the venue returns. Persistence follows the same
// non-critical rules as the profile: corrupt state falls back to empty with
// a warning, and failed writes leave memory authoritative.
package favorites
