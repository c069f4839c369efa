// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package metrics holds the engine's Prometheus collectors.
//
// Collectors register against the default registry at package load, so an
// embedding application only has to expose the default gatherer to scrape
// them. The engine itself never serves HTTP.
package metrics
