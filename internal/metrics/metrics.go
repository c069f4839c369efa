// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scoring and search metrics.
	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ithacaround_recommend_requests_total",
			Help: "Total number of recommendation rankings computed",
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ithacaround_recommend_duration_seconds",
			Help:    "Time spent ranking the catalog against a profile",
			Buckets: prometheus.DefBuckets,
		},
	)

	SearchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ithacaround_search_requests_total",
			Help: "Total number of catalog searches",
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ithacaround_search_duration_seconds",
			Help:    "Time spent filtering the catalog",
			Buckets: prometheus.DefBuckets,
		},
	)

	// User state metrics.
	ProfileUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ithacaround_profile_updates_total",
			Help: "Total number of preference profile mutations",
		},
	)

	FavoriteToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ithacaround_favorite_toggles_total",
			Help: "Total number of favorite toggles",
		},
		[]string{"state"}, // "added", "removed"
	)

	// Persistence health metrics.
	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ithacaround_persistence_failures_total",
			Help: "Total number of non-fatal state write failures",
		},
		[]string{"component"}, // "profile", "favorites"
	)

	DecodeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ithacaround_decode_fallbacks_total",
			Help: "Total number of corrupt state blobs replaced by defaults",
		},
		[]string{"component"},
	)

	// Catalog metrics.
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ithacaround_catalog_venues",
			Help: "Number of venues in the active catalog",
		},
	)

	CatalogReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ithacaround_catalog_reloads_total",
			Help: "Total number of catalog replacements",
		},
	)
)

// TimeSince observes the elapsed time since start on the histogram.
func TimeSince(h prometheus.Histogram, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
