// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package recommend

import (
	"sort"

	"github.com/ithacaround/engine/models"
)

// ratingCeiling is the top of the venue rating scale.
const ratingCeiling = 5.0

// Breakdown records each signal's contribution to a venue's score.
// Useful for explaining why a venue ranked where it did.
type Breakdown struct {
	// Cuisine is the cuisine-match contribution (0 or the full weight).
	Cuisine float64 `json:"cuisine"`

	// Price is the price-match contribution.
	Price float64 `json:"price"`

	// Atmosphere is the atmosphere-match contribution.
	Atmosphere float64 `json:"atmosphere"`

	// Feature is the feature-match contribution.
	Feature float64 `json:"feature"`

	// Rating is the continuous rating boost, always applied.
	Rating float64 `json:"rating"`
}

// Total sums the signal contributions.
func (b Breakdown) Total() float64 {
	return b.Cuisine + b.Price + b.Atmosphere + b.Feature + b.Rating
}

// ScoredVenue pairs a venue with its score and per-signal breakdown.
type ScoredVenue struct {
	Venue     models.Venue `json:"venue"`
	Score     float64      `json:"score"`
	Breakdown Breakdown    `json:"breakdown"`
}

// Engine ranks and scores venues with a fixed set of weights. The zero
// value is not usable; construct with New.
type Engine struct {
	weights Weights
}

// New creates an engine with the given weights.
func New(weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// NewDefault creates an engine with the standard weights.
func NewDefault() *Engine {
	return &Engine{weights: DefaultWeights()}
}

// Weights returns the engine's signal weights.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the venue's match score against the profile. Each signal
// contributes independently; a venue with no preference overlap still earns
// its rating boost, so empty profiles degrade to rating order.
func (e *Engine) Score(venue models.Venue, profile models.PreferenceProfile) ScoredVenue {
	var b Breakdown

	if profile.FavoriteCuisines.ContainsAny(venue.CuisineTypes) {
		b.Cuisine = e.weights.Cuisine
	}
	if profile.PreferredPriceRanges.Has(venue.PriceRange) {
		b.Price = e.weights.Price
	}
	if profile.PreferredAtmospheres.ContainsAny(venue.Atmosphere) {
		b.Atmosphere = e.weights.Atmosphere
	}
	if profile.ImportantFeatures.ContainsAny(venue.Features) {
		b.Feature = e.weights.Feature
	}
	b.Rating = venue.Rating / ratingCeiling * e.weights.RatingBoost

	return ScoredVenue{Venue: venue, Score: b.Total(), Breakdown: b}
}

// Rank scores every venue and returns them ordered by descending score.
// Ties keep the input's relative order, so two venues with identical scores
// appear in catalog order. The input slice is never modified.
func (e *Engine) Rank(venues []models.Venue, profile models.PreferenceProfile) []ScoredVenue {
	scored := make([]ScoredVenue, len(venues))
	for i, v := range venues {
		scored[i] = e.Score(v, profile)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// RankVenues is Rank without the score annotations, for callers that only
// want the ordering.
func (e *Engine) RankVenues(venues []models.Venue, profile models.PreferenceProfile) []models.Venue {
	scored := e.Rank(venues, profile)
	out := make([]models.Venue, len(scored))
	for i, s := range scored {
		out[i] = s.Venue
	}
	return out
}
