// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package recommend

import "fmt"

// Weights defines the contribution of each scoring signal. The four match
// weights are binary signals (full weight on any overlap); RatingBoost
// scales the venue rating into a continuous tiebreaker.
type Weights struct {
	// Cuisine is awarded in full when the venue shares any cuisine tag
	// with the profile's favorites.
	Cuisine float64 `json:"cuisine" koanf:"cuisine"`

	// Price is awarded in full when the venue's price range is one of the
	// profile's preferred ranges.
	Price float64 `json:"price" koanf:"price"`

	// Atmosphere is awarded in full on any atmosphere tag overlap.
	Atmosphere float64 `json:"atmosphere" koanf:"atmosphere"`

	// Feature is awarded in full on any amenity tag overlap.
	Feature float64 `json:"feature" koanf:"feature"`

	// RatingBoost is the maximum rating contribution; a venue receives
	// (rating / 5) * RatingBoost regardless of preference overlap.
	RatingBoost float64 `json:"rating_boost" koanf:"rating_boost"`
}

// DefaultWeights returns the standard signal weights. Maximum achievable
// score is the sum of all five, 1.1 with the defaults.
func DefaultWeights() Weights {
	return Weights{
		Cuisine:     0.40,
		Price:       0.25,
		Atmosphere:  0.20,
		Feature:     0.15,
		RatingBoost: 0.10,
	}
}

// Max returns the highest score these weights can produce.
func (w Weights) Max() float64 {
	return w.Cuisine + w.Price + w.Atmosphere + w.Feature + w.RatingBoost
}

// Validate rejects negative or all-zero weights.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"cuisine", w.Cuisine},
		{"price", w.Price},
		{"atmosphere", w.Atmosphere},
		{"feature", w.Feature},
		{"rating_boost", w.RatingBoost},
	} {
		if f.value < 0 {
			return fmt.Errorf("weight %s must not be negative, got %v", f.name, f.value)
		}
	}
	if w.Max() == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}
