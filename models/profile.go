// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package models

// DefaultMaxDistance is the default travel radius in miles.
const DefaultMaxDistance = 5.0

// PreferenceProfile holds a user's saved taste settings. JSON field names
// match the original app's persisted format so existing blobs decode
// unchanged and remain hand-editable.
//
// DietaryRestrictions and MaxDistance are carried in the model but are not
// consulted by the scoring engine; they are reserved for a future hard
// constraint layer.
type PreferenceProfile struct {
	FavoriteCuisines     Set[Cuisine]    `json:"favoriteCuisines"`
	PreferredPriceRanges Set[PriceRange] `json:"preferredPriceRanges"`
	PreferredAtmospheres Set[Atmosphere] `json:"preferredAtmospheres"`
	ImportantFeatures    Set[Feature]    `json:"importantFeatures"`
	DietaryRestrictions  Set[Cuisine]    `json:"dietaryRestrictions"`

	// MaxDistance is the travel radius in miles.
	MaxDistance float64 `json:"maxDistance"`
}

// DefaultProfile returns the profile a new user starts with: budget and
// moderate price ranges preferred, every other set empty.
func DefaultProfile() PreferenceProfile {
	return PreferenceProfile{
		FavoriteCuisines:     NewSet[Cuisine](),
		PreferredPriceRanges: NewSet(PriceBudget, PriceModerate),
		PreferredAtmospheres: NewSet[Atmosphere](),
		ImportantFeatures:    NewSet[Feature](),
		DietaryRestrictions:  NewSet[Cuisine](),
		MaxDistance:          DefaultMaxDistance,
	}
}

// Clone returns an independent copy of the profile. The scoring engine and
// session layer hand out clones so callers can never mutate shared state.
func (p PreferenceProfile) Clone() PreferenceProfile {
	return PreferenceProfile{
		FavoriteCuisines:     p.FavoriteCuisines.Clone(),
		PreferredPriceRanges: p.PreferredPriceRanges.Clone(),
		PreferredAtmospheres: p.PreferredAtmospheres.Clone(),
		ImportantFeatures:    p.ImportantFeatures.Clone(),
		DietaryRestrictions:  p.DietaryRestrictions.Clone(),
		MaxDistance:          p.MaxDistance,
	}
}

// Equal reports whether two profiles hold identical settings.
func (p PreferenceProfile) Equal(other PreferenceProfile) bool {
	return p.FavoriteCuisines.Equal(other.FavoriteCuisines) &&
		p.PreferredPriceRanges.Equal(other.PreferredPriceRanges) &&
		p.PreferredAtmospheres.Equal(other.PreferredAtmospheres) &&
		p.ImportantFeatures.Equal(other.ImportantFeatures) &&
		p.DietaryRestrictions.Equal(other.DietaryRestrictions) &&
		p.MaxDistance == other.MaxDistance
}

// Normalize returns the profile with all nil sets replaced by empty ones so
// callers can mutate a decoded profile without nil map panics.
func (p PreferenceProfile) Normalize() PreferenceProfile {
	if p.FavoriteCuisines == nil {
		p.FavoriteCuisines = NewSet[Cuisine]()
	}
	if p.PreferredPriceRanges == nil {
		p.PreferredPriceRanges = NewSet[PriceRange]()
	}
	if p.PreferredAtmospheres == nil {
		p.PreferredAtmospheres = NewSet[Atmosphere]()
	}
	if p.ImportantFeatures == nil {
		p.ImportantFeatures = NewSet[Feature]()
	}
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = NewSet[Cuisine]()
	}
	return p
}
