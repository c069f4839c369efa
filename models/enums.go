// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Category classifies a venue. The set is closed; unknown labels are a
// load-time error.
type Category string

const (
	CategoryRestaurant    Category = "Restaurant"
	CategoryCafe          Category = "Cafe"
	CategoryBar           Category = "Bar"
	CategoryStudySpot     Category = "Study Spot"
	CategoryOutdoor       Category = "Outdoor"
	CategoryEntertainment Category = "Entertainment"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryBar,
	CategoryStudySpot,
	CategoryOutdoor,
	CategoryEntertainment,
}

// Cuisine tags the type of food a venue serves. A venue may carry several
// cuisine tags or none (e.g. outdoor venues).
type Cuisine string

const (
	CuisineAmerican      Cuisine = "American"
	CuisineItalian       Cuisine = "Italian"
	CuisineAsian         Cuisine = "Asian"
	CuisineMexican       Cuisine = "Mexican"
	CuisineIndian        Cuisine = "Indian"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineVegetarian    Cuisine = "Vegetarian"
	CuisineVegan         Cuisine = "Vegan"
	CuisinePizza         Cuisine = "Pizza"
	CuisineCoffee        Cuisine = "Coffee"
	CuisineDessert       Cuisine = "Dessert"
	CuisineThai          Cuisine = "Thai"
	CuisineChinese       Cuisine = "Chinese"
	CuisineJapanese      Cuisine = "Japanese"
)

// AllCuisines lists every valid cuisine tag in display order.
var AllCuisines = []Cuisine{
	CuisineAmerican,
	CuisineItalian,
	CuisineAsian,
	CuisineMexican,
	CuisineIndian,
	CuisineMediterranean,
	CuisineVegetarian,
	CuisineVegan,
	CuisinePizza,
	CuisineCoffee,
	CuisineDessert,
	CuisineThai,
	CuisineChinese,
	CuisineJapanese,
}

// PriceRange buckets a venue's typical cost per person.
type PriceRange string

const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
)

// AllPriceRanges lists every valid price range from cheapest to priciest.
var AllPriceRanges = []PriceRange{
	PriceBudget,
	PriceModerate,
	PriceExpensive,
}

// Band returns the human-readable dollar band for the price range.
func (p PriceRange) Band() string {
	switch p {
	case PriceBudget:
		return "Under $15"
	case PriceModerate:
		return "$15-25"
	case PriceExpensive:
		return "$25+"
	default:
		return "unknown"
	}
}

// Atmosphere tags the feel of a venue.
type Atmosphere string

const (
	AtmosphereCasual         Atmosphere = "Casual"
	AtmosphereUpscale        Atmosphere = "Upscale"
	AtmosphereRomantic       Atmosphere = "Romantic"
	AtmosphereStudyFriendly  Atmosphere = "Study Friendly"
	AtmosphereLively         Atmosphere = "Lively"
	AtmosphereQuiet          Atmosphere = "Quiet"
	AtmosphereFamilyFriendly Atmosphere = "Family Friendly"
	AtmosphereNature         Atmosphere = "Nature"
)

// AllAtmospheres lists every valid atmosphere tag in display order.
var AllAtmospheres = []Atmosphere{
	AtmosphereCasual,
	AtmosphereUpscale,
	AtmosphereRomantic,
	AtmosphereStudyFriendly,
	AtmosphereLively,
	AtmosphereQuiet,
	AtmosphereFamilyFriendly,
	AtmosphereNature,
}

// Feature tags an amenity a venue offers.
type Feature string

const (
	FeatureWiFi                 Feature = "WiFi"
	FeatureOutdoorSeating       Feature = "Outdoor Seating"
	FeatureLateNight            Feature = "Late Night"
	FeatureDelivery             Feature = "Delivery"
	FeatureParking              Feature = "Parking"
	FeatureWheelchairAccessible Feature = "Wheelchair Accessible"
	FeatureGroupFriendly        Feature = "Group Friendly"
	FeatureDateSpot             Feature = "Date Spot"
)

// AllFeatures lists every valid feature tag in display order.
var AllFeatures = []Feature{
	FeatureWiFi,
	FeatureOutdoorSeating,
	FeatureLateNight,
	FeatureDelivery,
	FeatureParking,
	FeatureWheelchairAccessible,
	FeatureGroupFriendly,
	FeatureDateSpot,
}

// UnknownTagError reports a label that is not part of a closed enumeration.
type UnknownTagError struct {
	// Kind is the enumeration name (e.g. "category", "cuisine").
	Kind string

	// Label is the offending value.
	Label string
}

// Error implements the error interface.
func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s tag %q", e.Kind, e.Label)
}

// enumIndex builds a label lookup table for a closed enumeration.
func enumIndex[T ~string](values []T) map[string]T {
	idx := make(map[string]T, len(values))
	for _, v := range values {
		idx[string(v)] = v
	}
	return idx
}

var (
	categoryIndex   = enumIndex(AllCategories)
	cuisineIndex    = enumIndex(AllCuisines)
	priceIndex      = enumIndex(AllPriceRanges)
	atmosphereIndex = enumIndex(AllAtmospheres)
	featureIndex    = enumIndex(AllFeatures)
)

// parseEnum resolves a display label against a closed enumeration.
func parseEnum[T ~string](kind, label string, idx map[string]T) (T, error) {
	v, ok := idx[label]
	if !ok {
		var zero T
		return zero, &UnknownTagError{Kind: kind, Label: label}
	}
	return v, nil
}

// ParseCategory resolves a category display label.
func ParseCategory(label string) (Category, error) {
	return parseEnum("category", label, categoryIndex)
}

// ParseCuisine resolves a cuisine display label.
func ParseCuisine(label string) (Cuisine, error) {
	return parseEnum("cuisine", label, cuisineIndex)
}

// ParsePriceRange resolves a price range display label.
func ParsePriceRange(label string) (PriceRange, error) {
	return parseEnum("price range", label, priceIndex)
}

// ParseAtmosphere resolves an atmosphere display label.
func ParseAtmosphere(label string) (Atmosphere, error) {
	return parseEnum("atmosphere", label, atmosphereIndex)
}

// ParseFeature resolves a feature display label.
func ParseFeature(label string) (Feature, error) {
	return parseEnum("feature", label, featureIndex)
}

// Valid reports whether the category is part of the closed set.
func (c Category) Valid() bool { _, ok := categoryIndex[string(c)]; return ok }

// Valid reports whether the cuisine is part of the closed set.
func (c Cuisine) Valid() bool { _, ok := cuisineIndex[string(c)]; return ok }

// Valid reports whether the price range is part of the closed set.
func (p PriceRange) Valid() bool { _, ok := priceIndex[string(p)]; return ok }

// Valid reports whether the atmosphere is part of the closed set.
func (a Atmosphere) Valid() bool { _, ok := atmosphereIndex[string(a)]; return ok }

// Valid reports whether the feature is part of the closed set.
func (f Feature) Valid() bool { _, ok := featureIndex[string(f)]; return ok }

// unmarshalEnum decodes a JSON string and resolves it against an enumeration.
func unmarshalEnum[T ~string](data []byte, kind string, idx map[string]T, out *T) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	v, err := parseEnum(kind, label, idx)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// UnmarshalJSON enforces the closed category set.
func (c *Category) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "category", categoryIndex, c)
}

// UnmarshalJSON enforces the closed cuisine set.
func (c *Cuisine) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "cuisine", cuisineIndex, c)
}

// UnmarshalJSON enforces the closed price range set.
func (p *PriceRange) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "price range", priceIndex, p)
}

// UnmarshalJSON enforces the closed atmosphere set.
func (a *Atmosphere) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "atmosphere", atmosphereIndex, a)
}

// UnmarshalJSON enforces the closed feature set.
func (f *Feature) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "feature", featureIndex, f)
}
