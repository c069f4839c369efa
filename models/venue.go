// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Venue is a single discoverable place in the catalog. Venues are immutable
// once loaded; the catalog is only ever replaced wholesale, never patched.
type Venue struct {
	// ID uniquely identifies the venue across the catalog for its lifetime.
	ID uuid.UUID `json:"id" validate:"required"`

	// Name is the venue's display name.
	Name string `json:"name" validate:"required"`

	// Description is free text shown on venue cards and detail views.
	Description string `json:"description"`

	// Address is the street address.
	Address string `json:"address"`

	// Hours is a free-text opening hours string.
	Hours string `json:"hours"`

	// ImageURL optionally references a display image.
	ImageURL string `json:"imageURL,omitempty"`

	// Category is the venue's single closed-set category.
	Category Category `json:"category" validate:"required"`

	// CuisineTypes holds zero or more cuisine tags. Outdoor venues
	// typically carry none.
	CuisineTypes []Cuisine `json:"cuisineTypes"`

	// PriceRange buckets the typical cost per person.
	PriceRange PriceRange `json:"priceRange" validate:"required"`

	// Atmosphere holds zero or more atmosphere tags.
	Atmosphere []Atmosphere `json:"atmosphere"`

	// Features holds zero or more amenity tags.
	Features []Feature `json:"features"`

	// Latitude and Longitude locate the venue geographically.
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`

	// Rating is the aggregate review rating in [0, 5].
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`

	// ReviewCount is the number of reviews behind the rating.
	ReviewCount int `json:"reviewCount" validate:"gte=0"`
}

// Validate checks the venue's enumeration fields against their closed sets.
// Range constraints (coordinates, rating, review count) are covered by the
// struct validation tags; this handles what tags cannot express.
func (v *Venue) Validate() error {
	if !v.Category.Valid() {
		return fmt.Errorf("venue %q: %w", v.Name, &UnknownTagError{Kind: "category", Label: string(v.Category)})
	}
	if !v.PriceRange.Valid() {
		return fmt.Errorf("venue %q: %w", v.Name, &UnknownTagError{Kind: "price range", Label: string(v.PriceRange)})
	}
	for _, c := range v.CuisineTypes {
		if !c.Valid() {
			return fmt.Errorf("venue %q: %w", v.Name, &UnknownTagError{Kind: "cuisine", Label: string(c)})
		}
	}
	for _, a := range v.Atmosphere {
		if !a.Valid() {
			return fmt.Errorf("venue %q: %w", v.Name, &UnknownTagError{Kind: "atmosphere", Label: string(a)})
		}
	}
	for _, f := range v.Features {
		if !f.Valid() {
			return fmt.Errorf("venue %q: %w", v.Name, &UnknownTagError{Kind: "feature", Label: string(f)})
		}
	}
	return nil
}
