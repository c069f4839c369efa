// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package models

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label   string
		want    Category
		wantErr bool
	}{
		{label: "Restaurant", want: CategoryRestaurant},
		{label: "Study Spot", want: CategoryStudySpot},
		{label: "Outdoor", want: CategoryOutdoor},
		{label: "restaurant", wantErr: true}, // labels are case-sensitive
		{label: "Gym", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseCategory(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCategory(%q) = %v, want error", tt.label, got)
				}
				var tagErr *UnknownTagError
				if !errors.As(err, &tagErr) {
					t.Errorf("error %v is not an UnknownTagError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestEnumSetsAreClosed(t *testing.T) {
	if got := len(AllCuisines); got != 14 {
		t.Errorf("cuisine enumeration has %d tags, want 14", got)
	}
	if got := len(AllAtmospheres); got != 8 {
		t.Errorf("atmosphere enumeration has %d tags, want 8", got)
	}
	if got := len(AllFeatures); got != 8 {
		t.Errorf("feature enumeration has %d tags, want 8", got)
	}
	if got := len(AllCategories); got != 6 {
		t.Errorf("category enumeration has %d tags, want 6", got)
	}
	if got := len(AllPriceRanges); got != 3 {
		t.Errorf("price range enumeration has %d tags, want 3", got)
	}
}

func TestPriceRangeBand(t *testing.T) {
	tests := []struct {
		price PriceRange
		want  string
	}{
		{PriceBudget, "Under $15"},
		{PriceModerate, "$15-25"},
		{PriceExpensive, "$25+"},
		{PriceRange("$$$$"), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.price.Band(); got != tt.want {
			t.Errorf("Band(%q) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestEnumUnmarshalRejectsUnknownLabels(t *testing.T) {
	var c Cuisine
	if err := json.Unmarshal([]byte(`"Fusion"`), &c); err == nil {
		t.Error("decoding unknown cuisine label succeeded, want error")
	}

	var a Atmosphere
	if err := json.Unmarshal([]byte(`"Study Friendly"`), &a); err != nil {
		t.Errorf("decoding valid atmosphere label failed: %v", err)
	}
	if a != AtmosphereStudyFriendly {
		t.Errorf("decoded atmosphere = %v, want %v", a, AtmosphereStudyFriendly)
	}
}

func TestEnumMarshalUsesDisplayLabels(t *testing.T) {
	b, err := json.Marshal(FeatureWheelchairAccessible)
	if err != nil {
		t.Fatalf("marshal feature: %v", err)
	}
	if string(b) != `"Wheelchair Accessible"` {
		t.Errorf("marshaled feature = %s, want %q", b, "Wheelchair Accessible")
	}
}
