// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package recommend

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ithacaround/engine/models"
)

func searchFixture() []models.Venue {
	falls := models.Venue{
		ID:          uuid.New(),
		Name:        "Ithaca Falls",
		Description: "Beautiful waterfall and swimming hole.",
		Category:    models.CategoryOutdoor,
		PriceRange:  models.PriceBudget,
		Rating:      4.7,
	}
	return []models.Venue{ctb(), moosewood(), falls}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	venues := searchFixture()
	got := Search(venues, Query{})
	if len(got) != len(venues) {
		t.Fatalf("len = %d, want %d", len(got), len(venues))
	}
	for i := range venues {
		if got[i].Name != venues[i].Name {
			t.Errorf("position %d = %q, want %q (order must be preserved)", i, got[i].Name, venues[i].Name)
		}
	}
}

func TestSearchByName(t *testing.T) {
	got := Search(searchFixture(), Query{Text: "bagel"})
	if len(got) != 1 || got[0].Name != "Collegetown Bagels" {
		t.Errorf("Search(bagel) = %v, want only Collegetown Bagels", names(got))
	}
}

func TestSearchCaseFolding(t *testing.T) {
	for _, text := range []string{"BAGEL", "Bagel", "bAgEl"} {
		got := Search(searchFixture(), Query{Text: text})
		if len(got) != 1 {
			t.Errorf("Search(%q) matched %d venues, want 1", text, len(got))
		}
	}
}

func TestSearchByDescription(t *testing.T) {
	got := Search(searchFixture(), Query{Text: "waterfall"})
	if len(got) != 1 || got[0].Name != "Ithaca Falls" {
		t.Errorf("Search(waterfall) = %v, want only Ithaca Falls", names(got))
	}
}

func TestSearchByCuisineLabel(t *testing.T) {
	got := Search(searchFixture(), Query{Text: "vegetarian"})
	if len(got) != 1 || got[0].Name != "Moosewood Restaurant" {
		t.Errorf("Search(vegetarian) = %v, want only Moosewood", names(got))
	}

	// Substring of a cuisine label also matches.
	got = Search(searchFixture(), Query{Text: "vega"})
	if len(got) != 1 || got[0].Name != "Moosewood Restaurant" {
		t.Errorf("Search(vega) = %v, want only Moosewood", names(got))
	}
}

func TestSearchByCategory(t *testing.T) {
	outdoor := models.CategoryOutdoor
	got := Search(searchFixture(), Query{Category: &outdoor})
	if len(got) != 1 || got[0].Name != "Ithaca Falls" {
		t.Errorf("Search(outdoor) = %v, want only Ithaca Falls", names(got))
	}
}

func TestSearchCategoryAndTextCompose(t *testing.T) {
	restaurant := models.CategoryRestaurant
	got := Search(searchFixture(), Query{Text: "american", Category: &restaurant})
	if len(got) != 1 || got[0].Name != "Moosewood Restaurant" {
		t.Errorf("Search(american, restaurant) = %v, want only Moosewood", names(got))
	}

	// Text matches but category excludes.
	outdoor := models.CategoryOutdoor
	if got := Search(searchFixture(), Query{Text: "bagel", Category: &outdoor}); len(got) != 0 {
		t.Errorf("Search(bagel, outdoor) = %v, want empty", names(got))
	}
}

func TestSearchNoMatches(t *testing.T) {
	if got := Search(searchFixture(), Query{Text: "sushi"}); len(got) != 0 {
		t.Errorf("Search(sushi) = %v, want empty", names(got))
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	if got := Search(nil, Query{Text: "anything"}); len(got) != 0 {
		t.Errorf("Search on empty catalog = %v, want empty", names(got))
	}
}

func TestSearchTrimsWhitespace(t *testing.T) {
	got := Search(searchFixture(), Query{Text: "  bagel  "})
	if len(got) != 1 {
		t.Errorf("whitespace-padded query matched %d venues, want 1", len(got))
	}
}

func names(venues []models.Venue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.Name
	}
	return out
}
