// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package recommend

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ithacaround/engine/models"
)

// Query describes a search over the catalog. The zero value matches every
// venue.
type Query struct {
	// Text is matched case-insensitively as a substring of the venue
	// name, description, or any cuisine label. Empty means no text filter.
	Text string

	// Category, when set, keeps only venues with exactly that category.
	Category *models.Category
}

// fold performs Unicode case folding so queries like "CAFÉ" and "café"
// compare equal. Casers are not safe for concurrent use, so each call
// builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Search filters venues by category and free text, preserving the input
// order. The category filter and the text filter compose with AND. An empty
// catalog or a query with no matches yields an empty result, never an error.
func Search(venues []models.Venue, q Query) []models.Venue {
	needle := fold(strings.TrimSpace(q.Text))

	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if q.Category != nil && v.Category != *q.Category {
			continue
		}
		if needle != "" && !matchesText(v, needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// matchesText reports whether the folded needle appears in the venue's
// name, description, or any cuisine label.
func matchesText(v models.Venue, needle string) bool {
	if strings.Contains(fold(v.Name), needle) {
		return true
	}
	if strings.Contains(fold(v.Description), needle) {
		return true
	}
	for _, c := range v.CuisineTypes {
		if strings.Contains(fold(string(c)), needle) {
			return true
		}
	}
	return false
}
