// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package catalog

import (
	_ "embed"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/ithacaround/engine/models"
)

//go:embed venues.json
var seedData []byte

// Parse decodes a JSON array of venues. Unknown enumeration labels are
// rejected during decoding, before catalog validation runs.
func Parse(data []byte) ([]models.Venue, error) {
	var venues []models.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("parse venues: %w", err)
	}
	return venues, nil
}

// LoadFile reads a venue catalog from a JSON file on disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	venues, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	s, err := New(venues)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in Ithaca seed catalog. The seed ships with the
// binary and is validated like any other catalog; a failure here means the
// embedded data is broken, so it panics rather than returning an error.
func Default() *Store {
	venues, err := Parse(seedData)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed is invalid: %v", err))
	}
	s, err := New(venues)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed is invalid: %v", err))
	}
	return s
}
