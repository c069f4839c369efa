// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package profile

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/store"
	"github.com/ithacaround/engine/models"
)

// failingStore wraps a working store and fails writes on demand.
type failingStore struct {
	store.Store
	setErr error
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

// captureWarnings routes the global logger into a buffer for the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func TestLoadDefaultsWhenNothingStored(t *testing.T) {
	m := New(store.NewMemoryStore())

	got := m.Load(context.Background())
	if !got.Equal(models.DefaultProfile()) {
		t.Errorf("Load = %+v, want defaults", got)
	}
}

func TestUpdatePersistsAndRoundTrips(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	m := New(st)
	updated := m.Update(ctx, func(p *models.PreferenceProfile) {
		p.FavoriteCuisines.Add(models.CuisineThai)
		p.MaxDistance = 2.5
	})
	if !updated.FavoriteCuisines.Has(models.CuisineThai) {
		t.Error("Update did not apply the mutation")
	}

	// A fresh manager over the same store sees the persisted state.
	reloaded := New(st).Load(ctx)
	if !reloaded.Equal(updated) {
		t.Errorf("reloaded = %+v, want %+v", reloaded, updated)
	}
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	buf := captureWarnings(t)

	st := store.NewMemoryStore()
	ctx := context.Background()
	if err := st.Set(ctx, Key, []byte("{not json")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	got := New(st).Load(ctx)
	if !got.Equal(models.DefaultProfile()) {
		t.Errorf("Load of corrupt blob = %+v, want defaults", got)
	}
	if !strings.Contains(buf.String(), "corrupt") {
		t.Errorf("expected a corruption warning, log output: %s", buf.String())
	}
}

func TestUpdateSurvivesWriteFailure(t *testing.T) {
	buf := captureWarnings(t)

	st := &failingStore{Store: store.NewMemoryStore(), setErr: errors.New("disk full")}
	ctx := context.Background()

	m := New(st)
	updated := m.Update(ctx, func(p *models.PreferenceProfile) {
		p.PreferredAtmospheres.Add(models.AtmosphereQuiet)
	})
	if !updated.PreferredAtmospheres.Has(models.AtmosphereQuiet) {
		t.Error("Update must succeed in memory despite the write failure")
	}
	if got := m.Load(ctx); !got.Equal(updated) {
		t.Error("in-memory state must remain authoritative after a failed write")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected the write failure to be logged, got: %s", buf.String())
	}
}

func TestSaveReturnsWriteError(t *testing.T) {
	st := &failingStore{Store: store.NewMemoryStore(), setErr: errors.New("read-only store")}
	m := New(st)

	if err := m.Save(context.Background()); err == nil {
		t.Error("Save should surface the write error")
	}
}

func TestPersistedFieldNames(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	New(st).Update(ctx, func(p *models.PreferenceProfile) {
		p.FavoriteCuisines.Add(models.CuisinePizza)
	})

	raw, err := st.Get(ctx, Key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("decode persisted blob: %v", err)
	}
	for _, want := range []string{
		"favoriteCuisines",
		"preferredPriceRanges",
		"preferredAtmospheres",
		"importantFeatures",
		"dietaryRestrictions",
		"maxDistance",
	} {
		if _, ok := fields[want]; !ok {
			t.Errorf("persisted blob missing field %q", want)
		}
	}
}

func TestLoadReturnsIndependentCopy(t *testing.T) {
	m := New(store.NewMemoryStore())
	ctx := context.Background()

	first := m.Load(ctx)
	first.FavoriteCuisines.Add(models.CuisineDessert)

	if m.Load(ctx).FavoriteCuisines.Has(models.CuisineDessert) {
		t.Error("mutating a loaded profile leaked into the manager")
	}
}

func TestNewKeyedIsolatesUsers(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	alice := NewKeyed(st, "user:alice:preferences")
	bob := NewKeyed(st, "user:bob:preferences")

	alice.Update(ctx, func(p *models.PreferenceProfile) {
		p.FavoriteCuisines.Add(models.CuisineIndian)
	})

	if bob.Load(ctx).FavoriteCuisines.Has(models.CuisineIndian) {
		t.Error("profiles under different keys must not share state")
	}
}
