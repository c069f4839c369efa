// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package favorites

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ithacaround/engine/catalog"
	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/store"
)

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

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func TestToggleRoundTrip(t *testing.T) {
	m := New(store.NewMemoryStore())
	ctx := context.Background()
	id := uuid.New()

	if m.IsFavorite(ctx, id) {
		t.Fatal("fresh manager should have no favorites")
	}
	if !m.Toggle(ctx, id) {
		t.Error("first Toggle should report the id as now favorited")
	}
	if !m.IsFavorite(ctx, id) {
		t.Error("IsFavorite should be true after Toggle")
	}
	if m.Toggle(ctx, id) {
		t.Error("second Toggle should report the id as removed")
	}
	if m.IsFavorite(ctx, id) {
		t.Error("double Toggle must return to the original state")
	}
}

func TestTogglePersistsAcrossManagers(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	New(st).Toggle(ctx, id)

	if !New(st).IsFavorite(ctx, id) {
		t.Error("favorites should survive a manager restart over the same store")
	}
}

func TestToggleAcceptsUnknownIDs(t *testing.T) {
	m := New(store.NewMemoryStore())
	ctx := context.Background()

	// Not in any catalog; accepted anyway.
	phantom := uuid.New()
	m.Toggle(ctx, phantom)
	if !m.IsFavorite(ctx, phantom) {
		t.Error("ids outside the catalog must still be toggleable")
	}

	// Unknown ids do not surface in List.
	if got := m.List(ctx, catalog.Default()); len(got) != 0 {
		t.Errorf("List includes phantom venues: %v", got)
	}
}

func TestListFollowsCatalogOrder(t *testing.T) {
	m := New(store.NewMemoryStore())
	ctx := context.Background()
	cat := catalog.Default()
	venues := cat.Venues()

	// Toggle in reverse catalog order.
	m.Toggle(ctx, venues[4].ID)
	m.Toggle(ctx, venues[1].ID)
	m.Toggle(ctx, venues[0].ID)

	got := m.List(ctx, cat)
	want := []string{venues[0].Name, venues[1].Name, venues[4].Name}
	if len(got) != len(want) {
		t.Fatalf("List returned %d venues, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	buf := captureWarnings(t)

	st := store.NewMemoryStore()
	ctx := context.Background()
	if err := st.Set(ctx, Key, []byte("[[[")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	m := New(st)
	if m.Count(ctx) != 0 {
		t.Error("corrupt favorites should fall back to empty")
	}
	if !strings.Contains(buf.String(), "corrupt") {
		t.Errorf("expected a corruption warning, log output: %s", buf.String())
	}
}

func TestToggleSurvivesWriteFailure(t *testing.T) {
	buf := captureWarnings(t)

	st := &failingStore{Store: store.NewMemoryStore(), setErr: errors.New("disk full")}
	m := New(st)
	ctx := context.Background()
	id := uuid.New()

	if !m.Toggle(ctx, id) {
		t.Error("Toggle must succeed in memory despite the write failure")
	}
	if !m.IsFavorite(ctx, id) {
		t.Error("in-memory state must remain authoritative after a failed write")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected the write failure to be logged, got: %s", buf.String())
	}
}

func TestKeyedManagersAreIsolated(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	alice := NewKeyed(st, "user:alice:favorites")
	bob := NewKeyed(st, "user:bob:favorites")

	alice.Toggle(ctx, id)
	if bob.IsFavorite(ctx, id) {
		t.Error("favorites under different keys must not share state")
	}
}
