// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ithacaround/engine/catalog"
	"github.com/ithacaround/engine/favorites"
	"github.com/ithacaround/engine/internal/events"
	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/internal/metrics"
	"github.com/ithacaround/engine/internal/store"
	"github.com/ithacaround/engine/models"
	"github.com/ithacaround/engine/profile"
	"github.com/ithacaround/engine/recommend"
)

// Event topics re-exported for subscribers.
const (
	TopicProfileUpdated   = events.TopicProfileUpdated
	TopicFavoritesUpdated = events.TopicFavoritesUpdated
	TopicCatalogReplaced  = events.TopicCatalogReplaced
)

// Options configures a session. The zero value gives an in-memory session
// over the built-in seed catalog with standard scoring weights.
type Options struct {
	// Store persists the profile and favorites. Defaults to an in-memory
	// store that lives only as long as the session.
	Store store.Store

	// Catalog is the venue catalog. Defaults to the built-in seed.
	Catalog *catalog.Store

	// Weights are the scoring weights. The zero value means defaults.
	Weights recommend.Weights

	// OwnStore closes the store together with the session.
	OwnStore bool
}

// Session is one user's view of the engine.
type Session struct {
	catalog   *catalog.Store
	engine    *recommend.Engine
	profiles  *profile.Manager
	favorites *favorites.Manager
	bus       *events.Bus
	store     store.Store
	ownStore  bool
	log       zerolog.Logger
}

// New creates a session from the given options.
func New(opts Options) (*Session, error) {
	st := opts.Store
	ownStore := opts.OwnStore
	if st == nil {
		st = store.NewMemoryStore()
		ownStore = true
	}

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	weights := opts.Weights
	if weights == (recommend.Weights{}) {
		weights = recommend.DefaultWeights()
	}
	engine, err := recommend.New(weights)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	metrics.CatalogSize.Set(float64(cat.Len()))

	return &Session{
		catalog:   cat,
		engine:    engine,
		profiles:  profile.New(st),
		favorites: favorites.New(st),
		bus:       events.NewBus(),
		store:     st,
		ownStore:  ownStore,
		log:       logging.With().Str("component", "session").Logger(),
	}, nil
}

// Catalog returns every venue in catalog order.
func (s *Session) Catalog() []models.Venue {
	return s.catalog.Venues()
}

// Venue returns one venue by id, or catalog.ErrNotFound.
func (s *Session) Venue(id uuid.UUID) (models.Venue, error) {
	return s.catalog.Get(id)
}

// Recommend ranks the full catalog against the current profile, best match
// first. Callers wanting a top-N take a prefix of the result.
func (s *Session) Recommend(ctx context.Context) []recommend.ScoredVenue {
	start := time.Now()
	defer metrics.TimeSince(metrics.RecommendDuration, start)
	metrics.RecommendRequests.Inc()

	return s.engine.Rank(s.catalog.Venues(), s.profiles.Load(ctx))
}

// Search filters the catalog by free text and category, preserving catalog
// order. Pass nil category and empty text for the full catalog.
func (s *Session) Search(text string, category *models.Category) []models.Venue {
	start := time.Now()
	defer metrics.TimeSince(metrics.SearchDuration, start)
	metrics.SearchRequests.Inc()

	return recommend.Search(s.catalog.Venues(), recommend.Query{
		Text:     text,
		Category: category,
	})
}

// Profile returns the current preference profile.
func (s *Session) Profile(ctx context.Context) models.PreferenceProfile {
	return s.profiles.Load(ctx)
}

// UpdateProfile applies the mutation, persists it, and announces the change
// on TopicProfileUpdated. The returned profile is the post-mutation state.
func (s *Session) UpdateProfile(ctx context.Context, mutate func(*models.PreferenceProfile)) models.PreferenceProfile {
	updated := s.profiles.Update(ctx, mutate)

	if err := s.bus.Publish(TopicProfileUpdated, events.ProfileUpdated{Profile: updated}); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish profile update event")
	}
	return updated
}

// ToggleFavorite flips the venue's favorite state, reporting whether it is
// now favorited. Ids outside the catalog are accepted.
func (s *Session) ToggleFavorite(ctx context.Context, id uuid.UUID) bool {
	nowFavorite := s.favorites.Toggle(ctx, id)

	err := s.bus.Publish(TopicFavoritesUpdated, events.FavoritesUpdated{
		VenueID:   id,
		Favorited: nowFavorite,
		Count:     s.favorites.Count(ctx),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to publish favorites update event")
	}
	return nowFavorite
}

// IsFavorite reports whether the venue is currently favorited.
func (s *Session) IsFavorite(ctx context.Context, id uuid.UUID) bool {
	return s.favorites.IsFavorite(ctx, id)
}

// ListFavorites returns the favorited venues in catalog order.
func (s *Session) ListFavorites(ctx context.Context) []models.Venue {
	return s.favorites.List(ctx, s.catalog)
}

// ReplaceCatalog validates the new venues and swaps them in atomically.
// On failure the current catalog stays active and no event fires.
func (s *Session) ReplaceCatalog(venues []models.Venue) error {
	if err := s.catalog.Replace(venues); err != nil {
		return err
	}
	metrics.CatalogSize.Set(float64(s.catalog.Len()))
	metrics.CatalogReloads.Inc()

	if err := s.bus.Publish(TopicCatalogReplaced, events.CatalogReplaced{VenueCount: s.catalog.Len()}); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish catalog replace event")
	}
	return nil
}

// Subscribe returns a channel of change notifications for the topic. The
// subscription ends when ctx is cancelled or the session closes. Messages
// must be acked; decode payloads with DecodeEvent.
func (s *Session) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return s.bus.Subscribe(ctx, topic)
}

// DecodeEvent unmarshals an event payload into out. Pass a pointer to the
// topic's payload type: ProfileUpdated, FavoritesUpdated, or
// CatalogReplaced from this package.
func DecodeEvent(msg *message.Message, out any) error {
	return events.Decode(msg, out)
}

// Payload types re-exported for subscribers.
type (
	// ProfileUpdated is the payload on TopicProfileUpdated.
	ProfileUpdated = events.ProfileUpdated

	// FavoritesUpdated is the payload on TopicFavoritesUpdated.
	FavoritesUpdated = events.FavoritesUpdated

	// CatalogReplaced is the payload on TopicCatalogReplaced.
	CatalogReplaced = events.CatalogReplaced
)

// Close shuts down the event bus and, when the session owns it, the store.
func (s *Session) Close() error {
	busErr := s.bus.Close()
	if s.ownStore {
		if err := s.store.Close(); err != nil {
			return err
		}
	}
	return busErr
}
