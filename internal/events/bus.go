// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ithacaround/engine/internal/logging"
	"github.com/ithacaround/engine/models"
)

// Topics published by the engine.
const (
	// TopicProfileUpdated fires after every successful profile mutation.
	TopicProfileUpdated = "profile.updated"

	// TopicFavoritesUpdated fires after every favorite toggle.
	TopicFavoritesUpdated = "favorites.updated"

	// TopicCatalogReplaced fires after a catalog reload swaps in.
	TopicCatalogReplaced = "catalog.replaced"
)

// ProfileUpdated is the payload for TopicProfileUpdated.
type ProfileUpdated struct {
	Profile models.PreferenceProfile `json:"profile"`
}

// FavoritesUpdated is the payload for TopicFavoritesUpdated.
type FavoritesUpdated struct {
	VenueID   uuid.UUID `json:"venueId"`
	Favorited bool      `json:"favorited"`
	Count     int       `json:"count"`
}

// CatalogReplaced is the payload for TopicCatalogReplaced.
type CatalogReplaced struct {
	VenueCount int `json:"venueCount"`
}

// Bus is an in-process pub/sub for engine change notifications.
type Bus struct {
	pubsub *gochannel.GoChannel
	log    zerolog.Logger
}

// NewBus creates a bus with a buffered output channel so slow subscribers
// do not stall publishers.
func NewBus() *Bus {
	log := logging.With().Str("component", "events").Logger()
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, newLoggerAdapter(log))

	return &Bus{pubsub: pubsub, log: log}
}

// Publish encodes the payload as JSON and publishes it on the topic.
func (b *Bus) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe returns a channel of messages for the topic. The subscription
// ends when ctx is cancelled or the bus is closed. Subscribers must ack
// every message.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Decode unmarshals a message payload into out.
func Decode(msg *message.Message, out any) error {
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}
	return nil
}
