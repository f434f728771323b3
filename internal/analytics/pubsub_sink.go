// Package analytics provides the Pub/Sub transport behind the skill's
// fire-and-forget event recorder.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/rs/zerolog"
)

// eventDocument is the wire form of one analytics event.
type eventDocument struct {
	EventID    string    `json:"eventId"`
	TrackingID string    `json:"trackingId"`
	Category   string    `json:"category"`
	Label      string    `json:"label"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PubsubSink publishes analytics events to a Pub/Sub topic. It satisfies the
// analytics.Sink interface and is always driven from behind an AsyncRecorder,
// so its errors stay off the request path.
type PubsubSink struct {
	publisher  *pubsub.Publisher
	trackingID string
	logger     zerolog.Logger
}

// NewPubsubSink creates a sink publishing to the given topic. trackingID is
// the fixed property identifier stamped onto every event.
func NewPubsubSink(client *pubsub.Client, topicID, trackingID string, logger zerolog.Logger) *PubsubSink {
	return &PubsubSink{
		publisher:  client.Publisher(topicID),
		trackingID: trackingID,
		logger:     logger.With().Str("component", "analytics-sink").Logger(),
	}
}

// Send publishes one event and waits for the server's acknowledgement.
func (s *PubsubSink) Send(ctx context.Context, event analytics.Event) error {
	payload, err := json.Marshal(eventDocument{
		EventID:    uuid.NewString(),
		TrackingID: s.trackingID,
		Category:   event.Category,
		Label:      event.Label,
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal analytics event: %w", err)
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{Data: payload})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish analytics event: %w", err)
	}

	s.logger.Debug().Str("category", event.Category).Str("label", event.Label).Msg("Published analytics event")
	return nil
}
