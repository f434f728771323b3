//go:build integration

package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/google/uuid"
	internalanalytics "github.com/illmade-knight/grocery-list-skill/internal/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/go-test/emulators"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubsubSink(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	t.Cleanup(cancel)

	const projectID = "test-project"
	runID := uuid.NewString()
	topicID := "analytics-topic-" + runID
	subID := "analytics-sub-" + runID

	// Arrange: Pub/Sub emulator, topic, and subscription
	pubsubConn := emulators.SetupPubsubEmulator(t, ctx, emulators.GetDefaultPubsubConfig(projectID))
	psClient, err := pubsub.NewClient(ctx, projectID, pubsubConn.ClientOptions...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = psClient.Close() })

	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = psClient.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	require.NoError(t, err)

	subName := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subID)
	_, err = psClient.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  subName,
		Topic: topicName,
	})
	require.NoError(t, err)

	sink := internalanalytics.NewPubsubSink(psClient, topicID, "UA-TEST-1", zerolog.Nop())

	// Act
	err = sink.Send(ctx, analytics.Event{Category: "add-item", Label: "success"})
	require.NoError(t, err)

	// Assert: the published document carries the event and the tracking ID.
	receiveCtx, stopReceiving := context.WithTimeout(ctx, 30*time.Second)
	defer stopReceiving()

	var received map[string]any
	err = psClient.Subscriber(subID).Receive(receiveCtx, func(_ context.Context, msg *pubsub.Message) {
		msg.Ack()
		require.NoError(t, json.Unmarshal(msg.Data, &received))
		stopReceiving()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("Receiving from analytics subscription failed: %v", err)
	}

	require.NotNil(t, received)
	assert.Equal(t, "add-item", received["category"])
	assert.Equal(t, "success", received["label"])
	assert.Equal(t, "UA-TEST-1", received["trackingId"])
	assert.NotEmpty(t, received["eventId"])
}
