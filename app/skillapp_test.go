package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/illmade-knight/grocery-list-skill/app"
	"github.com/illmade-knight/grocery-list-skill/internal/transport"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestApp_RunStopsOnCancel(t *testing.T) {
	logger := zerolog.Nop()

	// Arrange: a fully wired app on an ephemeral port
	service := groceries.NewService(groceries.NewInMemoryStore())
	recorder := analytics.NoopRecorder{}
	handler := skill.NewHandler(service, recorder, logger)
	server := transport.NewServer("127.0.0.1:0", handler, logger)
	application := app.New(handler, server, recorder, logger)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run(ctx)
	}()

	// Act: give the server a moment to start, then signal shutdown
	time.Sleep(100 * time.Millisecond)
	cancel()

	// Assert
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("App did not shut down after context cancellation")
	}
}
