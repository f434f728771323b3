package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub/v2"
	"github.com/illmade-knight/grocery-list-skill/app"
	internalanalytics "github.com/illmade-knight/grocery-list-skill/internal/analytics"
	"github.com/illmade-knight/grocery-list-skill/internal/config"
	firestorestorage "github.com/illmade-knight/grocery-list-skill/internal/storage/firestore"
	"github.com/illmade-knight/grocery-list-skill/internal/transport"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	// 2. Initialize External Clients
	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Firestore client")
	}
	defer fsClient.Close()

	// 3. Instantiate Persistent Storage Adapter and Domain Service
	groceryStore := firestorestorage.NewGroceryStore(fsClient)
	groceryService := groceries.NewService(groceryStore)
	logger.Info().Msg("Grocery store and service initialized")

	// 4. Instantiate the Analytics Recorder
	var recorder analytics.Recorder = analytics.NoopRecorder{}
	if cfg.AnalyticsTopic != "" {
		psClient, err := pubsub.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Pub/Sub client")
		}
		defer psClient.Close()

		sink := internalanalytics.NewPubsubSink(psClient, cfg.AnalyticsTopic, cfg.TrackingID, logger)
		recorder = analytics.NewAsyncRecorder(sink, cfg.AnalyticsQueueSize, logger)
		logger.Info().Str("topic", cfg.AnalyticsTopic).Msg("Analytics recorder initialized")
	} else {
		logger.Info().Msg("Analytics disabled, events will be discarded")
	}

	// 5. Instantiate the Skill Handler and HTTP Server
	handler := skill.NewHandler(groceryService, recorder, logger)
	server := transport.NewServer(cfg.HTTPAddr, handler, logger)

	// 6. Assemble and Run the Application
	application := app.New(handler, server, recorder, logger)
	logger.Info().Str("addr", cfg.HTTPAddr).Msg("Grocery skill service initialized")

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Service exited with error")
	}
}
