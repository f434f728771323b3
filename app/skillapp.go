// Package app provides the central orchestrator for the grocery skill service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/illmade-knight/grocery-list-skill/internal/transport"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// App ties the skill handler, the HTTP server, and the analytics recorder
// into one runnable unit.
type App struct {
	Handler  *skill.Handler
	Server   *transport.Server
	Recorder analytics.Recorder
	Logger   zerolog.Logger
}

// New creates a new, fully initialized App.
func New(handler *skill.Handler, server *transport.Server, recorder analytics.Recorder, logger zerolog.Logger) *App {
	return &App{
		Handler:  handler,
		Server:   server,
		Recorder: recorder,
		Logger:   logger,
	}
}

// Run serves turns until ctx is cancelled, then shuts down gracefully: the
// HTTP server first, then the analytics recorder so queued events drain.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("skill HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down skill HTTP server: %w", err)
	}

	if closer, ok := a.Recorder.(interface{ Close() }); ok {
		closer.Close()
	}

	a.Logger.Info().Msg("Shutdown complete")
	return nil
}
