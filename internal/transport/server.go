package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
	"github.com/rs/zerolog"
)

// Server is the HTTP front of the skill. Each request is one platform turn,
// handled synchronously to completion.
type Server struct {
	handler    *skill.Handler
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer creates the HTTP server for the skill endpoint.
func NewServer(addr string, handler *skill.Handler, logger zerolog.Logger) *Server {
	s := &Server{
		handler: handler,
		logger:  logger.With().Str("component", "http-server").Logger(),
	}

	router := chi.NewRouter()
	router.Post("/v1/skill", s.handleTurn)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting skill HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var envelope requestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode request envelope")
		http.Error(w, "malformed request envelope", http.StatusBadRequest)
		return
	}

	req := envelope.toRequest()
	directive := s.handler.HandleTurn(r.Context(), req)

	response, err := renderDirective(directive)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render directive")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response envelope")
	}
}
