// Package web provides the HTTP API server for the MoodBoard API.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/moodboard-ai/api/internal/auth"
	"github.com/moodboard-ai/api/internal/db"
	"github.com/moodboard-ai/api/internal/mood"
	"github.com/moodboard-ai/api/internal/playlist"
	"github.com/moodboard-ai/api/internal/summary"
)

// DefaultAddr is the default server address.
const DefaultAddr = "127.0.0.1:8080"

// ServerConfig holds server configuration and dependencies.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	Analyzer       *mood.Analyzer
	Playlists      *playlist.Service
	Summaries      *summary.Service
	Auth           *auth.Service
	Database       *db.DB // nil disables persistence-backed routes
	Logger         *zap.Logger
}

// Server is the HTTP server for the API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	logger   *zap.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("creating server: analyzer is required")
	}

	handlers := NewHandlers(cfg.Analyzer, cfg.Playlists, cfg.Summaries, cfg.Auth, cfg.Database, cfg.Logger)

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: handlers,
		logger:   cfg.Logger,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(corsMiddleware(allowedOrigins))
}

// setupRoutes configures routes for the application.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handlers.Root)
	s.router.Get("/health", s.handlers.Health)

	s.router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handlers.Register)
		r.Post("/login", s.handlers.Login)
		r.Get("/health", s.handlers.AuthHealth)

		r.Group(func(r chi.Router) {
			r.Use(s.handlers.RequireAuth)
			r.Get("/me", s.handlers.Me)
			r.Post("/logout", s.handlers.Logout)
		})
	})

	s.router.Route("/api/moods", func(r chi.Router) {
		r.Get("/health", s.handlers.MoodHealth)
		r.Post("/analyze", s.handlers.Analyze)
		r.Post("/playlist", s.handlers.Playlist)

		r.Group(func(r chi.Router) {
			r.Use(s.handlers.RequireAuth)
			r.Get("/entries", s.handlers.ListEntries)
			r.Post("/entries", s.handlers.CreateEntry)
			r.Get("/summary", s.handlers.WeeklySummary)
			r.Get("/trends", s.handlers.Trends)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
