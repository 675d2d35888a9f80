// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package api serves the public HTTP interface: the video listing and the
// health probes.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ManuGH/vodmeta/internal/api/middleware"
	"github.com/ManuGH/vodmeta/internal/api/problem"
	"github.com/ManuGH/vodmeta/internal/config"
	"github.com/ManuGH/vodmeta/internal/health"
	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/go-chi/chi/v5"
)

// VideoLister is the read side the listing endpoint depends on.
type VideoLister interface {
	GetAllVideos(ctx context.Context) ([]video.Video, error)
}

// Deps are the collaborators the server is built from.
type Deps struct {
	Config config.AppConfig
	Videos VideoLister
	Health *health.Manager // optional; a manager without checkers is used when nil
}

// ErrMissingVideos is returned by New when Deps.Videos is nil.
var ErrMissingVideos = errors.New("api: video service is required")

// Server owns the HTTP router.
type Server struct {
	cfg    config.AppConfig
	videos VideoLister
	health *health.Manager
	router *chi.Mux
}

// New builds the router with the full middleware stack.
func New(deps Deps) (*Server, error) {
	if deps.Videos == nil {
		return nil, ErrMissingVideos
	}
	hm := deps.Health
	if hm == nil {
		hm = health.NewManager(deps.Config.Version)
	}

	s := &Server{
		cfg:    deps.Config,
		videos: deps.Videos,
		health: hm,
	}
	s.router = middleware.NewRouter(stackConfig(deps.Config))
	s.routes()
	return s, nil
}

// Handler returns the root handler to mount on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func stackConfig(cfg config.AppConfig) middleware.StackConfig {
	sc := middleware.StackConfig{
		EnableCORS:            true,
		AllowedOrigins:        cfg.API.AllowedOrigins,
		EnableSecurityHeaders: true,
		EnableMetrics:         cfg.Metrics.Enabled,
		EnableLogging:         true,
		EnableRateLimit:       cfg.API.RateLimit.Enabled,
		RateLimitPerMinute:    cfg.API.RateLimit.RequestsPerMinute,
	}
	if cfg.Tracing.Enabled {
		sc.TracingService = cfg.LogService
	}
	return sc
}

func (s *Server) routes() {
	r := s.router

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not Found", problem.CodeNotFound, "", nil)
	})

	r.Get("/healthz", s.health.ServeHealth)
	r.Get("/readyz", s.health.ServeReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/videos", s.handleListVideos)
	})
}
