// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package api provides the HTTP surface of Reelpin using the Chi router.
//
// All routes respond with the models.APIResponse envelope. The engine is
// invoked per request over the embedded catalog; the store and the chat
// widget are injected at construction.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelpin/internal/config"
	"github.com/tomtom215/reelpin/internal/middleware"
)

// Router assembles the HTTP handler tree.
type Router struct {
	handler *Handler
	cfg     config.ServerConfig
}

// NewRouter creates a router around the given handler.
func NewRouter(handler *Handler, cfg config.ServerConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Health endpoints stay outside rate limiting so monitors are never
	// throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.RateLimitReqs, router.cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		// Catalog and engine
		r.Get("/movies", router.handler.Movies)
		r.Get("/movies/{movieID}", router.handler.Movie)
		r.Get("/genres", router.handler.Genres)
		r.Get("/search", router.handler.Search)
		r.Get("/recommendations", router.handler.Recommendations)

		// Preference store
		r.Get("/preferences", router.handler.Preferences)
		r.Put("/preferences/minimum-rating", router.handler.SetMinimumRating)
		r.Post("/preferences/genres", router.handler.AddFavoriteGenre)
		r.Put("/movies/{movieID}/rating", router.handler.RateMovie)

		// Watchlist
		r.Get("/watchlist", router.handler.Watchlist)
		r.Post("/watchlist/{movieID}/toggle", router.handler.ToggleWatchlist)

		// Onboarding
		r.Get("/onboarding", router.handler.Onboarding)

		// Chat widget
		r.Route("/chat", func(r chi.Router) {
			r.Get("/status", router.handler.ChatStatus)
			r.Get("/starters", router.handler.ChatStarters)
			r.Post("/open", router.handler.ChatOpen)
			r.Post("/close", router.handler.ChatClose)
			r.Post("/message", router.handler.ChatMessage)
		})
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
