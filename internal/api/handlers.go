// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelpin/internal/catalog"
	"github.com/tomtom215/reelpin/internal/chat"
	"github.com/tomtom215/reelpin/internal/config"
	"github.com/tomtom215/reelpin/internal/engine"
	"github.com/tomtom215/reelpin/internal/metrics"
	"github.com/tomtom215/reelpin/internal/store"
)

// ChatWidget is the capability surface the API needs from the chat
// integration. A nil widget means chat is disabled and the chat routes
// answer 503.
type ChatWidget interface {
	Open()
	Close()
	Send(text string) error
	AskAboutMovie(title string) error
	State() chat.State
	Unread() int
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	store  *store.Store
	widget ChatWidget
	cfg    config.EngineConfig
}

// NewHandler creates a handler. widget may be nil when chat is disabled.
func NewHandler(st *store.Store, widget ChatWidget, cfg config.EngineConfig) *Handler {
	return &Handler{store: st, widget: widget, cfg: cfg}
}

// movieView is the API projection of a catalog movie, enriched with the
// resolved poster URL and the caller's per-movie state.
type movieView struct {
	catalog.Movie
	PosterURL   string `json:"poster_url"`
	UserRating  int    `json:"user_rating"`
	InWatchlist bool   `json:"in_watchlist"`
}

func (h *Handler) movieViews(movies []catalog.Movie) []movieView {
	views := make([]movieView, len(movies))
	for i, m := range movies {
		views[i] = movieView{
			Movie:       m,
			PosterURL:   m.PosterURL(),
			UserRating:  h.store.Rating(m.ID),
			InWatchlist: h.store.InWatchlist(m.ID),
		}
	}
	return views
}

// movieIDParam parses the {movieID} URL parameter. Returns false after
// writing an error response when the parameter is not a valid integer.
func movieIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "movieID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID",
			"Movie ID must be an integer", err)
		return 0, false
	}
	return id, true
}

// Movies returns the catalog, optionally filtered by genre.
// GET /api/v1/movies?genre=Action
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genre := catalog.Genre(r.URL.Query().Get("genre"))
	if genre != "" && !catalog.ValidGenre(genre) {
		respondError(w, http.StatusBadRequest, "UNKNOWN_GENRE",
			"Unknown genre: "+string(genre), nil)
		return
	}

	movies := engine.FilterByGenre(genre, catalog.All())
	metrics.RecordEngineQuery("filter", time.Since(start), len(movies))

	respondData(w, h.movieViews(movies), start)
}

// Movie returns a single movie by ID.
// GET /api/v1/movies/{movieID}
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	m, found := catalog.ByID(id)
	if !found {
		respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND",
			"No movie with ID "+strconv.Itoa(id), nil)
		return
	}

	views := h.movieViews([]catalog.Movie{m})
	respondData(w, views[0], start)
}

// Genres returns the full genre list.
// GET /api/v1/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondData(w, catalog.Genres(), time.Now())
}

// Search performs case-insensitive title substring search.
// GET /api/v1/search?q=matrix
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := r.URL.Query().Get("q")
	results := engine.Search(query, catalog.All())
	metrics.RecordEngineQuery("search", time.Since(start), len(results))

	respondData(w, h.movieViews(results), start)
}

// Recommendations ranks the catalog against the stored preferences.
// GET /api/v1/recommendations?limit=8
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", h.cfg.DefaultLimit)
	if limit < 1 || limit > h.cfg.MaxLimit {
		respondError(w, http.StatusBadRequest, "INVALID_LIMIT",
			"limit must be between 1 and "+strconv.Itoa(h.cfg.MaxLimit), nil)
		return
	}

	prefs := h.store.Preferences()
	results := engine.Recommendations(prefs, catalog.All(), limit)
	metrics.RecordEngineQuery("recommend", time.Since(start), len(results))

	respondData(w, h.movieViews(results), start)
}

// Preferences returns the stored preferences.
// GET /api/v1/preferences
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	respondData(w, h.store.Preferences(), time.Now())
}

type minimumRatingRequest struct {
	MinimumRating float64 `json:"minimumRating" validate:"gte=0,lte=10"`
}

// SetMinimumRating replaces the minimum rating threshold.
// PUT /api/v1/preferences/minimum-rating
func (h *Handler) SetMinimumRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req minimumRatingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.store.SetMinimumRating(req.MinimumRating)
	respondData(w, h.store.Preferences(), start)
}

type favoriteGenreRequest struct {
	Genre string `json:"genre" validate:"required"`
}

// AddFavoriteGenre appends a genre to the favorites if not present.
// POST /api/v1/preferences/genres
func (h *Handler) AddFavoriteGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req favoriteGenreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.store.AddFavoriteGenre(catalog.Genre(req.Genre)); err != nil {
		if errors.Is(err, store.ErrUnknownGenre) {
			respondError(w, http.StatusBadRequest, "UNKNOWN_GENRE",
				"Unknown genre: "+req.Genre, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR",
			"Failed to update preferences", err)
		return
	}

	respondData(w, h.store.Preferences(), start)
}

type rateMovieRequest struct {
	Rating int `json:"rating" validate:"min=0,max=5"`
}

// RateMovie sets a star rating for a movie. Rating the movie with its
// current value clears the rating, matching the toggle behavior of the
// star control.
// PUT /api/v1/movies/{movieID}/rating
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req rateMovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rating := req.Rating
	if rating > 0 && rating == h.store.Rating(id) {
		rating = 0
	}

	if err := h.store.RateMovie(id, rating); err != nil {
		if errors.Is(err, store.ErrUnknownMovie) {
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND",
				"No movie with ID "+strconv.Itoa(id), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR",
			"Failed to save rating", err)
		return
	}

	respondData(w, map[string]interface{}{
		"movie_id": id,
		"rating":   h.store.Rating(id),
	}, start)
}

// Watchlist returns the watchlisted movies in insertion order.
// GET /api/v1/watchlist
func (h *Handler) Watchlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids := h.store.Watchlist()
	movies := make([]catalog.Movie, 0, len(ids))
	for _, id := range ids {
		if m, found := catalog.ByID(id); found {
			movies = append(movies, m)
		}
	}

	respondData(w, h.movieViews(movies), start)
}

// ToggleWatchlist adds or removes a movie from the watchlist.
// POST /api/v1/watchlist/{movieID}/toggle
func (h *Handler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	added, err := h.store.ToggleWatchlist(id)
	if err != nil {
		if errors.Is(err, store.ErrUnknownMovie) {
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND",
				"No movie with ID "+strconv.Itoa(id), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR",
			"Failed to update watchlist", err)
		return
	}

	respondData(w, map[string]interface{}{
		"movie_id":     id,
		"in_watchlist": added,
	}, start)
}

// Onboarding reports whether this is the first visit and the defaults a
// new user starts with. The first call flips the visited flag.
// GET /api/v1/onboarding
func (h *Handler) Onboarding(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondData(w, map[string]interface{}{
		"first_visit": h.store.FirstVisit(),
		"defaults":    engine.DefaultPreferences(),
	}, start)
}

// HealthLive reports process liveness.
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady reports readiness. The store is opened before the HTTP
// server starts, so readiness only checks that it is still usable.
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondData(w, map[string]interface{}{
		"status":       "ready",
		"catalog_size": catalog.Size(),
	}, time.Now())
}
