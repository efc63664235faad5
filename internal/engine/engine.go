// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package engine implements the recommendation, filtering and search core.
//
// All functions are pure: they never mutate their inputs, carry no state
// and cannot fail on well-typed input. Callers re-invoke them whenever the
// preferences or the query change; the engine has no notion of staleness.
//
// The recommendation score combines a genre-affinity component with a
// rating component:
//
//	genreScore  = 2 * |movie.genres ∩ prefs.favoriteGenres|
//	ratingScore = personal rating (1-5) when the user rated the movie,
//	              else (voteAverage - minimumRating) / 2 above the
//	              threshold, else -(minimumRating - voteAverage)
//
// The 0-5 personal rating is added to the 2-points-per-genre component
// without rescaling. That mixing of scales is the established scoring
// behavior and is kept as-is.
package engine

import (
	"sort"
	"strings"

	"github.com/tomtom215/reelpin/internal/catalog"
)

// Preferences is the user preference model the engine scores against.
// The store package persists this type; the engine only reads it.
type Preferences struct {
	// FavoriteGenres lists the user's preferred genre tags. Order is
	// preserved for display but irrelevant to scoring.
	FavoriteGenres []catalog.Genre `json:"favoriteGenres"`

	// RatedMovies maps a movie id to the user's personal 1-5 rating.
	// A rating of 0 means "cleared" and is never stored.
	RatedMovies map[int]int `json:"ratedMovies"`

	// MinimumRating is the community-rating threshold (0-10 scale).
	// It acts as both a hard display filter and a scoring bias.
	MinimumRating float64 `json:"minimumRating"`
}

// DefaultPreferences returns the preferences a new profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		FavoriteGenres: []catalog.Genre{
			catalog.GenreAction,
			catalog.GenreDrama,
			catalog.GenreScienceFiction,
		},
		RatedMovies:   map[int]int{},
		MinimumRating: 7.0,
	}
}

// scoredMovie pairs a movie with its transient recommendation score.
// The score never leaves this package.
type scoredMovie struct {
	movie catalog.Movie
	score float64
}

// Recommendations ranks movies against the user's preferences and returns
// the top limit results.
//
// Movies whose community rating falls below prefs.MinimumRating are
// excluded before ranking regardless of score. Because of that hard
// filter the negative-penalty branch of Score is unreachable for any
// surviving movie; it is retained to keep scoring semantics in one place.
//
// Ties keep catalog order (stable sort). An empty catalog, an empty
// favorites list or a non-positive limit all degrade gracefully.
func Recommendations(prefs Preferences, movies []catalog.Movie, limit int) []catalog.Movie {
	if limit <= 0 || len(movies) == 0 {
		return []catalog.Movie{}
	}

	scored := make([]scoredMovie, 0, len(movies))
	for _, m := range movies {
		// Hard filter: below-threshold movies never rank.
		if m.VoteAverage < prefs.MinimumRating {
			continue
		}
		scored = append(scored, scoredMovie{movie: m, score: Score(prefs, m)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > len(scored) {
		limit = len(scored)
	}

	out := make([]catalog.Movie, limit)
	for i := 0; i < limit; i++ {
		out[i] = scored[i].movie
	}
	return out
}

// Score computes the recommendation score for a single movie.
// Exposed for tests and diagnostics; the ranked API strips scores.
func Score(prefs Preferences, m catalog.Movie) float64 {
	var score float64

	// Each matching favorite genre adds 2 points.
	for _, g := range m.Genres {
		for _, fav := range prefs.FavoriteGenres {
			if g == fav {
				score += 2
				break
			}
		}
	}

	if rating := prefs.RatedMovies[m.ID]; rating > 0 {
		// Personal rating dominates the community signal.
		score += float64(rating)
	} else if m.VoteAverage >= prefs.MinimumRating {
		score += (m.VoteAverage - prefs.MinimumRating) / 2
	} else {
		// Steeper penalty below the threshold. Dead code for movies that
		// survive the hard filter in Recommendations; kept deliberately.
		score -= prefs.MinimumRating - m.VoteAverage
	}

	return score
}

// Search returns all movies whose title or overview contains the query,
// case-insensitively, in catalog order. An empty or whitespace-only query
// yields an empty result, not the full catalog.
func Search(query string, movies []catalog.Movie) []catalog.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []catalog.Movie{}
	}

	out := []catalog.Movie{}
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Overview), q) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByGenre returns the movies carrying the given genre tag, in
// catalog order. An empty genre selects everything.
func FilterByGenre(genre catalog.Genre, movies []catalog.Movie) []catalog.Movie {
	if genre == "" {
		out := make([]catalog.Movie, len(movies))
		copy(out, movies)
		return out
	}

	out := []catalog.Movie{}
	for _, m := range movies {
		if m.HasGenre(genre) {
			out = append(out, m)
		}
	}
	return out
}
