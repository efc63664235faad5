// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package catalog holds the static movie catalog served by Reelpin.
//
// The catalog is embedded at compile time and immutable: there is no
// catalog service behind it. Every movie id used elsewhere in the
// application (ratings, watchlist entries) must resolve here or is
// treated as not found.
package catalog

import (
	"strings"
	"time"
)

// Poster image resolution. Relative poster paths come from the upstream
// metadata provider and need the CDN prefix; anything unusable degrades
// to the placeholder.
const (
	posterBaseURL     = "https://image.tmdb.org/t/p/w500"
	posterPlaceholder = "https://placehold.co/300x450/ffffff/A52A2A?text=No+Image"
	releaseDateLayout = "2006-01-02"
)

// Movie is a single catalog record.
//
// VoteAverage is the community rating on a 0-10 scale, distinct from the
// personal 0-5 ratings kept in the preference store.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Genres      []Genre `json:"genres"`
}

// Year returns the release year, or 0 when the release date is unparsable.
func (m Movie) Year() int {
	t, err := time.Parse(releaseDateLayout, m.ReleaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// PosterURL resolves the poster reference to an absolute URL.
// Relative paths are resolved against the image CDN; empty or malformed
// values fall back to the placeholder image.
func (m Movie) PosterURL() string {
	switch {
	case m.PosterPath == "":
		return posterPlaceholder
	case strings.HasPrefix(m.PosterPath, "/"):
		return posterBaseURL + m.PosterPath
	case strings.HasPrefix(m.PosterPath, "http://"), strings.HasPrefix(m.PosterPath, "https://"):
		return m.PosterPath
	default:
		return posterPlaceholder
	}
}

// HasGenre reports whether the movie carries the given genre tag.
func (m Movie) HasGenre(g Genre) bool {
	for _, mg := range m.Genres {
		if mg == g {
			return true
		}
	}
	return false
}

// All returns a copy of the full catalog in stable order.
// Callers may reorder or filter the returned slice freely; the embedded
// data is never exposed directly.
func All() []Movie {
	out := make([]Movie, len(movies))
	copy(out, movies)
	return out
}

// Size returns the number of movies in the catalog.
func Size() int {
	return len(movies)
}

// ByID looks up a movie by id.
func ByID(id int) (Movie, bool) {
	m, ok := byID[id]
	return m, ok
}

// byID indexes the embedded catalog for id lookups.
var byID = func() map[int]Movie {
	idx := make(map[int]Movie, len(movies))
	for _, m := range movies {
		idx[m.ID] = m
	}
	return idx
}()
