// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package catalog

// Genre is a movie genre tag drawn from the fixed enumeration below.
type Genre string

// The 19 known genre tags. Catalog records and user preferences only ever
// carry values from this set.
const (
	GenreAction         Genre = "Action"
	GenreAdventure      Genre = "Adventure"
	GenreAnimation      Genre = "Animation"
	GenreComedy         Genre = "Comedy"
	GenreCrime          Genre = "Crime"
	GenreDocumentary    Genre = "Documentary"
	GenreDrama          Genre = "Drama"
	GenreFamily         Genre = "Family"
	GenreFantasy        Genre = "Fantasy"
	GenreHistory        Genre = "History"
	GenreHorror         Genre = "Horror"
	GenreMusic          Genre = "Music"
	GenreMystery        Genre = "Mystery"
	GenreRomance        Genre = "Romance"
	GenreScienceFiction Genre = "Science Fiction"
	GenreTVMovie        Genre = "TV Movie"
	GenreThriller       Genre = "Thriller"
	GenreWar            Genre = "War"
	GenreWestern        Genre = "Western"
)

// allGenres lists the enumeration in display order.
var allGenres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreAnimation,
	GenreComedy,
	GenreCrime,
	GenreDocumentary,
	GenreDrama,
	GenreFamily,
	GenreFantasy,
	GenreHistory,
	GenreHorror,
	GenreMusic,
	GenreMystery,
	GenreRomance,
	GenreScienceFiction,
	GenreTVMovie,
	GenreThriller,
	GenreWar,
	GenreWestern,
}

// Genres returns a copy of the genre enumeration in display order.
func Genres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// ValidGenre reports whether g is one of the known genre tags.
func ValidGenre(g Genre) bool {
	for _, known := range allGenres {
		if g == known {
			return true
		}
	}
	return false
}
