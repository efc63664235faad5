// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package engine

import (
	"math"
	"testing"

	"github.com/tomtom215/reelpin/internal/catalog"
)

const scoreEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < scoreEpsilon
}

func testMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: 1, Title: "Alpha", Overview: "a space heist", VoteAverage: 8.0,
			Genres: []catalog.Genre{catalog.GenreAction, catalog.GenreScienceFiction}},
		{ID: 2, Title: "Beta", Overview: "a quiet family drama", VoteAverage: 7.5,
			Genres: []catalog.Genre{catalog.GenreDrama}},
		{ID: 3, Title: "Gamma", Overview: "slapstick chaos", VoteAverage: 6.0,
			Genres: []catalog.Genre{catalog.GenreComedy}},
		{ID: 4, Title: "Delta", Overview: "another space heist", VoteAverage: 8.0,
			Genres: []catalog.Genre{catalog.GenreAction, catalog.GenreScienceFiction}},
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if len(prefs.FavoriteGenres) != 3 {
		t.Errorf("expected 3 default favorite genres, got %d", len(prefs.FavoriteGenres))
	}
	if prefs.MinimumRating != 7.0 {
		t.Errorf("expected default minimum rating 7.0, got %f", prefs.MinimumRating)
	}
	if prefs.RatedMovies == nil {
		t.Error("RatedMovies map should be initialized")
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		prefs Preferences
		movie catalog.Movie
		want  float64
	}{
		{
			name:  "two genre matches plus community bonus",
			prefs: DefaultPreferences(),
			movie: catalog.Movie{ID: 1, VoteAverage: 8.4,
				Genres: []catalog.Genre{catalog.GenreAction, catalog.GenreScienceFiction, catalog.GenreAdventure}},
			// 2*2 + (8.4-7.0)/2
			want: 4.7,
		},
		{
			name:  "no genre match",
			prefs: DefaultPreferences(),
			movie: catalog.Movie{ID: 2, VoteAverage: 7.0,
				Genres: []catalog.Genre{catalog.GenreComedy}},
			want: 0.0,
		},
		{
			name: "personal rating replaces community component",
			prefs: Preferences{
				FavoriteGenres: []catalog.Genre{catalog.GenreAction},
				RatedMovies:    map[int]int{3: 5},
				MinimumRating:  7.0,
			},
			movie: catalog.Movie{ID: 3, VoteAverage: 9.9,
				Genres: []catalog.Genre{catalog.GenreAction}},
			// 2 + 5, the 9.9 community rating is ignored
			want: 7.0,
		},
		{
			name:  "below threshold draws the penalty",
			prefs: DefaultPreferences(),
			movie: catalog.Movie{ID: 4, VoteAverage: 6.0,
				Genres: []catalog.Genre{catalog.GenreDrama}},
			// 2 - (7.0-6.0)
			want: 1.0,
		},
		{
			name: "duplicate favorite genres count once per movie genre",
			prefs: Preferences{
				FavoriteGenres: []catalog.Genre{catalog.GenreAction, catalog.GenreAction},
				RatedMovies:    map[int]int{},
				MinimumRating:  7.0,
			},
			movie: catalog.Movie{ID: 5, VoteAverage: 7.0,
				Genres: []catalog.Genre{catalog.GenreAction}},
			want: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.prefs, tt.movie)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	t.Run("excludes movies below the minimum rating", func(t *testing.T) {
		prefs := DefaultPreferences()
		got := Recommendations(prefs, testMovies(), 10)

		for _, m := range got {
			if m.VoteAverage < prefs.MinimumRating {
				t.Errorf("movie %d (%.1f) should have been filtered out", m.ID, m.VoteAverage)
			}
		}
		if len(got) != 3 {
			t.Errorf("expected 3 surviving movies, got %d", len(got))
		}
	})

	t.Run("orders by descending score", func(t *testing.T) {
		prefs := DefaultPreferences()
		got := Recommendations(prefs, testMovies(), 10)

		for i := 1; i < len(got); i++ {
			if Score(prefs, got[i-1]) < Score(prefs, got[i]) {
				t.Errorf("result not sorted at index %d", i)
			}
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		// Movies 1 and 4 are identical in everything that scores.
		got := Recommendations(DefaultPreferences(), testMovies(), 10)

		pos := map[int]int{}
		for i, m := range got {
			pos[m.ID] = i
		}
		if pos[1] > pos[4] {
			t.Errorf("tied movies reordered: movie 1 at %d, movie 4 at %d", pos[1], pos[4])
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		got := Recommendations(DefaultPreferences(), testMovies(), 2)
		if len(got) != 2 {
			t.Errorf("expected 2 results, got %d", len(got))
		}
	})

	t.Run("limit larger than survivors returns all survivors", func(t *testing.T) {
		got := Recommendations(DefaultPreferences(), testMovies(), 100)
		if len(got) != 3 {
			t.Errorf("expected 3 results, got %d", len(got))
		}
	})

	t.Run("non-positive limit yields empty slice", func(t *testing.T) {
		if got := Recommendations(DefaultPreferences(), testMovies(), 0); len(got) != 0 {
			t.Errorf("expected empty result for limit 0, got %d", len(got))
		}
		if got := Recommendations(DefaultPreferences(), testMovies(), -1); len(got) != 0 {
			t.Errorf("expected empty result for limit -1, got %d", len(got))
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		movies := testMovies()
		before := make([]int, len(movies))
		for i, m := range movies {
			before[i] = m.ID
		}

		Recommendations(DefaultPreferences(), movies, 10)

		for i, m := range movies {
			if m.ID != before[i] {
				t.Fatalf("input slice reordered at index %d", i)
			}
		}
	})

	t.Run("works on the embedded catalog", func(t *testing.T) {
		got := Recommendations(DefaultPreferences(), catalog.All(), 8)
		if len(got) != 8 {
			t.Fatalf("expected 8 recommendations from the catalog, got %d", len(got))
		}
	})
}

func TestSearch(t *testing.T) {
	movies := testMovies()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{"title match", "alpha", []int{1}},
		{"case insensitive", "ALPHA", []int{1}},
		{"overview match", "space heist", []int{1, 4}},
		{"no match", "zeta", []int{}},
		{"empty query", "", []int{}},
		{"whitespace only query", "   ", []int{}},
		{"surrounding whitespace trimmed", "  beta  ", []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, movies)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d movies, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, m := range got {
				if m.ID != tt.wantIDs[i] {
					t.Errorf("Search(%q)[%d] = movie %d, want %d", tt.query, i, m.ID, tt.wantIDs[i])
				}
			}
		})
	}

	t.Run("finds the matrix in the embedded catalog", func(t *testing.T) {
		got := Search("matrix", catalog.All())
		if len(got) != 1 || got[0].Title != "The Matrix" {
			t.Errorf("expected exactly The Matrix, got %v", got)
		}
	})

	t.Run("search is idempotent", func(t *testing.T) {
		first := Search("space", movies)
		second := Search("space", movies)
		if len(first) != len(second) {
			t.Errorf("repeated search differs: %d vs %d", len(first), len(second))
		}
	})
}

func TestFilterByGenre(t *testing.T) {
	movies := testMovies()

	t.Run("selects matching movies in catalog order", func(t *testing.T) {
		got := FilterByGenre(catalog.GenreAction, movies)
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
			t.Errorf("unexpected action filter result: %v", got)
		}
	})

	t.Run("empty genre selects everything", func(t *testing.T) {
		got := FilterByGenre("", movies)
		if len(got) != len(movies) {
			t.Errorf("expected %d movies, got %d", len(movies), len(got))
		}
	})

	t.Run("empty genre returns a copy", func(t *testing.T) {
		got := FilterByGenre("", movies)
		got[0].ID = 999
		if movies[0].ID == 999 {
			t.Error("filter result aliases the input slice")
		}
	})

	t.Run("unmatched genre yields empty slice", func(t *testing.T) {
		got := FilterByGenre(catalog.GenreWestern, movies)
		if len(got) != 0 {
			t.Errorf("expected no westerns, got %d", len(got))
		}
	})
}
