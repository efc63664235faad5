// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package store persists user preference and watchlist state.
//
// State lives in an embedded BadgerDB under fixed string keys, the
// server-side analog of the browser's local storage the original client
// used. Every mutation writes through immediately; on startup a missing
// or corrupt value silently falls back to defaults and is never surfaced
// to the caller.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpin/internal/catalog"
	"github.com/tomtom215/reelpin/internal/engine"
	"github.com/tomtom215/reelpin/internal/logging"
	"github.com/tomtom215/reelpin/internal/metrics"
)

// Storage keys. Carried over verbatim from the original client so an
// exported profile keeps its meaning.
const (
	keyPreferences = "reel-pin-preferences"
	keyWatchlist   = "reel-pin-watchlist"
	keyVisited     = "reel-pin-visited"
)

// Sentinel errors for invariant violations.
var (
	// ErrUnknownMovie indicates a movie id that does not resolve in the catalog.
	ErrUnknownMovie = errors.New("movie id not in catalog")

	// ErrUnknownGenre indicates a genre outside the fixed enumeration.
	ErrUnknownGenre = errors.New("genre not in enumeration")
)

// Store holds the current preference and watchlist state and mirrors every
// mutation into BadgerDB. All methods are safe for concurrent use; the
// ordering guarantee is last-write-wins.
type Store struct {
	db *badger.DB

	mu        sync.Mutex
	prefs     engine.Preferences
	watchlist []int
}

// Config controls how the store opens its database.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory runs the database without disk persistence. Used in tests
	// and ephemeral deployments.
	InMemory bool
}

// Open opens the database and rehydrates preference and watchlist state.
// First run (no persisted values) starts from defaults.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	opts.Logger = nil // Suppress BadgerDB logs
	if cfg.InMemory {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &Store{
		db:        db,
		prefs:     engine.DefaultPreferences(),
		watchlist: []int{},
	}
	s.load()
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// load rehydrates state from persisted values. Corrupt or missing entries
// keep the defaults already in place.
func (s *Store) load() {
	if data, ok := s.get(keyPreferences); ok {
		var prefs engine.Preferences
		if err := json.Unmarshal(data, &prefs); err != nil {
			logging.Warn().Err(err).Str("key", keyPreferences).Msg("Corrupt persisted preferences, using defaults")
		} else {
			if prefs.RatedMovies == nil {
				prefs.RatedMovies = map[int]int{}
			}
			s.prefs = prefs
		}
	}

	if data, ok := s.get(keyWatchlist); ok {
		var watchlist []int
		if err := json.Unmarshal(data, &watchlist); err != nil {
			logging.Warn().Err(err).Str("key", keyWatchlist).Msg("Corrupt persisted watchlist, using defaults")
		} else if watchlist != nil {
			s.watchlist = watchlist
		}
	}
}

// get reads a raw value. The second return is false when the key is absent
// or the read failed; read failures are logged, never propagated.
func (s *Store) get(key string) ([]byte, bool) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Failed to read persisted state")
		return nil, false
	}
	return data, true
}

// set writes a raw value. Write failures are counted and logged; state in
// memory stays authoritative for the life of the process.
func (s *Store) set(key string, data []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		metrics.RecordStoreWriteError(key)
		logging.Error().Err(err).Str("key", key).Msg("Failed to persist state")
	}
}

// persistPreferences writes the full preference object (must hold mu).
func (s *Store) persistPreferences() {
	data, err := json.Marshal(s.prefs)
	if err != nil {
		metrics.RecordStoreWriteError(keyPreferences)
		logging.Error().Err(err).Msg("Failed to marshal preferences")
		return
	}
	s.set(keyPreferences, data)
}

// persistWatchlist writes the full watchlist array (must hold mu).
func (s *Store) persistWatchlist() {
	data, err := json.Marshal(s.watchlist)
	if err != nil {
		metrics.RecordStoreWriteError(keyWatchlist)
		logging.Error().Err(err).Msg("Failed to marshal watchlist")
		return
	}
	s.set(keyWatchlist, data)
}

// Preferences returns a snapshot copy of the current preferences.
func (s *Store) Preferences() engine.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPreferences(s.prefs)
}

// Watchlist returns a snapshot copy of the bookmarked movie ids in
// insertion order.
func (s *Store) Watchlist() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

// InWatchlist reports whether the movie id is currently bookmarked.
func (s *Store) InWatchlist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wid := range s.watchlist {
		if wid == id {
			return true
		}
	}
	return false
}

// SetMinimumRating replaces the minimum-rating threshold.
// The value is not clamped here; slider callers constrain it to [0,10].
// Out-of-range values are stored as given and must not break anything.
func (s *Store) SetMinimumRating(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.MinimumRating = value
	s.persistPreferences()
}

// RateMovie sets or clears the personal rating for a movie.
// A rating of 0 removes the entry entirely so cleared ratings never leak
// into scoring. The id must resolve in the catalog.
func (s *Store) RateMovie(movieID, rating int) error {
	if _, ok := catalog.ByID(movieID); !ok {
		return ErrUnknownMovie
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rating == 0 {
		delete(s.prefs.RatedMovies, movieID)
	} else {
		s.prefs.RatedMovies[movieID] = rating
	}
	s.persistPreferences()
	return nil
}

// Rating returns the personal rating for a movie, 0 when unrated.
func (s *Store) Rating(movieID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.RatedMovies[movieID]
}

// AddFavoriteGenre adds a genre to the favorites. Idempotent: adding a
// genre already present is a no-op and does not rewrite storage.
func (s *Store) AddFavoriteGenre(g catalog.Genre) error {
	if !catalog.ValidGenre(g) {
		return ErrUnknownGenre
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.prefs.FavoriteGenres {
		if fav == g {
			return nil
		}
	}
	s.prefs.FavoriteGenres = append(s.prefs.FavoriteGenres, g)
	s.persistPreferences()
	return nil
}

// ToggleWatchlist adds the id if absent and removes it if present.
// Returns the resulting membership. The watchlist never holds duplicates.
func (s *Store) ToggleWatchlist(movieID int) (bool, error) {
	if _, ok := catalog.ByID(movieID); !ok {
		return false, ErrUnknownMovie
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, wid := range s.watchlist {
		if wid == movieID {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			s.persistWatchlist()
			metrics.SetWatchlistSize(len(s.watchlist))
			return false, nil
		}
	}
	s.watchlist = append(s.watchlist, movieID)
	s.persistWatchlist()
	metrics.SetWatchlistSize(len(s.watchlist))
	return true, nil
}

// FirstVisit reports whether this profile has been seen before and marks
// it visited. Returns true exactly once per profile lifetime; the client
// uses it to decide whether to run the onboarding tour.
func (s *Store) FirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.get(keyVisited); ok {
		return false
	}
	s.set(keyVisited, []byte("true"))
	return true
}

// copyPreferences deep-copies a preference object so callers can never
// mutate store state through a snapshot.
func copyPreferences(p engine.Preferences) engine.Preferences {
	out := engine.Preferences{
		FavoriteGenres: make([]catalog.Genre, len(p.FavoriteGenres)),
		RatedMovies:    make(map[int]int, len(p.RatedMovies)),
		MinimumRating:  p.MinimumRating,
	}
	copy(out.FavoriteGenres, p.FavoriteGenres)
	for id, r := range p.RatedMovies {
		out.RatedMovies[id] = r
	}
	return out
}
