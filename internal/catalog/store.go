// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package catalog provides the in-memory movie catalog with its query
// surface: lookups by ID, substring title search, genre/director/year
// filters, minimum-rating filters, and top-rated rankings.
//
// All reads return snapshot copies ordered by movie ID ascending, so
// callers can iterate deterministically without holding the store lock.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/models"
)

// Store is a mutex-guarded in-memory movie catalog. IDs are assigned
// sequentially starting at 1.
type Store struct {
	mu     sync.RWMutex
	movies []models.Movie
	byID   map[int]int // movie ID -> index into movies
	nextID int
	logger zerolog.Logger
}

// NewStore creates an empty catalog.
func NewStore() *Store {
	return &Store{
		movies: []models.Movie{},
		byID:   make(map[int]int),
		nextID: 1,
		logger: logging.With().Str("component", "catalog").Logger(),
	}
}

// AddMovie assigns the next sequential ID and stores the movie. The stored
// entry is immutable; the returned copy carries the assigned ID.
func (s *Store) AddMovie(title, genre string, year int, rating float64, director, description string, duration int) models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie := models.Movie{
		ID:          s.nextID,
		Title:       title,
		Genre:       genre,
		Year:        year,
		Rating:      rating,
		Director:    director,
		Description: description,
		Duration:    duration,
	}
	s.nextID++
	s.byID[movie.ID] = len(s.movies)
	s.movies = append(s.movies, movie)

	s.logger.Debug().Int("movie_id", movie.ID).Str("title", title).Msg("movie added")
	return movie
}

// GetByID returns the movie with the given ID.
func (s *Store) GetByID(id int) (models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return s.movies[idx], true
}

// All returns a snapshot of every movie, ordered by ID ascending.
func (s *Store) All() []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Len returns the number of movies in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// SearchByTitle returns movies whose title contains the query,
// case-insensitive.
func (s *Store) SearchByTitle(query string) []models.Movie {
	q := strings.ToLower(query)
	return s.filter(func(m models.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), q)
	})
}

// SearchByGenre returns movies whose genre matches, case-insensitive.
func (s *Store) SearchByGenre(genre string) []models.Movie {
	return s.filter(func(m models.Movie) bool {
		return strings.EqualFold(m.Genre, genre)
	})
}

// SearchByDirector returns movies whose director matches, case-insensitive.
func (s *Store) SearchByDirector(director string) []models.Movie {
	return s.filter(func(m models.Movie) bool {
		return strings.EqualFold(m.Director, director)
	})
}

// SearchByYear returns movies released in the given year.
func (s *Store) SearchByYear(year int) []models.Movie {
	return s.filter(func(m models.Movie) bool {
		return m.Year == year
	})
}

// WithMinRating returns movies rated at or above the threshold.
func (s *Store) WithMinRating(minRating float64) []models.Movie {
	return s.filter(func(m models.Movie) bool {
		return m.Rating >= minRating
	})
}

// TopRated returns up to limit movies sorted by rating descending,
// ties broken by ID ascending. A non-positive limit yields an empty slice.
func (s *Store) TopRated(limit int) []models.Movie {
	if limit <= 0 {
		return []models.Movie{}
	}

	ranked := s.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// filter returns matching movies in ID order. movies is append-only and
// ID-ordered, so iteration order is already deterministic.
func (s *Store) filter(keep func(models.Movie) bool) []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Movie{}
	for _, m := range s.movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
