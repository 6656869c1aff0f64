// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package users provides the in-memory user roster: registration,
// credential checks, taste-profile mutations, and the read surface the
// recommendation engine consumes.
//
// Reads return deep-copied snapshots ordered by user ID ascending.
// Mutations go through the store so the rated-implies-watched invariant
// and the 1-5 rating bounds are enforced in one place.
package users

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/models"
)

// ErrUsernameTaken is returned by Register when the username is already in
// use. Username comparison is case-insensitive.
var ErrUsernameTaken = errors.New("username already taken")

// Store is a mutex-guarded in-memory user roster. IDs are assigned
// sequentially starting at 1.
type Store struct {
	mu     sync.RWMutex
	users  []*models.User
	byID   map[int]*models.User
	byName map[string]*models.User // lowercased username
	nextID int
	logger zerolog.Logger
}

// NewStore creates an empty roster.
func NewStore() *Store {
	return &Store{
		users:  []*models.User{},
		byID:   make(map[int]*models.User),
		byName: make(map[string]*models.User),
		nextID: 1,
		logger: logging.With().Str("component", "users").Logger(),
	}
}

// Register creates a new user. Usernames are unique case-insensitively.
func (s *Store) Register(username, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(username)
	if _, exists := s.byName[key]; exists {
		return models.User{}, ErrUsernameTaken
	}

	user := models.NewUser(s.nextID, username, email, password)
	s.nextID++
	s.users = append(s.users, user)
	s.byID[user.UserID] = user
	s.byName[key] = user

	s.logger.Info().Int("user_id", user.UserID).Str("username", username).Msg("user registered")
	return user.Clone(), nil
}

// Authenticate checks credentials with a plain string comparison and
// returns the matching user. Failure reports false with no detail about
// which part of the credentials was wrong.
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byName[strings.ToLower(username)]
	if !ok || user.Password != password {
		return models.User{}, false
	}
	return user.Clone(), true
}

// GetByID returns a snapshot of the user with the given ID.
func (s *Store) GetByID(userID int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[userID]
	if !ok {
		return models.User{}, false
	}
	return user.Clone(), true
}

// GetByUsername returns a snapshot by username, case-insensitive.
func (s *Store) GetByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byName[strings.ToLower(username)]
	if !ok {
		return models.User{}, false
	}
	return user.Clone(), true
}

// UsernameExists reports whether a username is taken, case-insensitive.
func (s *Store) UsernameExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byName[strings.ToLower(username)]
	return ok
}

// All returns snapshots of every user, ordered by ID ascending.
func (s *Store) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// Count returns the number of registered users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// MostActive returns up to limit users ordered by rating count descending,
// ties broken by ID ascending.
func (s *Store) MostActive(limit int) []models.User {
	if limit <= 0 {
		return []models.User{}
	}

	ranked := s.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].MovieRatings) > len(ranked[j].MovieRatings)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ByFavoriteGenre returns users who list the genre among their favorites.
func (s *Store) ByFavoriteGenre(genre string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.User{}
	for _, u := range s.users {
		for _, g := range u.FavoriteGenres {
			if g == genre {
				out = append(out, u.Clone())
				break
			}
		}
	}
	return out
}

// RateMovie records a rating for the user and marks the movie watched.
// Unknown users and out-of-range ratings are silently ignored.
func (s *Store) RateMovie(userID, movieID int, rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return
	}
	user.RateMovie(movieID, rating)
}

// MarkWatched adds a movie to the user's watched set.
func (s *Store) MarkWatched(userID, movieID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byID[userID]; ok {
		user.MarkWatched(movieID)
	}
}

// AddFavoriteGenre appends a genre to the user's favorites if not present.
func (s *Store) AddFavoriteGenre(userID int, genre string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byID[userID]; ok {
		user.AddFavoriteGenre(genre)
	}
}

// RemoveFavoriteGenre removes a genre from the user's favorites.
func (s *Store) RemoveFavoriteGenre(userID int, genre string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byID[userID]; ok {
		user.RemoveFavoriteGenre(genre)
	}
}
