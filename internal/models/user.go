// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package models

import "time"

// Per-user rating bounds. Distinct from the 0-10 aggregate Movie.Rating scale.
const (
	MinUserRating = 1.0
	MaxUserRating = 5.0
)

// User represents a registered account with its taste profile: ordered
// favorite genres, the set of watched movie IDs, and per-movie ratings
// on the 1-5 scale.
//
// Invariant: every rated movie is also watched. RateMovie maintains this;
// mutation through the users store preserves it.
type User struct {
	UserID         int             `json:"user_id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	Password       string          `json:"-"`
	FavoriteGenres []string        `json:"favorite_genres"`
	WatchedMovies  map[int]bool    `json:"watched_movies"`
	MovieRatings   map[int]float64 `json:"movie_ratings"`
	JoinDate       time.Time       `json:"join_date"`
}

// NewUser creates a user with initialized collections.
func NewUser(id int, username, email, password string) *User {
	return &User{
		UserID:         id,
		Username:       username,
		Email:          email,
		Password:       password,
		FavoriteGenres: []string{},
		WatchedMovies:  make(map[int]bool),
		MovieRatings:   make(map[int]float64),
		JoinDate:       time.Now().UTC(),
	}
}

// RateMovie records a rating and marks the movie watched. Ratings outside
// [1.0, 5.0] are silently ignored, leaving the user unchanged.
func (u *User) RateMovie(movieID int, rating float64) {
	if rating < MinUserRating || rating > MaxUserRating {
		return
	}
	u.MovieRatings[movieID] = rating
	u.WatchedMovies[movieID] = true
}

// MarkWatched adds a movie to the watched set without rating it.
func (u *User) MarkWatched(movieID int) {
	u.WatchedMovies[movieID] = true
}

// HasWatched reports whether the user has watched the given movie.
func (u *User) HasWatched(movieID int) bool {
	return u.WatchedMovies[movieID]
}

// AddFavoriteGenre appends a genre unless already present. Order of
// insertion is preserved.
func (u *User) AddFavoriteGenre(genre string) {
	for _, g := range u.FavoriteGenres {
		if g == genre {
			return
		}
	}
	u.FavoriteGenres = append(u.FavoriteGenres, genre)
}

// RemoveFavoriteGenre removes a genre if present.
func (u *User) RemoveFavoriteGenre(genre string) {
	for i, g := range u.FavoriteGenres {
		if g == genre {
			u.FavoriteGenres = append(u.FavoriteGenres[:i], u.FavoriteGenres[i+1:]...)
			return
		}
	}
}

// RatingCount returns the number of movies the user has rated.
func (u *User) RatingCount() int {
	return len(u.MovieRatings)
}

// AverageRating returns the mean of the user's ratings, or 0 with none.
func (u *User) AverageRating() float64 {
	if len(u.MovieRatings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range u.MovieRatings {
		sum += r
	}
	return sum / float64(len(u.MovieRatings))
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's internal maps.
func (u *User) Clone() User {
	cp := *u
	cp.FavoriteGenres = append([]string{}, u.FavoriteGenres...)
	cp.WatchedMovies = make(map[int]bool, len(u.WatchedMovies))
	for id, v := range u.WatchedMovies {
		cp.WatchedMovies[id] = v
	}
	cp.MovieRatings = make(map[int]float64, len(u.MovieRatings))
	for id, r := range u.MovieRatings {
		cp.MovieRatings[id] = r
	}
	return cp
}
