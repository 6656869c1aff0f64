// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package models

import (
	"testing"
)

func TestRateMovieBounds(t *testing.T) {
	tests := []struct {
		name     string
		rating   float64
		recorded bool
	}{
		{"lower bound", 1.0, true},
		{"upper bound", 5.0, true},
		{"middle", 3.5, true},
		{"below range", 0.5, false},
		{"above range", 5.5, false},
		{"zero", 0, false},
		{"negative", -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser(1, "alice", "alice@email.com", "pw")
			u.RateMovie(10, tt.rating)

			_, rated := u.MovieRatings[10]
			if rated != tt.recorded {
				t.Errorf("rated = %v, want %v", rated, tt.recorded)
			}
			if u.HasWatched(10) != tt.recorded {
				t.Errorf("watched = %v, want %v", u.HasWatched(10), tt.recorded)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	u := NewUser(1, "alice", "alice@email.com", "pw")
	if u.AverageRating() != 0 {
		t.Errorf("AverageRating() with no ratings = %f, want 0", u.AverageRating())
	}

	u.RateMovie(1, 5.0)
	u.RateMovie(2, 4.0)
	u.RateMovie(3, 3.0)
	if got := u.AverageRating(); got != 4.0 {
		t.Errorf("AverageRating() = %f, want 4.0", got)
	}
	if u.RatingCount() != 3 {
		t.Errorf("RatingCount() = %d, want 3", u.RatingCount())
	}
}

func TestCloneIsDeep(t *testing.T) {
	u := NewUser(1, "alice", "alice@email.com", "pw")
	u.AddFavoriteGenre("Action")
	u.RateMovie(1, 4.0)
	u.MarkWatched(2)

	cp := u.Clone()
	cp.FavoriteGenres[0] = "Horror"
	cp.MovieRatings[9] = 5.0
	cp.WatchedMovies[9] = true

	if u.FavoriteGenres[0] != "Action" {
		t.Error("clone shares the genres slice")
	}
	if _, ok := u.MovieRatings[9]; ok {
		t.Error("clone shares the ratings map")
	}
	if u.HasWatched(9) {
		t.Error("clone shares the watched map")
	}
}

func TestFormattedDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{152, "2h 32m"},
		{60, "1h 0m"},
		{45, "45m"},
		{0, "unknown"},
		{-5, "unknown"},
	}

	for _, tt := range tests {
		m := Movie{Duration: tt.minutes}
		if got := m.FormattedDuration(); got != tt.want {
			t.Errorf("FormattedDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
