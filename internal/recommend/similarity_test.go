// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package recommend

import (
	"math"
	"testing"

	"github.com/suhail100506/moviebot/internal/models"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestUserSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		ratings1 map[int]float64
		ratings2 map[int]float64
		want     float64
	}{
		{
			name:     "identical ratings give perfect correlation",
			ratings1: map[int]float64{1: 5.0, 2: 4.0, 3: 3.0},
			ratings2: map[int]float64{1: 5.0, 2: 4.0, 3: 3.0},
			want:     1.0,
		},
		{
			name:     "opposite ratings clamp to zero",
			ratings1: map[int]float64{1: 5.0, 2: 1.0},
			ratings2: map[int]float64{1: 1.0, 2: 5.0},
			want:     0.0,
		},
		{
			name:     "fewer than two common movies gives zero",
			ratings1: map[int]float64{1: 5.0, 2: 4.0},
			ratings2: map[int]float64{1: 5.0, 3: 4.0},
			want:     0.0,
		},
		{
			name:     "no common movies gives zero",
			ratings1: map[int]float64{1: 5.0},
			ratings2: map[int]float64{2: 5.0},
			want:     0.0,
		},
		{
			name:     "constant ratings have zero variance",
			ratings1: map[int]float64{1: 4.0, 2: 4.0, 3: 4.0},
			ratings2: map[int]float64{1: 5.0, 2: 3.0, 3: 1.0},
			want:     0.0,
		},
		{
			name:     "both empty gives zero",
			ratings1: map[int]float64{},
			ratings2: map[int]float64{},
			want:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserSimilarity(tt.ratings1, tt.ratings2, 2)
			if !almostEqual(got, tt.want) {
				t.Errorf("UserSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestUserSimilaritySymmetry(t *testing.T) {
	ratings1 := map[int]float64{1: 5.0, 2: 3.5, 3: 4.0, 4: 2.0}
	ratings2 := map[int]float64{1: 4.0, 2: 4.5, 3: 3.0, 5: 5.0}

	ab := UserSimilarity(ratings1, ratings2, 2)
	ba := UserSimilarity(ratings2, ratings1, 2)
	if !almostEqual(ab, ba) {
		t.Errorf("similarity not symmetric: %f vs %f", ab, ba)
	}
}

func TestUserSimilarityBounds(t *testing.T) {
	cases := []struct {
		ratings1 map[int]float64
		ratings2 map[int]float64
	}{
		{map[int]float64{1: 5.0, 2: 4.0, 3: 1.0}, map[int]float64{1: 4.5, 2: 4.0, 3: 2.0}},
		{map[int]float64{1: 1.0, 2: 5.0, 3: 3.0}, map[int]float64{1: 5.0, 2: 1.0, 3: 3.0}},
		{map[int]float64{1: 2.0, 2: 2.5}, map[int]float64{1: 4.0, 2: 3.5}},
	}

	for _, c := range cases {
		got := UserSimilarity(c.ratings1, c.ratings2, 2)
		if got < 0 || got > 1 {
			t.Errorf("UserSimilarity() = %f, want within [0, 1]", got)
		}
	}
}

func TestMovieSimilarity(t *testing.T) {
	base := models.Movie{ID: 1, Genre: "Action", Year: 2000, Rating: 8.0, Director: "Jane Doe"}

	tests := []struct {
		name  string
		other models.Movie
		want  float64
	}{
		{
			name:  "identical features score full weight",
			other: models.Movie{ID: 2, Genre: "Action", Year: 2000, Rating: 8.0, Director: "Jane Doe"},
			want:  1.0,
		},
		{
			name:  "genre and partial rating and year",
			other: models.Movie{ID: 3, Genre: "Action", Year: 2005, Rating: 7.0, Director: "John Smith"},
			want:  0.4 + 0.3*(1.0-1.0/10.0) + 0.2*(1.0-5.0/10.0),
		},
		{
			name:  "year gap beyond window earns nothing for year",
			other: models.Movie{ID: 4, Genre: "Drama", Year: 1980, Rating: 8.0, Director: "John Smith"},
			want:  0.3,
		},
		{
			name:  "director match only",
			other: models.Movie{ID: 5, Genre: "Drama", Year: 1985, Rating: 3.0, Director: "Jane Doe"},
			want:  0.3*(1.0-5.0/10.0) + 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovieSimilarity(base, tt.other)
			if !almostEqual(got, tt.want) {
				t.Errorf("MovieSimilarity() = %f, want %f", got, tt.want)
			}

			// ranking key must be symmetric
			if rev := MovieSimilarity(tt.other, base); !almostEqual(got, rev) {
				t.Errorf("MovieSimilarity not symmetric: %f vs %f", got, rev)
			}
		})
	}
}
