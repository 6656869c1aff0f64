// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package recommend

import (
	"math"

	"github.com/suhail100506/moviebot/internal/models"
)

// Movie similarity weights. The four components sum to 1.0 when every
// feature matches exactly.
const (
	genreMatchWeight    = 0.4
	ratingGapWeight     = 0.3
	yearGapWeight       = 0.2
	directorMatchWeight = 0.1

	// yearGapWindow is the maximum release-year gap that still earns any
	// year-proximity score.
	yearGapWindow = 10

	// aggregateRatingScale normalizes the 0-10 aggregate rating gap.
	aggregateRatingScale = 10.0
)

// UserSimilarity computes the Pearson correlation between two users'
// ratings over their co-rated movies. Fewer than minCommon co-rated
// movies, or zero variance on either side, yields 0. Negative
// correlations are clamped to 0, so the result is always in [0, 1].
// The function is symmetric in its rating arguments.
func UserSimilarity(ratings1, ratings2 map[int]float64, minCommon int) float64 {
	common := make([]int, 0, len(ratings1))
	for movieID := range ratings1 {
		if _, ok := ratings2[movieID]; ok {
			common = append(common, movieID)
		}
	}
	if len(common) < minCommon {
		return 0
	}

	var sum1, sum2, sum1Sq, sum2Sq, sumProducts float64
	for _, movieID := range common {
		r1 := ratings1[movieID]
		r2 := ratings2[movieID]
		sum1 += r1
		sum2 += r2
		sum1Sq += r1 * r1
		sum2Sq += r2 * r2
		sumProducts += r1 * r2
	}

	n := float64(len(common))
	numerator := sumProducts - sum1*sum2/n
	denominator := math.Sqrt((sum1Sq - sum1*sum1/n) * (sum2Sq - sum2*sum2/n))
	if denominator == 0 {
		return 0
	}

	return math.Max(0, numerator/denominator)
}

// MovieSimilarity scores how alike two movies are on genre, aggregate
// rating proximity, release-year proximity, and director. The score is a
// ranking key only; it is symmetric and sits in [0, 1].
func MovieSimilarity(a, b models.Movie) float64 {
	var score float64

	if a.Genre == b.Genre {
		score += genreMatchWeight
	}

	ratingGap := math.Abs(a.Rating - b.Rating)
	score += ratingGapWeight * (1.0 - ratingGap/aggregateRatingScale)

	yearGap := a.Year - b.Year
	if yearGap < 0 {
		yearGap = -yearGap
	}
	if yearGap <= yearGapWindow {
		score += yearGapWeight * (1.0 - float64(yearGap)/yearGapWindow)
	}

	if a.Director == b.Director {
		score += directorMatchWeight
	}

	return score
}
