// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package recommend

import "fmt"

// Config holds tuning parameters for the recommendation engine.
type Config struct {
	// SimilarUserLimit caps how many neighbors feed collaborative scoring.
	SimilarUserLimit int

	// MinSimilarity is the exclusive lower bound for a user to count as a
	// neighbor. Similarity at or below this value is discarded.
	MinSimilarity float64

	// HighRatingThreshold is the minimum per-user rating (1-5 scale) for a
	// rating to contribute to collaborative scores and genre inference.
	HighRatingThreshold float64

	// MinCommonRatings is the minimum number of co-rated movies required
	// before user similarity is computed at all.
	MinCommonRatings int

	// TrendingMinRating and TrendingMinYear bound the trending query
	// (aggregate 0-10 scale, release year).
	TrendingMinRating float64
	TrendingMinYear   int

	// PopularityOversample multiplies the top-rated fetch size in the
	// popularity fallback so watched movies can be filtered out without
	// coming up short.
	PopularityOversample int
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		SimilarUserLimit:     5,
		MinSimilarity:        0.3,
		HighRatingThreshold:  4.0,
		MinCommonRatings:     2,
		TrendingMinRating:    7.5,
		TrendingMinYear:      2000,
		PopularityOversample: 2,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.SimilarUserLimit <= 0 {
		return fmt.Errorf("similar user limit must be positive, got %d", c.SimilarUserLimit)
	}
	if c.MinSimilarity < 0 || c.MinSimilarity >= 1 {
		return fmt.Errorf("min similarity must be in [0, 1), got %f", c.MinSimilarity)
	}
	if c.MinCommonRatings < 1 {
		return fmt.Errorf("min common ratings must be at least 1, got %d", c.MinCommonRatings)
	}
	if c.PopularityOversample < 1 {
		return fmt.Errorf("popularity oversample must be at least 1, got %d", c.PopularityOversample)
	}
	return nil
}
