// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suhail100506/moviebot/internal/metrics"
)

// clampCount applies the configured upper bound. Non-positive counts pass
// through untouched; the engine answers those with an empty slice.
func (h *Handler) clampCount(count int) int {
	if count > h.cfg.Recommend.MaxCount {
		return h.cfg.Recommend.MaxCount
	}
	return count
}

// GetRecommendations handles GET /api/v1/recommendations/user/{userID}.
// An empty list is a normal response for users the engine has nothing
// for, not an error.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user ID must be an integer", nil)
		return
	}

	user, found := h.users.GetByID(userID)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}

	maxCount := h.clampCount(getIntParam(r, "max", h.cfg.Recommend.DefaultMaxCount))

	computeStart := time.Now()
	recommendations := h.engine.Recommend(user, maxCount)
	metrics.RecordRecommendation("personalized", time.Since(computeStart))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"total":           len(recommendations),
		"recommendations": recommendations,
	}, start)
}

// GetSimilarMovies handles GET /api/v1/recommendations/similar/{movieID}.
func (h *Handler) GetSimilarMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "movie ID must be an integer", nil)
		return
	}

	movie, found := h.catalog.GetByID(movieID)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "movie not found", nil)
		return
	}

	count := h.clampCount(getIntParam(r, "count", h.cfg.Recommend.DefaultMaxCount))

	computeStart := time.Now()
	similar := h.engine.SimilarMovies(movie, count)
	metrics.RecordRecommendation("similar", time.Since(computeStart))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"movie_id": movieID,
		"total":    len(similar),
		"movies":   similar,
	}, start)
}

// GetTrending handles GET /api/v1/recommendations/trending.
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count := h.clampCount(getIntParam(r, "count", h.cfg.Recommend.DefaultMaxCount))

	computeStart := time.Now()
	trending := h.engine.Trending(count)
	metrics.RecordRecommendation("trending", time.Since(computeStart))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total":  len(trending),
		"movies": trending,
	}, start)
}
