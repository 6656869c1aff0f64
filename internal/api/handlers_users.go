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

	"github.com/suhail100506/moviebot/internal/auth"
	"github.com/suhail100506/moviebot/internal/metrics"
	"github.com/suhail100506/moviebot/internal/models"
)

// userIDParam parses the {userID} route parameter. A second return of
// false means an error response was already written.
func (h *Handler) userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user ID must be an integer", nil)
		return 0, false
	}
	return userID, true
}

// requireSelf rejects mutations against a user other than the token
// holder. Accounts have a single tier, so nobody edits anyone else.
func (h *Handler) requireSelf(w http.ResponseWriter, r *http.Request, userID int) bool {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.UserID != userID {
		respondError(w, http.StatusForbidden, "AUTHORIZATION_ERROR", "cannot modify another user's profile", nil)
		return false
	}
	return true
}

// GetUser handles GET /api/v1/users/{userID}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	user, found := h.users.GetByID(userID)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, user, start)
}

// GetUserRatings handles GET /api/v1/users/{userID}/ratings.
func (h *Handler) GetUserRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	user, found := h.users.GetByID(userID)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total":   len(user.MovieRatings),
		"ratings": user.MovieRatings,
		"average": user.AverageRating(),
	}, start)
}

// MostActiveUsers handles GET /api/v1/users/top.
func (h *Handler) MostActiveUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", 10)
	ranked := h.users.MostActive(limit)

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total": len(ranked),
		"users": ranked,
	}, start)
}

// RateMovie handles POST /api/v1/users/{userID}/ratings. Validation
// rejects out-of-range ratings before the store's silent-ignore path, so
// a 200 always means the rating was recorded.
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if !h.requireSelf(w, r, userID) {
		return
	}

	var req models.RateMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, found := h.users.GetByID(userID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}
	if _, found := h.catalog.GetByID(req.MovieID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "movie not found", nil)
		return
	}

	h.users.RateMovie(userID, req.MovieID, req.Rating)
	metrics.RatingsSubmitted.Inc()

	user, _ := h.users.GetByID(userID)
	respondSuccess(w, http.StatusOK, user, start)
}

// MarkWatched handles POST /api/v1/users/{userID}/watched.
func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if !h.requireSelf(w, r, userID) {
		return
	}

	var req models.WatchedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, found := h.users.GetByID(userID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}
	if _, found := h.catalog.GetByID(req.MovieID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "movie not found", nil)
		return
	}

	h.users.MarkWatched(userID, req.MovieID)

	user, _ := h.users.GetByID(userID)
	respondSuccess(w, http.StatusOK, user, start)
}

// AddFavoriteGenre handles POST /api/v1/users/{userID}/genres.
func (h *Handler) AddFavoriteGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if !h.requireSelf(w, r, userID) {
		return
	}

	var req models.FavoriteGenreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, found := h.users.GetByID(userID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}

	h.users.AddFavoriteGenre(userID, req.Genre)

	user, _ := h.users.GetByID(userID)
	respondSuccess(w, http.StatusOK, user, start)
}

// RemoveFavoriteGenre handles DELETE /api/v1/users/{userID}/genres/{genre}.
func (h *Handler) RemoveFavoriteGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if !h.requireSelf(w, r, userID) {
		return
	}

	genre := chi.URLParam(r, "genre")
	if genre == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "genre must not be empty", nil)
		return
	}

	if _, found := h.users.GetByID(userID); !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}

	h.users.RemoveFavoriteGenre(userID, genre)

	user, _ := h.users.GetByID(userID)
	respondSuccess(w, http.StatusOK, user, start)
}
