// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suhail100506/moviebot/internal/tmdb"
)

// tmdbError maps client failures to HTTP responses. Breaker rejections and
// upstream failures both surface as 502; a missing API key is 503.
func tmdbError(w http.ResponseWriter, err error) {
	if errors.Is(err, tmdb.ErrDisabled) {
		respondError(w, http.StatusServiceUnavailable, "TMDB_DISABLED", "TMDB proxy is not configured", nil)
		return
	}
	respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "TMDB request failed", err)
}

// TMDBTrending handles GET /api/v1/tmdb/trending.
func (h *Handler) TMDBTrending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, err := h.tmdb.Trending(r.Context())
	if err != nil {
		tmdbError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, page, start)
}

// TMDBSearch handles GET /api/v1/tmdb/search?q=.
func (h *Handler) TMDBSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "query parameter q is required", nil)
		return
	}

	page, err := h.tmdb.Search(r.Context(), query)
	if err != nil {
		tmdbError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, page, start)
}

// TMDBMovieDetails handles GET /api/v1/tmdb/movie/{tmdbID}.
func (h *Handler) TMDBMovieDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tmdbID, err := strconv.Atoi(chi.URLParam(r, "tmdbID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "movie ID must be an integer", nil)
		return
	}

	details, err := h.tmdb.Details(r.Context(), tmdbID)
	if err != nil {
		tmdbError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, details, start)
}
