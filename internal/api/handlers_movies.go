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

	"github.com/suhail100506/moviebot/internal/models"
)

// ListMovies handles GET /api/v1/movies. Exactly one filter is applied,
// chosen in priority order: q (title substring), genre, director, year,
// min_rating. Without filters the full catalog is returned.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var movies []models.Movie
	switch {
	case r.URL.Query().Get("q") != "":
		movies = h.catalog.SearchByTitle(r.URL.Query().Get("q"))
	case r.URL.Query().Get("genre") != "":
		movies = h.catalog.SearchByGenre(r.URL.Query().Get("genre"))
	case r.URL.Query().Get("director") != "":
		movies = h.catalog.SearchByDirector(r.URL.Query().Get("director"))
	case r.URL.Query().Get("year") != "":
		movies = h.catalog.SearchByYear(getIntParam(r, "year", 0))
	case r.URL.Query().Get("min_rating") != "":
		movies = h.catalog.WithMinRating(getFloatParam(r, "min_rating", 0))
	default:
		movies = h.catalog.All()
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total":  len(movies),
		"movies": movies,
	}, start)
}

// GetMovie handles GET /api/v1/movies/{movieID}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "movie ID must be an integer", nil)
		return
	}

	movie, ok := h.catalog.GetByID(movieID)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "movie not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, movie, start)
}

// TopRatedMovies handles GET /api/v1/movies/top-rated.
func (h *Handler) TopRatedMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", 10)
	movies := h.catalog.TopRated(limit)

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total":  len(movies),
		"movies": movies,
	}, start)
}
