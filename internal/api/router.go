// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suhail100506/moviebot/internal/middleware"
)

// Router assembles the chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the given handler and middleware set.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// Setup builds the full route tree:
//
//	/api/v1/health           liveness, readiness, summary
//	/api/v1/auth             register, login (strict rate limit)
//	/api/v1/movies           catalog queries
//	/api/v1/users            profiles and mutations (Bearer required for writes)
//	/api/v1/recommendations  personalized, similar, trending
//	/api/v1/tmdb             metadata proxy
//	/metrics                 Prometheus
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	requireAuth := router.handler.tokens.Middleware(func(w http.ResponseWriter, message string) {
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", message, nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(middleware.PrometheusMetrics)
		r.Post("/register", router.handler.Register)
		r.Post("/login", router.handler.Login)
	})

	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", router.handler.ListMovies)
		r.Get("/top-rated", router.handler.TopRatedMovies)
		r.Get("/{movieID}", router.handler.GetMovie)
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/top", router.handler.MostActiveUsers)
		r.Get("/{userID}", router.handler.GetUser)
		r.Get("/{userID}/ratings", router.handler.GetUserRatings)

		// Mutations require a session token
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/{userID}/ratings", router.handler.RateMovie)
			r.Post("/{userID}/watched", router.handler.MarkWatched)
			r.Post("/{userID}/genres", router.handler.AddFavoriteGenre)
			r.Delete("/{userID}/genres/{genre}", router.handler.RemoveFavoriteGenre)
		})
	})

	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/user/{userID}", router.handler.GetRecommendations)
		r.Get("/similar/{movieID}", router.handler.GetSimilarMovies)
		r.Get("/trending", router.handler.GetTrending)
	})

	r.Route("/api/v1/tmdb", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/trending", router.handler.TMDBTrending)
		r.Get("/search", router.handler.TMDBSearch)
		r.Get("/movie/{tmdbID}", router.handler.TMDBMovieDetails)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found", nil)
	})

	return r
}
