// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/suhail100506/moviebot/internal/config"
)

// ChiMiddleware builds the CORS and rate-limiting middleware used by the
// router's route groups.
type ChiMiddleware struct {
	corsHandler   func(http.Handler) http.Handler
	rateLimit     int
	authRateLimit int
	window        time.Duration
}

// NewChiMiddleware configures middleware from server settings.
func NewChiMiddleware(cfg config.ServerConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return &ChiMiddleware{
		corsHandler:   corsHandler,
		rateLimit:     cfg.RateLimit,
		authRateLimit: cfg.AuthRateLimit,
		window:        window,
	}
}

// CORS returns the CORS middleware. It must be global so OPTIONS preflight
// requests are handled before routing.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.corsHandler
}

// RateLimit is the standard per-IP limit for API routes.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		m.rateLimit,
		m.window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitAuth is the stricter per-IP limit for the auth endpoints,
// slowing credential stuffing.
func (m *ChiMiddleware) RateLimitAuth() func(http.Handler) http.Handler {
	return httprate.Limit(
		m.authRateLimit,
		m.window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitHealth is a generous limit for health probes.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return httprate.LimitByIP(10*m.rateLimit, m.window)
}

// rateLimitExceeded answers rejected requests in the standard envelope.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests", nil)
}
