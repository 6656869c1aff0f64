// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package api implements the HTTP surface of the service: movie catalog
// queries, user registration and login, taste-profile mutations,
// recommendation endpoints, and the TMDB metadata proxy. All responses use
// the models.APIResponse envelope.
package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/suhail100506/moviebot/internal/auth"
	"github.com/suhail100506/moviebot/internal/catalog"
	"github.com/suhail100506/moviebot/internal/config"
	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/recommend"
	"github.com/suhail100506/moviebot/internal/tmdb"
	"github.com/suhail100506/moviebot/internal/users"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	cfg     *config.Config
	catalog *catalog.Store
	users   *users.Store
	engine  *recommend.Engine
	tmdb    *tmdb.Client
	tokens  *auth.TokenManager
	logger  zerolog.Logger
	started time.Time
}

// NewHandler wires the handler dependencies.
func NewHandler(
	cfg *config.Config,
	catalogStore *catalog.Store,
	userStore *users.Store,
	engine *recommend.Engine,
	tmdbClient *tmdb.Client,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		cfg:     cfg,
		catalog: catalogStore,
		users:   userStore,
		engine:  engine,
		tmdb:    tmdbClient,
		tokens:  tokens,
		logger:  logging.With().Str("component", "api").Logger(),
		started: time.Now().UTC(),
	}
}

// Health reports overall service status with store counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"movies":         h.catalog.Len(),
		"users":          h.users.Count(),
		"tmdb_enabled":   h.tmdb.Enabled(),
	}, start)
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe. The service is ready once the seed
// data is loaded, which happens before the listener starts.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, time.Now())
}
