// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/suhail100506/moviebot/internal/metrics"
	"github.com/suhail100506/moviebot/internal/models"
	"github.com/suhail100506/moviebot/internal/users"
)

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	user, err := h.users.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			respondError(w, http.StatusConflict, "CONFLICT", "username already taken", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "registration failed", err)
		return
	}

	metrics.UsersRegistered.Inc()
	respondSuccess(w, http.StatusCreated, user, start)
}

// Login handles POST /api/v1/auth/login. Failed logins report a single
// generic message regardless of which credential was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	user, ok := h.users.Authenticate(req.Username, req.Password)
	if !ok {
		h.logger.Warn().Str("username", sanitizeLogValue(req.Username)).Msg("failed login attempt")
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "invalid username or password", nil)
		return
	}

	token, expiresAt, err := h.tokens.IssueToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to issue token", err)
		return
	}

	respondSuccess(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, start)
}
