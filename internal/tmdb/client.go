// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package tmdb proxies metadata lookups (trending, search, details) to The
// Movie Database API. Outbound calls run behind a circuit breaker and a
// client-side rate limiter so a slow or failing upstream cannot exhaust
// the service.
//
// The client stays disabled unless an API key is configured; in that state
// every call returns ErrDisabled and the API surfaces 503.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/suhail100506/moviebot/internal/config"
	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/metrics"
)

var (
	// ErrDisabled is returned when no API key is configured.
	ErrDisabled = errors.New("tmdb client disabled: no API key configured")

	// ErrUpstream wraps failures from the TMDB API itself.
	ErrUpstream = errors.New("tmdb upstream error")
)

// maxResponseBytes bounds upstream response bodies.
const maxResponseBytes = 4 << 20

// Page is a paged TMDB result set.
type Page struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a single entry in a TMDB result page.
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	GenreIDs    []int   `json:"genre_ids"`
}

// MovieDetails is the full record for a single TMDB movie.
type MovieDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Genres      []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// Client calls the TMDB API with circuit breaking and rate limiting.
type Client struct {
	cfg        config.TMDBConfig
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[interface{}]
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a TMDB client. The client is usable even without an
// API key; calls then fail fast with ErrDisabled.
func NewClient(cfg config.TMDBConfig) *Client {
	const cbName = "tmdb-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	logger := logging.With().Str("component", "tmdb").Logger()

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		cb:         cb,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

// Enabled reports whether the client has an API key configured.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

// Trending returns the movies trending this week.
func (c *Client) Trending(ctx context.Context) (*Page, error) {
	result, err := c.execute(ctx, "/trending/movie/week", nil, &Page{})
	return castResult[Page](result, err)
}

// Search queries TMDB for movies matching the query string.
func (c *Client) Search(ctx context.Context, query string) (*Page, error) {
	result, err := c.execute(ctx, "/search/movie", url.Values{"query": {query}}, &Page{})
	return castResult[Page](result, err)
}

// Details fetches the full record for one movie.
func (c *Client) Details(ctx context.Context, movieID int) (*MovieDetails, error) {
	result, err := c.execute(ctx, "/movie/"+strconv.Itoa(movieID), nil, &MovieDetails{})
	return castResult[MovieDetails](result, err)
}

// execute runs one upstream request through the limiter and breaker,
// decoding the body into out.
func (c *Client) execute(ctx context.Context, path string, query url.Values, out interface{}) (interface{}, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, path, query, out)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.TMDBRequests.WithLabelValues("rejected").Inc()
			c.logger.Warn().Err(err).Str("path", path).Msg("request rejected by circuit breaker")
		} else {
			metrics.TMDBRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.TMDBRequests.WithLabelValues("success").Inc()
	return result, nil
}

// doRequest performs the HTTP call and decodes the response into out.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, out interface{}) (interface{}, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.cfg.APIKey)

	reqURL := c.cfg.BaseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}

	return out, nil
}

// castResult type-casts the circuit breaker result with error checking.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToString converts a gobreaker state to its label value.
func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts a gobreaker state to its gauge value.
func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
