// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Package config defines the service configuration and its koanf-based
// loader. Precedence is environment variables over the optional YAML file
// over built-in defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Auth      AuthConfig      `koanf:"auth"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins. Env override is comma-separated.
	CORSOrigins []string `koanf:"cors_origins"`

	// Per-window request limits, applied per client IP.
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// Stricter limit for the auth endpoints.
	AuthRateLimit int `koanf:"auth_rate_limit"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	// JWTSecret signs session tokens. Empty means a random secret is
	// generated at startup, invalidating tokens across restarts.
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// TMDBConfig holds settings for the external metadata proxy. The proxy
// stays disabled unless an API key is configured.
type TMDBConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// Enabled reports whether the TMDB proxy should serve requests.
func (c TMDBConfig) Enabled() bool {
	return c.APIKey != ""
}

// RecommendConfig holds recommendation engine tuning.
type RecommendConfig struct {
	// DefaultMaxCount is used when a request does not specify a count.
	DefaultMaxCount int `koanf:"default_max_count"`

	// MaxCount caps the per-request count to bound response size.
	MaxCount int `koanf:"max_count"`

	SimilarUserLimit     int     `koanf:"similar_user_limit"`
	MinSimilarity        float64 `koanf:"min_similarity"`
	HighRatingThreshold  float64 `koanf:"high_rating_threshold"`
	MinCommonRatings     int     `koanf:"min_common_ratings"`
	TrendingMinRating    float64 `koanf:"trending_min_rating"`
	TrendingMinYear      int     `koanf:"trending_min_year"`
	PopularityOversample int     `koanf:"popularity_oversample"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimit:       100,
			RateLimitWindow: time.Minute,
			AuthRateLimit:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Auth: AuthConfig{
			JWTSecret: "",
			TokenTTL:  24 * time.Hour,
		},
		TMDB: TMDBConfig{
			APIKey:            "",
			BaseURL:           "https://api.themoviedb.org/3",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 4,
			Burst:             8,
		},
		Recommend: RecommendConfig{
			DefaultMaxCount:      10,
			MaxCount:             50,
			SimilarUserLimit:     5,
			MinSimilarity:        0.3,
			HighRatingThreshold:  4.0,
			MinCommonRatings:     2,
			TrendingMinRating:    7.5,
			TrendingMinYear:      2000,
			PopularityOversample: 2,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Server.RateLimit <= 0 || c.Server.AuthRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.TMDB.Enabled() {
		if c.TMDB.BaseURL == "" {
			return fmt.Errorf("tmdb base URL must be set when an API key is configured")
		}
		if c.TMDB.RequestsPerSecond <= 0 || c.TMDB.Burst <= 0 {
			return fmt.Errorf("tmdb rate limit values must be positive")
		}
	}
	if c.Recommend.DefaultMaxCount <= 0 {
		return fmt.Errorf("default max count must be positive, got %d", c.Recommend.DefaultMaxCount)
	}
	if c.Recommend.MaxCount < c.Recommend.DefaultMaxCount {
		return fmt.Errorf("max count %d must be at least default max count %d",
			c.Recommend.MaxCount, c.Recommend.DefaultMaxCount)
	}
	return nil
}
