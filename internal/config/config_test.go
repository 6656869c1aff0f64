// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
		{"zero rate limit", func(c *Config) { c.Server.RateLimit = 0 }, true},
		{"zero token TTL", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
		{"zero default max count", func(c *Config) { c.Recommend.DefaultMaxCount = 0 }, true},
		{"max count below default", func(c *Config) { c.Recommend.MaxCount = 1 }, true},
		{
			"tmdb enabled without base URL",
			func(c *Config) {
				c.TMDB.APIKey = "key"
				c.TMDB.BaseURL = ""
			},
			true,
		},
		{
			"tmdb enabled with valid settings",
			func(c *Config) { c.TMDB.APIKey = "key" },
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTMDBEnabled(t *testing.T) {
	cfg := TMDBConfig{}
	if cfg.Enabled() {
		t.Error("TMDB must be disabled without an API key")
	}
	cfg.APIKey = "key"
	if !cfg.Enabled() {
		t.Error("TMDB must be enabled with an API key")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"MOVIEBOT_SERVER_PORT", "server.port"},
		{"MOVIEBOT_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"MOVIEBOT_TMDB_API_KEY", "tmdb.api_key"},
		{"MOVIEBOT_AUTH_JWT_SECRET", "auth.jwt_secret"},
		{"MOVIEBOT_LOGGING_LEVEL", "logging.level"},
		{"MOVIEBOT_RECOMMEND_MIN_SIMILARITY", "recommend.min_similarity"},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token TTL = %s, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %s, want 10s", cfg.Server.ShutdownTimeout)
	}
}
