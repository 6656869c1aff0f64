// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

// Command server runs the MovieBot HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/suhail100506/moviebot/internal/api"
	"github.com/suhail100506/moviebot/internal/auth"
	"github.com/suhail100506/moviebot/internal/catalog"
	"github.com/suhail100506/moviebot/internal/config"
	"github.com/suhail100506/moviebot/internal/logging"
	"github.com/suhail100506/moviebot/internal/recommend"
	"github.com/suhail100506/moviebot/internal/supervisor"
	"github.com/suhail100506/moviebot/internal/supervisor/services"
	"github.com/suhail100506/moviebot/internal/tmdb"
	"github.com/suhail100506/moviebot/internal/users"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Bool("tmdb_enabled", cfg.TMDB.Enabled()).
		Msg("starting moviebot")

	catalogStore := catalog.NewStore()
	catalog.Seed(catalogStore)

	userStore := users.NewStore()
	users.Seed(userStore)

	logging.Info().
		Int("movies", catalogStore.Len()).
		Int("users", userStore.Count()).
		Msg("seed data loaded")

	engine, err := recommend.NewEngine(recommend.Config{
		SimilarUserLimit:     cfg.Recommend.SimilarUserLimit,
		MinSimilarity:        cfg.Recommend.MinSimilarity,
		HighRatingThreshold:  cfg.Recommend.HighRatingThreshold,
		MinCommonRatings:     cfg.Recommend.MinCommonRatings,
		TrendingMinRating:    cfg.Recommend.TrendingMinRating,
		TrendingMinYear:      cfg.Recommend.TrendingMinYear,
		PopularityOversample: cfg.Recommend.PopularityOversample,
	}, catalogStore, userStore)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return fmt.Errorf("create token manager: %w", err)
	}

	tmdbClient := tmdb.NewClient(cfg.TMDB)

	handler := api.NewHandler(cfg, catalogStore, userStore, engine, tmdbClient, tokens)
	router := api.NewRouter(handler, api.NewChiMiddleware(cfg.Server))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logging.Info().Msg("moviebot stopped")
	return nil
}
