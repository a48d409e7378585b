// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/agropredict/docs" // registers the swagger document
	"github.com/tomtom215/agropredict/internal/api"
	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/cropdata"
	"github.com/tomtom215/agropredict/internal/database"
	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/metrics"
	"github.com/tomtom215/agropredict/internal/supervisor"
	"github.com/tomtom215/agropredict/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	started := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("gb_model_dir", cfg.Models.GradientBoostingDir).
		Str("tf_model_dir", cfg.Models.TensorFlowDir).
		Str("dataset", cfg.Dataset.Path).
		Bool("api_key", cfg.Security.APIKey != "").
		Msg("Configuration loaded")
	warnInsecureSettings(cfg)

	recordBuildInfo(version)

	pred := newPredictor(cfg)
	defer func() {
		if err := pred.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing model runtimes")
		}
	}()

	db, err := database.Open(&cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open DuckDB")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	crops := cropdata.NewService(db, cfg.Dataset.Path, cfg.Dataset.CacheTTL)
	defer crops.Close()

	router := api.NewRouter(api.NewHandler(pred, crops, version), cfg)
	defer router.Close()

	server := newHTTPServer(cfg, router.SetupChi())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	addWarmups(tree, cfg, pred, crops)
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	go trackUptime(ctx, started)
	watchConfig()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Dur("uptime", time.Since(started)).Msg("Application stopped gracefully")
}

// watchConfig applies log level changes from the config file without a restart.
func watchConfig() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Msg("Ignoring invalid configuration change")
			return
		}
		if cfg.Logging.Level != logging.GetLevel().String() {
			logging.SetLevelString(cfg.Logging.Level)
			logging.Info().Str("level", cfg.Logging.Level).Msg("Log level updated")
		}
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file hot-reload unavailable")
		return
	}
	logging.Info().Str("path", path).Msg("Watching config file for changes")
}

func trackUptime(ctx context.Context, started time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		metrics.AppUptime.Set(time.Since(started).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
