// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"slices"
	"time"

	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/cropdata"
	"github.com/tomtom215/agropredict/internal/database"
	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/metrics"
	"github.com/tomtom215/agropredict/internal/predictor"
	"github.com/tomtom215/agropredict/internal/supervisor"
	"github.com/tomtom215/agropredict/internal/supervisor/services"
)

func newPredictor(cfg *config.Config) *predictor.Predictor {
	return predictor.New(predictor.Config{
		GradientBoostingDir: cfg.Models.GradientBoostingDir,
		TensorFlowDir:       cfg.Models.TensorFlowDir,
		TFLiteThreads:       cfg.Models.TFLiteThreads,
		Breaker: predictor.BreakerSettings{
			Timeout:      cfg.Models.BreakerTimeout,
			MinRequests:  cfg.Models.BreakerMinRequests,
			FailureRatio: cfg.Models.BreakerFailureRatio,
		},
	})
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// addWarmups schedules the preload services selected in cfg.
func addWarmups(tree *supervisor.SupervisorTree, cfg *config.Config, pred *predictor.Predictor, crops *cropdata.Service) {
	if cfg.Models.Preload {
		tree.AddModelService(services.NewWarmupService("model-warmup", pred.Load, false))
	}
	if cfg.Dataset.Preload {
		tree.AddModelService(services.NewWarmupService("dataset-warmup", datasetLoader(crops), true))
	}
}

// datasetLoader retries aggregation failures but not a missing file.
func datasetLoader(crops interface{ Load(context.Context) error }) services.LoadFunc {
	return func(ctx context.Context) error {
		err := crops.Load(ctx)
		if errors.Is(err, database.ErrDatasetNotFound) {
			return services.Permanent(err)
		}
		return err
	}
}

func recordBuildInfo(version string) {
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

func warnInsecureSettings(cfg *config.Config) {
	if cfg.RateLimit.Disabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && cfg.Security.APIKey == "" {
		logging.Warn().Msg("No API_KEY set: prediction and model endpoints are public")
	}
	if cfg.IsProduction() && slices.Contains(cfg.Security.CORSOrigins, "*") {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}
}
