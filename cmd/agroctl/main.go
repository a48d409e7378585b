// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// Package main implements agroctl, an offline client for the AgroPredict
// model bundles and crop dataset. It reads the same configuration as the
// server and prints JSON.
//
//	agroctl predict --n 90 --p 42 --k 43 --temperature 20.8 --humidity 82 --ph 6.5 --rainfall 202.9
//	agroctl crops rice
//	agroctl models
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/cropdata"
	"github.com/tomtom215/agropredict/internal/database"
	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
)

// modelRunner is the predictor surface the CLI needs.
type modelRunner interface {
	Predict(ctx context.Context, model predictor.ModelType, features models.CropFeatures) (*predictor.Prediction, error)
	Status() []predictor.BundleStatus
	ModelInfo() []models.ModelInfo
	Close() error
}

// cropSource is the dataset surface the CLI needs.
type cropSource interface {
	Requirements(ctx context.Context) ([]models.CropRequirement, error)
	Requirement(ctx context.Context, name string) (*models.CropRequirement, error)
}

// deps builds the backends from configuration. Tests replace it.
type deps struct {
	loadConfig func() (*config.Config, error)
	models     func(cfg *config.Config) modelRunner
	crops      func(cfg *config.Config) (cropSource, func(), error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		models: func(cfg *config.Config) modelRunner {
			return predictor.New(predictor.Config{
				GradientBoostingDir: cfg.Models.GradientBoostingDir,
				TensorFlowDir:       cfg.Models.TensorFlowDir,
				TFLiteThreads:       cfg.Models.TFLiteThreads,
			})
		},
		crops: func(cfg *config.Config) (cropSource, func(), error) {
			db, err := database.Open(&cfg.Dataset)
			if err != nil {
				return nil, nil, err
			}
			svc := cropdata.NewService(db, cfg.Dataset.Path, cfg.Dataset.CacheTTL)
			closeFn := func() {
				svc.Close()
				if err := db.Close(); err != nil {
					logging.Warn().Err(err).Msg("Error closing database")
				}
			}
			return svc, closeFn, nil
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "agroctl",
		Short:         "Crop recommendations from the command line",
		Long:          `Runs the AgroPredict models and crop statistics locally, using the server configuration (CONFIG_PATH and environment).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{Level: logLevel, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newPredictCmd(d), newCropsCmd(d), newModelsCmd(d))
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
