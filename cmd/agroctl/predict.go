// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
	"github.com/tomtom215/agropredict/internal/validation"
)

type featureFlag struct {
	name  string
	usage string
	dest  *float64
}

func newPredictCmd(d deps) *cobra.Command {
	var (
		req   models.PredictionRequest
		model string
	)

	flags := []featureFlag{
		{"n", "Nitrogen (0-300)", &req.N},
		{"p", "Phosphorus (0-300)", &req.P},
		{"k", "Potassium (0-300)", &req.K},
		{"temperature", "Temperature in °C (-10-60)", &req.Temperature},
		{"humidity", "Relative humidity in % (0-100)", &req.Humidity},
		{"ph", "Soil pH (0-14)", &req.Ph},
		{"rainfall", "Rainfall in mm (0-500)", &req.Rainfall},
	}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Recommend a crop for the given conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ModelType = model
			if errs := validation.ValidateFeatures(&req); errs != nil {
				return fmt.Errorf("invalid parameters: %s", errs.Error())
			}
			modelType, err := predictor.ParseModelType(model)
			if err != nil {
				return err
			}

			cfg, err := d.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			runner := d.models(cfg)
			defer func() {
				if err := runner.Close(); err != nil {
					logging.Warn().Err(err).Msg("Error closing model runtimes")
				}
			}()

			pred, err := runner.Predict(cmd.Context(), modelType, req.CropFeatures)
			if err != nil {
				return fmt.Errorf("predict: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), models.PredictionResponse{
				Crop:            pred.Crop,
				Confidence:      pred.Confidence,
				ModelUsed:       string(pred.Model),
				InputParameters: req.CropFeatures,
			})
		},
	}

	for _, f := range flags {
		cmd.Flags().Float64Var(f.dest, f.name, 0, f.usage)
		_ = cmd.MarkFlagRequired(f.name)
	}
	cmd.Flags().StringVar(&model, "model", "", "gradient_boosting (default), tensorflow or tensorflow_lite")

	return cmd
}
