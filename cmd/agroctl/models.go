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
)

type bundleReport struct {
	Model    string `json:"model"`
	Artifact string `json:"artifact"`
	Loaded   bool   `json:"loaded"`
	Error    string `json:"error,omitempty"`
}

type modelsReport struct {
	Bundles   []bundleReport     `json:"bundles"`
	Artifacts []models.ModelInfo `json:"artifacts"`
}

func newModelsCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Load every model bundle and report its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			report := modelsReport{Artifacts: runner.ModelInfo()}
			for _, s := range runner.Status() {
				report.Bundles = append(report.Bundles, bundleReport{
					Model:    string(s.Model),
					Artifact: s.Artifact,
					Loaded:   s.Loaded,
					Error:    s.Error,
				})
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}
