// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCropsCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "crops [name]",
		Short: "Print mean growing conditions for every crop, or one crop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			src, closeFn, err := d.crops(cfg)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer closeFn()

			if len(args) == 1 {
				req, err := src.Requirement(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), req)
			}

			reqs, err := src.Requirements(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reqs)
		},
	}
}
