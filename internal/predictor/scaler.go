// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// StandardScaler applies per-feature standardization, x' = (x - mean) / scale,
// with the mean_ and scale_ vectors exported from a fitted sklearn StandardScaler.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Validate checks the scaler has n features.
func (s *StandardScaler) Validate(n int) error {
	if s == nil {
		return fmt.Errorf("%w: scaler missing", ErrShapeMismatch)
	}
	if len(s.Mean) != n || len(s.Scale) != n {
		return fmt.Errorf("%w: scaler has %d means and %d scales, want %d",
			ErrShapeMismatch, len(s.Mean), len(s.Scale), n)
	}
	return nil
}

// Transform returns a standardized copy of x.
// A zero scale is treated as 1, as sklearn does for constant features.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if err := s.Validate(len(x)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// LoadScaler reads a scaler JSON file.
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scaler %s: %w", path, err)
	}
	return &s, nil
}
