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

// Metadata describes a bundle's outputs. ClassNames is ordered as the model's
// output units (sklearn classes_, or the Keras label encoder). The tensorflow
// bundle also carries its scaler here; the gradient boosting bundle ships it
// separately in scaler.json.
type Metadata struct {
	ClassNames   []string        `json:"class_names"`
	FeatureNames []string        `json:"feature_names,omitempty"`
	Scaler       *StandardScaler `json:"scaler,omitempty"`
}

// LoadMetadata reads and checks a metadata JSON file.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", path, err)
	}
	if len(m.ClassNames) == 0 {
		return nil, fmt.Errorf("metadata %s: class_names is empty", path)
	}
	if len(m.FeatureNames) > 0 && len(m.FeatureNames) != NumFeatures {
		return nil, fmt.Errorf("%w: metadata lists %d features, want %d",
			ErrShapeMismatch, len(m.FeatureNames), NumFeatures)
	}
	return &m, nil
}
