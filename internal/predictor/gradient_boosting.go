// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

// gradientBoosting evaluates a pickled sklearn GradientBoostingClassifier.
type gradientBoosting struct {
	model *leaves.Ensemble
}

// loadGradientBoosting reads the pickle. leaves only exposes the raw boosting
// margins for sklearn ensembles, so PredictProba applies the deviance link itself.
func loadGradientBoosting(path string) (*gradientBoosting, error) {
	model, err := leaves.SKEnsembleFromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("load gradient boosting model %s: %w", path, err)
	}
	if n := model.NFeatures(); n != NumFeatures {
		return nil, fmt.Errorf("%w: gradient boosting model expects %d features, want %d",
			ErrShapeMismatch, n, NumFeatures)
	}
	return &gradientBoosting{model: model}, nil
}

func (g *gradientBoosting) PredictProba(features []float64) ([]float64, error) {
	out := make([]float64, g.model.NOutputGroups())
	if err := g.model.Predict(features, 0, out); err != nil {
		return nil, fmt.Errorf("gradient boosting inference: %w", err)
	}
	// Binary models emit one log-odds margin for class 1.
	if len(out) == 1 {
		p := sigmoid(out[0])
		return []float64{1 - p, p}, nil
	}
	softmax(out)
	return out, nil
}

func (g *gradientBoosting) Close() error {
	return nil
}

// classCount reports the number of classes the ensemble scores.
func (g *gradientBoosting) classCount() int {
	if n := g.model.NOutputGroups(); n > 1 {
		return n
	}
	return 2
}
