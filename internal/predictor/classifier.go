// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import "math"

// NumFeatures is the length of every model's input vector.
const NumFeatures = 7

// Classifier runs inference on one already-scaled feature vector and returns
// a score per class, in metadata class order.
type Classifier interface {
	PredictProba(features []float64) ([]float64, error)
	Close() error
}

// argmax returns the index and value of the largest element.
// Ties resolve to the lowest index.
func argmax(v []float64) (int, float64) {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best, v[best]
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// softmax turns v into a probability distribution in place. The max is
// subtracted first so large margins do not overflow.
func softmax(v []float64) {
	if len(v) == 0 {
		return
	}
	maxV := v[0]
	for _, x := range v[1:] {
		maxV = math.Max(maxV, x)
	}
	sum := 0.0
	for i, x := range v {
		v[i] = math.Exp(x - maxV)
		sum += v[i]
	}
	for i := range v {
		v[i] /= sum
	}
}
