// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import "errors"

var (
	// ErrUnknownModel is returned for a model type outside AllModelTypes.
	ErrUnknownModel = errors.New("unknown model type")

	// ErrModelNotLoaded wraps the cause recorded when a bundle failed to load.
	ErrModelNotLoaded = errors.New("model not loaded")

	// ErrModelUnavailable is returned while a model's circuit breaker is open.
	ErrModelUnavailable = errors.New("model temporarily unavailable")

	// ErrRuntimeUnavailable is returned when the binary was built without the
	// runtime a bundle needs (TensorFlow Lite without the tflite build tag).
	ErrRuntimeUnavailable = errors.New("inference runtime not available in this build")

	// ErrShapeMismatch is returned when artifacts disagree on feature or class counts.
	ErrShapeMismatch = errors.New("model shape mismatch")

	// ErrInvalidScores is returned when a classifier's top score is not a probability.
	ErrInvalidScores = errors.New("classifier scores are not probabilities")
)
