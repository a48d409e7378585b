// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"fmt"
	"strings"
)

// ModelType selects a model bundle.
type ModelType string

const (
	GradientBoosting ModelType = "gradient_boosting"
	TensorFlow       ModelType = "tensorflow"
	TensorFlowLite   ModelType = "tensorflow_lite"

	// DefaultModel is used when a request does not name a model.
	DefaultModel = GradientBoosting
)

// AllModelTypes lists the bundles in load order.
var AllModelTypes = []ModelType{GradientBoosting, TensorFlow, TensorFlowLite}

// ParseModelType maps a request value to a ModelType. Empty selects DefaultModel.
func ParseModelType(s string) (ModelType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultModel, nil
	}
	for _, t := range AllModelTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// DisplayName is the human-readable name reported by the model info endpoint.
func (t ModelType) DisplayName() string {
	switch t {
	case GradientBoosting:
		return "Gradient Boosting"
	case TensorFlow:
		return "TensorFlow"
	case TensorFlowLite:
		return "TensorFlow Lite"
	default:
		return string(t)
	}
}

// Framework names the toolkit that produced the artifact.
func (t ModelType) Framework() string {
	switch t {
	case GradientBoosting:
		return "sklearn"
	case TensorFlow:
		return "keras"
	case TensorFlowLite:
		return "tflite"
	default:
		return "unknown"
	}
}
