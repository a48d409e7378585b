// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

//go:build !tflite

package predictor

import "fmt"

// loadTFLite reports that the quantized model cannot run without the tflite build tag.
func loadTFLite(path string, _ int) (Classifier, error) {
	return nil, fmt.Errorf("%w: %s requires building with -tags tflite", ErrRuntimeUnavailable, path)
}
