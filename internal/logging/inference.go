// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package logging

import (
	"context"
	"strings"
	"time"
)

// maxLogValueLen caps user-supplied strings written to logs.
const maxLogValueLen = 128

// LogModelLoaded records a successful bundle load.
func LogModelLoaded(model, artifact string, classes int) {
	Info().
		Str("model", model).
		Str("artifact", artifact).
		Int("classes", classes).
		Msg("Model bundle loaded")
}

// LogModelLoadFailed records a bundle that could not be loaded. The service
// keeps running with the remaining bundles.
func LogModelLoadFailed(model string, err error) {
	Warn().
		Str("model", model).
		Err(err).
		Msg("Model bundle unavailable")
}

// LogPrediction records a completed inference.
func LogPrediction(ctx context.Context, model, crop string, confidence float64, elapsed time.Duration) {
	Ctx(ctx).Debug().
		Str("model", model).
		Str("crop", crop).
		Float64("confidence", confidence).
		Dur("elapsed", elapsed).
		Msg("Prediction served")
}

// SanitizeValue strips control characters and truncates s so request data
// cannot forge log lines.
func SanitizeValue(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > maxLogValueLen {
		return s[:maxLogValueLen] + "..."
	}
	return s
}
