// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// Package logging provides the zerolog-based structured logger used across AgroPredict.
//
// A single global logger is configured once from main via Init. Packages log
// through the level helpers (Info, Warn, Error, ...) or, inside request
// handling, through Ctx so that request_id and correlation_id are attached:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("model", "gradient_boosting").Msg("Model bundle loaded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Prediction failed")
//
// The slog adapter lets libraries that expect *slog.Logger (the suture event
// hook) write through the same zerolog sink:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// Inference events (model loads, predictions, breaker trips) have dedicated
// helpers in inference.go so field names stay consistent between the server
// and the CLI.
package logging
