// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package middleware provides the HTTP middleware specific to this service.

Key Components:

  - RequestID: accepts or generates X-Request-ID and attaches request and
    correlation IDs for logging
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern
  - Compression: gzip for JSON and text bodies
  - IPBlocker: per-IP token bucket that blocks an abusive client for a fixed
    duration (the prediction endpoints use ten minutes)
  - APIKey: constant-time X-API-KEY check, disabled when no key is configured

Generic limits (requests per minute, hour or day) use go-chi/httprate and are
wired in the api package.

Usage:

	blocker := middleware.NewIPBlocker("predict", 10, time.Minute, 10*time.Minute)
	defer blocker.Close()

	r.Route("/predict", func(r chi.Router) {
	    r.Use(middleware.APIKey(cfg.Security.APIKey))
	    r.Use(blocker.Handler)
	    r.Post("/", h.Predict)
	})
*/
package middleware
