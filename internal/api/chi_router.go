// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/middleware"
)

// Router wires handlers and middleware into a Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	limits        RouteLimits
	apiKey        string

	// predictBlocker enforces the prediction budget and blocks abusive IPs.
	// Nil when rate limiting is disabled.
	predictBlocker *middleware.IPBlocker
}

// NewRouter creates a Router from the application configuration.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	router := &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromConfig(cfg)),
		limits:        RouteLimitsFromConfig(cfg.RateLimit),
		apiKey:        cfg.Security.APIKey,
	}

	if !cfg.RateLimit.Disabled && cfg.RateLimit.PredictPerMinute > 0 {
		router.predictBlocker = middleware.NewIPBlocker(
			"predict",
			cfg.RateLimit.PredictPerMinute,
			router.limits.Predict.Window,
			cfg.RateLimit.BlockDuration,
		)
	}
	return router
}

// Close stops background work owned by the router.
func (router *Router) Close() {
	if router.predictBlocker != nil {
		router.predictBlocker.Close()
	}
}

func (router *Router) predictLimit() func(http.Handler) http.Handler {
	if router.predictBlocker == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return router.predictBlocker.Handler
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Permissive limit so probes and monitoring are never starved.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(router.limits.Health))
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(router.limits.Daily))
		r.Use(router.chiMiddleware.RateLimitCustom(router.limits.Hourly))
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		// Prediction: per-IP budget with temporary blocking, API key when configured.
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKey(router.apiKey))
			r.Use(router.predictLimit())

			r.Post("/predict", router.handler.Predict)
			r.Get("/predict/simple", router.handler.PredictSimple)
		})

		r.Route("/crops", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom(router.limits.Crops))

			r.Get("/", router.handler.Crops)
			r.Get("/list", router.handler.CropsList)
			r.Get("/{name}", router.handler.CropByName)
		})

		r.Route("/model", func(r chi.Router) {
			r.Use(middleware.APIKey(router.apiKey))

			r.With(router.chiMiddleware.RateLimitCustom(router.limits.ModelInfo)).
				Get("/info", router.handler.ModelInfo)
			r.With(router.chiMiddleware.RateLimitCustom(router.limits.Download)).
				Get("/download/tflite", router.handler.DownloadTFLite)
		})
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
