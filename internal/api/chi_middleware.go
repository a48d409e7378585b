// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for the Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSExposedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns a configuration with no CORS origins.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-API-KEY", "X-Request-ID"},
		CORSExposedHeaders: []string{"X-Request-ID", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		CORSMaxAge:         86400,
	}
}

// ChiMiddlewareConfigFromConfig maps the application config onto the middleware config.
func ChiMiddlewareConfigFromConfig(cfg *config.Config) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	c.CORSAllowedOrigins = cfg.Security.CORSOrigins
	c.RateLimitDisabled = cfg.RateLimit.Disabled
	return c
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the factory. A nil config uses the defaults.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: false,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitConfig is a per-IP request budget.
type RateLimitConfig struct {
	// Name labels the rate-limit metric.
	Name     string
	Requests int
	Window   time.Duration
}

// RateLimitHealth is permissive so monitoring can poll freely.
var RateLimitHealth = RateLimitConfig{Name: "health", Requests: 1000, Window: time.Minute}

// RouteLimits holds the per-route budgets derived from configuration.
type RouteLimits struct {
	Hourly    RateLimitConfig
	Daily     RateLimitConfig
	Predict   RateLimitConfig
	Crops     RateLimitConfig
	ModelInfo RateLimitConfig
	Download  RateLimitConfig
	Health    RateLimitConfig
}

// RouteLimitsFromConfig builds the route budgets.
func RouteLimitsFromConfig(cfg config.RateLimitConfig) RouteLimits {
	return RouteLimits{
		Hourly:    RateLimitConfig{Name: "default_hourly", Requests: cfg.DefaultPerHour, Window: time.Hour},
		Daily:     RateLimitConfig{Name: "default_daily", Requests: cfg.DefaultPerDay, Window: 24 * time.Hour},
		Predict:   RateLimitConfig{Name: "predict", Requests: cfg.PredictPerMinute, Window: time.Minute},
		Crops:     RateLimitConfig{Name: "crops", Requests: cfg.CropsPerMinute, Window: time.Minute},
		ModelInfo: RateLimitConfig{Name: "model_info", Requests: cfg.ModelInfoPerMinute, Window: time.Minute},
		Download:  RateLimitConfig{Name: "model_download", Requests: cfg.DownloadPerDay, Window: 24 * time.Hour},
		Health:    RateLimitHealth,
	}
}

// RateLimitCustom returns an httprate limiter keyed by client IP. Rejections
// are answered with the JSON error envelope and counted per limit name.
// It is a no-op when rate limiting is disabled or the budget is not positive.
func (m *ChiMiddleware) RateLimitCustom(limit RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled || limit.Requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitBlock(limit.Name)
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"Too many requests. Try again later.", nil)
		}),
	)
}

// APISecurityHeaders adds the standard API security headers, plus HSTS when
// the request arrived over TLS.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
