// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeUnavailable = "unavailable"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	APIRateLimitBlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_blocks_total",
			Help: "Requests rejected because the client exceeded a limit or is blocked",
		},
		[]string{"route"},
	)

	// Inference Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of crop predictions by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prediction_duration_seconds",
			Help:    "Time spent scaling features and running inference",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"model"},
	)

	PredictionConfidence = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prediction_confidence",
			Help:    "Probability of the predicted class",
			Buckets: []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, .95, .99},
		},
		[]string{"model"},
	)

	ModelLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "model_loaded",
			Help: "Whether a model bundle is loaded (1) or unavailable (0)",
		},
		[]string{"model"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests passing through a circuit breaker by result",
		},
		[]string{"name", "result"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Dataset Metrics
	CropDatasetCrops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crop_dataset_crops",
			Help: "Number of distinct crops aggregated from the dataset",
		},
	)

	CropDatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crop_dataset_load_duration_seconds",
			Help:    "Time spent aggregating the crop dataset",
			Buckets: prometheus.DefBuckets,
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPrediction records one inference call. Confidence is only observed on success.
func RecordPrediction(model, outcome string, confidence float64, duration time.Duration) {
	PredictionsTotal.WithLabelValues(model, outcome).Inc()
	if outcome != OutcomeSuccess {
		return
	}
	PredictionDuration.WithLabelValues(model).Observe(duration.Seconds())
	PredictionConfidence.WithLabelValues(model).Observe(confidence)
}

// SetModelLoaded updates the model_loaded gauge.
func SetModelLoaded(model string, loaded bool) {
	v := 0.0
	if loaded {
		v = 1
	}
	ModelLoaded.WithLabelValues(model).Set(v)
}

// RecordRateLimitBlock counts a rejected request.
func RecordRateLimitBlock(route string) {
	APIRateLimitBlocks.WithLabelValues(route).Inc()
}

// RecordDatasetLoad records a dataset aggregation.
func RecordDatasetLoad(crops int, duration time.Duration) {
	CropDatasetCrops.Set(float64(crops))
	CropDatasetLoadDuration.Observe(duration.Seconds())
}

// RecordCacheLookup counts a hit or miss on the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
