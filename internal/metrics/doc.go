// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package metrics provides Prometheus instrumentation for AgroPredict.

Metrics are registered on the default registry through promauto and exposed
at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_blocks_total{route}

Inference:
  - predictions_total{model,outcome}
  - prediction_duration_seconds{model}
  - prediction_confidence{model}
  - model_loaded{model}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result},
    circuit_breaker_transitions_total{name,from,to}

Dataset:
  - crop_dataset_crops
  - crop_dataset_load_duration_seconds
  - cache_hits_total{cache}, cache_misses_total{cache}

System:
  - app_info{version,go_version}
  - app_uptime_seconds
*/
package metrics
