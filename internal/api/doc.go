// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

/*
Package api provides the HTTP REST API of AgroPredict, routed with Chi.

Routes

	POST /api/v1/predict                 JSON body, 10/min per IP, API key when configured
	GET  /api/v1/predict/simple          same inputs as query parameters
	GET  /api/v1/crops                   mean requirements per crop
	GET  /api/v1/crops/list              crop names
	GET  /api/v1/crops/{name}            one crop, case-insensitive
	GET  /api/v1/model/info              model artifacts on disk
	GET  /api/v1/model/download/tflite   quantized model as an attachment
	GET  /api/v1/health[/live|/ready]    probes
	GET  /metrics                        Prometheus
	GET  /docs/*                         Swagger UI

Every JSON response uses the models.APIResponse envelope. Errors carry a
machine-readable code: VALIDATION_ERROR, INVALID_MODEL, MODEL_UNAVAILABLE,
PREDICTION_ERROR, NOT_FOUND, UNAUTHORIZED or RATE_LIMIT_EXCEEDED.

Clients exceeding the prediction budget are blocked for
rate_limit.block_duration and receive 429 with Retry-After until it lapses.
*/
package api
