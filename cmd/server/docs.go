// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// @title AgroPredict API
// @version 1.0.0
// @description Crop recommendation from soil nutrients and climate, with per-crop requirement statistics.
// @description
// @description ## Models
// @description
// @description - `gradient_boosting` (default): scikit-learn gradient boosting
// @description - `tensorflow`: dense Keras network
// @description - `tensorflow_lite`: quantized network, also downloadable for on-device use
// @description
// @description ## Rate Limiting
// @description
// @description Per client IP: 200 requests per day and 50 per hour overall; predictions 10 per minute.
// @description A client exceeding the prediction limit is blocked for 10 minutes.
// @description Limited responses return 429 with `Retry-After`.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "VALIDATION_ERROR", "message": "Invalid parameters", "details": {"fields": {"ph": "pH must be between 0 and 14"}}},
// @description   "metadata": {"timestamp": "2026-01-18T12:34:56Z"}
// @description }
// @description ```
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-KEY
// @description Required on prediction and model endpoints when the server sets API_KEY.
//
// @tag.name Prediction
// @tag.description Crop recommendation
//
// @tag.name Crops
// @tag.description Mean growing conditions per crop
//
// @tag.name Models
// @tag.description Model artifacts
//
// @tag.name Core
// @tag.description Health probes

package main
