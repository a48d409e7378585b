// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package models

import (
	"time"
)

// APIResponse is the envelope returned by every JSON endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated:
//
//	{
//	  "status": "success",
//	  "data": {"crop": "rice", "confidence": 0.97, ...},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing and cache information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error body.
//
// Codes used by the API:
//   - VALIDATION_ERROR: input parameters failed validation (details.fields maps parameter to message)
//   - INVALID_MODEL: unknown model_type
//   - MODEL_UNAVAILABLE: the selected model bundle is not loaded or its breaker is open
//   - PREDICTION_ERROR: inference failed
//   - NOT_FOUND: unknown crop or missing artifact
//   - UNAUTHORIZED: missing or wrong X-API-KEY
//   - RATE_LIMIT_EXCEEDED: too many requests, or the client IP is blocked
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
