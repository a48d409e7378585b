// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package models

import "time"

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status        string          `json:"status"`
	Version       string          `json:"version"`
	Uptime        float64         `json:"uptime"`
	ModelsLoaded  map[string]bool `json:"models_loaded"`
	DatasetLoaded bool            `json:"dataset_loaded"`
	CropCache     CacheStats      `json:"crop_cache"`
	Timestamp     time.Time       `json:"timestamp"`
}

// CacheStats reports lookups against an in-memory cache.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Keys      int64 `json:"keys"`
}
