// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package models

// ModelInfo describes a model artifact present on disk.
type ModelInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Size      int64  `json:"size"`
	Available bool   `json:"available"`
	Loaded    bool   `json:"loaded"`
	Error     string `json:"error,omitempty"`
}

// ModelsList is returned by GET /api/v1/model/info.
type ModelsList struct {
	Models []ModelInfo `json:"models"`
}
