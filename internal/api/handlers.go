// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"context"
	"time"

	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
)

// maxRequestBodySize bounds prediction request bodies.
const maxRequestBodySize = 64 << 10

// Predictor is the inference surface the handlers use.
type Predictor interface {
	Predict(ctx context.Context, model predictor.ModelType, features models.CropFeatures) (*predictor.Prediction, error)
	Status() []predictor.BundleStatus
	ModelInfo() []models.ModelInfo
	ArtifactPath(model predictor.ModelType) string
}

// CropService serves aggregated crop statistics.
type CropService interface {
	Requirements(ctx context.Context) ([]models.CropRequirement, error)
	Crops(ctx context.Context) ([]string, error)
	Requirement(ctx context.Context, name string) (*models.CropRequirement, error)
	Loaded() bool
	CacheStats() models.CacheStats
}

// Handler serves the HTTP API.
type Handler struct {
	predictor Predictor
	crops     CropService
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(p Predictor, crops CropService, version string) *Handler {
	return &Handler{
		predictor: p,
		crops:     crops,
		version:   version,
		startTime: time.Now(),
	}
}
