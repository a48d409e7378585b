// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/agropredict/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Returns load state of every model bundle and the crop dataset, with uptime and crop cache statistics.
// @Description Status is "healthy" when at least one model is loaded, otherwise "degraded".
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	loaded, ready := h.modelsLoaded()

	status := "healthy"
	if !ready {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       h.version,
		Uptime:        time.Since(h.startTime).Seconds(),
		ModelsLoaded:  loaded,
		DatasetLoaded: h.crops.Loaded(),
		CropCache:     h.crops.CacheStats(),
		Timestamp:     time.Now(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of model state.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK once at least one model bundle is loaded, 503 otherwise.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	loaded, ready := h.modelsLoaded()
	if !ready {
		respondAPIError(w, http.StatusServiceUnavailable, &models.APIError{
			Code:    "NOT_READY",
			Message: "No model is loaded",
			Details: map[string]interface{}{"models_loaded": loaded},
		}, nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":          true,
			"models_loaded":  loaded,
			"dataset_loaded": h.crops.Loaded(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// modelsLoaded maps each model to its load state.
func (h *Handler) modelsLoaded() (map[string]bool, bool) {
	statuses := h.predictor.Status()
	loaded := make(map[string]bool, len(statuses))
	ready := false
	for _, s := range statuses {
		loaded[string(s.Model)] = s.Loaded
		ready = ready || s.Loaded
	}
	return loaded, ready
}
