// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/agropredict/internal/cropdata"
	"github.com/tomtom215/agropredict/internal/models"
)

// Crops godoc
// @Summary Crop requirements
// @Description Mean N, P, K, temperature, humidity, ph and rainfall per crop, computed from the training dataset.
// @Tags Crops
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CropRequirement} "Crop requirements"
// @Success 304 "Not modified"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 500 {object} models.APIResponse "Aggregation failed"
// @Router /crops [get]
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	reqs, err := h.crops.Requirements(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATASET_ERROR", "Failed to load crop requirements", err)
		return
	}

	respondCachedJSON(w, r, success(reqs, start))
}

// CropsList godoc
// @Summary Crop names
// @Description Sorted names of every crop in the dataset.
// @Tags Crops
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CropList} "Crop names"
// @Success 304 "Not modified"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 500 {object} models.APIResponse "Aggregation failed"
// @Router /crops/list [get]
func (h *Handler) CropsList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	names, err := h.crops.Crops(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATASET_ERROR", "Failed to load crop list", err)
		return
	}

	respondCachedJSON(w, r, success(models.CropList{Crops: names}, start))
}

// CropByName godoc
// @Summary Requirements for one crop
// @Description Case-insensitive lookup of a single crop.
// @Tags Crops
// @Produce json
// @Param name path string true "Crop name" example(rice)
// @Success 200 {object} models.APIResponse{data=models.CropRequirement} "Crop requirement"
// @Success 304 "Not modified"
// @Failure 404 {object} models.APIResponse "Unknown crop"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 500 {object} models.APIResponse "Aggregation failed"
// @Router /crops/{name} [get]
func (h *Handler) CropByName(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")

	req, err := h.crops.Requirement(r.Context(), name)
	switch {
	case errors.Is(err, cropdata.ErrCropNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Crop '"+name+"' not found", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "DATASET_ERROR", "Failed to load crop requirements", err)
		return
	}

	respondCachedJSON(w, r, success(req, start))
}
