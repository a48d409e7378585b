// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"net/http"
	"os"
	"time"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
)

// tfliteDownloadName is the attachment name offered to clients.
const tfliteDownloadName = "crop_prediction_model.tflite"

// ModelInfo godoc
// @Summary Model artifacts
// @Description Lists the model artifacts present on disk with their size and load state.
// @Tags Models
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ModelsList} "Model artifacts"
// @Failure 401 {object} models.APIResponse "Missing or invalid API key"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Security ApiKeyAuth
// @Router /model/info [get]
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, success(models.ModelsList{Models: h.predictor.ModelInfo()}, start))
}

// DownloadTFLite godoc
// @Summary Download the TensorFlow Lite model
// @Description Streams the quantized model for on-device inference.
// @Tags Models
// @Produce octet-stream
// @Success 200 {file} file "crop_prediction_model.tflite"
// @Failure 401 {object} models.APIResponse "Missing or invalid API key"
// @Failure 404 {object} models.APIResponse "Model file not present"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Security ApiKeyAuth
// @Router /model/download/tflite [get]
func (h *Handler) DownloadTFLite(w http.ResponseWriter, r *http.Request) {
	path := h.predictor.ArtifactPath(predictor.TensorFlowLite)

	f, err := os.Open(path)
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "TensorFlow Lite model not found", nil)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close model file")
		}
	}()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "TensorFlow Lite model not found", nil)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+tfliteDownloadName+`"`)
	http.ServeContent(w, r, tfliteDownloadName, fi.ModTime(), f)
}
