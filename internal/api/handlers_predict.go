// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
	"github.com/tomtom215/agropredict/internal/validation"
)

// Predict godoc
// @Summary Recommend a crop
// @Description Predicts the most suitable crop for the given soil and climate conditions.
// @Description model_type selects gradient_boosting (default), tensorflow or tensorflow_lite.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body models.PredictionRequest true "Soil and climate parameters"
// @Success 200 {object} models.APIResponse{data=models.PredictionResponse} "Prediction"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 401 {object} models.APIResponse "Missing or invalid API key"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 503 {object} models.APIResponse "Model unavailable"
// @Security ApiKeyAuth
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil || body == nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be a JSON object", nil)
		return
	}

	req, errs := validation.ValidateCropParams(body)
	if errs != nil {
		respondValidationError(w, errs)
		return
	}

	h.runPrediction(w, r, req, start)
}

// PredictSimple godoc
// @Summary Recommend a crop from query parameters
// @Description Same as POST /predict with the inputs passed as query parameters.
// @Tags Prediction
// @Produce json
// @Param N query number true "Nitrogen (0-300)"
// @Param P query number true "Phosphorus (0-300)"
// @Param K query number true "Potassium (0-300)"
// @Param temperature query number true "Temperature in °C (-10-60)"
// @Param humidity query number true "Relative humidity in % (0-100)"
// @Param ph query number true "Soil pH (0-14)"
// @Param rainfall query number true "Rainfall in mm (0-500)"
// @Param model_type query string false "gradient_boosting, tensorflow or tensorflow_lite"
// @Success 200 {object} models.APIResponse{data=models.PredictionResponse} "Prediction"
// @Failure 400 {object} models.APIResponse "Missing or invalid parameters"
// @Failure 401 {object} models.APIResponse "Missing or invalid API key"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 503 {object} models.APIResponse "Model unavailable"
// @Security ApiKeyAuth
// @Router /predict/simple [get]
func (h *Handler) PredictSimple(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	var missing []string
	params := make(map[string]interface{}, len(models.FeatureNames)+1)
	for _, name := range models.FeatureNames {
		v := strings.TrimSpace(query.Get(name))
		if v == "" {
			missing = append(missing, name)
			continue
		}
		params[name] = v
	}
	if len(missing) > 0 {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "missing parameters: " + strings.Join(missing, ", "),
			Details: map[string]interface{}{"missing": missing},
		}, nil)
		return
	}
	if mt := query.Get("model_type"); mt != "" {
		params["model_type"] = mt
	}

	req, errs := validation.ValidateCropParams(params)
	if errs != nil {
		respondValidationError(w, errs)
		return
	}

	h.runPrediction(w, r, req, start)
}

func (h *Handler) runPrediction(w http.ResponseWriter, r *http.Request, req *models.PredictionRequest, start time.Time) {
	model, err := predictor.ParseModelType(req.ModelType)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MODEL", err.Error(), nil)
		return
	}

	pred, err := h.predictor.Predict(r.Context(), model, req.CropFeatures)
	if err != nil {
		h.respondPredictionError(w, r, model, err)
		return
	}

	respondJSON(w, http.StatusOK, success(models.PredictionResponse{
		Crop:            pred.Crop,
		Confidence:      pred.Confidence,
		ModelUsed:       string(pred.Model),
		InputParameters: req.CropFeatures,
	}, start))
}

func (h *Handler) respondPredictionError(w http.ResponseWriter, r *http.Request, model predictor.ModelType, err error) {
	switch {
	case errors.Is(err, predictor.ErrUnknownModel):
		respondError(w, http.StatusBadRequest, "INVALID_MODEL", err.Error(), nil)
	case errors.Is(err, predictor.ErrModelNotLoaded),
		errors.Is(err, predictor.ErrModelUnavailable),
		errors.Is(err, predictor.ErrRuntimeUnavailable):
		logging.Ctx(r.Context()).Warn().
			Str("model", string(model)).
			Err(err).
			Msg("Prediction refused, model unavailable")
		respondError(w, http.StatusServiceUnavailable, "MODEL_UNAVAILABLE",
			"Model "+string(model)+" is not available", nil)
	default:
		respondError(w, http.StatusInternalServerError, "PREDICTION_ERROR", "Prediction failed", err)
	}
}
