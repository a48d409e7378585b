// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package api

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/validation"
)

// cropsMaxAge is how long clients may cache crop statistics, which only
// change on restart or when the dataset cache expires.
const cropsMaxAge = 300

// respondJSON sends an uncacheable JSON response.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, response)
}

// respondCachedJSON sends a 200 JSON response clients may cache, tagged with
// an ETag over the payload. A matching If-None-Match gets 304.
func respondCachedJSON(w http.ResponseWriter, r *http.Request, response *models.APIResponse) {
	payload, err := json.Marshal(response.Data)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// metadata carries a timestamp, so only the payload is hashed
	etag := `"` + generateETag(payload) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(cropsMaxAge))
	w.Header().Set("Vary", "Accept-Encoding")

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes data with 32-bit FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

// success wraps data in the success envelope.
func success(data interface{}, start time.Time) *models.APIResponse {
	return &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	}
}

// respondError sends an error response. A non-nil err is logged, sanitized.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondAPIError(w, status, &models.APIError{Code: code, Message: message}, err)
}

// respondValidationError sends the 400 VALIDATION_ERROR response for errs.
func respondValidationError(w http.ResponseWriter, errs validation.FieldErrors) {
	v := errs.ToAPIError()
	respondAPIError(w, http.StatusBadRequest, &models.APIError{
		Code:    v.Code,
		Message: v.Message,
		Details: v.Details,
	}, nil)
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.Error().
			Str("code", apiErr.Code).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}
