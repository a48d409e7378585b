// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/agropredict/internal/models"
)

// fieldMessages are the range and choice messages reported per parameter.
var fieldMessages = map[string]string{
	"N":           "Nitrogen (N) must be between 0 and 300",
	"P":           "Phosphorus (P) must be between 0 and 300",
	"K":           "Potassium (K) must be between 0 and 300",
	"temperature": "Temperature must be between -10 and 60 °C",
	"humidity":    "Humidity must be between 0 and 100%",
	"ph":          "pH must be between 0 and 14",
	"rainfall":    "Rainfall must be between 0 and 500 mm",
	"model_type":  "model_type must be 'gradient_boosting', 'tensorflow' or 'tensorflow_lite'",
}

// FieldErrors maps a parameter name to its validation message.
type FieldErrors map[string]string

// Error lists the failures in parameter name order.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(parts, "; ")
}

// ToAPIError reports every failed parameter under details.fields.
func (fe FieldErrors) ToAPIError() *APIError {
	fields := make(map[string]interface{}, len(fe))
	for k, v := range fe {
		fields[k] = v
	}
	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid parameters",
		Details: map[string]interface{}{"fields": fields},
	}
}

// ValidateCropParams checks a decoded request body and builds the typed request.
//
// Missing parameters are reported alone: when any of the seven inputs is
// absent or null, only "required" errors are returned. Otherwise each value
// must be a number or a numeric string within its range, and model_type, when
// present and non-empty, must name a known model.
func ValidateCropParams(data map[string]interface{}) (*models.PredictionRequest, FieldErrors) {
	errs := FieldErrors{}

	for _, name := range models.FeatureNames {
		if v, ok := data[name]; !ok || v == nil {
			errs[name] = fmt.Sprintf(errorMessageTemplates["required"], name)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	values := make(map[string]float64, len(models.FeatureNames))
	for _, name := range models.FeatureNames {
		f, ok := toFloat(data[name])
		if !ok {
			errs[name] = fmt.Sprintf("The value of '%s' must be a number", name)
			continue
		}
		values[name] = f
	}

	req := &models.PredictionRequest{
		CropFeatures: models.CropFeatures{
			N:           values["N"],
			P:           values["P"],
			K:           values["K"],
			Temperature: values["temperature"],
			Humidity:    values["humidity"],
			Ph:          values["ph"],
			Rainfall:    values["rainfall"],
		},
	}

	if raw, ok := data["model_type"]; ok && raw != nil {
		s, isString := raw.(string)
		if !isString {
			errs["model_type"] = fieldMessages["model_type"]
		} else {
			req.ModelType = strings.TrimSpace(s)
		}
	}

	if verr := ValidateStruct(req); verr != nil {
		for field, msg := range verr.FieldErrors() {
			// A non-numeric value was already reported; its zero placeholder
			// must not produce a second message.
			if _, seen := errs[field]; !seen {
				errs[field] = msg
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

// ValidateFeatures range-checks features built outside an HTTP body (CLI flags).
func ValidateFeatures(req *models.PredictionRequest) FieldErrors {
	if verr := ValidateStruct(req); verr != nil {
		return verr.FieldErrors()
	}
	return nil
}

// toFloat accepts JSON numbers, Go numeric types and numeric strings.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
