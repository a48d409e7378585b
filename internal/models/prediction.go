// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package models

// FeatureNames lists the agronomic inputs in the order every model expects them.
var FeatureNames = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// CropFeatures are the seven soil and climate measurements used for a prediction.
type CropFeatures struct {
	N           float64 `json:"N" validate:"gte=0,lte=300"`
	P           float64 `json:"P" validate:"gte=0,lte=300"`
	K           float64 `json:"K" validate:"gte=0,lte=300"`
	Temperature float64 `json:"temperature" validate:"gte=-10,lte=60"`
	Humidity    float64 `json:"humidity" validate:"gte=0,lte=100"`
	Ph          float64 `json:"ph" validate:"gte=0,lte=14"`
	Rainfall    float64 `json:"rainfall" validate:"gte=0,lte=500"`
}

// Vector returns the features in FeatureNames order.
func (f CropFeatures) Vector() []float64 {
	return []float64{f.N, f.P, f.K, f.Temperature, f.Humidity, f.Ph, f.Rainfall}
}

// PredictionRequest is the body of POST /api/v1/predict.
// An empty ModelType selects gradient_boosting.
type PredictionRequest struct {
	CropFeatures
	ModelType string `json:"model_type,omitempty" validate:"omitempty,oneof=gradient_boosting tensorflow tensorflow_lite"`
}

// PredictionResponse is returned by both prediction endpoints.
type PredictionResponse struct {
	Crop            string       `json:"crop"`
	Confidence      float64      `json:"confidence"`
	ModelUsed       string       `json:"model_used"`
	InputParameters CropFeatures `json:"input_parameters"`
}
