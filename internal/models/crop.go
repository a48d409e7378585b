// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package models

// CropRequirement is the mean of each feature over every dataset row for one crop.
type CropRequirement struct {
	Crop        string  `json:"crop"`
	N           float64 `json:"N"`
	P           float64 `json:"P"`
	K           float64 `json:"K"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Ph          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// CropList is returned by GET /api/v1/crops/list.
type CropList struct {
	Crops []string `json:"crops"`
}
