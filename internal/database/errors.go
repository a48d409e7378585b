// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/agropredict/internal/logging"
)

var (
	// ErrDatasetNotFound is returned when the CSV file does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrInvalidDataset is returned when the CSV lacks a required column.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and ignores the error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
