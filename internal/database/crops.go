// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/agropredict/internal/models"
)

// datasetColumns are the columns CropMeans needs, besides label.
var datasetColumns = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// CropMeans reads the CSV at csvPath and returns the mean of every feature
// per label, ordered by label.
func (db *DB) CropMeans(ctx context.Context, csvPath string) ([]models.CropRequirement, error) {
	fi, err := os.Stat(csvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, csvPath)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDatasetNotFound, csvPath)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	source := fmt.Sprintf("read_csv_auto(%s, header = true)", quoteLiteral(csvPath))
	if err := db.checkColumns(ctx, source); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			CAST(label AS VARCHAR) AS crop,
			avg(CAST("N" AS DOUBLE)), avg(CAST("P" AS DOUBLE)), avg(CAST("K" AS DOUBLE)),
			avg(CAST(temperature AS DOUBLE)), avg(CAST(humidity AS DOUBLE)),
			avg(CAST(ph AS DOUBLE)), avg(CAST(rainfall AS DOUBLE))
		FROM %s
		WHERE label IS NOT NULL
		GROUP BY label
		ORDER BY label`, source)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate dataset: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []models.CropRequirement
	for rows.Next() {
		var r models.CropRequirement
		if err := rows.Scan(&r.Crop, &r.N, &r.P, &r.K, &r.Temperature, &r.Humidity, &r.Ph, &r.Rainfall); err != nil {
			return nil, fmt.Errorf("scan crop row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate crop rows: %w", err)
	}

	if out == nil {
		out = []models.CropRequirement{}
	}
	return out, nil
}

// checkColumns fails with ErrInvalidDataset when source lacks label or a feature column.
func (db *DB) checkColumns(ctx context.Context, source string) error {
	rows, err := db.conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return fmt.Errorf("describe dataset: %w", err)
	}
	defer closeWithLog(rows, "rows")

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("describe dataset: %w", err)
	}

	present := make(map[string]bool)
	for rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scan dataset schema: %w", err)
		}
		if name, ok := vals[0].(string); ok {
			present[strings.ToLower(name)] = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("describe dataset: %w", err)
	}

	var missing []string
	for _, c := range append([]string{"label"}, datasetColumns...) {
		if !present[strings.ToLower(c)] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrInvalidDataset, strings.Join(missing, ", "))
	}
	return nil
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
