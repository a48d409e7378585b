// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

//go:build !tflite

package predictor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTFLite_RuntimeUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeTensorFlowBundle(t, dir)
	if err := os.WriteFile(filepath.Join(dir, TFLiteFile), []byte{0}, 0o600); err != nil {
		t.Fatalf("write tflite: %v", err)
	}

	meta, err := LoadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}

	b := loadTFLiteBundle(dir, meta, nil, 1)
	if b.Loaded() {
		t.Fatal("tflite bundle should not load without the runtime")
	}
	if !errors.Is(b.Err(), ErrRuntimeUnavailable) {
		t.Errorf("Err() = %v, want ErrRuntimeUnavailable", b.Err())
	}
}
