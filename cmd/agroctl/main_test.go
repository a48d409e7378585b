// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/agropredict/internal/config"
	"github.com/tomtom215/agropredict/internal/cropdata"
	"github.com/tomtom215/agropredict/internal/models"
	"github.com/tomtom215/agropredict/internal/predictor"
)

type fakeRunner struct {
	gotModel    predictor.ModelType
	gotFeatures models.CropFeatures
	err         error
	closed      bool
}

func (f *fakeRunner) Predict(_ context.Context, m predictor.ModelType, feat models.CropFeatures) (*predictor.Prediction, error) {
	f.gotModel = m
	f.gotFeatures = feat
	if f.err != nil {
		return nil, f.err
	}
	return &predictor.Prediction{Crop: "rice", Confidence: 0.93, Model: m}, nil
}

func (f *fakeRunner) Status() []predictor.BundleStatus {
	return []predictor.BundleStatus{
		{Model: predictor.GradientBoosting, Artifact: "/m/gradient_boosting_model.pkl", Loaded: true},
		{Model: predictor.TensorFlowLite, Artifact: "/m/model.tflite", Error: "runtime unavailable"},
	}
}

func (f *fakeRunner) ModelInfo() []models.ModelInfo {
	return []models.ModelInfo{{Name: "Gradient Boosting", Type: "sklearn", Size: 1024, Available: true, Loaded: true}}
}

func (f *fakeRunner) Close() error {
	f.closed = true
	return nil
}

type fakeCrops struct{}

func (fakeCrops) Requirements(context.Context) ([]models.CropRequirement, error) {
	return []models.CropRequirement{{Crop: "rice", Rainfall: 236.2}, {Crop: "maize", Rainfall: 84.8}}, nil
}

func (fakeCrops) Requirement(_ context.Context, name string) (*models.CropRequirement, error) {
	if name != "rice" {
		return nil, cropdata.ErrCropNotFound
	}
	return &models.CropRequirement{Crop: "rice", Rainfall: 236.2}, nil
}

func testDeps(r *fakeRunner) deps {
	return deps{
		loadConfig: func() (*config.Config, error) { return &config.Config{}, nil },
		models:     func(*config.Config) modelRunner { return r },
		crops: func(*config.Config) (cropSource, func(), error) {
			return fakeCrops{}, func() {}, nil
		},
	}
}

func run(t *testing.T, d deps, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(d)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var validFlags = []string{
	"--n", "90", "--p", "42", "--k", "43",
	"--temperature", "20.8", "--humidity", "82", "--ph", "6.5", "--rainfall", "202.9",
}

func TestPredictCommand(t *testing.T) {
	r := &fakeRunner{}
	out, err := run(t, testDeps(r), append([]string{"predict", "--model", "tensorflow"}, validFlags...)...)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	var resp models.PredictionResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if resp.Crop != "rice" || resp.ModelUsed != "tensorflow" {
		t.Errorf("response = %+v", resp)
	}
	if r.gotFeatures.Rainfall != 202.9 || r.gotFeatures.N != 90 {
		t.Errorf("features = %+v", r.gotFeatures)
	}
	if !r.closed {
		t.Error("runner was not closed")
	}
}

func TestPredictCommand_DefaultModel(t *testing.T) {
	r := &fakeRunner{}
	if _, err := run(t, testDeps(r), append([]string{"predict"}, validFlags...)...); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if r.gotModel != predictor.GradientBoosting {
		t.Errorf("model = %q, want gradient_boosting", r.gotModel)
	}
}

func TestPredictCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		runErr  error
		wantErr string
	}{
		{"out of range", append(append([]string{"predict"}, validFlags...), "--ph", "15"), nil, "ph"},
		{"unknown model", append(append([]string{"predict"}, validFlags...), "--model", "xgboost"), nil, "model_type"},
		{"missing flag", []string{"predict", "--n", "1"}, nil, "required flag"},
		{"prediction failure", append([]string{"predict"}, validFlags...), predictor.ErrModelNotLoaded, "predict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{err: tt.runErr}
			_, err := run(t, testDeps(r), tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestPredictCommand_ConfigError(t *testing.T) {
	d := testDeps(&fakeRunner{})
	d.loadConfig = func() (*config.Config, error) { return nil, errors.New("bad yaml") }

	_, err := run(t, d, append([]string{"predict"}, validFlags...)...)
	if err == nil || !strings.Contains(err.Error(), "bad yaml") {
		t.Errorf("error = %v, want config failure", err)
	}
}

func TestCropsCommand(t *testing.T) {
	out, err := run(t, testDeps(&fakeRunner{}), "crops")
	if err != nil {
		t.Fatalf("crops: %v", err)
	}
	var reqs []models.CropRequirement
	if err := json.Unmarshal([]byte(out), &reqs); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(reqs) != 2 {
		t.Errorf("len = %d, want 2", len(reqs))
	}
}

func TestCropsCommand_ByName(t *testing.T) {
	out, err := run(t, testDeps(&fakeRunner{}), "crops", "rice")
	if err != nil {
		t.Fatalf("crops rice: %v", err)
	}
	var req models.CropRequirement
	if err := json.Unmarshal([]byte(out), &req); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if req.Crop != "rice" {
		t.Errorf("crop = %q", req.Crop)
	}

	_, err = run(t, testDeps(&fakeRunner{}), "crops", "quinoa")
	if !errors.Is(err, cropdata.ErrCropNotFound) {
		t.Errorf("error = %v, want ErrCropNotFound", err)
	}
}

func TestCropsCommand_OpenFailure(t *testing.T) {
	d := testDeps(&fakeRunner{})
	d.crops = func(*config.Config) (cropSource, func(), error) {
		return nil, nil, errors.New("duckdb unavailable")
	}
	if _, err := run(t, d, "crops"); err == nil || !strings.Contains(err.Error(), "open dataset") {
		t.Errorf("error = %v", err)
	}
}

func TestModelsCommand(t *testing.T) {
	r := &fakeRunner{}
	out, err := run(t, testDeps(r), "models")
	if err != nil {
		t.Fatalf("models: %v", err)
	}

	var report modelsReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(report.Bundles) != 2 || !report.Bundles[0].Loaded {
		t.Errorf("bundles = %+v", report.Bundles)
	}
	if report.Bundles[1].Error == "" {
		t.Error("failed bundle should carry its error")
	}
	if len(report.Artifacts) != 1 {
		t.Errorf("artifacts = %+v", report.Artifacts)
	}
	if !r.closed {
		t.Error("runner was not closed")
	}
}
