// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
)

// testdata/gradient_boosting holds a three-class ensemble with one rainfall
// stump per class: scaled rainfall <= 0 favors maize, above 0 favors rice.
const gbTestdataDir = "testdata/gradient_boosting"

// softmax over the stump margins (1/3 + {-1, 2, -0.5}) gives rice this probability.
var gbWantConfidence = math.Exp(2) / (math.Exp(2) + math.Exp(-1) + math.Exp(-0.5))

func TestLoadGradientBoosting_Probabilities(t *testing.T) {
	gb, err := loadGradientBoosting(filepath.Join(gbTestdataDir, GradientBoostingModelFile))
	if err != nil {
		t.Fatalf("loadGradientBoosting() error = %v", err)
	}
	if gb.classCount() != 3 {
		t.Fatalf("classCount() = %d, want 3", gb.classCount())
	}

	tests := []struct {
		name     string
		rainfall float64
		wantIdx  int
	}{
		{"dry", -0.8, 0},
		{"wet", 2.058, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := make([]float64, NumFeatures)
			features[6] = tt.rainfall

			proba, err := gb.PredictProba(features)
			if err != nil {
				t.Fatalf("PredictProba() error = %v", err)
			}

			sum := 0.0
			for i, p := range proba {
				if p < 0 || p > 1 {
					t.Errorf("proba[%d] = %v, outside [0,1]", i, p)
				}
				sum += p
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("sum(proba) = %v, want 1", sum)
			}

			idx, conf := argmax(proba)
			if idx != tt.wantIdx || math.Abs(conf-gbWantConfidence) > 1e-9 {
				t.Errorf("argmax = %d (%v), want %d (%v)", idx, conf, tt.wantIdx, gbWantConfidence)
			}
		})
	}
}

func TestPredict_GradientBoostingFromDisk(t *testing.T) {
	p := New(Config{GradientBoostingDir: gbTestdataDir, TensorFlowDir: t.TempDir()})
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v, status = %+v", err, p.Status())
	}

	tests := []struct {
		name     string
		rainfall float64
		want     string
	}{
		{"high rainfall", 202.9, "rice"},
		{"low rainfall", 60, "maize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := sampleFeatures
			features.Rainfall = tt.rainfall

			got, err := p.Predict(context.Background(), "", features)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got.Model != GradientBoosting || got.Crop != tt.want {
				t.Errorf("Predict() = %+v, want %s from gradient_boosting", got, tt.want)
			}
			if got.Confidence < 0 || got.Confidence > 1 || math.Abs(got.Confidence-gbWantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, gbWantConfidence)
			}
		})
	}
}

func TestSoftmaxAndSigmoid(t *testing.T) {
	v := []float64{1000, 1000, 998}
	softmax(v)
	if math.IsNaN(v[0]) || math.Abs(v[0]+v[1]+v[2]-1) > 1e-12 || v[0] != v[1] || v[2] >= v[0] {
		t.Errorf("softmax of large margins = %v", v)
	}

	if got := sigmoid(0); got != 0.5 {
		t.Errorf("sigmoid(0) = %v, want 0.5", got)
	}
	if got := sigmoid(-50); got < 0 || got > 1e-20 {
		t.Errorf("sigmoid(-50) = %v", got)
	}
}

func TestPredict_RejectsNonProbabilities(t *testing.T) {
	p := NewFromBundles(Config{},
		mustBundle(t, GradientBoosting, &fakeClassifier{scores: []float64{3.01, -1.9, -1.86}}, "rice", "maize", "chickpea"),
		mustBundle(t, TensorFlow, &fakeClassifier{scores: []float64{math.NaN(), math.NaN()}}, "rice", "maize"),
	)

	for _, mt := range []ModelType{GradientBoosting, TensorFlow} {
		if _, err := p.Predict(context.Background(), mt, sampleFeatures); !errors.Is(err, ErrInvalidScores) {
			t.Errorf("Predict(%s) error = %v, want ErrInvalidScores", mt, err)
		}
	}
}

func TestPredict_TrimsModelType(t *testing.T) {
	p := NewFromBundles(Config{},
		mustBundle(t, TensorFlow, &fakeClassifier{scores: []float64{0.2, 0.8}}, "maize", "rice"),
	)

	got, err := p.Predict(context.Background(), " tensorflow ", sampleFeatures)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Model != TensorFlow || got.Crop != "rice" {
		t.Errorf("Predict() = %+v, want rice from tensorflow", got)
	}
}

func TestLoad_CanceledContextDoesNotConsumeLoad(t *testing.T) {
	tfDir := t.TempDir()
	writeTensorFlowBundle(t, tfDir)
	p := New(Config{GradientBoostingDir: t.TempDir(), TensorFlowDir: tfDir})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load(canceled) error = %v, want context.Canceled", err)
	}

	got, err := p.Predict(context.Background(), TensorFlow, sampleFeatures)
	if err != nil {
		t.Fatalf("Predict() after canceled Load error = %v", err)
	}
	if got.Crop != "rice" {
		t.Errorf("Predict() = %+v, want rice", got)
	}
	if n := len(p.Status()); n != len(AllModelTypes) {
		t.Errorf("Status() has %d bundles, want %d", n, len(AllModelTypes))
	}
	if err := p.Load(context.Background()); err != nil {
		t.Errorf("second Load() error = %v", err)
	}
}

