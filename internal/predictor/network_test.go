// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"errors"
	"math"
	"testing"
)

type layerSpec = struct {
	Kernel     [][]float64 `json:"kernel"`
	Bias       []float64   `json:"bias"`
	Activation string      `json:"activation"`
}

func constKernel(rows, cols int, v float64) [][]float64 {
	k := make([][]float64, rows)
	for i := range k {
		k[i] = make([]float64, cols)
		for j := range k[i] {
			k[i][j] = v
		}
	}
	return k
}

func TestNewDenseNetwork_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		layers []layerSpec
		want   error
	}{
		{"no layers", nil, nil},
		{"wrong input rows", []layerSpec{{Kernel: constKernel(3, 2, 0), Bias: []float64{0, 0}}}, ErrShapeMismatch},
		{"ragged row", []layerSpec{{Kernel: append(constKernel(6, 2, 0), []float64{0}), Bias: []float64{0, 0}}}, ErrShapeMismatch},
		{"second layer mismatched", []layerSpec{
			{Kernel: constKernel(NumFeatures, 4, 0), Bias: make([]float64, 4), Activation: "relu"},
			{Kernel: constKernel(3, 2, 0), Bias: make([]float64, 2), Activation: "softmax"},
		}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDenseNetwork(networkFile{Layers: tt.layers})
			if err == nil {
				t.Fatal("newDenseNetwork() expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewDenseNetwork_UnknownActivation(t *testing.T) {
	_, err := newDenseNetwork(networkFile{Layers: []layerSpec{
		{Kernel: constKernel(NumFeatures, 2, 0), Bias: []float64{0, 0}, Activation: "swish"},
	}})
	if err == nil {
		t.Fatal("expected unsupported activation error")
	}
}

func TestDenseNetwork_Forward(t *testing.T) {
	// relu hidden layer of 2 units, each summing all inputs, then a softmax
	// that favors the second class by the hidden total.
	net, err := newDenseNetwork(networkFile{Layers: []layerSpec{
		{Kernel: constKernel(NumFeatures, 2, 1), Bias: []float64{0, -1}, Activation: "relu"},
		{Kernel: [][]float64{{0, 1}, {0, 0}}, Bias: []float64{0, 0}, Activation: "softmax"},
	}})
	if err != nil {
		t.Fatalf("newDenseNetwork() error = %v", err)
	}
	if net.outputUnits() != 2 {
		t.Fatalf("outputUnits() = %d, want 2", net.outputUnits())
	}

	x := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.4} // sum 1
	got, err := net.PredictProba(x)
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}

	want1 := math.E / (1 + math.E)
	if math.Abs(got[0]+got[1]-1) > 1e-12 {
		t.Errorf("softmax does not sum to 1: %v", got)
	}
	if math.Abs(got[1]-want1) > 1e-12 {
		t.Errorf("PredictProba()[1] = %v, want %v", got[1], want1)
	}
}

func TestDenseNetwork_SoftmaxLargeLogits(t *testing.T) {
	net, err := newDenseNetwork(networkFile{Layers: []layerSpec{
		{Kernel: constKernel(NumFeatures, 2, 0), Bias: []float64{1000, 999}, Activation: "softmax"},
	}})
	if err != nil {
		t.Fatalf("newDenseNetwork() error = %v", err)
	}
	got, err := net.PredictProba(make([]float64, NumFeatures))
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	for _, v := range got {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("softmax overflowed: %v", got)
		}
	}
	if got[0] <= got[1] {
		t.Errorf("PredictProba() = %v, want first class ahead", got)
	}
}

func TestScaler(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 2}, Scale: []float64{2, 0}}
	got, err := s.Transform([]float64{5, 7})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got[0] != 2 || got[1] != 5 {
		t.Errorf("Transform() = %v, want [2 5]", got)
	}

	if _, err := s.Transform([]float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short input error = %v, want ErrShapeMismatch", err)
	}
	var nilScaler *StandardScaler
	if err := nilScaler.Validate(2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("nil scaler error = %v, want ErrShapeMismatch", err)
	}
}
