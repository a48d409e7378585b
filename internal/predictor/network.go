// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// networkFile is the JSON export of a Keras Sequential model's Dense layers.
// Kernels keep the Keras (inputs x units) layout.
type networkFile struct {
	Layers []struct {
		Kernel     [][]float64 `json:"kernel"`
		Bias       []float64   `json:"bias"`
		Activation string      `json:"activation"`
	} `json:"layers"`
}

type denseLayer struct {
	kernel     *mat.Dense
	bias       *mat.VecDense
	activation string
}

// denseNetwork is a feed-forward network evaluated with gonum.
type denseNetwork struct {
	layers []denseLayer
}

var supportedActivations = map[string]bool{
	"":        true,
	"linear":  true,
	"relu":    true,
	"sigmoid": true,
	"tanh":    true,
	"softmax": true,
}

func loadDenseNetwork(path string) (*denseNetwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network: %w", err)
	}
	var nf networkFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("decode network %s: %w", path, err)
	}
	return newDenseNetwork(nf)
}

func newDenseNetwork(nf networkFile) (*denseNetwork, error) {
	if len(nf.Layers) == 0 {
		return nil, fmt.Errorf("network has no layers")
	}

	net := &denseNetwork{layers: make([]denseLayer, 0, len(nf.Layers))}
	inputs := NumFeatures
	for i, l := range nf.Layers {
		if len(l.Kernel) != inputs {
			return nil, fmt.Errorf("%w: layer %d kernel has %d rows, want %d",
				ErrShapeMismatch, i, len(l.Kernel), inputs)
		}
		units := len(l.Bias)
		if units == 0 {
			return nil, fmt.Errorf("%w: layer %d has no units", ErrShapeMismatch, i)
		}
		flat := make([]float64, 0, inputs*units)
		for r, row := range l.Kernel {
			if len(row) != units {
				return nil, fmt.Errorf("%w: layer %d kernel row %d has %d columns, want %d",
					ErrShapeMismatch, i, r, len(row), units)
			}
			flat = append(flat, row...)
		}
		if !supportedActivations[l.Activation] {
			return nil, fmt.Errorf("layer %d: unsupported activation %q", i, l.Activation)
		}

		net.layers = append(net.layers, denseLayer{
			kernel:     mat.NewDense(inputs, units, flat),
			bias:       mat.NewVecDense(units, append([]float64(nil), l.Bias...)),
			activation: l.Activation,
		})
		inputs = units
	}
	return net, nil
}

// PredictProba runs the forward pass y = act(W^T x + b) layer by layer.
func (n *denseNetwork) PredictProba(features []float64) ([]float64, error) {
	if len(features) != NumFeatures {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(features), NumFeatures)
	}

	x := mat.NewVecDense(len(features), append([]float64(nil), features...))
	for _, l := range n.layers {
		_, units := l.kernel.Dims()
		y := mat.NewVecDense(units, nil)
		y.MulVec(l.kernel.T(), x)
		y.AddVec(y, l.bias)
		activate(y, l.activation)
		x = y
	}
	return mat.Col(nil, 0, x), nil
}

func (n *denseNetwork) Close() error {
	return nil
}

func (n *denseNetwork) outputUnits() int {
	_, units := n.layers[len(n.layers)-1].kernel.Dims()
	return units
}

func activate(v *mat.VecDense, activation string) {
	size := v.Len()
	switch activation {
	case "relu":
		for i := 0; i < size; i++ {
			v.SetVec(i, math.Max(0, v.AtVec(i)))
		}
	case "sigmoid":
		for i := 0; i < size; i++ {
			v.SetVec(i, sigmoid(v.AtVec(i)))
		}
	case "tanh":
		for i := 0; i < size; i++ {
			v.SetVec(i, math.Tanh(v.AtVec(i)))
		}
	case "softmax":
		softmax(v.RawVector().Data)
	}
}
