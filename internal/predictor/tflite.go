// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

//go:build tflite

package predictor

import (
	"fmt"
	"sync"

	"github.com/mattn/go-tflite"
)

// tfliteClassifier evaluates a TensorFlow Lite flatbuffer through the C runtime.
// An interpreter is not safe for concurrent use, so calls are serialized.
type tfliteClassifier struct {
	mu          sync.Mutex
	model       *tflite.Model
	options     *tflite.InterpreterOptions
	interpreter *tflite.Interpreter
}

func loadTFLite(path string, threads int) (Classifier, error) {
	model := tflite.NewModelFromFile(path)
	if model == nil {
		return nil, fmt.Errorf("load tflite model %s: invalid flatbuffer", path)
	}

	options := tflite.NewInterpreterOptions()
	options.SetNumThread(threads)

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		options.Delete()
		model.Delete()
		return nil, fmt.Errorf("create tflite interpreter for %s", path)
	}
	if status := interpreter.AllocateTensors(); status != tflite.OK {
		interpreter.Delete()
		options.Delete()
		model.Delete()
		return nil, fmt.Errorf("allocate tflite tensors: status %v", status)
	}

	return &tfliteClassifier{model: model, options: options, interpreter: interpreter}, nil
}

func (c *tfliteClassifier) PredictProba(features []float64) ([]float64, error) {
	input := make([]float32, len(features))
	for i, v := range features {
		input[i] = float32(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if status := c.interpreter.GetInputTensor(0).CopyFromBuffer(input); status != tflite.OK {
		return nil, fmt.Errorf("%w: tflite input rejected %d features (status %v)",
			ErrShapeMismatch, len(features), status)
	}
	if status := c.interpreter.Invoke(); status != tflite.OK {
		return nil, fmt.Errorf("tflite invoke: status %v", status)
	}

	raw := c.interpreter.GetOutputTensor(0).Float32s()
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out, nil
}

func (c *tfliteClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interpreter.Delete()
	c.options.Delete()
	c.model.Delete()
	return nil
}
