// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package predictor

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Artifact file names inside the model directories.
const (
	GradientBoostingModelFile = "gradient_boosting_model.pkl"
	ScalerFile                = "scaler.json"
	MetadataFile              = "metadata.json"
	NetworkFile               = "best_model.json"
	TFLiteFile                = "model.tflite"
)

// Bundle is a classifier together with the scaler and class names it was trained with.
// A bundle that failed to load keeps the cause in loadErr and has no classifier.
type Bundle struct {
	Type       ModelType
	Artifact   string
	classifier Classifier
	scaler     *StandardScaler
	classNames []string
	breaker    *inferenceBreaker
	loadErr    error
}

// NewBundle assembles a loaded bundle. Loaders and tests use it to plug in a classifier.
func NewBundle(t ModelType, c Classifier, scaler *StandardScaler, classNames []string) (*Bundle, error) {
	if err := scaler.Validate(NumFeatures); err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	if len(classNames) == 0 {
		return nil, fmt.Errorf("%s: no class names", t)
	}
	return &Bundle{
		Type:       t,
		classifier: c,
		scaler:     scaler,
		classNames: classNames,
	}, nil
}

// failedBundle records a bundle that could not be loaded.
func failedBundle(t ModelType, artifact string, err error) *Bundle {
	return &Bundle{Type: t, Artifact: artifact, loadErr: err}
}

// Loaded reports whether the bundle can serve predictions.
func (b *Bundle) Loaded() bool {
	return b.loadErr == nil && b.classifier != nil
}

// Err returns the load failure, or nil.
func (b *Bundle) Err() error {
	return b.loadErr
}

// ClassNames returns the labels in model output order.
func (b *Bundle) ClassNames() []string {
	return b.classNames
}

// predict scales the features, runs inference and returns the top class.
func (b *Bundle) predict(features []float64) (string, float64, error) {
	if !b.Loaded() {
		return "", 0, fmt.Errorf("%w: %s: %w", ErrModelNotLoaded, b.Type, b.loadErr)
	}

	scaled, err := b.scaler.Transform(features)
	if err != nil {
		return "", 0, err
	}

	infer := func() ([]float64, error) { return b.classifier.PredictProba(scaled) }
	var proba []float64
	if b.breaker != nil {
		proba, err = b.breaker.execute(infer)
	} else {
		proba, err = infer()
	}
	if err != nil {
		return "", 0, err
	}

	if len(proba) != len(b.classNames) {
		return "", 0, fmt.Errorf("%w: %s returned %d scores for %d classes",
			ErrShapeMismatch, b.Type, len(proba), len(b.classNames))
	}

	idx, confidence := argmax(proba)
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return "", 0, fmt.Errorf("%w: %s top score %v", ErrInvalidScores, b.Type, confidence)
	}
	return b.classNames[idx], confidence, nil
}

func (b *Bundle) close() error {
	if b.classifier == nil {
		return nil
	}
	return b.classifier.Close()
}

// loadGradientBoostingBundle reads the pickle, scaler.json and metadata.json.
// All three are required.
func loadGradientBoostingBundle(dir string) *Bundle {
	modelPath := filepath.Join(dir, GradientBoostingModelFile)

	meta, err := LoadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		return failedBundle(GradientBoosting, modelPath, err)
	}
	scaler, err := LoadScaler(filepath.Join(dir, ScalerFile))
	if err != nil {
		return failedBundle(GradientBoosting, modelPath, err)
	}
	model, err := loadGradientBoosting(modelPath)
	if err != nil {
		return failedBundle(GradientBoosting, modelPath, err)
	}
	if model.classCount() != len(meta.ClassNames) {
		return failedBundle(GradientBoosting, modelPath, fmt.Errorf("%w: model scores %d classes, metadata lists %d",
			ErrShapeMismatch, model.classCount(), len(meta.ClassNames)))
	}

	b, err := NewBundle(GradientBoosting, model, scaler, meta.ClassNames)
	if err != nil {
		return failedBundle(GradientBoosting, modelPath, err)
	}
	b.Artifact = modelPath
	return b
}

// loadTensorFlowBundle reads the exported dense network and the shared metadata.
func loadTensorFlowBundle(dir string, meta *Metadata, metaErr error) *Bundle {
	netPath := filepath.Join(dir, NetworkFile)
	if metaErr != nil {
		return failedBundle(TensorFlow, netPath, metaErr)
	}

	net, err := loadDenseNetwork(netPath)
	if err != nil {
		return failedBundle(TensorFlow, netPath, err)
	}
	if net.outputUnits() != len(meta.ClassNames) {
		return failedBundle(TensorFlow, netPath, fmt.Errorf("%w: network has %d outputs, metadata lists %d classes",
			ErrShapeMismatch, net.outputUnits(), len(meta.ClassNames)))
	}

	b, err := NewBundle(TensorFlow, net, meta.Scaler, meta.ClassNames)
	if err != nil {
		return failedBundle(TensorFlow, netPath, err)
	}
	b.Artifact = netPath
	return b
}

// loadTFLiteBundle reads the quantized model. It reuses the tensorflow
// metadata, since both networks come from the same training run.
func loadTFLiteBundle(dir string, meta *Metadata, metaErr error, threads int) *Bundle {
	path := filepath.Join(dir, TFLiteFile)
	if _, err := os.Stat(path); err != nil {
		return failedBundle(TensorFlowLite, path, fmt.Errorf("stat tflite model: %w", err))
	}
	if metaErr != nil {
		return failedBundle(TensorFlowLite, path, metaErr)
	}

	c, err := loadTFLite(path, threads)
	if err != nil {
		return failedBundle(TensorFlowLite, path, err)
	}

	b, err := NewBundle(TensorFlowLite, c, meta.Scaler, meta.ClassNames)
	if err != nil {
		_ = c.Close()
		return failedBundle(TensorFlowLite, path, err)
	}
	b.Artifact = path
	return b
}
