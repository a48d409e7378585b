// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// Package predictor loads the crop recommendation model bundles and
// dispatches inference to the one a caller selects.
//
// Three bundles are supported:
//
//   - gradient_boosting: an sklearn GradientBoostingClassifier pickle, evaluated with leaves
//   - tensorflow: the Keras network's Dense weights exported to JSON, evaluated with gonum
//   - tensorflow_lite: the quantized flatbuffer, evaluated with the TFLite C runtime
//     (build tag tflite)
//
// Bundles are loaded once, on first use or through Load. A bundle that fails
// to load is recorded and reported on every request for it; the others keep
// serving.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/metrics"
	"github.com/tomtom215/agropredict/internal/models"
)

// Config locates the model artifacts.
type Config struct {
	GradientBoostingDir string
	TensorFlowDir       string
	TFLiteThreads       int
	Breaker             BreakerSettings
}

// Prediction is the result of one inference call.
type Prediction struct {
	Crop       string
	Confidence float64
	Model      ModelType
}

// BundleStatus reports the load state of one model.
type BundleStatus struct {
	Model    ModelType
	Artifact string
	Loaded   bool
	Error    string
	Breaker  string
}

// Predictor owns the model bundles.
type Predictor struct {
	cfg     Config
	once    sync.Once
	mu      sync.RWMutex
	bundles map[ModelType]*Bundle
}

// New returns a Predictor that loads its bundles on first use.
func New(cfg Config) *Predictor {
	if cfg.TFLiteThreads < 1 {
		cfg.TFLiteThreads = 1
	}
	if cfg.Breaker == (BreakerSettings{}) {
		cfg.Breaker = DefaultBreakerSettings()
	}
	return &Predictor{cfg: cfg}
}

// NewFromBundles returns a Predictor serving the given bundles without touching disk.
func NewFromBundles(cfg Config, bundles ...*Bundle) *Predictor {
	p := New(cfg)
	p.once.Do(func() {
		p.install(bundles)
	})
	return p
}

// Load loads every bundle. Only the first call does any work; later calls
// return immediately. ctx bounds the caller's wait, not the load itself, so a
// canceled warmup never leaves the predictor half loaded. The returned error
// is non-nil only if ctx ended first or no bundle could be loaded.
func (p *Predictor) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		p.ensureLoaded()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	for _, s := range p.Status() {
		if s.Loaded {
			return nil
		}
	}
	return fmt.Errorf("%w: no model bundle could be loaded", ErrModelNotLoaded)
}

func (p *Predictor) ensureLoaded() {
	p.once.Do(func() {
		p.install(p.loadAll())
	})
}

func (p *Predictor) loadAll() []*Bundle {
	start := time.Now()
	tfMeta, tfMetaErr := LoadMetadata(filepath.Join(p.cfg.TensorFlowDir, MetadataFile))
	bundles := []*Bundle{
		loadGradientBoostingBundle(p.cfg.GradientBoostingDir),
		loadTensorFlowBundle(p.cfg.TensorFlowDir, tfMeta, tfMetaErr),
		loadTFLiteBundle(p.cfg.TensorFlowDir, tfMeta, tfMetaErr, p.cfg.TFLiteThreads),
	}

	logging.Info().
		Dur("elapsed", time.Since(start)).
		Int("bundles", len(bundles)).
		Msg("Model bundles initialized")
	return bundles
}

func (p *Predictor) install(bundles []*Bundle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.bundles = make(map[ModelType]*Bundle, len(bundles))
	for _, b := range bundles {
		if b.Loaded() {
			b.breaker = newInferenceBreaker(b.Type, p.cfg.Breaker)
			logging.LogModelLoaded(string(b.Type), b.Artifact, len(b.classNames))
		} else {
			logging.LogModelLoadFailed(string(b.Type), b.loadErr)
		}
		metrics.SetModelLoaded(string(b.Type), b.Loaded())
		p.bundles[b.Type] = b
	}
}

func (p *Predictor) bundle(t ModelType) (*Bundle, bool) {
	p.ensureLoaded()
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.bundles[t]
	return b, ok
}

// Predict runs the bundle selected by model on features and returns the most
// probable crop. An empty model selects DefaultModel.
func (p *Predictor) Predict(ctx context.Context, model ModelType, features models.CropFeatures) (*Prediction, error) {
	model, err := ParseModelType(string(model))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, ok := p.bundle(model)
	if !ok {
		metrics.RecordPrediction(string(model), metrics.OutcomeUnavailable, 0, 0)
		return nil, fmt.Errorf("%w: %s was never loaded", ErrModelNotLoaded, model)
	}

	start := time.Now()
	crop, confidence, err := b.predict(features.Vector())
	elapsed := time.Since(start)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrModelNotLoaded) || errors.Is(err, ErrModelUnavailable) {
			outcome = metrics.OutcomeUnavailable
		}
		metrics.RecordPrediction(string(model), outcome, 0, elapsed)
		return nil, err
	}

	metrics.RecordPrediction(string(model), metrics.OutcomeSuccess, confidence, elapsed)
	logging.LogPrediction(ctx, string(model), crop, confidence, elapsed)
	return &Prediction{Crop: crop, Confidence: confidence, Model: model}, nil
}

// Available reports whether model is loaded.
func (p *Predictor) Available(model ModelType) bool {
	b, ok := p.bundle(model)
	return ok && b.Loaded()
}

// Status reports every bundle in AllModelTypes order.
func (p *Predictor) Status() []BundleStatus {
	p.ensureLoaded()
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]BundleStatus, 0, len(AllModelTypes))
	for _, t := range AllModelTypes {
		b, ok := p.bundles[t]
		if !ok {
			continue
		}
		s := BundleStatus{Model: t, Artifact: b.Artifact, Loaded: b.Loaded()}
		if b.loadErr != nil {
			s.Error = b.loadErr.Error()
		}
		if b.breaker != nil {
			s.Breaker = b.breaker.state().String()
		}
		out = append(out, s)
	}
	return out
}

// ArtifactPath returns where model's primary artifact is expected on disk.
func (p *Predictor) ArtifactPath(model ModelType) string {
	switch model {
	case GradientBoosting:
		return filepath.Join(p.cfg.GradientBoostingDir, GradientBoostingModelFile)
	case TensorFlow:
		return filepath.Join(p.cfg.TensorFlowDir, NetworkFile)
	case TensorFlowLite:
		return filepath.Join(p.cfg.TensorFlowDir, TFLiteFile)
	default:
		return ""
	}
}

// ModelInfo lists the model artifacts that exist on disk, with their load state.
// Missing artifacts are omitted.
func (p *Predictor) ModelInfo() []models.ModelInfo {
	loaded := make(map[ModelType]BundleStatus, len(AllModelTypes))
	for _, s := range p.Status() {
		loaded[s.Model] = s
	}

	out := make([]models.ModelInfo, 0, len(AllModelTypes))
	for _, t := range AllModelTypes {
		fi, err := os.Stat(p.ArtifactPath(t))
		if err != nil || fi.IsDir() {
			continue
		}
		s := loaded[t]
		out = append(out, models.ModelInfo{
			Name:      t.DisplayName(),
			Type:      t.Framework(),
			Size:      fi.Size(),
			Available: true,
			Loaded:    s.Loaded,
			Error:     s.Error,
		})
	}
	return out
}

// Close releases runtime resources held by the bundles.
func (p *Predictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, b := range p.bundles {
		if err := b.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", b.Type, err))
		}
	}
	return errors.Join(errs...)
}
