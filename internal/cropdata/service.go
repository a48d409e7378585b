// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

// Package cropdata serves the per-crop mean requirements derived from the
// training dataset. The aggregation runs once and is cached, for the life of
// the process unless a cache TTL is configured.
package cropdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/agropredict/internal/cache"
	"github.com/tomtom215/agropredict/internal/database"
	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/metrics"
	"github.com/tomtom215/agropredict/internal/models"
)

// ErrCropNotFound is returned by Requirement for an unknown crop.
var ErrCropNotFound = errors.New("crop not found")

const requirementsKey = "requirements"

// Aggregator computes per-crop means from a CSV file.
type Aggregator interface {
	CropMeans(ctx context.Context, csvPath string) ([]models.CropRequirement, error)
}

// Service answers crop requirement queries.
type Service struct {
	agg   Aggregator
	path  string
	cache *cache.Cache

	// loadMu serializes aggregation so concurrent cold requests run it once.
	loadMu sync.Mutex
}

// NewService returns a Service aggregating the dataset at path. A positive
// ttl re-aggregates the dataset once the cached result is older than ttl.
func NewService(agg Aggregator, path string, ttl time.Duration) *Service {
	return &Service{
		agg:   agg,
		path:  path,
		cache: cache.New("crop_requirements", ttl),
	}
}

// DatasetPath returns the configured CSV path.
func (s *Service) DatasetPath() string {
	return s.path
}

// Load aggregates the dataset if it is not cached yet. Unlike Requirements it
// reports a missing dataset as an error.
func (s *Service) Load(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// Loaded reports whether the requirements are cached.
func (s *Service) Loaded() bool {
	return s.cache.Has(requirementsKey)
}

func (s *Service) cached() ([]models.CropRequirement, bool) {
	v, ok := s.cache.Get(requirementsKey)
	if !ok {
		return nil, false
	}
	return v.([]models.CropRequirement), true
}

func (s *Service) load(ctx context.Context) ([]models.CropRequirement, error) {
	if reqs, ok := s.cached(); ok {
		return reqs, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if reqs, ok := s.cached(); ok {
		return reqs, nil
	}

	start := time.Now()
	reqs, err := s.agg.CropMeans(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("load crop requirements: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(len(reqs), elapsed)
	logging.Info().
		Str("dataset", s.path).
		Int("crops", len(reqs)).
		Dur("elapsed", elapsed).
		Msg("Crop dataset aggregated")

	s.cache.Set(requirementsKey, reqs)
	return reqs, nil
}

// Requirements returns the mean requirements of every crop, ordered by name.
// A missing dataset yields an empty list; the failure is logged and retried
// on the next call.
func (s *Service) Requirements(ctx context.Context) ([]models.CropRequirement, error) {
	reqs, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, database.ErrDatasetNotFound) {
			logging.Ctx(ctx).Error().Err(err).Str("dataset", s.path).Msg("Crop dataset not found")
			return []models.CropRequirement{}, nil
		}
		return nil, err
	}
	return reqs, nil
}

// Crops returns the crop names in order.
func (s *Service) Crops(ctx context.Context) ([]string, error) {
	reqs, err := s.Requirements(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(reqs))
	for i, r := range reqs {
		names[i] = r.Crop
	}
	return names, nil
}

// Requirement returns one crop's requirements. The name match ignores case
// and surrounding space.
func (s *Service) Requirement(ctx context.Context, name string) (*models.CropRequirement, error) {
	reqs, err := s.Requirements(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	for i := range reqs {
		if strings.EqualFold(reqs[i].Crop, name) {
			r := reqs[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCropNotFound, name)
}

// CacheStats reports the requirement cache's lookups.
func (s *Service) CacheStats() models.CacheStats {
	st := s.cache.GetStats()
	return models.CacheStats{
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		Keys:      st.Keys,
	}
}

// Close releases the cache.
func (s *Service) Close() {
	s.cache.Close()
}
