// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/agropredict/internal/logging"
)

// LoadFunc performs a one-shot load.
type LoadFunc func(ctx context.Context) error

// permanentError marks a load failure that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so a retrying WarmupService gives up on it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// WarmupService runs a load once under supervision and then leaves the tree.
//
// On success Serve returns suture.ErrDoNotRestart. A failed load is returned
// as an error, so suture restarts it with backoff, only when retry is set and
// the error was not wrapped with Permanent.
type WarmupService struct {
	name  string
	load  LoadFunc
	retry bool
}

// NewWarmupService creates a warmup service. retry selects whether a failed
// load is attempted again.
func NewWarmupService(name string, load LoadFunc, retry bool) *WarmupService {
	return &WarmupService{name: name, load: load, retry: retry}
}

// Serve implements suture.Service.
func (s *WarmupService) Serve(ctx context.Context) error {
	start := time.Now()
	logger := logging.WithComponent(s.name)

	err := s.load(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		var perm *permanentError
		retry := s.retry && !errors.As(err, &perm)
		logger.Error().Err(err).Dur("elapsed", time.Since(start)).Bool("retry", retry).Msg("Warmup failed")
		if retry {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		return suture.ErrDoNotRestart
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("Warmup complete")
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for suture's logs.
func (s *WarmupService) String() string {
	return s.name
}
