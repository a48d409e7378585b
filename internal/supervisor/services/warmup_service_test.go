// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func TestWarmupService_Serve(t *testing.T) {
	loadErr := errors.New("dataset missing")

	tests := []struct {
		name    string
		err     error
		retry   bool
		wantErr error
	}{
		{"success never restarts", nil, false, suture.ErrDoNotRestart},
		{"success with retry never restarts", nil, true, suture.ErrDoNotRestart},
		{"failure without retry", loadErr, false, suture.ErrDoNotRestart},
		{"failure with retry", loadErr, true, loadErr},
		{"permanent failure with retry", Permanent(loadErr), true, suture.ErrDoNotRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewWarmupService("test-warmup", func(context.Context) error { return tt.err }, tt.retry)

			err := svc.Serve(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Serve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPermanent(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}
	base := errors.New("gone")
	if err := Permanent(base); !errors.Is(err, base) || err.Error() != "gone" {
		t.Errorf("Permanent() = %v, want wrapped %v", err, base)
	}
}

func TestWarmupService_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewWarmupService("test-warmup", func(ctx context.Context) error { return ctx.Err() }, true)
	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestWarmupService_RetriesUnderSupervisor(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})

	svc := NewWarmupService("dataset-warmup", func(context.Context) error {
		if calls.Add(1) < 3 {
			return errors.New("not yet")
		}
		close(done)
		return nil
	}, true)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("warmup did not succeed after retries")
	}

	// Give the supervisor a moment to process the final ErrDoNotRestart.
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-errCh

	if n := calls.Load(); n != 3 {
		t.Errorf("load calls = %d, want 3", n)
	}
}
