// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/agropredict/internal/models"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestBlocker(t *testing.T, requests int, window, block time.Duration) (*IPBlocker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	b := NewIPBlocker("predict", requests, window, block)
	b.now = clock.Now
	t.Cleanup(b.Close)
	return b, clock
}

func TestIPBlocker_BlocksAfterLimit(t *testing.T) {
	b, clock := newTestBlocker(t, 3, time.Minute, 10*time.Minute)

	for i := 0; i < 3; i++ {
		if ok, _ := b.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d rejected within the limit", i+1)
		}
	}

	ok, retry := b.Allow("10.0.0.1")
	if ok {
		t.Fatal("fourth request should be rejected")
	}
	if retry != 10*time.Minute {
		t.Errorf("retryAfter = %v, want 10m", retry)
	}

	// Tokens refill after a minute, but the block still holds.
	clock.Advance(2 * time.Minute)
	if ok, retry := b.Allow("10.0.0.1"); ok || retry != 8*time.Minute {
		t.Errorf("Allow() during block = %v, %v; want false, 8m", ok, retry)
	}
	if !b.Blocked("10.0.0.1") {
		t.Error("Blocked() = false during block")
	}

	clock.Advance(8 * time.Minute)
	if ok, _ := b.Allow("10.0.0.1"); !ok {
		t.Error("request after the block should be allowed")
	}
}

func TestIPBlocker_PerIP(t *testing.T) {
	b, _ := newTestBlocker(t, 1, time.Minute, time.Minute)

	if ok, _ := b.Allow("10.0.0.1"); !ok {
		t.Fatal("first request rejected")
	}
	if ok, _ := b.Allow("10.0.0.1"); ok {
		t.Fatal("second request from the same IP allowed")
	}
	if ok, _ := b.Allow("10.0.0.2"); !ok {
		t.Error("another IP should not be affected")
	}
}

func TestIPBlocker_Cleanup(t *testing.T) {
	b, clock := newTestBlocker(t, 1, time.Minute, 3*time.Hour)

	b.Allow("idle")
	b.Allow("blocked")
	b.Allow("blocked")

	clock.Advance(2 * time.Hour)
	b.cleanup()

	if b.size() != 1 {
		t.Errorf("entries after cleanup = %d, want 1 (the blocked IP)", b.size())
	}
	if !b.Blocked("blocked") {
		t.Error("a blocked IP must survive cleanup")
	}
}

func TestIPBlocker_Handler(t *testing.T) {
	b, _ := newTestBlocker(t, 1, time.Minute, 10*time.Minute)
	handler := b.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", nil)
		req.RemoteAddr = "192.0.2.7:51234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", rec.Code)
	}

	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "600" {
		t.Errorf("Retry-After = %q, want 600", got)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Status != "error" || resp.Error == nil || resp.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("body = %+v", resp)
	}
	if !b.Blocked("192.0.2.7") {
		t.Error("port should be stripped from the client IP")
	}
}
