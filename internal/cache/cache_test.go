// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package cache

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"

	"github.com/tomtom215/agropredict/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c := New("test", ttl)
	t.Cleanup(c.Close)
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := newTestCache(t, 50*time.Millisecond)

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if stats := c.GetStats(); stats.Evictions != 1 || stats.Keys != 0 {
		t.Errorf("stats = %+v, want 1 eviction and no keys", stats)
	}
}

func TestCacheSweep(t *testing.T) {
	c := newTestCache(t, 20*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)

	time.Sleep(40 * time.Millisecond)
	c.cleanup()

	if stats := c.GetStats(); stats.Keys != 0 || stats.Evictions != 2 {
		t.Errorf("stats = %+v, want 0 keys and 2 evictions", stats)
	}
}

func TestCacheNoExpiry(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero", 0},
		{"negative", -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCache(t, tt.ttl)
			c.Set("crops", []string{"rice"})

			time.Sleep(5 * time.Millisecond)
			c.cleanup()

			if _, exists := c.Get("crops"); !exists {
				t.Error("entry without TTL should never expire")
			}
		})
	}
}

func TestCacheNoSweeperWithoutTTL(t *testing.T) {
	before := runtime.NumGoroutine()
	c := New("no_ttl", 0)
	defer c.Close()

	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("goroutines went from %d to %d, want no sweeper", before, after)
	}
}

func TestCacheHas(t *testing.T) {
	c := newTestCache(t, time.Nanosecond)
	c.Set("gone", "v")
	time.Sleep(time.Millisecond)

	forever := newTestCache(t, 0)
	forever.Set("k", "v")

	if !forever.Has("k") {
		t.Error("Has(k) = false, want true")
	}
	if c.Has("gone") || forever.Has("missing") {
		t.Error("Has should be false for expired or missing keys")
	}
	if stats := forever.GetStats(); stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("Has must not touch lookup stats: %+v", stats)
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t, 0)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	c.Clear()
	if _, exists := c.Get("key2"); exists {
		t.Error("Expected key2 to be cleared")
	}
	if stats := c.GetStats(); stats.Keys != 0 || stats.Evictions != 2 {
		t.Errorf("stats = %+v, want 0 keys and 2 evictions", stats)
	}
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key2")
	c.Get("key1")

	stats := c.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Keys != 1 {
		t.Errorf("stats = %+v, want 2 hits, 1 miss, 1 key", stats)
	}

	c.Get("key1")
	if stats.Hits != 2 {
		t.Error("GetStats should return a copy, not a reference")
	}
}

func TestCacheMetrics(t *testing.T) {
	c := New("metrics_test", 0)
	defer c.Close()

	hits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("metrics_test"))
	misses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("metrics_test"))

	c.Get("missing")
	c.Set("present", 1)
	c.Get("present")

	if d := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("metrics_test")) - hits; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("metrics_test")) - misses; d != 1 {
		t.Errorf("misses delta = %v, want 1", d)
	}
	if c.Name() != "metrics_test" {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := newTestCache(t, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("key", id)
				c.Get("key")
				if j%10 == 0 {
					c.Clear()
				}
			}
		}(i)
	}
	wg.Wait()

	stats := c.GetStats()
	if stats.Hits+stats.Misses != 1000 {
		t.Errorf("lookups = %d, want 1000", stats.Hits+stats.Misses)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := New("close_test", time.Minute)
	c.Close()
	c.Close()

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Error("cache should stay usable after Close")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New("bench", time.Minute)
	defer c.Close()
	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}
