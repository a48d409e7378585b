// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/agropredict/internal/metrics"
)

// cleanupInterval is how often expired entries are swept.
const cleanupInterval = 5 * time.Minute

// Entry is a cached value. A zero ExpiresAt never expires.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

func (e Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Keys      int64 `json:"keys"`
}

// Cache is a thread-safe in-memory cache with optional TTL.
type Cache struct {
	name    string
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]Entry

	statsMu sync.Mutex
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache whose entries live for ttl. A ttl of zero or less keeps
// entries until the cache is cleared. The name labels the cache hit and miss
// metrics.
//
// With a positive ttl, expired entries are also swept every five minutes by a
// background goroutine; call Close to stop it.
func New(name string, ttl time.Duration) *Cache {
	c := &Cache{
		name:    name,
		ttl:     ttl,
		entries: make(map[string]Entry),
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go c.cleanupLoop()
	}
	return c
}

// Name returns the cache's metric label.
func (c *Cache) Name() string {
	return c.name
}

// Get returns the value stored under key. Expired entries are removed and
// reported as misses.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.record(false, 0)
		return nil, false
	}

	if entry.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.record(false, 1)
		return nil, false
	}

	c.record(true, 0)
	return entry.Data, true
}

// Has reports whether key holds an unexpired entry. It does not count as a lookup.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	return exists && !entry.expired(time.Now())
}

// Set stores value under key with the cache's TTL.
func (c *Cache) Set(key string, value interface{}) {
	entry := Entry{Data: value}
	if c.ttl > 0 {
		entry.ExpiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evicted
	c.statsMu.Unlock()
}

// GetStats returns a snapshot of the statistics.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	keys := int64(len(c.entries))
	c.mu.RUnlock()

	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	s := c.stats
	s.Keys = keys
	return s
}

// Close stops the background sweep. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) cleanup() {
	now := time.Now()
	evicted := int64(0)

	c.mu.Lock()
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			evicted++
		}
	}
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evicted
	c.statsMu.Unlock()
}

func (c *Cache) record(hit bool, evicted int64) {
	c.statsMu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.stats.Evictions += evicted
	c.statsMu.Unlock()
	metrics.RecordCacheLookup(c.name, hit)
}
