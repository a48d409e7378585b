// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/agropredict/internal/logging"
	"github.com/tomtom215/agropredict/internal/metrics"
)

// idleEntryTTL is how long an IP's state is kept after its last request,
// unless it is still blocked.
const idleEntryTTL = time.Hour

// IPBlocker limits requests per client IP. An IP that exceeds the limit is
// rejected outright for the block duration, not just until a token frees up.
type IPBlocker struct {
	name     string
	limit    rate.Limit
	burst    int
	blockFor time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*ipEntry

	stop     chan struct{}
	stopOnce sync.Once
}

type ipEntry struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastAccess   time.Time
}

// NewIPBlocker allows requests per window from each IP and blocks an IP for
// blockFor once it goes over. name labels the rate-limit metric and logs.
func NewIPBlocker(name string, requests int, window, blockFor time.Duration) *IPBlocker {
	if requests < 1 {
		requests = 1
	}
	b := &IPBlocker{
		name:     name,
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		blockFor: blockFor,
		now:      time.Now,
		entries:  make(map[string]*ipEntry),
		stop:     make(chan struct{}),
	}
	go b.cleanupLoop(5 * time.Minute)
	return b
}

// Allow records a request from ip. When it is rejected, retryAfter says how
// long the IP stays blocked.
func (b *IPBlocker) Allow(ip string) (allowed bool, retryAfter time.Duration) {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.entries[ip] = e
	}
	e.lastAccess = now

	if now.Before(e.blockedUntil) {
		return false, e.blockedUntil.Sub(now)
	}

	if !e.limiter.AllowN(now, 1) {
		e.blockedUntil = now.Add(b.blockFor)
		logging.Warn().
			Str("limiter", b.name).
			Str("ip", logging.SanitizeValue(ip)).
			Dur("block", b.blockFor).
			Msg("Client exceeded rate limit, blocking")
		return false, b.blockFor
	}
	return true, 0
}

// Blocked reports whether ip is currently blocked.
func (b *IPBlocker) Blocked(ip string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[ip]
	return ok && b.now().Before(e.blockedUntil)
}

// Handler rejects requests from blocked or over-limit IPs with 429.
// It expects chi's RealIP middleware to have set RemoteAddr.
func (b *IPBlocker) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retryAfter := b.Allow(clientIP(r))
		if !allowed {
			metrics.RecordRateLimitBlock(b.name)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests. Try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Close stops the cleanup goroutine.
func (b *IPBlocker) Close() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
}

func (b *IPBlocker) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.cleanup()
		case <-b.stop:
			return
		}
	}
}

func (b *IPBlocker) cleanup() {
	now := b.now()
	threshold := now.Add(-idleEntryTTL)

	b.mu.Lock()
	defer b.mu.Unlock()
	for ip, e := range b.entries {
		if e.lastAccess.Before(threshold) && !now.Before(e.blockedUntil) {
			delete(b.entries, ip)
		}
	}
}

func (b *IPBlocker) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// clientIP strips the port from RemoteAddr when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
