// Package ratelimit gates request admission per originating client over a
// fixed time window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	remaining   int
	windowStart time.Time
}

// Limiter admits up to limit requests per client identity within each
// window. Each client gets its own budget; one client exhausting its
// budget does not affect another. The read-modify-write on the window
// table is serialized by a mutex, so Allow is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
}

// New creates a Limiter admitting limit requests per client per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
}

// Allow records one request from clientID and reports whether it is
// admitted. The client's budget refills when its window has elapsed.
func (l *Limiter) Allow(clientID string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok || now.Sub(b.windowStart) >= l.window {
		b = &bucket{remaining: l.limit, windowStart: now}
		l.buckets[clientID] = b
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Reset drops all per-client state, refilling every budget at once.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets = make(map[string]*bucket)
}

// Run resets the limiter on a fixed period until ctx is cancelled. The
// periodic reset also keeps the window table from accumulating entries
// for clients that never return.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Reset()
		}
	}
}
