// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// bucket allows a burst of requests and refills at a steady rate.
type bucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Info describes the limit applied to a request.
type Info struct {
	Limit      int
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client per tier.
type Limiter struct {
	cfg Config

	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	if cfg.Enabled {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may perform the request.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{}
	}

	tier := l.cfg.tierFor(path, method)
	key := clientID + "|" + tier.name

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(tier.burst, tier.refillRate())
		l.buckets[key] = b
	}
	l.mu.Unlock()

	info := Info{Limit: tier.Limit}
	if b.allow() {
		return true, info
	}
	info.RetryAfter = tier.Window / time.Duration(tier.Limit)
	return false, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

// cleanup drops buckets that have refilled completely; they carry no state a
// fresh bucket would not have.
func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		elapsed := time.Since(b.lastRefill)
		full := b.tokens+elapsed.Seconds()*b.refillRate >= float64(b.capacity)
		b.mu.Unlock()
		if full {
			delete(l.buckets, key)
		}
	}
}
