package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		Enabled:         true,
		CleanupInterval: time.Minute,
		Tiers: []Tier{
			{name: "analyze", Paths: []string{"/analyze"}, Method: "POST", Limit: 10, Window: time.Hour, burst: 2},
		},
		defaultTier: Tier{name: "default", Limit: 600, Window: time.Minute, burst: 3},
	}
}

func TestLimiter_BurstThenReject(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := l.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.2.3.4", "/analyze", "POST")
	}
	allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/analyze", "POST")
	assert.True(t, allowed, "a saturated client must not affect others")
}

func TestLimiter_TiersAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.2.3.4", "/analyze", "POST")
	}
	allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)

	// The same client can still hit untiered endpoints.
	allowed, _ = l.Allow("1.2.3.4", "/state", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestTierFor(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, "analyze", cfg.tierFor("/analyze", "POST").name)
	assert.Equal(t, "default", cfg.tierFor("/analyze", "GET").name, "method must match")
	assert.Equal(t, "default", cfg.tierFor("/health", "GET").name)
}

func TestBucketRefill(t *testing.T) {
	b := newBucket(1, 1000) // effectively instant refill
	assert.True(t, b.allow())
	time.Sleep(5 * time.Millisecond)
	assert.True(t, b.allow(), "bucket refills over time")
}
