package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier is a rate limit applied to a group of endpoints.
type Tier struct {
	name   string
	Paths  []string // exact request paths
	Method string
	Limit  int // requests per Window
	Window time.Duration
	burst  int
}

func (t Tier) refillRate() float64 {
	return float64(t.Limit) / t.Window.Seconds()
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Tiers           []Tier
	defaultTier     Tier
}

// LoadConfig builds limiter configuration from environment variables, with
// endpoint tiers reflecting relative cost: analysis runs an LLM completion,
// search intents hit the job API, reads are local.
func LoadConfig() Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return Config{Enabled: false}
	}

	return Config{
		Enabled:         true,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Tiers: []Tier{
			{
				name:   "analyze",
				Paths:  []string{"/analyze"},
				Method: "POST",
				Limit:  getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", 10),
				Window: time.Hour,
				burst:  3,
			},
			{
				name:   "search",
				Paths:  []string{"/skills/toggle", "/page"},
				Method: "POST",
				Limit:  getEnvInt("RATE_LIMIT_SEARCH_LIMIT", 120),
				Window: time.Minute,
				burst:  20,
			},
		},
		defaultTier: Tier{
			name:   "default",
			Limit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
			Window: time.Minute,
			burst:  60,
		},
	}
}

func (c Config) tierFor(path, method string) Tier {
	for _, tier := range c.Tiers {
		if tier.Method != method {
			continue
		}
		for _, p := range tier.Paths {
			if p == path {
				return tier
			}
		}
	}
	return c.defaultTier
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true" || v == "yes"
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
