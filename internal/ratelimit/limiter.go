package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// ModeLimiter throttles searches with one token bucket per travel mode.
// Modes without an override share the default rate, each in its own bucket.
type ModeLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*rate.Limiter
	defaults RateLimitConfig
}

func NewModeLimiter(config RateLimitConfig) *ModeLimiter {
	return &ModeLimiter{
		buckets:  make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// SetModeLimit replaces the bucket of mode, discarding any tokens it held.
func (m *ModeLimiter) SetModeLimit(mode string, rps float64, burst int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.buckets[mode] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Allow reports whether a search for mode may start now. It never blocks.
func (m *ModeLimiter) Allow(mode string) bool {
	return m.bucket(mode).Allow()
}

func (m *ModeLimiter) bucket(mode string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[mode]
	if !ok {
		b = rate.NewLimiter(rate.Limit(m.defaults.RequestsPerSecond), m.defaults.BurstSize)
		m.buckets[mode] = b
	}
	return b
}
