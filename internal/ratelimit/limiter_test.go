package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeLimiter_BurstThenReject(t *testing.T) {
	l := NewModeLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})

	assert.True(t, l.Allow("flight"))
	assert.True(t, l.Allow("flight"))
	assert.False(t, l.Allow("flight"))
}

func TestModeLimiter_ModesAreIndependent(t *testing.T) {
	l := NewModeLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})

	assert.True(t, l.Allow("hotel"))
	assert.False(t, l.Allow("hotel"))
	assert.True(t, l.Allow("ship"))
}

func TestModeLimiter_Override(t *testing.T) {
	l := NewModeLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 3})
	l.SetModeLimit("train", 0.001, 1)

	assert.True(t, l.Allow("train"))
	assert.False(t, l.Allow("train"))

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("flight"))
	}
	assert.False(t, l.Allow("flight"))
	assert.Equal(t, 1, l.bucket("train").Burst())
}
