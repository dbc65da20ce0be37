package ratelimit

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limiterConfig(maxRequests int, window time.Duration) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:     true,
		MaxRequests: maxRequests,
		Window:      window,
	}
}

func TestLimiter_WindowQuota(t *testing.T) {
	limiter := NewLimiter(limiterConfig(3, time.Minute))
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.CheckAndRecord("client-1", now), "request %d should be admitted", i+1)
	}
	assert.False(t, limiter.CheckAndRecord("client-1", now.Add(time.Second)))
	assert.False(t, limiter.CheckAndRecord("client-1", now.Add(2*time.Second)))
}

func TestLimiter_WindowReset(t *testing.T) {
	limiter := NewLimiter(limiterConfig(2, time.Minute))
	now := time.Now()

	assert.True(t, limiter.CheckAndRecord("client-1", now))
	assert.True(t, limiter.CheckAndRecord("client-1", now))
	assert.False(t, limiter.CheckAndRecord("client-1", now))

	// after the window elapses the client starts a fresh window
	later := now.Add(time.Minute)
	assert.True(t, limiter.CheckAndRecord("client-1", later))
	assert.True(t, limiter.CheckAndRecord("client-1", later))
	assert.False(t, limiter.CheckAndRecord("client-1", later))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(limiterConfig(1, time.Minute))
	now := time.Now()

	assert.True(t, limiter.CheckAndRecord("client-1", now))
	assert.False(t, limiter.CheckAndRecord("client-1", now))
	assert.True(t, limiter.CheckAndRecord("client-2", now))
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(config.RateLimitConfig{Enabled: false, MaxRequests: 1, Window: time.Minute})
	now := time.Now()
	for i := 0; i < 10; i++ {
		assert.True(t, limiter.CheckAndRecord("client-1", now))
	}
}
