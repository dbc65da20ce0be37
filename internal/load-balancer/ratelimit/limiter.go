package ratelimit

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"sync"
	"time"
)

// Limiter caps request admission per client key with a fixed window counter.
// A burst straddling a window boundary can admit up to twice the nominal rate
// in a short span; that approximation is accepted here in exchange for O(1)
// state per client.
type Limiter interface {
	CheckAndRecord(clientKey string, now time.Time) bool
}

type entry struct {
	count     int
	resetTime time.Time
}

type limiter struct {
	mu      sync.Mutex
	cfg     config.RateLimitConfig
	entries map[string]*entry
}

func NewLimiter(cfg config.RateLimitConfig) Limiter {
	return &limiter{
		cfg:     cfg,
		entries: make(map[string]*entry),
	}
}

// CheckAndRecord admits or refuses one request from clientKey. Expired
// windows are replaced lazily, there is no per-entry deletion timer.
func (l *limiter) CheckAndRecord(clientKey string, now time.Time) bool {
	if !l.cfg.Enabled {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[clientKey]
	if !ok || !now.Before(e.resetTime) {
		l.entries[clientKey] = &entry{
			count:     1,
			resetTime: now.Add(l.cfg.Window),
		}
		return true
	}
	e.count++
	return e.count <= l.cfg.MaxRequests
}
