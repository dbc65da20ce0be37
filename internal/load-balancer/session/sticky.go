package session

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"sync"
	"time"
)

// StickyMap binds a session id to a previously selected server for a bounded
// duration. Expiry is checked lazily at lookup time instead of scheduling a
// deletion timer per entry, so heavy session churn cannot pile up timers.
type StickyMap interface {
	Bind(sessionID string, serverID string)
	Resolve(sessionID string, now time.Time) (string, bool)
	Unbind(sessionID string)
}

type binding struct {
	serverID  string
	expiresAt time.Time
}

type stickyMap struct {
	mu       sync.RWMutex
	cfg      config.StickySessionConfig
	bindings map[string]binding
}

func NewStickyMap(cfg config.StickySessionConfig) StickyMap {
	return &stickyMap{
		cfg:      cfg,
		bindings: make(map[string]binding),
	}
}

func (s *stickyMap) Bind(sessionID string, serverID string) {
	if !s.cfg.Enabled || sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[sessionID] = binding{
		serverID:  serverID,
		expiresAt: time.Now().Add(s.cfg.TTL),
	}
}

// Resolve returns the bound server id if the binding is still live. Expired
// entries are removed on the spot.
func (s *stickyMap) Resolve(sessionID string, now time.Time) (string, bool) {
	if !s.cfg.Enabled || sessionID == "" {
		return "", false
	}
	s.mu.RLock()
	b, ok := s.bindings[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !now.Before(b.expiresAt) {
		s.mu.Lock()
		// re-check under the write lock, a concurrent Bind may have renewed it
		if current, still := s.bindings[sessionID]; still && !now.Before(current.expiresAt) {
			delete(s.bindings, sessionID)
		}
		s.mu.Unlock()
		return "", false
	}
	return b.serverID, true
}

func (s *stickyMap) Unbind(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bindings, sessionID)
}
