package registry

import (
	apperrors "TMS_LoadBalancer_Service/internal/load-balancer/errors"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"fmt"
	"sync"
	"time"
)

// Registry holds the authoritative mutable set of backend servers. All reads
// return copies so callers never alias the live records. Mutations are
// serialized by a single mutex; nothing under the lock does I/O, so one slow
// health probe cannot hold up operations on unrelated servers.
type Registry interface {
	AddServer(spec model.ServerSpec) (model.ServerInstance, error)
	RemoveServer(id string) error
	UpdateWeight(id string, weight int) error
	Server(id string) (model.ServerInstance, error)
	Servers() []model.ServerInstance
	HealthyServers() []model.ServerInstance
	UnhealthyServers() []model.ServerInstance
	IncrementConnections(id string) error
	DecrementConnections(id string) error
	ApplyProbeResult(id string, success bool, responseTime time.Duration, maxFailures int) (string, error)
}

type serverRecord struct {
	spec               model.ServerSpec
	currentConnections int
	healthy            bool
	errorCount         int
	lastHealthCheck    time.Time
	responseTime       time.Duration
}

type registry struct {
	mu      sync.RWMutex
	servers map[string]*serverRecord
	order   []string
}

func NewRegistry() Registry {
	return &registry{
		servers: make(map[string]*serverRecord),
	}
}

func (r *registry) AddServer(spec model.ServerSpec) (model.ServerInstance, error) {
	if spec.Weight <= 0 {
		return model.ServerInstance{}, fmt.Errorf("Registry.AddServer: %w", apperrors.ErrInvalidWeight)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.servers[spec.ID]; ok {
		return model.ServerInstance{}, fmt.Errorf("Registry.AddServer: %w", apperrors.ErrDuplicateServer)
	}
	rec := &serverRecord{
		spec:    spec,
		healthy: true,
	}
	r.servers[spec.ID] = rec
	r.order = append(r.order, spec.ID)
	return rec.snapshot(), nil
}

func (r *registry) RemoveServer(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.servers[id]; !ok {
		return fmt.Errorf("Registry.RemoveServer: %w", apperrors.ErrServerNotFound)
	}
	delete(r.servers, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *registry) UpdateWeight(id string, weight int) error {
	if weight <= 0 {
		return fmt.Errorf("Registry.UpdateWeight: %w", apperrors.ErrInvalidWeight)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.servers[id]
	if !ok {
		return fmt.Errorf("Registry.UpdateWeight: %w", apperrors.ErrServerNotFound)
	}
	rec.spec.Weight = weight
	return nil
}

func (r *registry) Server(id string) (model.ServerInstance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.servers[id]
	if !ok {
		return model.ServerInstance{}, fmt.Errorf("Registry.Server: %w", apperrors.ErrServerNotFound)
	}
	return rec.snapshot(), nil
}

func (r *registry) Servers() []model.ServerInstance {
	return r.filter(func(*serverRecord) bool { return true })
}

func (r *registry) HealthyServers() []model.ServerInstance {
	return r.filter(func(rec *serverRecord) bool { return rec.healthy })
}

func (r *registry) UnhealthyServers() []model.ServerInstance {
	return r.filter(func(rec *serverRecord) bool { return !rec.healthy })
}

// filter walks servers in registration order so selection strategies that
// index into the slice see a stable ordering between calls.
func (r *registry) filter(match func(*serverRecord) bool) []model.ServerInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.ServerInstance, 0, len(r.order))
	for _, id := range r.order {
		rec := r.servers[id]
		if match(rec) {
			result = append(result, rec.snapshot())
		}
	}
	return result
}

func (r *registry) IncrementConnections(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.servers[id]
	if !ok {
		return fmt.Errorf("Registry.IncrementConnections: %w", apperrors.ErrServerNotFound)
	}
	rec.currentConnections++
	return nil
}

func (r *registry) DecrementConnections(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.servers[id]
	if !ok {
		return fmt.Errorf("Registry.DecrementConnections: %w", apperrors.ErrServerNotFound)
	}
	// floors at zero, repeated decrements never drive it negative
	if rec.currentConnections > 0 {
		rec.currentConnections--
	}
	return nil
}

// ApplyProbeResult records the outcome of one health probe and returns the
// resulting health transition, if any. A success resets the error count and
// restores health in one step; failures flip health only once the error count
// reaches maxFailures.
func (r *registry) ApplyProbeResult(id string, success bool, responseTime time.Duration, maxFailures int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.servers[id]
	if !ok {
		return model.TransitionNone, fmt.Errorf("Registry.ApplyProbeResult: %w", apperrors.ErrServerNotFound)
	}
	rec.lastHealthCheck = time.Now()
	rec.responseTime = responseTime
	if success {
		rec.errorCount = 0
		if !rec.healthy {
			rec.healthy = true
			return model.TransitionBecameHealthy, nil
		}
		return model.TransitionNone, nil
	}
	rec.errorCount++
	if rec.healthy && rec.errorCount >= maxFailures {
		rec.healthy = false
		return model.TransitionBecameUnhealthy, nil
	}
	return model.TransitionNone, nil
}

func (rec *serverRecord) snapshot() model.ServerInstance {
	metadata := make(map[string]string, len(rec.spec.Metadata))
	for k, v := range rec.spec.Metadata {
		metadata[k] = v
	}
	return model.ServerInstance{
		ID:                 rec.spec.ID,
		Host:               rec.spec.Host,
		Port:               rec.spec.Port,
		Protocol:           rec.spec.Protocol,
		Weight:             rec.spec.Weight,
		MaxConnections:     rec.spec.MaxConnections,
		CurrentConnections: rec.currentConnections,
		Healthy:            rec.healthy,
		ErrorCount:         rec.errorCount,
		LastHealthCheck:    rec.lastHealthCheck,
		ResponseTime:       rec.responseTime,
		Metadata:           metadata,
	}
}
