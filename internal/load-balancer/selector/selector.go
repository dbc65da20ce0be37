package selector

import (
	apperrors "TMS_LoadBalancer_Service/internal/load-balancer/errors"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"fmt"
	"math/rand"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Selector picks exactly one server from the healthy snapshot for a request.
// Implementations carry at most minimal rotation state; everything else is a
// pure function of the inputs.
type Selector interface {
	Select(servers []model.ServerInstance, reqCtx model.RequestContext) (model.ServerInstance, error)
}

func NewSelector(strategy string) (Selector, error) {
	switch strategy {
	case model.StrategyRoundRobin:
		return &roundRobin{}, nil
	case model.StrategyWeightedRoundRobin:
		return &weightedRoundRobin{}, nil
	case model.StrategyLeastConnections:
		return leastConnections{}, nil
	case model.StrategyIPHash:
		return ipHash{}, nil
	case model.StrategyRandom:
		return random{}, nil
	default:
		return nil, fmt.Errorf("NewSelector: %w: %q", apperrors.ErrUnknownStrategy, strategy)
	}
}

type roundRobin struct {
	mu   sync.Mutex
	next uint64
}

// Select takes the rotation index modulo the current healthy count, so the
// rotation adapts when the healthy set shrinks or grows between calls.
func (r *roundRobin) Select(servers []model.ServerInstance, _ model.RequestContext) (model.ServerInstance, error) {
	if len(servers) == 0 {
		return model.ServerInstance{}, fmt.Errorf("Selector.Select: %w", apperrors.ErrNoHealthyServers)
	}
	r.mu.Lock()
	index := r.next % uint64(len(servers))
	r.next++
	r.mu.Unlock()
	return servers[index], nil
}

type weightedRoundRobin struct {
	mu sync.Mutex
}

// Select draws uniformly in [0, totalWeight) and walks the list subtracting
// weights, so a server's selection probability is proportional to its weight.
func (w *weightedRoundRobin) Select(servers []model.ServerInstance, _ model.RequestContext) (model.ServerInstance, error) {
	if len(servers) == 0 {
		return model.ServerInstance{}, fmt.Errorf("Selector.Select: %w", apperrors.ErrNoHealthyServers)
	}
	totalWeight := 0
	for _, server := range servers {
		totalWeight += server.Weight
	}
	w.mu.Lock()
	draw := rand.Intn(totalWeight)
	w.mu.Unlock()
	for _, server := range servers {
		draw -= server.Weight
		if draw < 0 {
			return server, nil
		}
	}
	return servers[len(servers)-1], nil
}

type leastConnections struct{}

// Select returns the server with the fewest open connections, ties broken by
// list order.
func (leastConnections) Select(servers []model.ServerInstance, _ model.RequestContext) (model.ServerInstance, error) {
	if len(servers) == 0 {
		return model.ServerInstance{}, fmt.Errorf("Selector.Select: %w", apperrors.ErrNoHealthyServers)
	}
	best := servers[0]
	for _, server := range servers[1:] {
		if server.CurrentConnections < best.CurrentConnections {
			best = server
		}
	}
	return best, nil
}

type ipHash struct{}

// Select maps a client IP deterministically onto the healthy list. The same
// IP lands on the same server as long as the healthy set and its ordering are
// unchanged; resizing the set may remap clients.
func (ipHash) Select(servers []model.ServerInstance, reqCtx model.RequestContext) (model.ServerInstance, error) {
	if len(servers) == 0 {
		return model.ServerInstance{}, fmt.Errorf("Selector.Select: %w", apperrors.ErrNoHealthyServers)
	}
	index := xxhash.Sum64String(reqCtx.ClientIP) % uint64(len(servers))
	return servers[index], nil
}

type random struct{}

func (random) Select(servers []model.ServerInstance, _ model.RequestContext) (model.ServerInstance, error) {
	if len(servers) == 0 {
		return model.ServerInstance{}, fmt.Errorf("Selector.Select: %w", apperrors.ErrNoHealthyServers)
	}
	return servers[rand.Intn(len(servers))], nil
}
