package balancer

import (
	apperrors "TMS_LoadBalancer_Service/internal/load-balancer/errors"
	"TMS_LoadBalancer_Service/internal/load-balancer/health"
	"TMS_LoadBalancer_Service/internal/load-balancer/metrics"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"TMS_LoadBalancer_Service/internal/load-balancer/ratelimit"
	"TMS_LoadBalancer_Service/internal/load-balancer/registry"
	"TMS_LoadBalancer_Service/internal/load-balancer/selector"
	"TMS_LoadBalancer_Service/internal/load-balancer/session"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LoadBalancer is the request-admission facade over the registry, prober,
// rate limiter, sticky session map, selector and metrics aggregator. The
// caller forwards the actual request and wraps the proxied call with
// IncrementConnections / DecrementConnections / RecordRequest.
type LoadBalancer interface {
	AddServer(spec model.ServerSpec) (model.ServerInstance, error)
	RemoveServer(id string) error
	UpdateWeight(id string, weight int) error
	SelectServer(reqCtx model.RequestContext) (model.ServerInstance, error)
	IncrementConnections(id string) error
	DecrementConnections(id string) error
	RecordRequest(serverID string, responseTime time.Duration, success bool)
	Servers() []model.ServerInstance
	HealthyServers() []model.ServerInstance
	UnhealthyServers() []model.ServerInstance
	Metrics() model.LoadBalancerMetrics
	Close()
}

type loadBalancer struct {
	registry  registry.Registry
	prober    health.Prober
	limiter   ratelimit.Limiter
	sticky    session.StickyMap
	selector  selector.Selector
	collector metrics.Aggregator
	logger    *zap.Logger
}

func NewLoadBalancer(reg registry.Registry, prober health.Prober, limiter ratelimit.Limiter, sticky session.StickyMap, sel selector.Selector, collector metrics.Aggregator, logger *zap.Logger) LoadBalancer {
	return &loadBalancer{
		registry:  reg,
		prober:    prober,
		limiter:   limiter,
		sticky:    sticky,
		selector:  sel,
		collector: collector,
		logger:    logger,
	}
}

// AddServer registers the backend and starts its recurring health probe in
// one step.
func (lb *loadBalancer) AddServer(spec model.ServerSpec) (model.ServerInstance, error) {
	server, err := lb.registry.AddServer(spec)
	if err != nil {
		return model.ServerInstance{}, fmt.Errorf("LoadBalancer.AddServer: %w", err)
	}
	lb.prober.Watch(server)
	lb.logger.Info("server registered",
		zap.String("server_id", server.ID),
		zap.String("host", server.Host),
		zap.Int("port", server.Port),
		zap.Int("weight", server.Weight))
	return server, nil
}

// RemoveServer stops the server's probe task before dropping it from the
// registry, so no orphaned timer keeps referencing a removed instance.
func (lb *loadBalancer) RemoveServer(id string) error {
	lb.prober.Unwatch(id)
	if err := lb.registry.RemoveServer(id); err != nil {
		return fmt.Errorf("LoadBalancer.RemoveServer: %w", err)
	}
	lb.collector.Forget(id)
	lb.logger.Info("server removed", zap.String("server_id", id))
	return nil
}

func (lb *loadBalancer) UpdateWeight(id string, weight int) error {
	if err := lb.registry.UpdateWeight(id, weight); err != nil {
		return fmt.Errorf("LoadBalancer.UpdateWeight: %w", err)
	}
	return nil
}

// SelectServer runs the admission pipeline: rate limit, sticky session
// lookup, then strategy selection over the healthy snapshot. A sticky binding
// to a server that has turned unhealthy counts as a miss and a fresh server
// is bound in its place.
func (lb *loadBalancer) SelectServer(reqCtx model.RequestContext) (model.ServerInstance, error) {
	if !lb.limiter.CheckAndRecord(reqCtx.ClientIP, reqCtx.Timestamp) {
		return model.ServerInstance{}, fmt.Errorf("LoadBalancer.SelectServer: %w", apperrors.ErrRateLimitExceeded)
	}
	if serverID, ok := lb.sticky.Resolve(reqCtx.SessionID, reqCtx.Timestamp); ok {
		if server, err := lb.registry.Server(serverID); err == nil && server.Healthy {
			return server, nil
		}
	}
	server, err := lb.selector.Select(lb.registry.HealthyServers(), reqCtx)
	if err != nil {
		return model.ServerInstance{}, fmt.Errorf("LoadBalancer.SelectServer: %w", err)
	}
	lb.sticky.Bind(reqCtx.SessionID, server.ID)
	return server, nil
}

func (lb *loadBalancer) IncrementConnections(id string) error {
	if err := lb.registry.IncrementConnections(id); err != nil {
		return fmt.Errorf("LoadBalancer.IncrementConnections: %w", err)
	}
	lb.collector.SetActiveConnections(lb.totalConnections())
	return nil
}

func (lb *loadBalancer) DecrementConnections(id string) error {
	if err := lb.registry.DecrementConnections(id); err != nil {
		return fmt.Errorf("LoadBalancer.DecrementConnections: %w", err)
	}
	lb.collector.SetActiveConnections(lb.totalConnections())
	return nil
}

func (lb *loadBalancer) RecordRequest(serverID string, responseTime time.Duration, success bool) {
	lb.collector.RecordRequest(serverID, responseTime, success)
}

func (lb *loadBalancer) Servers() []model.ServerInstance {
	return lb.registry.Servers()
}

func (lb *loadBalancer) HealthyServers() []model.ServerInstance {
	return lb.registry.HealthyServers()
}

func (lb *loadBalancer) UnhealthyServers() []model.ServerInstance {
	return lb.registry.UnhealthyServers()
}

func (lb *loadBalancer) Metrics() model.LoadBalancerMetrics {
	return lb.collector.Snapshot()
}

func (lb *loadBalancer) Close() {
	lb.prober.Stop()
}

func (lb *loadBalancer) totalConnections() int {
	total := 0
	for _, server := range lb.registry.Servers() {
		total += server.CurrentConnections
	}
	return total
}
