package health

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"TMS_LoadBalancer_Service/internal/load-balancer/registry"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransitionListener receives health transition events. Implementations must
// not block; slow consumers should buffer internally.
type TransitionListener interface {
	OnTransition(event model.HealthTransitionEvent)
}

// HealthRecorder receives per-probe samples for uptime accounting.
type HealthRecorder interface {
	RecordHealthCheck(serverID string, healthy bool, responseTime time.Duration)
}

// Prober runs one recurring probe task per watched server. Each server has its
// own ticker goroutine, so a slow probe against one backend never delays the
// probes of another. Unwatch cancels the task synchronously.
type Prober interface {
	Watch(server model.ServerInstance)
	Unwatch(id string)
	Stop()
}

type prober struct {
	cfg       config.HealthCheckConfig
	client    ProbeClient
	registry  registry.Registry
	recorder  HealthRecorder
	listeners []TransitionListener
	logger    *zap.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

func NewProber(cfg config.HealthCheckConfig, client ProbeClient, reg registry.Registry, recorder HealthRecorder, listeners []TransitionListener, logger *zap.Logger) Prober {
	return &prober{
		cfg:       cfg,
		client:    client,
		registry:  reg,
		recorder:  recorder,
		listeners: listeners,
		logger:    logger,
		cancels:   make(map[string]context.CancelFunc),
	}
}

func (p *prober) Watch(server model.ServerInstance) {
	if !p.cfg.Enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.cancels[server.ID]; ok {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancels[server.ID] = cancel
	p.wg.Add(1)
	go p.run(ctx, server)
}

func (p *prober) Unwatch(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[id]; ok {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *prober) Stop() {
	p.mu.Lock()
	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *prober) run(ctx context.Context, server model.ServerInstance) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probeOnce(ctx, server)
		}
	}
}

func (p *prober) probeOnce(ctx context.Context, server model.ServerInstance) {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	result := p.client.Probe(probeCtx, server.Protocol, server.Host, server.Port)
	cancel()

	transition, err := p.registry.ApplyProbeResult(server.ID, result.Success, result.Duration, p.cfg.MaxFailures)
	if err != nil {
		// server was removed between the tick and the probe finishing
		p.logger.Debug("dropping probe result for unknown server",
			zap.String("server_id", server.ID),
			zap.Error(fmt.Errorf("Prober.probeOnce: %w", err)))
		return
	}
	if p.recorder != nil {
		p.recorder.RecordHealthCheck(server.ID, result.Success, result.Duration)
	}
	if !result.Success && result.Err != nil {
		p.logger.Debug("health probe failed",
			zap.String("server_id", server.ID),
			zap.Error(result.Err))
	}
	if transition == model.TransitionNone {
		return
	}
	event := model.HealthTransitionEvent{
		EventID:      uuid.NewString(),
		ServerID:     server.ID,
		Transition:   transition,
		ResponseTime: result.Duration,
		Timestamp:    result.Timestamp,
	}
	if snapshot, e := p.registry.Server(server.ID); e == nil {
		event.ErrorCount = snapshot.ErrorCount
	}
	switch transition {
	case model.TransitionBecameHealthy:
		p.logger.Info("server became healthy", zap.String("server_id", server.ID))
	case model.TransitionBecameUnhealthy:
		p.logger.Warn("server became unhealthy", zap.String("server_id", server.ID), zap.Int("error_count", event.ErrorCount))
	}
	for _, listener := range p.listeners {
		listener.OnTransition(event)
	}
}
