package scaling

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BalancerState covers the part of the load balancer the manager reads on
// each evaluation.
type BalancerState interface {
	HealthyServers() []model.ServerInstance
	Metrics() model.LoadBalancerMetrics
}

// Manager turns utilization, latency and error-rate signals into scaling
// decisions. Consecutive actions are separated by a cooldown period so the
// recommendation cannot flap.
type Manager interface {
	Evaluate() model.ScalingDecision
	LastDecision() (model.ScalingDecision, bool)
}

type manager struct {
	cfg    config.ScalingConfig
	state  BalancerState
	logger *zap.Logger
	clock  func() time.Time

	mu             sync.Mutex
	lastActionTime time.Time
	lastDecision   model.ScalingDecision
	hasDecision    bool
}

func NewManager(cfg config.ScalingConfig, state BalancerState, logger *zap.Logger) Manager {
	return &manager{
		cfg:    cfg,
		state:  state,
		logger: logger,
		clock:  time.Now,
	}
}

// Evaluate reads a snapshot of the balancer and decides whether to scale.
// Within the cooldown window it always returns "none" regardless of the
// metrics; the last-action timestamp is read and updated under one lock so
// concurrent evaluations cannot both claim an action.
func (m *manager) Evaluate() model.ScalingDecision {
	healthy := m.state.HealthyServers()
	snapshot := m.state.Metrics()

	totalConnections := 0
	totalCapacity := 0
	for _, server := range healthy {
		totalConnections += server.CurrentConnections
		totalCapacity += server.MaxConnections
	}
	utilization := 0.0
	if totalCapacity > 0 {
		utilization = float64(totalConnections) / float64(totalCapacity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock()
	decision := model.ScalingDecision{
		Action:           model.ScalingActionNone,
		CurrentInstances: len(healthy),
		TargetInstances:  len(healthy),
		Timestamp:        now,
	}
	if !m.lastActionTime.IsZero() && now.Sub(m.lastActionTime) < m.cfg.CooldownPeriod {
		decision.Reason = fmt.Sprintf("cooldown active for another %s", m.cfg.CooldownPeriod-now.Sub(m.lastActionTime))
		m.record(decision)
		return decision
	}

	switch {
	case utilization > m.cfg.ScaleUpThreshold:
		decision = m.scaleUp(decision, fmt.Sprintf("utilization %.2f above threshold %.2f", utilization, m.cfg.ScaleUpThreshold))
	case snapshot.AvgResponseTimeMs > m.cfg.MaxAvgResponseMs:
		decision = m.scaleUp(decision, fmt.Sprintf("average response time %.0fms above %.0fms", snapshot.AvgResponseTimeMs, m.cfg.MaxAvgResponseMs))
	case snapshot.ErrorRate() > m.cfg.MaxErrorRate:
		decision = m.scaleUp(decision, fmt.Sprintf("error rate %.3f above %.3f", snapshot.ErrorRate(), m.cfg.MaxErrorRate))
	case utilization < m.cfg.ScaleDownThreshold && len(healthy) > m.cfg.MinInstances:
		decision.Action = model.ScalingActionDown
		decision.Reason = fmt.Sprintf("utilization %.2f below threshold %.2f", utilization, m.cfg.ScaleDownThreshold)
		decision.TargetInstances = m.clamp(len(healthy) - 1)
	default:
		decision.Reason = "metrics within thresholds"
	}

	if decision.Action != model.ScalingActionNone {
		m.lastActionTime = now
		m.logger.Info("scaling action recommended",
			zap.String("action", decision.Action),
			zap.String("reason", decision.Reason),
			zap.Int("current_instances", decision.CurrentInstances),
			zap.Int("target_instances", decision.TargetInstances))
	}
	m.record(decision)
	return decision
}

func (m *manager) LastDecision() (model.ScalingDecision, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDecision, m.hasDecision
}

// scaleUp caps the recommendation at MaxInstances; at the ceiling the
// decision degrades to "none" rather than recommending an impossible count.
func (m *manager) scaleUp(decision model.ScalingDecision, reason string) model.ScalingDecision {
	if decision.CurrentInstances >= m.cfg.MaxInstances {
		decision.Reason = fmt.Sprintf("%s, but already at max instances (%d)", reason, m.cfg.MaxInstances)
		return decision
	}
	decision.Action = model.ScalingActionUp
	decision.Reason = reason
	decision.TargetInstances = m.clamp(decision.CurrentInstances + 1)
	return decision
}

func (m *manager) clamp(n int) int {
	if n < m.cfg.MinInstances {
		return m.cfg.MinInstances
	}
	if n > m.cfg.MaxInstances {
		return m.cfg.MaxInstances
	}
	return n
}

func (m *manager) record(decision model.ScalingDecision) {
	m.lastDecision = decision
	m.hasDecision = true
}
