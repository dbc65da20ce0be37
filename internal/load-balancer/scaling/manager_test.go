package scaling

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubState struct {
	healthy []model.ServerInstance
	metrics model.LoadBalancerMetrics
}

func (s *stubState) HealthyServers() []model.ServerInstance { return s.healthy }
func (s *stubState) Metrics() model.LoadBalancerMetrics     { return s.metrics }

func scalingConfig() config.ScalingConfig {
	return config.ScalingConfig{
		MinInstances:       2,
		MaxInstances:       10,
		ScaleUpThreshold:   0.8,
		ScaleDownThreshold: 0.3,
		MaxAvgResponseMs:   2000,
		MaxErrorRate:       0.05,
		CooldownPeriod:     5 * time.Minute,
	}
}

func healthyPool(n, connectionsEach, maxEach int) []model.ServerInstance {
	pool := make([]model.ServerInstance, n)
	for i := range pool {
		pool[i] = model.ServerInstance{
			ID:                 "server",
			Healthy:            true,
			CurrentConnections: connectionsEach,
			MaxConnections:     maxEach,
		}
	}
	return pool
}

func newTestManager(state BalancerState, now *time.Time) *manager {
	m := NewManager(scalingConfig(), state, zap.NewNop()).(*manager)
	m.clock = func() time.Time { return *now }
	return m
}

func TestManager_Evaluate(t *testing.T) {
	testCases := []struct {
		name           string
		state          stubState
		expectedAction string
		expectedTarget int
	}{
		{
			name:           "Scale up on high utilization",
			state:          stubState{healthy: healthyPool(4, 90, 100)},
			expectedAction: model.ScalingActionUp,
			expectedTarget: 5,
		},
		{
			name: "Scale up on high latency",
			state: stubState{
				healthy: healthyPool(4, 50, 100),
				metrics: model.LoadBalancerMetrics{TotalRequests: 100, AvgResponseTimeMs: 2500},
			},
			expectedAction: model.ScalingActionUp,
			expectedTarget: 5,
		},
		{
			name: "Scale up on high error rate",
			state: stubState{
				healthy: healthyPool(4, 50, 100),
				metrics: model.LoadBalancerMetrics{TotalRequests: 100, FailedRequests: 10},
			},
			expectedAction: model.ScalingActionUp,
			expectedTarget: 5,
		},
		{
			name:           "Scale down on low utilization",
			state:          stubState{healthy: healthyPool(4, 10, 100)},
			expectedAction: model.ScalingActionDown,
			expectedTarget: 3,
		},
		{
			name:           "None within thresholds",
			state:          stubState{healthy: healthyPool(4, 50, 100)},
			expectedAction: model.ScalingActionNone,
			expectedTarget: 4,
		},
		{
			name:           "None with zero capacity",
			state:          stubState{healthy: nil},
			expectedAction: model.ScalingActionNone,
			expectedTarget: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			m := newTestManager(&tc.state, &now)
			decision := m.Evaluate()
			assert.Equal(t, tc.expectedAction, decision.Action)
			assert.Equal(t, tc.expectedTarget, decision.TargetInstances)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}

func TestManager_Cooldown(t *testing.T) {
	state := &stubState{healthy: healthyPool(4, 90, 100)}
	now := time.Now()
	m := newTestManager(state, &now)

	decision := m.Evaluate()
	assert.Equal(t, model.ScalingActionUp, decision.Action)

	// halfway through the cooldown, metrics are still extreme but the
	// manager must return none
	now = now.Add(scalingConfig().CooldownPeriod / 2)
	decision = m.Evaluate()
	assert.Equal(t, model.ScalingActionNone, decision.Action)
	assert.Contains(t, decision.Reason, "cooldown")

	// after the cooldown elapses a new action is allowed
	now = now.Add(scalingConfig().CooldownPeriod)
	decision = m.Evaluate()
	assert.Equal(t, model.ScalingActionUp, decision.Action)
}

func TestManager_Bounds(t *testing.T) {
	now := time.Now()

	// floor: 2 healthy servers under low utilization, never scale below min
	m := newTestManager(&stubState{healthy: healthyPool(2, 1, 100)}, &now)
	decision := m.Evaluate()
	assert.Equal(t, model.ScalingActionNone, decision.Action)

	// ceiling: 10 healthy servers under extreme load, never scale above max
	m = newTestManager(&stubState{healthy: healthyPool(10, 100, 100)}, &now)
	decision = m.Evaluate()
	assert.Equal(t, model.ScalingActionNone, decision.Action)
	assert.Equal(t, 10, decision.TargetInstances)
}

func TestManager_FirstMatchingReasonWins(t *testing.T) {
	// both utilization and error rate are extreme, utilization is reported
	state := &stubState{
		healthy: healthyPool(4, 95, 100),
		metrics: model.LoadBalancerMetrics{TotalRequests: 100, FailedRequests: 50},
	}
	now := time.Now()
	m := newTestManager(state, &now)
	decision := m.Evaluate()
	assert.Equal(t, model.ScalingActionUp, decision.Action)
	assert.Contains(t, decision.Reason, "utilization")
}

func TestManager_ConcurrentEvaluationSingleAction(t *testing.T) {
	state := &stubState{healthy: healthyPool(4, 90, 100)}
	m := NewManager(scalingConfig(), state, zap.NewNop())

	const evaluations = 50
	var wg sync.WaitGroup
	actions := make(chan string, evaluations)
	for i := 0; i < evaluations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actions <- m.Evaluate().Action
		}()
	}
	wg.Wait()
	close(actions)

	scaleUps := 0
	for action := range actions {
		if action == model.ScalingActionUp {
			scaleUps++
		}
	}
	// the cooldown timestamp is claimed under one lock, only one evaluation wins
	assert.Equal(t, 1, scaleUps)
}

func TestManager_LastDecision(t *testing.T) {
	state := &stubState{healthy: healthyPool(4, 50, 100)}
	now := time.Now()
	m := newTestManager(state, &now)

	_, ok := m.LastDecision()
	assert.False(t, ok)

	expected := m.Evaluate()
	last, ok := m.LastDecision()
	assert.True(t, ok)
	assert.Equal(t, expected, last)
}
