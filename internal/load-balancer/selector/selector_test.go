package selector

import (
	apperrors "TMS_LoadBalancer_Service/internal/load-balancer/errors"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servers(ids ...string) []model.ServerInstance {
	result := make([]model.ServerInstance, len(ids))
	for i, id := range ids {
		result[i] = model.ServerInstance{ID: id, Weight: 1, Healthy: true}
	}
	return result
}

func TestNewSelector(t *testing.T) {
	for _, strategy := range []string{
		model.StrategyRoundRobin,
		model.StrategyWeightedRoundRobin,
		model.StrategyLeastConnections,
		model.StrategyIPHash,
		model.StrategyRandom,
	} {
		sel, err := NewSelector(strategy)
		assert.NoError(t, err, strategy)
		assert.NotNil(t, sel, strategy)
	}

	_, err := NewSelector("priority")
	assert.ErrorIs(t, err, apperrors.ErrUnknownStrategy)
}

func TestSelector_EmptyHealthySet(t *testing.T) {
	for _, strategy := range []string{
		model.StrategyRoundRobin,
		model.StrategyWeightedRoundRobin,
		model.StrategyLeastConnections,
		model.StrategyIPHash,
		model.StrategyRandom,
	} {
		sel, err := NewSelector(strategy)
		require.NoError(t, err)
		_, err = sel.Select(nil, model.RequestContext{ClientIP: "10.0.0.1"})
		assert.ErrorIs(t, err, apperrors.ErrNoHealthyServers, strategy)
	}
}

func TestRoundRobin_Fairness(t *testing.T) {
	sel, err := NewSelector(model.StrategyRoundRobin)
	require.NoError(t, err)
	pool := servers("a", "b", "c")

	counts := make(map[string]int)
	var sequence []string
	for i := 0; i < 9; i++ {
		server, e := sel.Select(pool, model.RequestContext{})
		require.NoError(t, e)
		counts[server.ID]++
		sequence = append(sequence, server.ID)
	}
	// exactly k selections each, in cyclic order
	assert.Equal(t, map[string]int{"a": 3, "b": 3, "c": 3}, counts)
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a", "b", "c"}, sequence)
}

func TestRoundRobin_AdaptsToShrinkingPool(t *testing.T) {
	sel, err := NewSelector(model.StrategyRoundRobin)
	require.NoError(t, err)

	pool := servers("a", "b", "c")
	for i := 0; i < 2; i++ {
		_, e := sel.Select(pool, model.RequestContext{})
		require.NoError(t, e)
	}
	// pool shrinks between calls, the index wraps on the current length
	shrunk := servers("a", "b")
	for i := 0; i < 4; i++ {
		server, e := sel.Select(shrunk, model.RequestContext{})
		require.NoError(t, e)
		assert.Contains(t, []string{"a", "b"}, server.ID)
	}
}

func TestWeightedRoundRobin_Distribution(t *testing.T) {
	sel, err := NewSelector(model.StrategyWeightedRoundRobin)
	require.NoError(t, err)
	pool := []model.ServerInstance{
		{ID: "light", Weight: 1, Healthy: true},
		{ID: "heavy", Weight: 3, Healthy: true},
	}

	const samples = 10000
	counts := make(map[string]int)
	for i := 0; i < samples; i++ {
		server, e := sel.Select(pool, model.RequestContext{})
		require.NoError(t, e)
		counts[server.ID]++
	}
	// expect roughly 1:3, allow a generous statistical tolerance
	heavyShare := float64(counts["heavy"]) / samples
	assert.InDelta(t, 0.75, heavyShare, 0.05)
	assert.Equal(t, samples, counts["light"]+counts["heavy"])
}

func TestLeastConnections(t *testing.T) {
	sel, err := NewSelector(model.StrategyLeastConnections)
	require.NoError(t, err)
	pool := []model.ServerInstance{
		{ID: "a", Weight: 1, Healthy: true, CurrentConnections: 5},
		{ID: "b", Weight: 1, Healthy: true, CurrentConnections: 2},
		{ID: "c", Weight: 1, Healthy: true, CurrentConnections: 8},
	}

	server, err := sel.Select(pool, model.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, "b", server.ID)
}

func TestLeastConnections_TieBrokenByListOrder(t *testing.T) {
	sel, err := NewSelector(model.StrategyLeastConnections)
	require.NoError(t, err)
	pool := []model.ServerInstance{
		{ID: "a", Weight: 1, Healthy: true, CurrentConnections: 2},
		{ID: "b", Weight: 1, Healthy: true, CurrentConnections: 2},
	}

	server, err := sel.Select(pool, model.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, "a", server.ID)
}

func TestIPHash_Deterministic(t *testing.T) {
	sel, err := NewSelector(model.StrategyIPHash)
	require.NoError(t, err)
	pool := servers("a", "b", "c")

	first, err := sel.Select(pool, model.RequestContext{ClientIP: "192.168.1.50"})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		server, e := sel.Select(pool, model.RequestContext{ClientIP: "192.168.1.50"})
		require.NoError(t, e)
		assert.Equal(t, first.ID, server.ID)
	}
}

func TestRandom_StaysInPool(t *testing.T) {
	sel, err := NewSelector(model.StrategyRandom)
	require.NoError(t, err)
	pool := servers("a", "b")

	for i := 0; i < 50; i++ {
		server, e := sel.Select(pool, model.RequestContext{})
		require.NoError(t, e)
		assert.Contains(t, []string{"a", "b"}, server.ID)
	}
}
