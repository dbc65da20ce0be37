package metrics

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_RecordRequest(t *testing.T) {
	agg := NewAggregator()

	agg.RecordRequest("server-1", 100*time.Millisecond, true)
	agg.RecordRequest("server-1", 200*time.Millisecond, true)
	agg.RecordRequest("server-2", 300*time.Millisecond, false)

	snapshot := agg.Snapshot()
	assert.Equal(t, int64(3), snapshot.TotalRequests)
	assert.Equal(t, int64(2), snapshot.SuccessfulRequests)
	assert.Equal(t, int64(1), snapshot.FailedRequests)
	assert.InDelta(t, 200, snapshot.AvgResponseTimeMs, 0.01)

	server1 := snapshot.Servers["server-1"]
	assert.Equal(t, int64(2), server1.Requests)
	assert.Equal(t, int64(0), server1.Errors)
	assert.InDelta(t, 150, server1.AvgResponseTimeMs, 0.01)

	server2 := snapshot.Servers["server-2"]
	assert.Equal(t, int64(1), server2.Requests)
	assert.Equal(t, int64(1), server2.Errors)
}

func TestAggregator_IncrementalMeanMatchesArithmeticMean(t *testing.T) {
	agg := NewAggregator()
	durations := []time.Duration{
		13 * time.Millisecond,
		250 * time.Millisecond,
		7 * time.Millisecond,
		1100 * time.Millisecond,
		90 * time.Millisecond,
	}
	var sum float64
	for _, d := range durations {
		agg.RecordRequest("server-1", d, true)
		sum += float64(d.Microseconds()) / 1000
	}
	snapshot := agg.Snapshot()
	assert.InDelta(t, sum/float64(len(durations)), snapshot.AvgResponseTimeMs, 0.001)
}

func TestAggregator_ErrorRate(t *testing.T) {
	agg := NewAggregator()
	assert.Zero(t, agg.Snapshot().ErrorRate())

	for i := 0; i < 19; i++ {
		agg.RecordRequest("server-1", time.Millisecond, true)
	}
	agg.RecordRequest("server-1", time.Millisecond, false)
	assert.InDelta(t, 0.05, agg.Snapshot().ErrorRate(), 0.001)
}

func TestAggregator_UptimePercentage(t *testing.T) {
	agg := NewAggregator()

	for i := 0; i < 9; i++ {
		agg.RecordHealthCheck("server-1", true, time.Millisecond)
	}
	agg.RecordHealthCheck("server-1", false, time.Millisecond)

	snapshot := agg.Snapshot()
	server1 := snapshot.Servers["server-1"]
	assert.Equal(t, int64(10), server1.HealthChecks)
	assert.Equal(t, int64(9), server1.HealthySamples)
	assert.InDelta(t, 90, server1.UptimePercentage, 0.001)

	// a server with no checks yet reports full uptime
	agg.RecordRequest("server-2", time.Millisecond, true)
	snapshot = agg.Snapshot()
	assert.InDelta(t, 100, snapshot.Servers["server-2"].UptimePercentage, 0.001)
}

func TestAggregator_SnapshotIsACopy(t *testing.T) {
	agg := NewAggregator()
	agg.RecordRequest("server-1", time.Millisecond, true)

	snapshot := agg.Snapshot()
	snapshot.Servers["server-1"] = model.ServerMetrics{Requests: 999}
	snapshot.TotalRequests = 999

	fresh := agg.Snapshot()
	require.Contains(t, fresh.Servers, "server-1")
	assert.Equal(t, int64(1), fresh.TotalRequests)
	assert.Equal(t, int64(1), fresh.Servers["server-1"].Requests)
}

func TestAggregator_Forget(t *testing.T) {
	agg := NewAggregator()
	agg.RecordRequest("server-1", time.Millisecond, true)
	agg.Forget("server-1")

	snapshot := agg.Snapshot()
	assert.NotContains(t, snapshot.Servers, "server-1")
	// global counters are retained
	assert.Equal(t, int64(1), snapshot.TotalRequests)
}
