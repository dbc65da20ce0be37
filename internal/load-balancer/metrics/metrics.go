package metrics

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"sync"
	"time"
)

// Aggregator keeps running counters and incremental means, so no request
// history is stored. Averages use newAvg = oldAvg + (x - oldAvg) / n, which
// stays numerically stable where a naive sum would overflow.
type Aggregator interface {
	RecordRequest(serverID string, responseTime time.Duration, success bool)
	RecordHealthCheck(serverID string, healthy bool, responseTime time.Duration)
	SetActiveConnections(n int)
	Snapshot() model.LoadBalancerMetrics
	Forget(serverID string)
}

type serverCounters struct {
	requests       int64
	errors         int64
	avgResponseMs  float64
	samples        int64
	healthChecks   int64
	healthySamples int64
}

type aggregator struct {
	mu                sync.Mutex
	totalRequests     int64
	successfulReqs    int64
	failedReqs        int64
	avgResponseMs     float64
	activeConnections int
	servers           map[string]*serverCounters
}

func NewAggregator() Aggregator {
	return &aggregator{
		servers: make(map[string]*serverCounters),
	}
}

func (a *aggregator) RecordRequest(serverID string, responseTime time.Duration, success bool) {
	ms := float64(responseTime.Microseconds()) / 1000
	a.mu.Lock()
	defer a.mu.Unlock()
	a.totalRequests++
	if success {
		a.successfulReqs++
	} else {
		a.failedReqs++
	}
	a.avgResponseMs += (ms - a.avgResponseMs) / float64(a.totalRequests)

	counters := a.counters(serverID)
	counters.requests++
	if !success {
		counters.errors++
	}
	counters.samples++
	counters.avgResponseMs += (ms - counters.avgResponseMs) / float64(counters.samples)
}

// RecordHealthCheck folds probe outcomes into the per-server uptime
// percentage and response time average.
func (a *aggregator) RecordHealthCheck(serverID string, healthy bool, responseTime time.Duration) {
	ms := float64(responseTime.Microseconds()) / 1000
	a.mu.Lock()
	defer a.mu.Unlock()
	counters := a.counters(serverID)
	counters.healthChecks++
	if healthy {
		counters.healthySamples++
	}
	counters.samples++
	counters.avgResponseMs += (ms - counters.avgResponseMs) / float64(counters.samples)
}

func (a *aggregator) SetActiveConnections(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activeConnections = n
}

func (a *aggregator) Forget(serverID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.servers, serverID)
}

func (a *aggregator) Snapshot() model.LoadBalancerMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshot := model.LoadBalancerMetrics{
		TotalRequests:      a.totalRequests,
		SuccessfulRequests: a.successfulReqs,
		FailedRequests:     a.failedReqs,
		AvgResponseTimeMs:  a.avgResponseMs,
		ActiveConnections:  a.activeConnections,
		Servers:            make(map[string]model.ServerMetrics, len(a.servers)),
	}
	for id, counters := range a.servers {
		uptime := 100.0
		if counters.healthChecks > 0 {
			uptime = float64(counters.healthySamples) / float64(counters.healthChecks) * 100
		}
		snapshot.Servers[id] = model.ServerMetrics{
			Requests:          counters.requests,
			Errors:            counters.errors,
			AvgResponseTimeMs: counters.avgResponseMs,
			HealthChecks:      counters.healthChecks,
			HealthySamples:    counters.healthySamples,
			UptimePercentage:  uptime,
		}
	}
	return snapshot
}

func (a *aggregator) counters(serverID string) *serverCounters {
	counters, ok := a.servers[serverID]
	if !ok {
		counters = &serverCounters{}
		a.servers[serverID] = counters
	}
	return counters
}
