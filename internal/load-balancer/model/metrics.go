package model

// ServerMetrics is a point-in-time copy of one server's counters.
type ServerMetrics struct {
	Requests            int64   `json:"requests"`
	Errors              int64   `json:"errors"`
	AvgResponseTimeMs   float64 `json:"avg_response_time_ms"`
	HealthChecks        int64   `json:"health_checks"`
	HealthySamples      int64   `json:"healthy_samples"`
	UptimePercentage    float64 `json:"uptime_percentage"`
}

// LoadBalancerMetrics is a point-in-time copy of the aggregate counters.
type LoadBalancerMetrics struct {
	TotalRequests      int64                    `json:"total_requests"`
	SuccessfulRequests int64                    `json:"successful_requests"`
	FailedRequests     int64                    `json:"failed_requests"`
	AvgResponseTimeMs  float64                  `json:"avg_response_time_ms"`
	ActiveConnections  int                      `json:"active_connections"`
	Servers            map[string]ServerMetrics `json:"servers"`
}

// ErrorRate returns failed/total, 0 when no requests were recorded yet.
func (m LoadBalancerMetrics) ErrorRate() float64 {
	if m.TotalRequests == 0 {
		return 0
	}
	return float64(m.FailedRequests) / float64(m.TotalRequests)
}
