package model

import "time"

const (
	StrategyRoundRobin         = "round_robin"
	StrategyWeightedRoundRobin = "weighted_round_robin"
	StrategyLeastConnections   = "least_connections"
	StrategyIPHash             = "ip_hash"
	StrategyRandom             = "random"
)

// ServerSpec is the immutable part of a server registration, supplied by the
// administrative caller.
type ServerSpec struct {
	ID             string
	Host           string
	Port           int
	Protocol       string
	Weight         int
	MaxConnections int
	Metadata       map[string]string
}

// ServerInstance is a point-in-time copy of one backend's registry entry.
// The registry never hands out its live record.
type ServerInstance struct {
	ID                 string
	Host               string
	Port               int
	Protocol           string
	Weight             int
	MaxConnections     int
	CurrentConnections int
	Healthy            bool
	ErrorCount         int
	LastHealthCheck    time.Time
	ResponseTime       time.Duration
	Metadata           map[string]string
}

const (
	TransitionNone            = ""
	TransitionBecameHealthy   = "became_healthy"
	TransitionBecameUnhealthy = "became_unhealthy"
)

// HealthTransitionEvent is emitted when a probe flips a server's health state.
type HealthTransitionEvent struct {
	EventID      string        `json:"event_id"`
	ServerID     string        `json:"server_id"`
	Transition   string        `json:"transition"`
	ErrorCount   int           `json:"error_count"`
	ResponseTime time.Duration `json:"response_time_ns"`
	Timestamp    time.Time     `json:"timestamp"`
}
