package model

import "time"

const (
	ScalingActionUp   = "scale_up"
	ScalingActionDown = "scale_down"
	ScalingActionNone = "none"
)

// ScalingDecision is produced fresh on every evaluation and never persisted.
type ScalingDecision struct {
	Action           string    `json:"action"`
	Reason           string    `json:"reason"`
	CurrentInstances int       `json:"current_instances"`
	TargetInstances  int       `json:"target_instances"`
	Timestamp        time.Time `json:"timestamp"`
}
