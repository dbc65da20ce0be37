package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestContext carries the per-request attributes the admission pipeline
// needs. Produced by the caller, consumed read-only.
type RequestContext struct {
	RequestID string
	ClientIP  string
	UserAgent string
	SessionID string
	Timestamp time.Time
	Headers   map[string]string
}

func NewRequestContext(clientIP string, sessionID string) RequestContext {
	return RequestContext{
		RequestID: uuid.NewString(),
		ClientIP:  clientIP,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}
