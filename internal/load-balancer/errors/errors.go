package apperrors

import "errors"

var (
	ErrNoHealthyServers  = errors.New("no healthy servers available")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrDuplicateServer   = errors.New("server id already exists")
	ErrInvalidWeight     = errors.New("server weight must be greater than zero")
	ErrServerNotFound    = errors.New("server not found")
	ErrUnknownStrategy   = errors.New("unknown load balancing strategy")
)
