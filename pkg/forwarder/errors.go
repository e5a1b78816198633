package forwarder

import "errors"

type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "invalid configuration (" + string(err) + ")"
}

var (
	ErrQueueStopped        = errors.New("queue is stopped")
	ErrCircuitBreakerIsNil = errors.New("circuit breaker cannot be nil")
	ErrWriterIsNil         = errors.New("writer cannot be nil")
)
