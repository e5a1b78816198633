package retryhandler

import (
	"time"
)

// ConstRetryHandler retries an item until MaxAttempts is reached, waiting WaitTime between attempts.
type ConstRetryHandler[T any] struct {
	WaitTime    time.Duration
	MaxAttempts int
}

// to make sure ConstRetryHandler implements RetryHandler.
var _ RetryHandler[any] = (*ConstRetryHandler[any])(nil)

func (c ConstRetryHandler[T]) CalculateSleep(_ T, attempts int, _ error) time.Duration {
	if attempts >= c.MaxAttempts {
		return NoRetry
	}

	return c.WaitTime
}

// NewConstRetryHandler creates a new ConstRetryHandler.
func NewConstRetryHandler[T any](waitTime time.Duration, maxAttempts int) ConstRetryHandler[T] {
	return ConstRetryHandler[T]{
		WaitTime:    waitTime,
		MaxAttempts: maxAttempts,
	}
}
