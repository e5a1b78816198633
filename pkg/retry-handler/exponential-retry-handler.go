package retryhandler

import (
	"math"
	"time"
)

const maxDuration = time.Duration(math.MaxInt64)

// ExponentialRetryHandler doubles the wait after every failed attempt, starting at BaseWait and capped at MaxWait.
// Without a MaxWait the wait saturates at the largest time.Duration.
type ExponentialRetryHandler[T any] struct {
	BaseWait    time.Duration
	MaxWait     time.Duration
	MaxAttempts int
}

// to make sure ExponentialRetryHandler implements RetryHandler.
var _ RetryHandler[any] = (*ExponentialRetryHandler[any])(nil)

func (e ExponentialRetryHandler[T]) CalculateSleep(_ T, attempts int, _ error) time.Duration {
	if attempts >= e.MaxAttempts || attempts <= 0 {
		return NoRetry
	}

	wait := e.BaseWait
	for i := 1; i < attempts; i++ {
		if wait > maxDuration/2 {
			wait = maxDuration

			break
		}

		wait *= 2
		if e.MaxWait > 0 && wait >= e.MaxWait {
			return e.MaxWait
		}
	}

	return wait
}

// NewExponentialRetryHandler creates a new ExponentialRetryHandler.
func NewExponentialRetryHandler[T any](baseWait, maxWait time.Duration, maxAttempts int) ExponentialRetryHandler[T] {
	return ExponentialRetryHandler[T]{
		BaseWait:    baseWait,
		MaxWait:     maxWait,
		MaxAttempts: maxAttempts,
	}
}
