package retryhandler

import (
	"time"
)

const NoRetry = time.Duration(0)

// RetryHandler decides whether a failed delivery is attempted again.
type RetryHandler[T any] interface {
	// CalculateSleep returns how long to wait before the next attempt of item, or NoRetry to give up.
	CalculateSleep(item T, attempts int, err error) time.Duration
}
