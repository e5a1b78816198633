package retryhandler

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstRetryHandler_CalculateSleep(t *testing.T) {
	handler := NewConstRetryHandler[any](100*time.Millisecond, 5)

	assert.Equal(t, handler.CalculateSleep(nil, 1, nil), 100*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 2, nil), 100*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 5, nil), NoRetry)
	assert.Equal(t, handler.CalculateSleep(nil, 6, nil), NoRetry)
}

func TestExponentialRetryHandler_CalculateSleep(t *testing.T) {
	handler := NewExponentialRetryHandler[any](100*time.Millisecond, 500*time.Millisecond, 6)

	assert.Equal(t, handler.CalculateSleep(nil, 1, nil), 100*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 2, nil), 200*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 3, nil), 400*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 4, nil), 500*time.Millisecond)
	assert.Equal(t, handler.CalculateSleep(nil, 6, nil), NoRetry)

	uncapped := NewExponentialRetryHandler[any](time.Second, 0, 100)
	assert.Equal(t, uncapped.CalculateSleep(nil, 4, nil), 8*time.Second)
	for attempts := 1; attempts < 100; attempts++ {
		assert.Greater(t, uncapped.CalculateSleep(nil, attempts, nil), NoRetry, attempts)
	}
	assert.Equal(t, uncapped.CalculateSleep(nil, 99, nil), time.Duration(math.MaxInt64))
}
