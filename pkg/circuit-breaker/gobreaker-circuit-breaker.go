package circuitbreaker

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Gobreaker is an implementation of CircuitBreaker which uses gobreaker internally.
type Gobreaker[R any] struct {
	gobreaker *gobreaker.CircuitBreaker
}

// to make sure Gobreaker implements CircuitBreaker.
var _ CircuitBreaker[any] = (*Gobreaker[any])(nil)

func (g Gobreaker[R]) Execute(req func() (R, error)) (R, error) {
	result, err := g.gobreaker.Execute(func() (any, error) {
		return req()
	})
	if err != nil {
		var r R

		return r, err
	}

	assertedResult, ok := result.(R)
	if !ok {
		panic("invalid data type in breaker")
	}

	return assertedResult, nil
}

// State is the current breaker state (closed, half-open or open).
func (g Gobreaker[R]) State() gobreaker.State {
	return g.gobreaker.State()
}

// NewGobreaker is the constructor of Gobreaker.
func NewGobreaker[R any](settings gobreaker.Settings) Gobreaker[R] {
	return Gobreaker[R]{
		gobreaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// NewIngestBreaker opens after consecutiveFailures failed deliveries in a row and probes again after openTimeout.
// State changes are logged through logger.
func NewIngestBreaker[R any](name string, consecutiveFailures uint32, openTimeout time.Duration, logger logrus.FieldLogger) Gobreaker[R] {
	return NewGobreaker[R](gobreaker.Settings{
		Name:    name,
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
}
