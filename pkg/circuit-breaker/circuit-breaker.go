package circuitbreaker

// CircuitBreaker stops calls to the ingest endpoint while it keeps failing, so queued clips fail fast instead of piling up.
type CircuitBreaker[R any] interface {
	Execute(req func() (R, error)) (R, error)
}
