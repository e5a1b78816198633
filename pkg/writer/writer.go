package writer

import "context"

// Writer ships a single item to an external entity (e.g.: an ingest endpoint, a file, a tcp socket) and returns its reply.
type Writer[T any, R any] interface {
	// Write is called by the forwarder for every delivery attempt of item.
	Write(ctx context.Context, item T) (R, error)
}
