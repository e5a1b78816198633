package forwarder

import (
	"context"
	"sync"
	"time"

	circuitbreaker "github.com/mhabedinpour/pcm-audio-stub/pkg/circuit-breaker"
	retryhandler "github.com/mhabedinpour/pcm-audio-stub/pkg/retry-handler"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/writer"

	"github.com/eapache/channels"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	QueueNoLimit = -1
)

// Options controls the Queue behaviour.
type Options struct {
	// Workers is the number of concurrent Writer.Write calls. Should be higher than 0.
	Workers int
	// QueueSize is the number of items buffered in the internal ring buffer. When it is full the oldest item is dropped
	// and counted in the clips_dropped_total metric.
	// Use QueueNoLimit to have an infinite queue.
	QueueSize int
	// Registerer receives the queue metrics, nil disables them.
	Registerer prometheus.Registerer
}

// Validate makes sure queue options are valid and returns error for invalid options.
func (o Options) Validate() error {
	var result error

	if o.Workers <= 0 {
		result = multierror.Append(result, ConfigurationError("Workers should be higher than zero"))
	}

	if o.QueueSize <= 0 && o.QueueSize != QueueNoLimit {
		result = multierror.Append(result, ConfigurationError("QueueSize should be higher than zero or should be set to QueueNoLimit"))
	}

	return result
}

// Failure is published on the errors channel once an item is given up on.
type Failure[T any] struct {
	Item T
	// Err is the error of the last attempt.
	Err      error
	Attempts int
}

// Delivery is published on the successes channel once the writer accepted an item.
type Delivery[T any, R any] struct {
	Item T
	// Result is what the writer returned, e.g. the acknowledgment body.
	Result   R
	Attempts int
}

type ringItem[T any] struct {
	item     T
	attempts int
}

// Queue forwards enqueued items to a Writer using a fixed pool of workers, retrying failures through a RetryHandler
// and guarding the writer with a CircuitBreaker.
type Queue[T any, R any] struct {
	writer  writer.Writer[T, R]
	options Options
	// ring buffers pending items; once it holds options.QueueSize items the oldest one is dropped.
	ring *channels.RingChannel
	// errors and successes must be drained by the client, otherwise workers block.
	errors    chan Failure[T]
	successes chan Delivery[T, R]
	// ctx is passed to every write and cancelled once all workers are done.
	ctx       context.Context
	ctxCancel context.CancelFunc
	workers   sync.WaitGroup
	retries   sync.WaitGroup
	// retryHandler may be nil to disable retrying.
	retryHandler   retryhandler.RetryHandler[T]
	circuitBreaker circuitbreaker.CircuitBreaker[R]
	metrics        *Metrics
}

// Errors returns the channel of items that could not be delivered.
func (q *Queue[T, R]) Errors() <-chan Failure[T] {
	return q.errors
}

// Successes returns the channel of delivered items.
func (q *Queue[T, R]) Successes() <-chan Delivery[T, R] {
	return q.successes
}

// Len is the number of items waiting for a worker.
func (q *Queue[T, R]) Len() int {
	return q.ring.Len()
}

// Enqueue schedules item for delivery. It returns ErrQueueStopped once Stop has been called.
func (q *Queue[T, R]) Enqueue(item T) error {
	return q.push(ringItem[T]{item: item})
}

// push writes to the ring channel, which panics when it is already closed.
// A full ring evicts its oldest item; the eviction is counted but the evicted item is not reported.
func (q *Queue[T, R]) push(item ringItem[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrQueueStopped
		}
	}()

	full := q.options.QueueSize != QueueNoLimit && q.ring.Len() >= q.options.QueueSize

	q.ring.In() <- item

	if full {
		q.metrics.dropped()
	}

	return err
}

func (q *Queue[T, R]) fail(item ringItem[T], err error) {
	q.metrics.failed()
	q.errors <- Failure[T]{
		Item:     item.item,
		Err:      err,
		Attempts: item.attempts,
	}
}

// send writes item through the circuit breaker and schedules a retry on failure.
func (q *Queue[T, R]) send(anyItem any) {
	item, ok := anyItem.(ringItem[T])
	if !ok {
		panic("invalid data type in ring channel")
	}

	item.attempts++
	q.metrics.attempt()

	result, err := q.circuitBreaker.Execute(func() (R, error) {
		return q.writer.Write(q.ctx, item.item)
	})

	if err == nil {
		q.metrics.forwarded()
		q.successes <- Delivery[T, R]{
			Item:     item.item,
			Result:   result,
			Attempts: item.attempts,
		}

		return
	}

	waitTime := retryhandler.NoRetry
	if q.retryHandler != nil {
		waitTime = q.retryHandler.CalculateSleep(item.item, item.attempts, err)
	}

	if waitTime == retryhandler.NoRetry {
		q.fail(item, err)

		return
	}

	// Add runs on a worker, and Stop only waits on retries after every worker has returned.
	q.retries.Add(1)

	// wait outside the worker so it can pick up other items in the meantime.
	go func() {
		defer q.retries.Done()

		timer := time.NewTimer(waitTime)
		defer timer.Stop()

		select {
		case <-timer.C:
			if pushErr := q.push(item); pushErr != nil {
				q.fail(item, err)
			}
		case <-q.ctx.Done():
			q.fail(item, err)
		}
	}()
}

func (q *Queue[T, R]) start() {
	for i := 0; i < q.options.Workers; i++ {
		q.workers.Add(1)

		go func() {
			defer q.workers.Done()

			// Out is closed by the ring channel once it has been closed and drained.
			for item := range q.ring.Out() {
				q.send(item)
			}
		}()
	}
}

// Stop rejects new items, delivers what is already queued, then stops the workers.
// Items still waiting for a retry are reported on the errors channel. Both result channels are closed on return.
func (q *Queue[T, R]) Stop() {
	q.ring.Close()
	q.workers.Wait()

	q.ctxCancel()
	q.retries.Wait()

	close(q.errors)
	close(q.successes)
}

// NewQueue is the constructor of the Queue.
func NewQueue[T any, R any](w writer.Writer[T, R], retryHandler retryhandler.RetryHandler[T], circuitBreaker circuitbreaker.CircuitBreaker[R], options Options) (*Queue[T, R], error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if w == nil {
		return nil, ErrWriterIsNil
	}

	if circuitBreaker == nil {
		return nil, ErrCircuitBreakerIsNil
	}

	var metrics *Metrics
	if options.Registerer != nil {
		var err error
		if metrics, err = NewMetrics(options.Registerer); err != nil {
			return nil, err
		}
	}

	ctx, ctxCancel := context.WithCancel(context.Background())
	q := &Queue[T, R]{
		writer:         w,
		options:        options,
		ring:           channels.NewRingChannel(channels.BufferCap(options.QueueSize)),
		errors:         make(chan Failure[T], options.Workers),
		successes:      make(chan Delivery[T, R], options.Workers),
		ctx:            ctx,
		ctxCancel:      ctxCancel,
		retryHandler:   retryHandler,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
	}

	if options.Registerer != nil {
		if err := registerQueueLength(options.Registerer, q); err != nil {
			ctxCancel()

			return nil, err
		}
	}

	q.start()

	return q, nil
}
