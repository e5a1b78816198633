package forwarder

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "pcm_streamer"

// Metrics counts forwarding outcomes. A nil *Metrics records nothing.
type Metrics struct {
	Attempts  prometheus.Counter
	Forwarded prometheus.Counter
	Failed    prometheus.Counter
	Dropped   prometheus.Counter
}

// NewMetrics creates the forwarder counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "forward_attempts_total",
			Help:      "Number of POST attempts made to the ingest endpoint.",
		}),
		Forwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "clips_forwarded_total",
			Help:      "Number of clips acknowledged by the ingest endpoint.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "clips_failed_total",
			Help:      "Number of clips given up on after all retries.",
		}),
		Dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "clips_dropped_total",
			Help:      "Number of queued clips evicted because the queue was full.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Attempts, m.Forwarded, m.Failed, m.Dropped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) attempt() {
	if m != nil {
		m.Attempts.Inc()
	}
}

func (m *Metrics) forwarded() {
	if m != nil {
		m.Forwarded.Inc()
	}
}

func (m *Metrics) dropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

func (m *Metrics) failed() {
	if m != nil {
		m.Failed.Inc()
	}
}

// registerQueueLength exposes the number of clips waiting in q.
func registerQueueLength[T any, R any](reg prometheus.Registerer, q *Queue[T, R]) error {
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "clips_queued",
		Help:      "Number of clips waiting to be forwarded.",
	}, func() float64 {
		return float64(q.Len())
	}))
}
