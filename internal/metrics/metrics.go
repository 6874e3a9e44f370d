// Package metrics contains prometheus collectors of the service.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Transition results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Transitions holds collectors of transition activity.
type Transitions struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var (
	transitionsOnce sync.Once
	transitions     *Transitions
)

// NewTransitions creates unregistered collectors.
func NewTransitions() *Transitions {
	return &Transitions{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chumchon",
			Name:      "transitions_total",
			Help:      "Total transitions segmented by operation and result code.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chumchon",
			Name:      "transition_duration_seconds",
			Help:      "Latency distribution of transitions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// Default returns collectors registered in the default registry.
func Default() *Transitions {
	transitionsOnce.Do(func() {
		transitions = NewTransitions()
		prometheus.MustRegister(transitions)
	})
	return transitions
}

// Describe implements prometheus.Collector.
func (t *Transitions) Describe(ch chan<- *prometheus.Desc) {
	t.total.Describe(ch)
	t.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (t *Transitions) Collect(ch chan<- prometheus.Metric) {
	t.total.Collect(ch)
	t.duration.Collect(ch)
}

// Observe records one transition. result is ResultOK or a failure code.
func (t *Transitions) Observe(op, result string, d time.Duration) {
	if t == nil {
		return
	}

	t.total.WithLabelValues(op, result).Inc()
	t.duration.WithLabelValues(op).Observe(d.Seconds())
}
