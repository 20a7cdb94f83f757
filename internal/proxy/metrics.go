package proxy

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation invocation counts and latency. A nil
// *Metrics records nothing.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "proxy",
			Name:      "invocations_total",
			Help:      "Dispatched operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "proxy",
			Name:      "invocation_duration_seconds",
			Help:      "Time from dispatch to resolution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catalog",
			Subsystem: "proxy",
			Name:      "invocations_in_flight",
			Help:      "Operations dispatched and not yet resolved.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.invocations, m.duration, m.inFlight)
	}
	return m
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Metrics) finished(op Operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.invocations.WithLabelValues(string(op), outcome).Inc()
	m.duration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
}
