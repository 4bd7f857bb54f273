package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "daily_secrets"

// Metrics exposes Prometheus collectors for the HTTP surface and readings.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	readings        *prometheus.CounterVec
	compatibility   *prometheus.CounterVec
}

// MustNewMetrics registers collectors on reg and panics on conflicts, like promauto.
// A nil registerer falls back to the default one.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		readings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "readings_total",
				Help:      "Readings produced by kind.",
			},
			[]string{"kind"},
		),
		compatibility: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "compatibility",
				Name:      "scores_total",
				Help:      "Compatibility scores by source (table or fallback).",
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.readings, m.compatibility)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncReading counts a produced reading of the given kind.
func (m *Metrics) IncReading(kind string) {
	if m == nil {
		return
	}
	m.readings.WithLabelValues(kind).Inc()
}

// ObserveCompatibility counts a score, split by whether it came from the fallback.
func (m *Metrics) ObserveCompatibility(generated bool) {
	if m == nil {
		return
	}
	source := "table"
	if generated {
		source = "fallback"
	}
	m.compatibility.WithLabelValues(source).Inc()
}
