package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "gitbeam"
	subsystem = "commit_badge"
)

// Fetch outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeUpstream  = "upstream_error"
	OutcomeTransport = "transport_error"
)

type Metrics struct {
	requests           *prometheus.CounterVec
	upstreamFetches    *prometheus.CounterVec
	upstreamLatency    prometheus.Histogram
	rateLimitRemaining prometheus.Gauge
}

// New builds the collector set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "inbound http requests by route and status",
		}, []string{"route", "code"}),
		upstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "upstream_fetches_total",
			Help:      "github event fetches by outcome",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "upstream_fetch_seconds",
			Help:      "github event fetch latency",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		rateLimitRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "github_rate_limit_remaining",
			Help:      "remaining github core rate limit as of the last fetch",
		}),
	}

	reg.MustRegister(m.requests, m.upstreamFetches, m.upstreamLatency, m.rateLimitRemaining)
	return m
}

func (m *Metrics) ObserveRequest(route string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) ObserveFetch(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.upstreamFetches.WithLabelValues(outcome).Inc()
	m.upstreamLatency.Observe(took.Seconds())
}

func (m *Metrics) SetRateLimitRemaining(remaining int) {
	if m == nil {
		return
	}
	m.rateLimitRemaining.Set(float64(remaining))
}
