package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wgomg/digest/internal/comparison"
)

type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	summaries *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics registers the service collectors on a private registry, so
// several servers (and tests) can coexist in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digest_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digest_summaries_total",
				Help: "Candidate summaries produced, by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digest_summary_duration_seconds",
				Help:    "Time spent producing one candidate summary",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"method"},
		),
	}

	m.registry.MustRegister(m.requests, m.summaries, m.duration)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) observeSummary(method string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.summaries.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeReport(report *comparison.Report) {
	for _, c := range report.Candidates {
		outcome := "success"
		if c.Failed() {
			outcome = "error"
		}
		m.summaries.WithLabelValues(c.Key, outcome).Inc()
		m.duration.WithLabelValues(c.Key).Observe(c.Duration.Seconds())
	}
}
