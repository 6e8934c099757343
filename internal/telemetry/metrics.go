package telemetry

import (
	"net/http"
	"strconv"

	"foodorders/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodorders"

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests   *prometheus.CounterVec
	LatencyMS  *prometheus.HistogramVec
	Verdicts   *prometheus.CounterVec
	Violations *prometheus.CounterVec
	Published  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "verdicts_total",
			Help:      "Validation verdicts by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "violations_total",
			Help:      "Rule violations by operation and kind.",
		}, []string{"operation", "kind"}),
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Outbox messages relayed to the event stream.",
		}, []string{"type", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.Verdicts,
		m.Violations,
		m.Published,
	)
	return m
}

// ObserveVerdict counts one validation outcome and its violations.
func (m *Metrics) ObserveVerdict(op services.Operation, verdict services.Verdict) {
	outcome := "ok"
	if !verdict.OK() {
		outcome = "rejected"
	}
	m.Verdicts.WithLabelValues(op.String(), outcome).Inc()

	for _, v := range verdict.Violations() {
		m.Violations.WithLabelValues(op.String(), v.Kind().String()).Inc()
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, latencyMS float64) {
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(route).Observe(latencyMS)
}

// ObservePublish counts one relay attempt.
func (m *Metrics) ObservePublish(eventType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Published.WithLabelValues(eventType, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
