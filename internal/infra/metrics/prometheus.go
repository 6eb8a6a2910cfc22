// Package metrics exports pipeline outcomes as Prometheus series.
package metrics

import (
	"net/http"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "proximity"

// Prometheus implements service.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	webhooks         *prometheus.CounterVec
	decisions        *prometheus.CounterVec
	decisionDuration prometheus.Histogram
	dispatchTokens   *prometheus.CounterVec
	slowQueries      prometheus.Counter
	poolWaits        prometheus.Counter
	poolWaitSeconds  prometheus.Counter
}

// New registers every series on a fresh registry together with the Go and process collectors.
func New() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		webhooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Total number of geofence webhooks received, by outcome",
			},
			[]string{"outcome"},
		),
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Total number of notification decisions, by status and reason",
			},
			[]string{"status", "reason"},
		),
		decisionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "decision_duration_seconds",
				Help:      "Duration of one event's decision pipeline",
				Buckets:   prometheus.DefBuckets,
			},
		),
		dispatchTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_tokens_total",
				Help:      "Total number of device tokens handed to the push channel, by result",
			},
			[]string{"result"},
		),
		slowQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "slow_queries_total",
				Help:      "Total number of SQL statements slower than the configured threshold",
			},
		),
		poolWaits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "pool_waits_total",
				Help:      "Total number of connections waited for",
			},
		),
		poolWaitSeconds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "pool_wait_seconds_total",
				Help:      "Total time spent waiting for a pooled connection",
			},
		),
	}

	m.registry.MustRegister(
		m.webhooks,
		m.decisions,
		m.decisionDuration,
		m.dispatchTokens,
		m.slowQueries,
		m.poolWaits,
		m.poolWaitSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// NewMetrics exposes the collector as the domain interface for Fx.
func NewMetrics(m *Prometheus) service.Metrics {
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Prometheus) ObserveWebhook(outcome string) {
	m.webhooks.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObserveDecision(status entity.ThrottleStatus, reason entity.ThrottleReason, elapsed time.Duration) {
	label := reason.String()
	if label == "" {
		label = "none"
	}

	m.decisions.WithLabelValues(status.String(), label).Inc()
	m.decisionDuration.Observe(elapsed.Seconds())
}

func (m *Prometheus) ObserveDispatch(success, failure, invalid int) {
	m.dispatchTokens.WithLabelValues("success").Add(float64(success))
	m.dispatchTokens.WithLabelValues("failure").Add(float64(failure))
	m.dispatchTokens.WithLabelValues("invalid").Add(float64(invalid))
}

// ObserveSlowQuery counts one statement over the slow-query threshold.
func (m *Prometheus) ObserveSlowQuery() {
	m.slowQueries.Inc()
}

// ObservePoolWait records connection waits seen since the last pool sample.
func (m *Prometheus) ObservePoolWait(count int64, wait time.Duration) {
	m.poolWaits.Add(float64(count))
	m.poolWaitSeconds.Add(wait.Seconds())
}
