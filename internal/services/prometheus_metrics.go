package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	backendCalls      *prometheus.CounterVec
	loadDuration      prometheus.Histogram
	entityCounts      *prometheus.GaugeVec
	droppedOperations prometheus.Counter
	summaryDuration   prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		backendCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_backend_calls_total",
				Help: "Total number of backend calls by entity, operation and status",
			},
			[]string{"entity", "operation", "status"},
		),
		loadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_load_duration_milliseconds",
				Help:    "Full ledger reload duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		entityCounts: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_entities",
				Help: "Current number of entities in the installed snapshot",
			},
			[]string{"entity"},
		),
		droppedOperations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_dropped_operations_total",
				Help: "Total number of operations dropped from summaries due to unresolvable references",
			},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_duration_seconds",
				Help:    "Summary computation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementBackendCall(entity, operation, status string) {
	m.backendCalls.WithLabelValues(entity, operation, status).Inc()
}

func (m *PrometheusMetrics) RecordLoadDuration(duration time.Duration) {
	m.loadDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) SetEntityCounts(categories, subcategories, operations int) {
	m.entityCounts.WithLabelValues("category").Set(float64(categories))
	m.entityCounts.WithLabelValues("subcategory").Set(float64(subcategories))
	m.entityCounts.WithLabelValues("operation").Set(float64(operations))
}

func (m *PrometheusMetrics) AddDroppedOperations(count int) {
	m.droppedOperations.Add(float64(count))
}

func (m *PrometheusMetrics) RecordSummaryDuration(duration time.Duration) {
	m.summaryDuration.Observe(duration.Seconds())
}
