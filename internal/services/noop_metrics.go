package services

import "time"

// NoopMetrics discards every recording. Used in tests and wherever a
// metrics backend is not wired.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) IncrementBackendCall(entity, operation, status string) {}

func (m *NoopMetrics) RecordLoadDuration(duration time.Duration) {}

func (m *NoopMetrics) SetEntityCounts(categories, subcategories, operations int) {}

func (m *NoopMetrics) AddDroppedOperations(count int) {}

func (m *NoopMetrics) RecordSummaryDuration(duration time.Duration) {}
