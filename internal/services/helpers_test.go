package services

import (
	"context"
	"sync"
	"time"

	"household-ledger/internal/calendar"

	"github.com/google/uuid"
)

var bangkok = time.FixedZone("ICT", 7*60*60)

// MockReportLogger records the events it receives
type MockReportLogger struct {
	mu     sync.Mutex
	Events []string
}

func (m *MockReportLogger) record(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

func (m *MockReportLogger) LogReportGenerated(ctx context.Context, report string, yearBE int, rows int, duration time.Duration) {
	m.record("report_generated:" + report)
}

func (m *MockReportLogger) LogPeriodNotFound(ctx context.Context, month calendar.Month, yearCE int) {
	m.record("period_not_found")
}

func (m *MockReportLogger) LogAnnualPeriodsUnavailable(ctx context.Context, yearCE int) {
	m.record("annual_periods_unavailable")
}

func (m *MockReportLogger) LogDuplicatePeriod(ctx context.Context, month calendar.Month, yearCE int, existing int64) {
	m.record("duplicate_period")
}

func (m *MockReportLogger) LogDataSourceFailure(ctx context.Context, operation string, err error) {
	m.record("data_source_failure:" + operation)
}

func (m *MockReportLogger) LogEntityChanged(ctx context.Context, action, entity string, id uuid.UUID) {
	m.record(action + ":" + entity)
}

func (m *MockReportLogger) LogHighReading(ctx context.Context, id uuid.UUID, date time.Time) {
	m.record("high_reading")
}

func (m *MockReportLogger) Has(event string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Events {
		if e == event {
			return true
		}
	}
	return false
}

// MockMetricsRecorder counts recorded metrics by name and tags
type MockMetricsRecorder struct {
	mu       sync.Mutex
	Counters map[string]int
	Gauges   map[string]float64
	Timings  map[string]int
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		Counters: map[string]int{},
		Gauges:   map[string]float64{},
		Timings:  map[string]int{},
	}
}

func (m *MockMetricsRecorder) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	for _, label := range []string{"report", "status", "scope", "kind"} {
		if v, ok := tags[label]; ok {
			key += "|" + v
		}
	}
	m.Counters[key]++
}

func (m *MockMetricsRecorder) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[name]++
}

func (m *MockMetricsRecorder) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	if kind, ok := tags["kind"]; ok {
		key += "|" + kind
	}
	m.Gauges[key] = value
}

func (m *MockMetricsRecorder) Counter(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Counters[key]
}

func ictDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, bangkok)
}
