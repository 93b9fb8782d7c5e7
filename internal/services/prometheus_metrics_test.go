package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Reports(t *testing.T) {
	metrics := NewPrometheusMetricsWithRegistry(prometheus.NewRegistry()).(*PrometheusMetrics)

	metrics.IncrementCounter("report.generated", map[string]string{"report": ReportCashAnnual, "status": "success"})
	metrics.IncrementCounter("report.generated", map[string]string{"report": ReportCashAnnual, "status": "failed"})
	metrics.RecordProcessingTime("report.duration", 15*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportsGenerated.WithLabelValues(ReportCashAnnual, "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.storeQueryErrors.WithLabelValues(ReportCashAnnual)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.reportDuration))
}

func TestPrometheusMetrics_PeriodsAndGauges(t *testing.T) {
	metrics := NewPrometheusMetricsWithRegistry(prometheus.NewRegistry()).(*PrometheusMetrics)

	metrics.IncrementCounter("period.not_found", map[string]string{"scope": "month"})
	metrics.IncrementCounter("period.not_found", nil)
	metrics.IncrementCounter("period.duplicate", nil)
	metrics.IncrementCounter("api.error", map[string]string{"code": "REPORT_001"})
	metrics.RecordGauge("seed.records", 12, map[string]string{"kind": "cash"})
	metrics.RecordGauge("blood_pressure.high_days", 3, nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.periodNotFound.WithLabelValues("month")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.duplicatePeriods))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.apiErrors.WithLabelValues("REPORT_001")))
	assert.Equal(t, float64(12), testutil.ToFloat64(metrics.seededRecords.WithLabelValues("cash")))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.highReadingsLatest))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())
		NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())
	})
}
