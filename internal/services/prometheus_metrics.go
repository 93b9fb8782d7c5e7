package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated   *prometheus.CounterVec
	reportDuration     prometheus.Histogram
	storeQueryErrors   *prometheus.CounterVec
	periodNotFound     *prometheus.CounterVec
	duplicatePeriods   prometheus.Counter
	apiErrors          *prometheus.CounterVec
	seededRecords      *prometheus.GaugeVec
	highReadingsLatest prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the ledger metrics with reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_reports_total",
				Help: "Total number of reports generated",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_report_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		storeQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_store_query_errors_total",
				Help: "Total number of failed store queries",
			},
			[]string{"report"},
		),
		periodNotFound: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_period_not_found_total",
				Help: "Total number of lookups for months without a named period",
			},
			[]string{"scope"},
		),
		duplicatePeriods: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_duplicate_periods_total",
				Help: "Total number of writes that duplicate an existing named period",
			},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_api_errors_total",
				Help: "Total number of API error responses by code",
			},
			[]string{"code"},
		),
		seededRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_seeded_records",
				Help: "Number of records written by the last demo seed",
			},
			[]string{"kind"},
		),
		highReadingsLatest: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_high_reading_days",
				Help: "High blood pressure days in the last printed range",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "report.generated":
		status := tags["status"]
		m.reportsGenerated.WithLabelValues(tags["report"], status).Inc()
		if status == "failed" {
			m.storeQueryErrors.WithLabelValues(tags["report"]).Inc()
		}
	case "period.not_found":
		if scope := tags["scope"]; scope != "" {
			m.periodNotFound.WithLabelValues(scope).Inc()
		}
	case "period.duplicate":
		m.duplicatePeriods.Inc()
	case "api.error":
		if code := tags["code"]; code != "" {
			m.apiErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.duration":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "seed.records":
		if kind := tags["kind"]; kind != "" {
			m.seededRecords.WithLabelValues(kind).Set(value)
		}
	case "blood_pressure.high_days":
		m.highReadingsLatest.Set(value)
	}
}
