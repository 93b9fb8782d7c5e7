package services

import (
	"context"
	"log/slog"
	"time"

	"household-ledger/internal/calendar"

	"github.com/google/uuid"
)

// ReportLogger provides structured logging for report and registry operations
type ReportLogger struct {
	logger *slog.Logger
}

// NewReportLogger creates a new report logger
func NewReportLogger(logger *slog.Logger) ReportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportLogger{
		logger: logger,
	}
}

// LogReportGenerated logs a finished report
func (rl *ReportLogger) LogReportGenerated(ctx context.Context, report string, yearBE int, rows int, duration time.Duration) {
	rl.logger.InfoContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("report", report),
		slog.Int("year_be", yearBE),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPeriodNotFound logs a lookup of a month that has no named period
func (rl *ReportLogger) LogPeriodNotFound(ctx context.Context, month calendar.Month, yearCE int) {
	rl.logger.WarnContext(ctx, "named period not found",
		slog.String("event_type", "period_not_found"),
		slog.String("month", month.String()),
		slog.Int("year_ce", yearCE),
		slog.Int("year_be", calendar.ToBE(yearCE)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAnnualPeriodsUnavailable logs an annual report requested for a year with no periods
func (rl *ReportLogger) LogAnnualPeriodsUnavailable(ctx context.Context, yearCE int) {
	rl.logger.WarnContext(ctx, "no named periods for year",
		slog.String("event_type", "annual_periods_unavailable"),
		slog.Int("year_ce", yearCE),
		slog.Int("year_be", calendar.ToBE(yearCE)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogDuplicatePeriod logs a write that leaves more than one period for a month
func (rl *ReportLogger) LogDuplicatePeriod(ctx context.Context, month calendar.Month, yearCE int, existing int64) {
	rl.logger.WarnContext(ctx, "duplicate named period",
		slog.String("event_type", "duplicate_period"),
		slog.String("month", month.String()),
		slog.Int("year_ce", yearCE),
		slog.Int64("existing", existing),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogDataSourceFailure logs a failed store query
func (rl *ReportLogger) LogDataSourceFailure(ctx context.Context, operation string, err error) {
	rl.logger.ErrorContext(ctx, "data source failure",
		slog.String("event_type", "data_source_failure"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogEntityChanged logs a create or delete of a stored entity
func (rl *ReportLogger) LogEntityChanged(ctx context.Context, action, entity string, id uuid.UUID) {
	rl.logger.InfoContext(ctx, entity+" "+action,
		slog.String("event_type", "entity_changed"),
		slog.String("action", action),
		slog.String("entity", entity),
		slog.String("entity_id", id.String()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogHighReading logs a blood pressure reading above the alert threshold
func (rl *ReportLogger) LogHighReading(ctx context.Context, id uuid.UUID, date time.Time) {
	rl.logger.WarnContext(ctx, "high blood pressure reading recorded",
		slog.String("event_type", "high_reading"),
		slog.String("record_id", id.String()),
		slog.String("date", date.Format(time.DateOnly)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
