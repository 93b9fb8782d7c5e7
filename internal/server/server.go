package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"household-ledger/internal/config"
	"household-ledger/internal/handlers"
	"household-ledger/internal/middleware"
	"household-ledger/internal/repositories"
	"household-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const (
	bodyLimit       = "1M"
	shutdownTimeout = 30 * time.Second
)

// Services is the service graph behind the HTTP API
type Services struct {
	Transactions  services.TransactionServiceInterface
	Periods       services.PeriodServiceInterface
	Reports       services.ReportServiceInterface
	BloodPressure services.BloodPressureServiceInterface
	Calendar      services.CalendarServiceInterface
	DemoData      services.DemoDataServiceInterface
	Metrics       services.MetricsRecorderInterface
}

// NewServices builds repositories and services on db. Metrics are registered
// on reg.
func NewServices(db *gorm.DB, cfg *config.Config, reg prometheus.Registerer) *Services {
	loc := cfg.Report.Location
	logger := services.NewReportLogger(slog.Default())
	metrics := services.NewPrometheusMetricsWithRegistry(reg)

	transactionRepo := repositories.NewTransactionRepository(db)
	periodRepo := repositories.NewNamedPeriodRepository(db)
	recordRepo := repositories.NewBloodPressureRepository(db)

	transactions := services.NewTransactionService(transactionRepo, logger)
	periods := services.NewPeriodService(periodRepo, logger, metrics, loc)

	return &Services{
		Transactions:  transactions,
		Periods:       periods,
		Reports:       services.NewReportService(periods, transactions, logger, metrics, loc),
		BloodPressure: services.NewBloodPressureService(recordRepo, logger, metrics, loc),
		Calendar:      services.NewCalendarService(cfg.Report.YearRangeSize, loc),
		DemoData:      services.NewDemoDataService(transactionRepo, periodRepo, recordRepo, nil, metrics, loc),
		Metrics:       metrics,
	}
}

// Server is the ledger HTTP API
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// New creates the echo instance with middleware and routes. ctx bounds the
// background work of the middleware.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := NewServices(db, cfg, registry)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(svc.Metrics)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(svc.Metrics))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	RegisterRoutes(e, svc, db, cfg, middleware.RateLimiter(ctx, cfg.Security))

	return &Server{echo: e, cfg: cfg}
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the listener fails or Shutdown is called
func (s *Server) Start() error {
	addr := s.cfg.Server.Address()
	slog.Info("Starting server", "address", addr, "environment", s.cfg.Server.Environment)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	slog.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// RegisterRoutes mounts every API route on e. apiMiddleware wraps /api/v1 only.
func RegisterRoutes(e *echo.Echo, svc *Services, db *gorm.DB, cfg *config.Config, apiMiddleware ...echo.MiddlewareFunc) {
	health := handlers.NewHealthCheckHandler(db, cfg.Report.Location)
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1", apiMiddleware...)

	transactions := handlers.NewTransactionHandler(svc.Transactions, svc.Calendar)
	txGroup := api.Group("/transactions/:kind")
	txGroup.GET("", transactions.ListTransactions)
	txGroup.POST("", transactions.CreateTransaction)
	txGroup.GET("/range", transactions.FilterTransactions)
	txGroup.GET("/details", transactions.ListDetails)
	txGroup.GET("/:id", transactions.GetTransaction)
	txGroup.PUT("/:id", transactions.UpdateTransaction)
	txGroup.DELETE("/:id", transactions.DeleteTransaction)

	periods := handlers.NewPeriodHandler(svc.Periods)
	api.GET("/periods", periods.ListPeriods)
	api.POST("/periods", periods.CreatePeriod)
	api.GET("/periods/resolve", periods.ResolvePeriod)
	api.GET("/periods/:id", periods.GetPeriod)
	api.PUT("/periods/:id", periods.UpdatePeriod)
	api.DELETE("/periods/:id", periods.DeletePeriod)

	reports := handlers.NewReportHandler(svc.Reports, svc.Calendar)
	api.GET("/reports/cash/monthly", reports.CashMonthly)
	api.GET("/reports/cash/annual", reports.CashAnnual)
	api.GET("/reports/cash/annual/detail", reports.CashMonthDetail)
	api.GET("/reports/cash/range", reports.DateRange)
	api.GET("/reports/credit/monthly", reports.CreditMonthly)
	api.GET("/reports/credit/annual", reports.CreditAnnual)

	bp := handlers.NewBloodPressureHandler(svc.BloodPressure, svc.Calendar)
	api.GET("/blood-pressure", bp.ListRecords)
	api.POST("/blood-pressure", bp.CreateRecord)
	api.GET("/blood-pressure/report", bp.Report)
	api.GET("/blood-pressure/:id", bp.GetRecord)
	api.PUT("/blood-pressure/:id", bp.UpdateRecord)
	api.DELETE("/blood-pressure/:id", bp.DeleteRecord)

	cal := handlers.NewCalendarHandler(svc.Calendar)
	api.GET("/calendar/months", cal.Months)
	api.GET("/calendar/years", cal.Years)
	api.GET("/calendar/billing-cycle", cal.BillingCycle)

	if cfg.IsDevelopment() {
		dev := handlers.NewDevHandler(svc.DemoData)
		api.POST("/dev/seed", dev.Seed)
	}
}
