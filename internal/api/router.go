package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/supercash/backoffice/docs"
	"github.com/supercash/backoffice/internal/api/handler"
	"github.com/supercash/backoffice/internal/api/middleware"
	"github.com/supercash/backoffice/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Store    ports.Store
	Issuer   ports.Issuer
	Renderer ports.GuideRenderer
	// Ready lists the dependencies pinged by /health/ready, by name.
	Ready map[string]handler.Pinger
	Log   zerolog.Logger
	// Registry defaults to the prometheus default registry.
	Registry *prometheus.Registry
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "supercash",
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	clientHandler := handler.NewClientHandler(deps.Store, deps.Issuer)
	guideHandler := handler.NewGuideHandler(deps.Store, deps.Issuer, deps.Renderer)
	contractHandler := handler.NewContractHandler(deps.Store, deps.Issuer, deps.Now)
	dashboardHandler := handler.NewDashboardHandler(deps.Store)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Ready)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: is the snapshot slot reachable?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API v1 ---
	v1 := e.Group("/v1")

	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)

	v1.POST("/guides/issue", guideHandler.Issue)
	v1.GET("/guides", guideHandler.List)
	v1.POST("/guides/:id/confirm", guideHandler.Confirm)
	v1.GET("/guides/:id/pdf", guideHandler.PDF)

	v1.GET("/contracts", contractHandler.List)
	v1.GET("/contracts/:id", contractHandler.Get)
	v1.PATCH("/contracts/:id/status", contractHandler.UpdateStatus)
	v1.POST("/contracts/:id/guides", contractHandler.IssueGuide)
	v1.GET("/contracts/:id/audit-events", contractHandler.AuditEvents)

	v1.GET("/dashboard", dashboardHandler.Get)

	return e
}
