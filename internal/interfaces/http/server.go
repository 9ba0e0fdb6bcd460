// Package http is the HTTP adapter: it translates API requests into
// service calls and gates data routes on the demo-mode flag.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"invoiceflow/internal/application/service"
	"invoiceflow/internal/demomode"
	"invoiceflow/internal/report"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server is the HTTP server adapter
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	logger     *zap.Logger
}

// NewServer wires the router with all middleware and routes.
func NewServer(
	config ServerConfig,
	data *service.DataService,
	demo *demomode.Manager,
	exporter *report.Exporter,
	logger *zap.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		config: config,
		router: router,
		logger: logger,
	}

	router.Use(gin.Recovery())
	router.Use(s.loggingMiddleware())

	handlers := NewHandlers(data, demo, exporter, logger)

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/demo-mode", handlers.GetDemoMode)
		api.POST("/demo-mode/toggle", handlers.ToggleDemoMode)

		// Data routes answer 503 while demo mode is off: the live data
		// source is an unimplemented collaborator.
		guarded := api.Group("", handlers.RequireDemoMode)
		{
			guarded.GET("/invoices", handlers.ListInvoices)
			guarded.GET("/vendors", handlers.ListVendors)
			guarded.GET("/clients", handlers.ListClients)
			guarded.GET("/budgets", handlers.ListBudgets)
			guarded.GET("/alerts", handlers.ListAlerts)
			guarded.GET("/audit-log", handlers.ListAuditEntries)
			guarded.GET("/email-imports", handlers.ListEmailImports)
			guarded.GET("/vendor-performance", handlers.ListVendorPerformance)
			guarded.GET("/report-templates", handlers.ListReportTemplates)

			guarded.GET("/dashboard/stats", handlers.DashboardStats)
			guarded.GET("/dashboard/revenue-series", handlers.RevenueSeries)
			guarded.GET("/dashboard/categories", handlers.CategoryBreakdown)

			guarded.POST("/reports/export", handlers.ExportReport)
		}
	}

	return s
}

// loggingMiddleware logs every request with latency and status.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// Start runs the server until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("HTTP server error", zap.Error(err))
		return err
	}
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router returns the underlying gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
