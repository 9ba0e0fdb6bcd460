package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"invoiceflow/internal/application/service"
	"invoiceflow/internal/demomode"
	"invoiceflow/internal/mockdata"
	"invoiceflow/internal/report"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	data     *service.DataService
	demo     *demomode.Manager
	exporter *report.Exporter
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(data *service.DataService, demo *demomode.Manager, exporter *report.Exporter, logger *zap.Logger) *Handlers {
	return &Handlers{
		data:     data,
		demo:     demo,
		exporter: exporter,
		logger:   logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// DemoModeResponse reports the current flag value.
type DemoModeResponse struct {
	Enabled bool `json:"enabled"`
}

// ListInvoicesRequest represents query parameters for listing invoices
type ListInvoicesRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ExportReportRequest names the template to materialize.
type ExportReportRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// ExportReportResponse returns where the workbook was written.
type ExportReportResponse struct {
	TemplateID string `json:"template_id"`
	Path       string `json:"path"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// RequireDemoMode rejects data requests while demo mode is off, since
// the live data source is not implemented.
func (h *Handlers) RequireDemoMode(c *gin.Context) {
	if !h.demo.Enabled() {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "live data source not configured; enable demo mode",
		})
		return
	}
	c.Next()
}

// GetDemoMode handles GET /api/demo-mode
func (h *Handlers) GetDemoMode(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    DemoModeResponse{Enabled: h.demo.Enabled()},
	})
}

// ToggleDemoMode handles POST /api/demo-mode/toggle
func (h *Handlers) ToggleDemoMode(c *gin.Context) {
	enabled, err := h.demo.Toggle()
	if err != nil {
		// The in-memory flip stuck; report the value with the error.
		h.logger.Error("Demo-mode toggle persisted with error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Data:    DemoModeResponse{Enabled: enabled},
			Error:   "failed to persist demo-mode flag",
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    DemoModeResponse{Enabled: enabled},
	})
}

// ListInvoices handles GET /api/invoices
func (h *Handlers) ListInvoices(c *gin.Context) {
	var req ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid query parameters",
		})
		return
	}

	if req.Limit <= 0 || req.Limit > 500 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    h.data.Invoices(req.Limit, req.Offset),
	})
}

// ListVendors handles GET /api/vendors
func (h *Handlers) ListVendors(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.Vendors()})
}

// ListClients handles GET /api/clients
func (h *Handlers) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.Clients()})
}

// ListBudgets handles GET /api/budgets
func (h *Handlers) ListBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.Budgets()})
}

// ListAlerts handles GET /api/alerts
func (h *Handlers) ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.Alerts()})
}

// ListAuditEntries handles GET /api/audit-log
func (h *Handlers) ListAuditEntries(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.AuditEntries()})
}

// ListEmailImports handles GET /api/email-imports
func (h *Handlers) ListEmailImports(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.EmailImports()})
}

// ListVendorPerformance handles GET /api/vendor-performance
func (h *Handlers) ListVendorPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.VendorPerformance()})
}

// ListReportTemplates handles GET /api/report-templates
func (h *Handlers) ListReportTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.ReportTemplates()})
}

// DashboardStats handles GET /api/dashboard/stats
func (h *Handlers) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.DashboardStats()})
}

// RevenueSeries handles GET /api/dashboard/revenue-series
func (h *Handlers) RevenueSeries(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.RevenueSeries()})
}

// CategoryBreakdown handles GET /api/dashboard/categories
func (h *Handlers) CategoryBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.data.Categories()})
}

// ExportReport handles POST /api/reports/export
func (h *Handlers) ExportReport(c *gin.Context) {
	var req ExportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "template_id is required",
		})
		return
	}

	tpl, ok := mockdata.ReportTemplateByID(req.TemplateID)
	if !ok {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "unknown report template",
		})
		return
	}

	path, err := h.exporter.Export(tpl, h.data.Dataset(), time.Now())
	if err != nil {
		h.logger.Error("Report export failed", zap.String("template", tpl.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "report export failed",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    ExportReportResponse{TemplateID: tpl.ID, Path: path},
	})
}
