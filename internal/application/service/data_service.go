// Package service exposes the generated dataset and its derived views to
// the transport layer.
package service

import (
	"time"

	"go.uber.org/zap"

	"invoiceflow/internal/domain/entity"
	"invoiceflow/internal/mockdata"
	"invoiceflow/internal/stats"
)

// DataService owns one generated dataset and answers read queries over
// it. The dataset is generated once at construction and never mutated, so
// concurrent reads need no locking.
type DataService struct {
	dataset *mockdata.Dataset
	now     time.Time
	logger  *zap.Logger
}

// NewDataService generates the dataset from the given seed and counts.
func NewDataService(seed uint64, counts mockdata.Counts, logger *zap.Logger) *DataService {
	now := time.Now()
	gen := mockdata.New(seed, now)
	ds := gen.GenerateDataset(counts)

	logger.Info("Demo dataset generated",
		zap.Uint64("seed", seed),
		zap.Int("vendors", len(ds.Vendors)),
		zap.Int("clients", len(ds.Clients)),
		zap.Int("invoices", len(ds.Invoices)),
		zap.Int("budgets", len(ds.Budgets)),
		zap.Int("alerts", len(ds.Alerts)))

	return &DataService{dataset: ds, now: now, logger: logger}
}

// Dataset returns the underlying dataset.
func (s *DataService) Dataset() *mockdata.Dataset {
	return s.dataset
}

// Invoices returns a page of the invoice list (already sorted newest
// first by the generator).
func (s *DataService) Invoices(limit, offset int) []entity.Invoice {
	invoices := s.dataset.Invoices
	if offset >= len(invoices) {
		return nil
	}
	end := offset + limit
	if end > len(invoices) {
		end = len(invoices)
	}
	return invoices[offset:end]
}

// Vendors returns all vendors.
func (s *DataService) Vendors() []entity.Vendor { return s.dataset.Vendors }

// Clients returns all clients.
func (s *DataService) Clients() []entity.Client { return s.dataset.Clients }

// Budgets returns all budgets.
func (s *DataService) Budgets() []entity.Budget { return s.dataset.Budgets }

// Alerts returns the alerts derived at generation time, newest first.
func (s *DataService) Alerts() []entity.Alert { return s.dataset.Alerts }

// AuditEntries returns the audit log, newest first.
func (s *DataService) AuditEntries() []entity.AuditEntry { return s.dataset.AuditEntries }

// EmailImports returns the email-import events.
func (s *DataService) EmailImports() []entity.EmailImport { return s.dataset.EmailImports }

// VendorPerformance returns the per-vendor summaries.
func (s *DataService) VendorPerformance() []entity.VendorPerformance {
	return s.dataset.VendorPerformance
}

// ReportTemplates returns the static report presets.
func (s *DataService) ReportTemplates() []entity.ReportTemplate {
	return s.dataset.ReportTemplates
}

// DashboardStats folds the invoice list into the overview stats.
func (s *DataService) DashboardStats() stats.DashboardStats {
	return stats.Dashboard(s.dataset.Invoices, s.now)
}

// RevenueSeries returns the 12 trailing calendar-month buckets.
func (s *DataService) RevenueSeries() []stats.MonthBucket {
	return stats.MonthlySeries(s.dataset.Invoices, s.now)
}

// Categories returns the category breakdown, largest first.
func (s *DataService) Categories() []stats.CategoryTotal {
	return stats.CategoryBreakdown(s.dataset.Invoices)
}
