package mockdata

import (
	"invoiceflow/internal/domain/entity"
	"invoiceflow/internal/stats"
)

// Dataset holds every generated entity family plus the alerts derived
// from them. All slices are immutable after generation.
type Dataset struct {
	Vendors           []entity.Vendor
	Clients           []entity.Client
	Invoices          []entity.Invoice
	Budgets           []entity.Budget
	Alerts            []entity.Alert
	AuditEntries      []entity.AuditEntry
	EmailImports      []entity.EmailImport
	VendorPerformance []entity.VendorPerformance
	ReportTemplates   []entity.ReportTemplate
}

// GenerateDataset runs every generator in dependency order: invoices fan
// out from vendors and clients, alerts and performance records fan out
// from invoices and budgets.
func (g *Generator) GenerateDataset(counts Counts) *Dataset {
	vendors := g.Vendors(counts.Vendors)
	clients := g.Clients(counts.Clients)
	invoices := g.Invoices(counts.Invoices, vendors, clients)
	budgets := g.Budgets(counts.Budgets)

	return &Dataset{
		Vendors:           vendors,
		Clients:           clients,
		Invoices:          invoices,
		Budgets:           budgets,
		Alerts:            stats.DeriveAlerts(invoices, budgets, g.now),
		AuditEntries:      g.AuditEntries(counts.AuditEntries),
		EmailImports:      g.EmailImports(counts.EmailImports, invoices),
		VendorPerformance: g.VendorPerformance(vendors, invoices),
		ReportTemplates:   ReportTemplates(),
	}
}
