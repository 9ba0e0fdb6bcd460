package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain/entity"
)

func TestGenerateDataset_Deterministic(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	counts := DefaultCounts()

	a := New(42, now).GenerateDataset(counts)
	b := New(42, now).GenerateDataset(counts)

	assert.Equal(t, a.Vendors, b.Vendors)
	assert.Equal(t, a.Clients, b.Clients)
	assert.Equal(t, a.Invoices, b.Invoices)
	assert.Equal(t, a.Budgets, b.Budgets)
	assert.Equal(t, a.Alerts, b.Alerts)
	assert.Equal(t, a.AuditEntries, b.AuditEntries)
	assert.Equal(t, a.EmailImports, b.EmailImports)
	assert.Equal(t, a.VendorPerformance, b.VendorPerformance)
}

func TestGenerateDataset_SeedChangesOutput(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	counts := DefaultCounts()

	a := New(1, now).GenerateDataset(counts)
	b := New(2, now).GenerateDataset(counts)

	assert.NotEqual(t, a.Invoices, b.Invoices)
}

func TestGenerateDataset_ZeroCounts(t *testing.T) {
	g := testGenerator(1)
	ds := g.GenerateDataset(Counts{})

	assert.Empty(t, ds.Vendors)
	assert.Empty(t, ds.Clients)
	assert.Empty(t, ds.Invoices)
	assert.Empty(t, ds.Budgets)
	assert.Empty(t, ds.Alerts)
	assert.Empty(t, ds.AuditEntries)
	assert.Empty(t, ds.EmailImports)
	assert.Empty(t, ds.VendorPerformance)
	// Templates are static configuration, not generated records.
	assert.NotEmpty(t, ds.ReportTemplates)
}

// Mirrors the seeded end-to-end scenario: 150 invoices over 50 vendors,
// with per-vendor counts reconciling back to the invoice total.
func TestGenerateDataset_VendorCountsReconcile(t *testing.T) {
	g := testGenerator(42)
	ds := g.GenerateDataset(Counts{Vendors: 50, Clients: 40, Invoices: 150, Budgets: 12})

	require.Len(t, ds.Invoices, 150)
	require.Len(t, ds.VendorPerformance, 50)

	total := 0
	for _, p := range ds.VendorPerformance {
		total += p.TotalInvoices
	}
	assert.Equal(t, 150, total, "per-vendor invoice counts must sum to the invoice total")
}

func TestVendors_Fields(t *testing.T) {
	g := testGenerator(9)
	vendors := g.Vendors(30)
	require.Len(t, vendors, 30)

	seen := make(map[string]bool)
	for _, v := range vendors {
		assert.False(t, seen[v.ID], "vendor id %s must be unique", v.ID)
		seen[v.ID] = true

		assert.Contains(t, entity.Categories, v.Category)
		assert.Contains(t, entity.PaymentTerms, v.PaymentTerms)
		assertInRange(t, v.Rating, 3.0, 5.0, "rating")
		assert.InDelta(t, v.AvgInvoiceAmount*float64(v.TotalInvoices), v.TotalSpent, 0.01,
			"snapshot stats must be internally consistent")
	}

	assert.Empty(t, g.Vendors(0))
}

func TestClients_Fields(t *testing.T) {
	g := testGenerator(9)
	clients := g.Clients(25)
	require.Len(t, clients, 25)

	for _, c := range clients {
		assert.Contains(t, entity.ClientStatuses, c.Status)
		assert.GreaterOrEqual(t, c.OutstandingBalance, 0.0)
		assert.False(t, c.LastInvoiceDate.After(g.Now()))
	}
}

func TestBudgets_Fields(t *testing.T) {
	g := testGenerator(13)
	budgets := g.Budgets(12)
	require.Len(t, budgets, 12)

	for _, b := range budgets {
		assert.Contains(t, entity.Categories, b.Category)
		assert.Contains(t, entity.BudgetStatuses, b.Status)
		assert.Positive(t, b.Allocated)
		assert.Positive(t, b.Spent)
		assert.True(t, b.PeriodEnd.After(b.PeriodStart))
	}
}

func TestAuditEntries_SortedAndValid(t *testing.T) {
	g := testGenerator(21)
	entries := g.AuditEntries(80)
	require.Len(t, entries, 80)

	for i, e := range entries {
		assert.Contains(t, entity.AuditActions, e.Action)
		if e.Action == entity.AuditActionUpdate {
			assert.NotEmpty(t, e.Before)
			assert.NotEmpty(t, e.After)
		}
		if i > 0 {
			assert.False(t, entries[i-1].Timestamp.Before(e.Timestamp),
				"audit entries must be sorted newest first")
		}
	}
}

func TestEmailImports_LinkProcessedOnly(t *testing.T) {
	g := testGenerator(17)
	invoices := g.Invoices(50, g.Vendors(10), g.Clients(10))
	imports := g.EmailImports(40, invoices)
	require.Len(t, imports, 40)

	invoiceIDs := make(map[string]bool, len(invoices))
	for _, inv := range invoices {
		invoiceIDs[inv.ID] = true
	}

	for _, imp := range imports {
		assert.Contains(t, entity.EmailStatuses, imp.Status)
		if imp.Status == entity.EmailStatusProcessed {
			assert.True(t, invoiceIDs[imp.InvoiceID],
				"processed import must link to a generated invoice")
		} else {
			assert.Empty(t, imp.InvoiceID)
		}
	}
}

func TestVendorPerformance_ZeroInvoiceVendor(t *testing.T) {
	g := testGenerator(31)
	vendors := g.Vendors(5)

	// No invoices at all: every vendor averages exactly 0, never NaN.
	perf := g.VendorPerformance(vendors, nil)
	require.Len(t, perf, 5)
	for _, p := range perf {
		assert.Zero(t, p.TotalInvoices)
		assert.Zero(t, p.TotalSpent)
		assert.Zero(t, p.AvgInvoiceAmount)
	}
}

func TestReportTemplates_Static(t *testing.T) {
	templates := ReportTemplates()
	require.NotEmpty(t, templates)

	tpl, ok := ReportTemplateByID("monthly-spend")
	require.True(t, ok)
	assert.Equal(t, "Monthly Spend Summary", tpl.Name)

	_, ok = ReportTemplateByID("no-such-template")
	assert.False(t, ok)
}
