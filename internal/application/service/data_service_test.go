package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"invoiceflow/internal/mockdata"
)

func newTestService(t *testing.T) *DataService {
	t.Helper()
	return NewDataService(42, mockdata.Counts{
		Vendors:      10,
		Clients:      8,
		Invoices:     30,
		Budgets:      6,
		AuditEntries: 10,
		EmailImports: 5,
	}, zap.NewNop())
}

func TestDataService_InvoicePagination(t *testing.T) {
	s := newTestService(t)

	page := s.Invoices(10, 0)
	require.Len(t, page, 10)

	rest := s.Invoices(100, 25)
	assert.Len(t, rest, 5, "short final page")

	assert.Empty(t, s.Invoices(10, 30), "offset at the end yields an empty page")
	assert.Empty(t, s.Invoices(10, 1000))
}

func TestDataService_PagesDoNotOverlap(t *testing.T) {
	s := newTestService(t)

	first := s.Invoices(15, 0)
	second := s.Invoices(15, 15)
	require.Len(t, first, 15)
	require.Len(t, second, 15)

	seen := make(map[string]bool)
	for _, inv := range first {
		seen[inv.ID] = true
	}
	for _, inv := range second {
		assert.False(t, seen[inv.ID], "invoice %s appears on both pages", inv.ID)
	}
}

func TestDataService_DerivedViews(t *testing.T) {
	s := newTestService(t)

	stats := s.DashboardStats()
	assert.Equal(t, 30, stats.TotalInvoices)

	series := s.RevenueSeries()
	require.Len(t, series, 12)

	var bucketed int
	for _, b := range series {
		bucketed += b.Invoices
	}
	assert.Equal(t, 30, bucketed, "every invoice issues within the trailing year")

	categories := s.Categories()
	require.NotEmpty(t, categories)
	var categorized int
	for _, c := range categories {
		categorized += c.Invoices
	}
	assert.Equal(t, 30, categorized)
}
