// Package stats derives the dashboard's summary views from generated
// entity slices. Every function here is pure and total: empty input is a
// first-class case and no ratio ever produces NaN or Inf.
package stats

import (
	"time"

	"invoiceflow/internal/domain/entity"
)

// DashboardStats summarizes an invoice list for the overview cards.
type DashboardStats struct {
	TotalInvoices int     `json:"total_invoices"`
	TotalAmount   float64 `json:"total_amount"`

	PaidCount     int     `json:"paid_count"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingCount  int     `json:"pending_count"`
	PendingAmount float64 `json:"pending_amount"`
	OverdueCount  int     `json:"overdue_count"`
	OverdueAmount float64 `json:"overdue_amount"`

	// RevenueGrowth is month-over-month growth in percent, 0 when the
	// previous month had no revenue.
	RevenueGrowth float64 `json:"revenue_growth"`

	AvgConfidence float64 `json:"avg_confidence"`
}

// Dashboard folds the invoice list into overview stats. now anchors the
// month-over-month comparison.
func Dashboard(invoices []entity.Invoice, now time.Time) DashboardStats {
	var s DashboardStats
	var confidenceSum float64
	var thisMonth, lastMonth float64

	curY, curM, _ := now.Date()
	// Step back from the first of the month so a now of e.g. July 31
	// cannot normalize back into the current month.
	prev := time.Date(curY, curM, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	prevY, prevM, _ := prev.Date()

	for _, inv := range invoices {
		s.TotalInvoices++
		s.TotalAmount += inv.Total
		confidenceSum += inv.AIConfidence.Overall

		switch inv.Status {
		case entity.InvoiceStatusPaid:
			s.PaidCount++
			s.PaidAmount += inv.Total
		case entity.InvoiceStatusPending:
			s.PendingCount++
			s.PendingAmount += inv.Total
		case entity.InvoiceStatusOverdue:
			s.OverdueCount++
			s.OverdueAmount += inv.Total
		}

		y, m, _ := inv.IssueDate.Date()
		if y == curY && m == curM {
			thisMonth += inv.Total
		}
		if y == prevY && m == prevM {
			lastMonth += inv.Total
		}
	}

	// Growth is defined as 0 when last month had no revenue; dividing
	// would surface Inf on the dashboard.
	if lastMonth != 0 {
		s.RevenueGrowth = (thisMonth - lastMonth) / lastMonth * 100
	}
	if s.TotalInvoices > 0 {
		s.AvgConfidence = confidenceSum / float64(s.TotalInvoices)
	}
	return s
}
