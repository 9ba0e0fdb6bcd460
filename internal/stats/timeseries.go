package stats

import (
	"time"

	"invoiceflow/internal/domain/entity"
)

// MonthBucket is one calendar-month slot in the revenue series.
type MonthBucket struct {
	Label    string  `json:"label"` // e.g. "Sep 2025"
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 1-12
	Revenue  float64 `json:"revenue"`
	Invoices int     `json:"invoices"`
}

// MonthlySeries buckets invoice totals into the 12 trailing calendar
// months ending at now's month. Bucketing matches on (month, year)
// equality, not elapsed duration, so a bucket covers a whole calendar
// month regardless of the day in now.
func MonthlySeries(invoices []entity.Invoice, now time.Time) []MonthBucket {
	// Anchor on the first of the month before stepping back, so a now
	// of e.g. May 31 cannot normalize past short months.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, 12)
	for i := 0; i < 12; i++ {
		m := first.AddDate(0, i-11, 0)
		y, month, _ := m.Date()
		buckets[i] = MonthBucket{
			Label: m.Format("Jan 2006"),
			Year:  y,
			Month: int(month),
		}
	}

	for _, inv := range invoices {
		y, m, _ := inv.IssueDate.Date()
		for i := range buckets {
			if buckets[i].Year == y && buckets[i].Month == int(m) {
				buckets[i].Revenue += inv.Total
				buckets[i].Invoices++
				break
			}
		}
	}
	return buckets
}
