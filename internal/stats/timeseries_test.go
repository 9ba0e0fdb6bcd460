package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain/entity"
)

func TestMonthlySeries_TwelveBucketsEndingNow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	buckets := MonthlySeries(nil, now)
	require.Len(t, buckets, 12)

	assert.Equal(t, "Jul 2024", buckets[0].Label)
	assert.Equal(t, "Jun 2025", buckets[11].Label)

	for i := 1; i < len(buckets); i++ {
		prev := time.Date(buckets[i-1].Year, time.Month(buckets[i-1].Month), 1, 0, 0, 0, 0, time.UTC)
		cur := time.Date(buckets[i].Year, time.Month(buckets[i].Month), 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, prev.AddDate(0, 1, 0), cur, "buckets must be consecutive calendar months")
	}
}

func TestMonthlySeries_CalendarMonthMatching(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	invoices := []entity.Invoice{
		// First day of the window's first month: counted even though it
		// is more than 365 days of elapsed time away from mid-June.
		invoiceAt(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), entity.InvoiceStatusPaid, 100),
		// Same calendar month as now, later in the month: counted.
		invoiceAt(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), entity.InvoiceStatusPending, 40),
		// One month before the window starts: dropped.
		invoiceAt(time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), entity.InvoiceStatusPaid, 999),
	}

	buckets := MonthlySeries(invoices, now)

	assert.InDelta(t, 100, buckets[0].Revenue, 1e-6)
	assert.Equal(t, 1, buckets[0].Invoices)
	assert.InDelta(t, 40, buckets[11].Revenue, 1e-6)

	var total float64
	for _, b := range buckets {
		total += b.Revenue
	}
	assert.InDelta(t, 140, total, 1e-6, "out-of-window invoice must not be bucketed")
}

func TestMonthlySeries_EndOfMonthAnchor(t *testing.T) {
	// May 31 must not skip short months when stepping backwards.
	now := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)
	buckets := MonthlySeries(nil, now)
	require.Len(t, buckets, 12)

	assert.Equal(t, "Jun 2024", buckets[0].Label)
	assert.Equal(t, "Feb 2025", buckets[8].Label)
	assert.Equal(t, "May 2025", buckets[11].Label)
}
