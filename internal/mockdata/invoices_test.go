package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain/entity"
)

const floatTolerance = 1e-6

func testGenerator(seed uint64) *Generator {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	return New(seed, now)
}

func TestInvoices_TotalsDeriveFromLineItems(t *testing.T) {
	g := testGenerator(7)
	vendors := g.Vendors(20)
	clients := g.Clients(15)
	invoices := g.Invoices(100, vendors, clients)
	require.Len(t, invoices, 100)

	for _, inv := range invoices {
		var subtotal, tax, discount float64
		for _, li := range inv.LineItems {
			assert.InDelta(t, float64(li.Quantity)*li.UnitPrice, li.Total, floatTolerance,
				"line item total must equal quantity*unit price")
			subtotal += li.Total
			tax += li.Total * li.TaxRate
			discount += li.Total * li.Discount
		}

		assert.InDelta(t, subtotal, inv.Subtotal, floatTolerance)
		assert.InDelta(t, tax, inv.TaxAmount, floatTolerance)
		assert.InDelta(t, discount, inv.DiscountAmount, floatTolerance)
		assert.InDelta(t, inv.Subtotal+inv.TaxAmount-inv.DiscountAmount, inv.Total, floatTolerance)

		require.GreaterOrEqual(t, len(inv.LineItems), 1)
		require.LessOrEqual(t, len(inv.LineItems), 8)
	}
}

func TestInvoices_PaidDateRules(t *testing.T) {
	g := testGenerator(11)
	invoices := g.Invoices(200, g.Vendors(10), g.Clients(10))

	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusPaid {
			require.NotNil(t, inv.PaidDate, "paid invoice %s must have a paid date", inv.ID)
			assert.False(t, inv.PaidDate.Before(inv.IssueDate),
				"paid date must not precede issue date")
			assert.False(t, inv.PaidDate.After(g.Now()),
				"paid date must not follow generation time")
		} else {
			assert.Nil(t, inv.PaidDate, "invoice %s with status %s must have no paid date", inv.ID, inv.Status)
		}
	}
}

func TestInvoices_DueDateWindow(t *testing.T) {
	g := testGenerator(3)
	invoices := g.Invoices(100, g.Vendors(5), g.Clients(5))

	for _, inv := range invoices {
		days := inv.DueDate.Sub(inv.IssueDate).Hours() / 24
		assert.GreaterOrEqual(t, days, 15.0)
		assert.LessOrEqual(t, days, 60.0)
	}
}

func TestInvoices_SortedNewestFirst(t *testing.T) {
	g := testGenerator(5)
	invoices := g.Invoices(150, g.Vendors(20), g.Clients(10))

	for i := 1; i < len(invoices); i++ {
		assert.False(t, invoices[i-1].CreatedAt.Before(invoices[i].CreatedAt),
			"invoices must be sorted by created_at descending")
	}
}

func TestInvoices_ScoreBounds(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 99} {
		g := testGenerator(seed)
		invoices := g.Invoices(100, g.Vendors(10), g.Clients(10))

		for _, inv := range invoices {
			assertInRange(t, inv.AIConfidence.Overall, 0.75, 0.99, "ai_confidence.overall")
			assertInRange(t, inv.AIConfidence.Amounts, 0.80, 0.99, "ai_confidence.amounts")
			assertInRange(t, inv.AIConfidence.Dates, 0.85, 0.99, "ai_confidence.dates")
			assertInRange(t, inv.AIConfidence.VendorFields, 0.78, 0.99, "ai_confidence.vendor_fields")
			assertInRange(t, inv.AIConfidence.LineItems, 0.70, 0.98, "ai_confidence.line_items")
			assertInRange(t, inv.FraudScore, 0, 0.15, "fraud_score")
			assertInRange(t, inv.DuplicateRisk, 0, 0.20, "duplicate_risk")
		}
	}
}

func assertInRange(t *testing.T, v, lo, hi float64, field string) {
	t.Helper()
	assert.GreaterOrEqual(t, v, lo, "%s below documented bound", field)
	assert.LessOrEqual(t, v, hi, "%s above documented bound", field)
}

func TestInvoices_ReferentialIntegrity(t *testing.T) {
	g := testGenerator(42)
	vendors := g.Vendors(50)
	clients := g.Clients(40)
	invoices := g.Invoices(150, vendors, clients)

	vendorIDs := make(map[string]string, len(vendors))
	for _, v := range vendors {
		vendorIDs[v.ID] = v.Name
	}
	clientIDs := make(map[string]string, len(clients))
	for _, c := range clients {
		clientIDs[c.ID] = c.Name
	}

	for _, inv := range invoices {
		name, ok := vendorIDs[inv.VendorID]
		require.True(t, ok, "invoice %s references unknown vendor %s", inv.ID, inv.VendorID)
		assert.Equal(t, name, inv.VendorName, "denormalized vendor name must match at creation")

		name, ok = clientIDs[inv.ClientID]
		require.True(t, ok, "invoice %s references unknown client %s", inv.ID, inv.ClientID)
		assert.Equal(t, name, inv.ClientName)
	}
}

func TestInvoices_EmptyInputs(t *testing.T) {
	g := testGenerator(1)
	vendors := g.Vendors(5)
	clients := g.Clients(5)

	assert.Empty(t, g.Invoices(0, vendors, clients))
	assert.Empty(t, g.Invoices(-3, vendors, clients))
	assert.Empty(t, g.Invoices(10, nil, clients))
	assert.Empty(t, g.Invoices(10, vendors, nil))
}
