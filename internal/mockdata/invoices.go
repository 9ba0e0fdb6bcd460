package mockdata

import (
	"fmt"
	"sort"
	"time"

	"invoiceflow/internal/domain/entity"
)

var validationMessages = []string{
	"tax amount does not match line item rates",
	"vendor tax id missing",
	"duplicate invoice number candidate",
	"due date precedes issue date in extracted text",
	"currency symbol ambiguous",
	"line item quantity unreadable",
}

// Invoices generates count synthetic invoices referencing the given
// vendors and clients. Every VendorID/ClientID points at an entry of the
// input slices; the name fields are joined once here and never
// re-synchronized. The result is sorted by CreatedAt descending.
//
// A count <= 0, or empty vendor/client input, yields an empty slice.
func (g *Generator) Invoices(count int, vendors []entity.Vendor, clients []entity.Client) []entity.Invoice {
	if count <= 0 || len(vendors) == 0 || len(clients) == 0 {
		return nil
	}

	// Issue dates span the trailing 12 calendar months so every invoice
	// lands in a bucket of the monthly revenue series.
	windowStart := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, g.now.Location()).AddDate(0, -11, 0)

	invoices := make([]entity.Invoice, 0, count)
	for i := 0; i < count; i++ {
		vendor := vendors[g.faker.IntRange(0, len(vendors)-1)]
		client := clients[g.faker.IntRange(0, len(clients)-1)]

		issueDate := g.faker.DateRange(windowStart, g.now)
		dueDate := issueDate.AddDate(0, 0, g.faker.IntRange(15, 60))
		status := g.faker.RandomString(entity.InvoiceStatuses)

		lineItems := g.lineItems(g.faker.IntRange(1, 8))

		// Totals derive strictly from the line items; Total is never
		// independently settable.
		var subtotal, taxAmount, discountAmount float64
		for _, li := range lineItems {
			subtotal += li.Total
			taxAmount += li.Total * li.TaxRate
			discountAmount += li.Total * li.Discount
		}
		total := subtotal + taxAmount - discountAmount

		inv := entity.Invoice{
			ID:            seqID("INV", i+1),
			InvoiceNumber: fmt.Sprintf("INV-%d-%05d", issueDate.Year(), g.faker.IntRange(1, 99999)),
			VendorID:      vendor.ID,
			VendorName:    vendor.Name,
			ClientID:      client.ID,
			ClientName:    client.Name,
			IssueDate:     issueDate,
			DueDate:       dueDate,
			Status:        status,
			Category:      g.faker.RandomString(entity.Categories),
			LineItems:     lineItems,

			Subtotal:       subtotal,
			TaxAmount:      taxAmount,
			DiscountAmount: discountAmount,
			Total:          total,

			Currency:      g.faker.RandomString(entity.Currencies),
			PaymentMethod: g.faker.RandomString(entity.PaymentMethods),

			AIConfidence: entity.AIConfidence{
				Overall:      g.faker.Float64Range(0.75, 0.99),
				Amounts:      g.faker.Float64Range(0.80, 0.99),
				Dates:        g.faker.Float64Range(0.85, 0.99),
				VendorFields: g.faker.Float64Range(0.78, 0.99),
				LineItems:    g.faker.Float64Range(0.70, 0.98),
			},
			DuplicateRisk:     g.faker.Float64Range(0, 0.20),
			FraudScore:        g.faker.Float64Range(0, 0.15),
			ProcessingSeconds: round2(g.faker.Float64Range(0.8, 6.5)),
			ExtractedFields:   g.faker.IntRange(10, 30),
			ValidationErrors:  g.validationErrors(),

			UploadedBy: g.faker.Name(),
			CreatedAt:  issueDate,
			UpdatedAt:  issueDate,
		}

		if status == entity.InvoiceStatusPaid {
			paidDate := g.faker.DateRange(issueDate, g.now)
			inv.PaidDate = &paidDate
			inv.ApprovedBy = g.faker.Name()
		}

		invoices = append(invoices, inv)
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices
}

var (
	taxRates  = []float64{0, 0.05, 0.08, 0.10}
	discounts = []float64{0, 0, 0, 0.05, 0.10, 0.15}
)

// lineItems generates n line items with Total fixed to Quantity*UnitPrice.
func (g *Generator) lineItems(n int) []entity.LineItem {
	items := make([]entity.LineItem, 0, n)
	for i := 0; i < n; i++ {
		quantity := g.faker.IntRange(1, 10)
		unitPrice := round2(g.faker.Float64Range(10, 500))

		items = append(items, entity.LineItem{
			ID:          seqID("LI", i+1),
			Description: g.faker.ProductName(),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       float64(quantity) * unitPrice,
			TaxRate:     taxRates[g.faker.IntRange(0, len(taxRates)-1)],
			Discount:    discounts[g.faker.IntRange(0, len(discounts)-1)],
		})
	}
	return items
}

// validationErrors returns an empty list for most invoices and one or two
// extraction warnings for the rest.
func (g *Generator) validationErrors() []string {
	if g.faker.Float64Range(0, 1) < 0.85 {
		return nil
	}
	n := g.faker.IntRange(1, 2)
	errs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		errs = append(errs, g.faker.RandomString(validationMessages))
	}
	return errs
}
