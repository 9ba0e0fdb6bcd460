package mockdata

import "invoiceflow/internal/domain/entity"

// Vendors generates count synthetic vendors. A count <= 0 yields an empty
// slice. The aggregate stats fields are snapshot values drawn at creation
// time, not recomputed from invoices.
func (g *Generator) Vendors(count int) []entity.Vendor {
	if count <= 0 {
		return nil
	}

	vendors := make([]entity.Vendor, 0, count)
	for i := 0; i < count; i++ {
		totalInvoices := g.faker.IntRange(2, 45)
		avgAmount := round2(g.faker.Float64Range(250, 4800))

		vendors = append(vendors, entity.Vendor{
			ID:               seqID("VEN", i+1),
			Name:             g.faker.Company(),
			ContactName:      g.faker.Name(),
			Email:            g.faker.Email(),
			Phone:            g.faker.Phone(),
			Address:          g.faker.Address().Address,
			Category:         g.faker.RandomString(entity.Categories),
			TotalInvoices:    totalInvoices,
			TotalSpent:       round2(avgAmount * float64(totalInvoices)),
			AvgInvoiceAmount: avgAmount,
			Rating:           round2(g.faker.Float64Range(3.0, 5.0)),
			PaymentTerms:     g.faker.RandomString(entity.PaymentTerms),
			CreatedAt:        g.faker.DateRange(g.now.AddDate(-3, 0, 0), g.now.AddDate(0, -1, 0)),
		})
	}
	return vendors
}
