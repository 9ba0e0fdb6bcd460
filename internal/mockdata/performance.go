package mockdata

import (
	"invoiceflow/internal/domain/entity"
)

var trends = []string{entity.TrendUp, entity.TrendDown, entity.TrendStable}

// VendorPerformance produces one record per vendor. The monetary fields
// fold over the invoices matching the vendor; the quality fields are
// scored independently. A vendor with no invoices gets an average of 0,
// never NaN.
func (g *Generator) VendorPerformance(vendors []entity.Vendor, invoices []entity.Invoice) []entity.VendorPerformance {
	if len(vendors) == 0 {
		return nil
	}

	perf := make([]entity.VendorPerformance, 0, len(vendors))
	for _, v := range vendors {
		var count int
		var spent float64
		for _, inv := range invoices {
			if inv.VendorID == v.ID {
				count++
				spent += inv.Total
			}
		}

		avg := 0.0
		if count > 0 {
			avg = spent / float64(count)
		}

		perf = append(perf, entity.VendorPerformance{
			VendorID:         v.ID,
			VendorName:       v.Name,
			TotalInvoices:    count,
			TotalSpent:       spent,
			AvgInvoiceAmount: avg,
			OnTimeRate:       g.faker.Float64Range(0.6, 1.0),
			QualityScore:     g.faker.Float64Range(0.5, 1.0),
			ComplianceScore:  g.faker.Float64Range(0.7, 1.0),
			Trend:            g.faker.RandomString(trends),
		})
	}
	return perf
}
