package mockdata

import (
	"fmt"

	"invoiceflow/internal/domain/entity"
)

// EmailImports generates count inbox events. Processed imports link back
// to one of the given invoices when any exist.
func (g *Generator) EmailImports(count int, invoices []entity.Invoice) []entity.EmailImport {
	if count <= 0 {
		return nil
	}

	imports := make([]entity.EmailImport, 0, count)
	for i := 0; i < count; i++ {
		status := g.faker.RandomString(entity.EmailStatuses)

		imp := entity.EmailImport{
			ID:              seqID("EML", i+1),
			Sender:          g.faker.Email(),
			Subject:         fmt.Sprintf("Invoice %s-%05d", g.faker.Company(), g.faker.IntRange(1, 99999)),
			ReceivedAt:      g.faker.DateRange(g.now.AddDate(0, -2, 0), g.now),
			AttachmentCount: g.faker.IntRange(1, 4),
			Status:          status,
		}
		if status == entity.EmailStatusProcessed && len(invoices) > 0 {
			imp.InvoiceID = invoices[g.faker.IntRange(0, len(invoices)-1)].ID
		}
		imports = append(imports, imp)
	}
	return imports
}
