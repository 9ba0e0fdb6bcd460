package mockdata

import "invoiceflow/internal/domain/entity"

// Clients generates count synthetic client accounts. A count <= 0 yields
// an empty slice.
func (g *Generator) Clients(count int) []entity.Client {
	if count <= 0 {
		return nil
	}

	clients := make([]entity.Client, 0, count)
	for i := 0; i < count; i++ {
		clients = append(clients, entity.Client{
			ID:                 seqID("CLI", i+1),
			Name:               g.faker.Name(),
			Company:            g.faker.Company(),
			Email:              g.faker.Email(),
			Phone:              g.faker.Phone(),
			Status:             g.faker.RandomString(entity.ClientStatuses),
			TotalRevenue:       round2(g.faker.Float64Range(5000, 250000)),
			OutstandingBalance: round2(g.faker.Float64Range(0, 20000)),
			CreditLimit:        round2(g.faker.Float64Range(10000, 100000)),
			LastInvoiceDate:    g.dateWithin(1),
			CreatedAt:          g.faker.DateRange(g.now.AddDate(-3, 0, 0), g.now.AddDate(0, -1, 0)),
		})
	}
	return clients
}
