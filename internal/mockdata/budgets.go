package mockdata

import "invoiceflow/internal/domain/entity"

var departments = []string{
	"Finance", "Engineering", "Operations", "Sales", "Human Resources", "Legal",
}

// Budgets generates count departmental budgets for the current quarter.
// Spent and Status are drawn independently of Allocated: a budget can be
// numerically over-spent while labeled "On Track". That looseness is
// carried over from the dashboard on purpose; see DESIGN.md.
func (g *Generator) Budgets(count int) []entity.Budget {
	if count <= 0 {
		return nil
	}

	quarterStart := quarterStart(g.now)
	quarterEnd := quarterStart.AddDate(0, 3, -1)

	budgets := make([]entity.Budget, 0, count)
	for i := 0; i < count; i++ {
		budgets = append(budgets, entity.Budget{
			ID:             seqID("BUD", i+1),
			Category:       entity.Categories[i%len(entity.Categories)],
			Allocated:      round2(g.faker.Float64Range(20000, 150000)),
			Spent:          round2(g.faker.Float64Range(5000, 160000)),
			PeriodStart:    quarterStart,
			PeriodEnd:      quarterEnd,
			AlertThreshold: round2(g.faker.Float64Range(0.75, 0.90)),
			Department:     g.faker.RandomString(departments),
			Owner:          g.faker.Name(),
			Status:         g.faker.RandomString(entity.BudgetStatuses),
		})
	}
	return budgets
}
