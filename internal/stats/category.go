package stats

import (
	"sort"

	"invoiceflow/internal/domain/entity"
)

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Invoices int     `json:"invoices"`
}

// CategoryBreakdown groups invoices by category and sums their totals,
// sorted descending by summed total. Ties keep a stable category-name
// order so repeated runs agree.
func CategoryBreakdown(invoices []entity.Invoice) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	for _, inv := range invoices {
		ct, ok := byCategory[inv.Category]
		if !ok {
			ct = &CategoryTotal{Category: inv.Category}
			byCategory[inv.Category] = ct
		}
		ct.Total += inv.Total
		ct.Invoices++
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}
