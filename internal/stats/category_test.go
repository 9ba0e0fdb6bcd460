package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain/entity"
)

func TestCategoryBreakdown_SortedDescending(t *testing.T) {
	invoices := []entity.Invoice{
		{Category: entity.CategoryMarketing, Total: 100},
		{Category: entity.CategorySoftware, Total: 400},
		{Category: entity.CategoryMarketing, Total: 50},
		{Category: entity.CategoryTravel, Total: 200},
		{Category: entity.CategorySoftware, Total: 10},
	}

	out := CategoryBreakdown(invoices)
	require.Len(t, out, 3)

	assert.Equal(t, entity.CategorySoftware, out[0].Category)
	assert.InDelta(t, 410, out[0].Total, 1e-6)
	assert.Equal(t, 2, out[0].Invoices)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Total, out[i].Total,
			"breakdown must be sorted descending by summed total")
	}
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestCategoryBreakdown_StableTieOrder(t *testing.T) {
	invoices := []entity.Invoice{
		{Category: "B", Total: 100},
		{Category: "A", Total: 100},
	}

	out := CategoryBreakdown(invoices)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Category, "equal totals fall back to name order")
}
