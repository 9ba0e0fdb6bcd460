package entity

import "time"

// Budget represents a departmental spending budget for one category and
// period. Spent is not constrained to be <= Allocated; over-budget states
// are expected and drive the "Over Budget" alert path downstream.
type Budget struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`

	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	AlertThreshold float64 `json:"alert_threshold"`
	Department     string  `json:"department"`
	Owner          string  `json:"owner"`
	Status         string  `json:"status"` // On Track | At Risk | Over Budget
}

// Utilization returns spent/allocated, or 0 when nothing is allocated.
func (b Budget) Utilization() float64 {
	if b.Allocated == 0 {
		return 0
	}
	return b.Spent / b.Allocated
}
