package entity

import "time"

// Alert represents an actionable finding derived from invoices or budgets.
// Alerts are computed once over a dataset, not recomputed reactively.
type Alert struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`     // fraud | duplicate | budget
	Severity       string    `json:"severity"` // low | medium | high
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	EntityID       string    `json:"entity_id"` // source invoice or budget id
	CreatedAt      time.Time `json:"created_at"`
	Read           bool      `json:"read"`
	ActionRequired bool      `json:"action_required"`
}
