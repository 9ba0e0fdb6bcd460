package stats

import (
	"fmt"
	"sort"
	"time"

	"invoiceflow/internal/domain/entity"
)

// Alert thresholds. These are exact cutoffs; golden outputs depend on them.
const (
	fraudScoreThreshold    = 0.10
	duplicateRiskThreshold = 0.15
	budgetWarnThreshold    = 0.85
	budgetOverThreshold    = 1.0
)

// DeriveAlerts scans invoices and budgets once and emits one alert per
// match, sorted by CreatedAt descending. Invoice alerts inherit the
// invoice's CreatedAt; budget alerts are stamped with now.
func DeriveAlerts(invoices []entity.Invoice, budgets []entity.Budget, now time.Time) []entity.Alert {
	var alerts []entity.Alert
	next := 1

	id := func() string {
		s := fmt.Sprintf("AL-%04d", next)
		next++
		return s
	}

	for _, inv := range invoices {
		if inv.FraudScore > fraudScoreThreshold {
			alerts = append(alerts, entity.Alert{
				ID:             id(),
				Type:           entity.AlertTypeFraud,
				Severity:       entity.SeverityHigh,
				Title:          "Possible fraudulent invoice",
				Message:        fmt.Sprintf("Invoice %s from %s has an elevated fraud score (%.2f)", inv.InvoiceNumber, inv.VendorName, inv.FraudScore),
				EntityID:       inv.ID,
				CreatedAt:      inv.CreatedAt,
				ActionRequired: true,
			})
		}
		if inv.DuplicateRisk > duplicateRiskThreshold {
			alerts = append(alerts, entity.Alert{
				ID:             id(),
				Type:           entity.AlertTypeDuplicate,
				Severity:       entity.SeverityMedium,
				Title:          "Possible duplicate invoice",
				Message:        fmt.Sprintf("Invoice %s resembles a previously imported invoice (risk %.2f)", inv.InvoiceNumber, inv.DuplicateRisk),
				EntityID:       inv.ID,
				CreatedAt:      inv.CreatedAt,
				ActionRequired: false,
			})
		}
	}

	for _, b := range budgets {
		util := b.Utilization()
		switch {
		case util > budgetOverThreshold:
			alerts = append(alerts, entity.Alert{
				ID:             id(),
				Type:           entity.AlertTypeBudget,
				Severity:       entity.SeverityHigh,
				Title:          "Budget exceeded",
				Message:        fmt.Sprintf("%s (%s) has spent %.0f%% of its allocation", b.Category, b.Department, util*100),
				EntityID:       b.ID,
				CreatedAt:      now,
				ActionRequired: true,
			})
		case util > budgetWarnThreshold:
			alerts = append(alerts, entity.Alert{
				ID:             id(),
				Type:           entity.AlertTypeBudget,
				Severity:       entity.SeverityMedium,
				Title:          "Budget nearly exhausted",
				Message:        fmt.Sprintf("%s (%s) has spent %.0f%% of its allocation", b.Category, b.Department, util*100),
				EntityID:       b.ID,
				CreatedAt:      now,
				ActionRequired: false,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
	return alerts
}
