package mockdata

import "invoiceflow/internal/domain/entity"

// ReportTemplates returns the built-in report presets. Templates are
// static configuration and involve no randomness.
func ReportTemplates() []entity.ReportTemplate {
	return []entity.ReportTemplate{
		{
			ID:          "monthly-spend",
			Name:        "Monthly Spend Summary",
			Description: "Invoice totals by status with a category breakdown for the current month",
			Sections:    []string{"invoices", "summary"},
			Format:      "xlsx",
		},
		{
			ID:          "vendor-performance",
			Name:        "Vendor Performance",
			Description: "Per-vendor invoice volume, spend and quality scores",
			Sections:    []string{"invoices", "summary"},
			Format:      "xlsx",
		},
		{
			ID:          "overdue-invoices",
			Name:        "Overdue Invoices",
			Description: "All invoices past their due date, oldest first",
			Sections:    []string{"invoices"},
			Format:      "xlsx",
		},
		{
			ID:          "budget-vs-actual",
			Name:        "Budget vs Actual",
			Description: "Allocated versus spent per category and department",
			Sections:    []string{"summary"},
			Format:      "xlsx",
		},
	}
}

// ReportTemplateByID looks up a template by id, returning false when the
// id names no preset.
func ReportTemplateByID(id string) (entity.ReportTemplate, bool) {
	for _, t := range ReportTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return entity.ReportTemplate{}, false
}
