package entity

import "time"

// Vendor represents a supplier issuing invoices.
type Vendor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Category    string `json:"category"`

	// Aggregate stats snapshotted at creation time.
	TotalInvoices    int     `json:"total_invoices"`
	TotalSpent       float64 `json:"total_spent"`
	AvgInvoiceAmount float64 `json:"avg_invoice_amount"`

	Rating       float64   `json:"rating"` // [3.0, 5.0]
	PaymentTerms string    `json:"payment_terms"`
	CreatedAt    time.Time `json:"created_at"`
}
