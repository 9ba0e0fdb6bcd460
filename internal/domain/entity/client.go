package entity

import "time"

// Client represents a billed customer account.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"` // Active | Inactive | Pending

	TotalRevenue       float64 `json:"total_revenue"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	CreditLimit        float64 `json:"credit_limit"`

	LastInvoiceDate time.Time `json:"last_invoice_date"`
	CreatedAt       time.Time `json:"created_at"`
}
