package entity

import "time"

// EmailImport represents an inbound email processed by the invoice inbox.
// InvoiceID is set only when the import produced an invoice.
type EmailImport struct {
	ID              string    `json:"id"`
	Sender          string    `json:"sender"`
	Subject         string    `json:"subject"`
	ReceivedAt      time.Time `json:"received_at"`
	AttachmentCount int       `json:"attachment_count"`
	Status          string    `json:"status"` // Processed | Failed | Pending
	InvoiceID       string    `json:"invoice_id,omitempty"`
}
