package entity

import "time"

// LineItem represents a single line on an invoice. It has no identity
// outside its parent invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"` // Quantity * UnitPrice
	TaxRate     float64 `json:"tax_rate"`
	Discount    float64 `json:"discount"`
}

// AIConfidence holds per-aspect extraction confidence scores. The five
// fields are drawn independently; Overall is not a function of the others.
type AIConfidence struct {
	Overall      float64 `json:"overall"`       // [0.75, 0.99]
	Amounts      float64 `json:"amounts"`       // [0.80, 0.99]
	Dates        float64 `json:"dates"`         // [0.85, 0.99]
	VendorFields float64 `json:"vendor_fields"` // [0.78, 0.99]
	LineItems    float64 `json:"line_items"`    // [0.70, 0.98]
}

// Invoice represents a processed invoice as surfaced on the dashboard.
// VendorName and ClientName are denormalized at creation time and never
// re-synchronized afterwards.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	VendorID      string     `json:"vendor_id"`
	VendorName    string     `json:"vendor_name"`
	ClientID      string     `json:"client_id"`
	ClientName    string     `json:"client_name"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       time.Time  `json:"due_date"`
	PaidDate      *time.Time `json:"paid_date,omitempty"` // set only when Status == Paid
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	LineItems     []LineItem `json:"line_items"`

	// Monetary totals. Total = Subtotal + TaxAmount - DiscountAmount,
	// established at construction and never recomputed.
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`

	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`

	AIConfidence      AIConfidence `json:"ai_confidence"`
	DuplicateRisk     float64      `json:"duplicate_risk"` // [0, 0.20]
	FraudScore        float64      `json:"fraud_score"`    // [0, 0.15]
	ProcessingSeconds float64      `json:"processing_seconds"`
	ExtractedFields   int          `json:"extracted_fields"`
	ValidationErrors  []string     `json:"validation_errors"`

	UploadedBy string    `json:"uploaded_by"`
	ApprovedBy string    `json:"approved_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
