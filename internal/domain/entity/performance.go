package entity

// VendorPerformance summarizes one vendor's invoice history. The monetary
// fields are folded from the invoice list; the quality fields are scored
// independently.
type VendorPerformance struct {
	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name"`

	TotalInvoices    int     `json:"total_invoices"`
	TotalSpent       float64 `json:"total_spent"`
	AvgInvoiceAmount float64 `json:"avg_invoice_amount"` // 0 when TotalInvoices == 0

	OnTimeRate      float64 `json:"on_time_rate"`
	QualityScore    float64 `json:"quality_score"`
	ComplianceScore float64 `json:"compliance_score"`
	Trend           string  `json:"trend"` // up | down | stable
}
