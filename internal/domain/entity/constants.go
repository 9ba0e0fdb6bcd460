package entity

// Invoice status constants
const (
	InvoiceStatusPending    = "Pending"
	InvoiceStatusPaid       = "Paid"
	InvoiceStatusOverdue    = "Overdue"
	InvoiceStatusDraft      = "Draft"
	InvoiceStatusCancelled  = "Cancelled"
	InvoiceStatusProcessing = "Processing"
)

// InvoiceStatuses lists every valid invoice status.
var InvoiceStatuses = []string{
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusDraft,
	InvoiceStatusCancelled,
	InvoiceStatusProcessing,
}

// Client status constants
const (
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
	ClientStatusPending  = "Pending"
)

// ClientStatuses lists every valid client status.
var ClientStatuses = []string{
	ClientStatusActive,
	ClientStatusInactive,
	ClientStatusPending,
}

// Expense categories shared by vendors, invoices and budgets.
const (
	CategoryOfficeSupplies = "Office Supplies"
	CategorySoftware       = "Software & Technology"
	CategoryMarketing      = "Marketing"
	CategoryTravel         = "Travel & Transport"
	CategoryUtilities      = "Utilities"
	CategoryProfessional   = "Professional Services"
	CategoryEquipment      = "Equipment"
	CategoryCatering       = "Catering & Events"
)

// Categories lists every expense category.
var Categories = []string{
	CategoryOfficeSupplies,
	CategorySoftware,
	CategoryMarketing,
	CategoryTravel,
	CategoryUtilities,
	CategoryProfessional,
	CategoryEquipment,
	CategoryCatering,
}

// Budget status constants
const (
	BudgetStatusOnTrack    = "On Track"
	BudgetStatusAtRisk     = "At Risk"
	BudgetStatusOverBudget = "Over Budget"
)

// BudgetStatuses lists every valid budget status.
var BudgetStatuses = []string{
	BudgetStatusOnTrack,
	BudgetStatusAtRisk,
	BudgetStatusOverBudget,
}

// Alert type constants
const (
	AlertTypeFraud     = "fraud"
	AlertTypeDuplicate = "duplicate"
	AlertTypeBudget    = "budget"
)

// Alert severity constants
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Audit action constants
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
	AuditActionExport  = "export"
	AuditActionLogin   = "login"
	AuditActionView    = "view"
)

// AuditActions lists every valid audit action verb.
var AuditActions = []string{
	AuditActionCreate,
	AuditActionUpdate,
	AuditActionDelete,
	AuditActionApprove,
	AuditActionReject,
	AuditActionExport,
	AuditActionLogin,
	AuditActionView,
}

// Email import status constants
const (
	EmailStatusProcessed = "Processed"
	EmailStatusFailed    = "Failed"
	EmailStatusPending   = "Pending"
)

// EmailStatuses lists every valid email import status.
var EmailStatuses = []string{
	EmailStatusProcessed,
	EmailStatusFailed,
	EmailStatusPending,
}

// Vendor spend trend constants
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Payment terms offered by vendors.
var PaymentTerms = []string{"Net 15", "Net 30", "Net 45", "Net 60"}

// Payment methods accepted on invoices.
var PaymentMethods = []string{"Bank Transfer", "Credit Card", "Check", "ACH", "Wire"}

// Currencies used on invoices.
var Currencies = []string{"USD", "EUR", "GBP"}
