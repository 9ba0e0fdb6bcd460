package entity

import "time"

// ChangeSnapshot captures an entity field set before or after a mutation.
type ChangeSnapshot map[string]string

// AuditEntry represents one row in the system audit log.
type AuditEntry struct {
	ID         string `json:"id"`
	Action     string `json:"action"` // one of AuditActions
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`

	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`

	Before ChangeSnapshot `json:"before,omitempty"`
	After  ChangeSnapshot `json:"after,omitempty"`

	Timestamp time.Time `json:"timestamp"`
	Browser   string    `json:"browser"`
	Location  string    `json:"location"`
}
