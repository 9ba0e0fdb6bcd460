package entity

// ReportTemplate represents a named report preset. Templates are static
// configuration, not generated data.
type ReportTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sections    []string `json:"sections"`
	Format      string   `json:"format"`
}
