package mockdata

import (
	"sort"

	"invoiceflow/internal/domain/entity"
)

var (
	auditEntityTypes = []string{"invoice", "vendor", "client", "budget", "report"}
	userRoles        = []string{"admin", "accountant", "reviewer", "viewer"}
	browsers         = []string{"Chrome", "Firefox", "Safari", "Edge"}
)

// AuditEntries generates count audit-log rows sorted newest first. Update
// entries carry a before/after snapshot of the changed field.
func (g *Generator) AuditEntries(count int) []entity.AuditEntry {
	if count <= 0 {
		return nil
	}

	entries := make([]entity.AuditEntry, 0, count)
	for i := 0; i < count; i++ {
		action := g.faker.RandomString(entity.AuditActions)
		entityType := g.faker.RandomString(auditEntityTypes)

		entry := entity.AuditEntry{
			ID:         seqID("AUD", i+1),
			Action:     action,
			EntityType: entityType,
			EntityID:   seqID("ENT", g.faker.IntRange(1, 500)),
			EntityName: g.faker.Company(),
			UserName:   g.faker.Name(),
			UserEmail:  g.faker.Email(),
			UserRole:   g.faker.RandomString(userRoles),
			IPAddress:  g.faker.IPv4Address(),
			UserAgent:  g.faker.UserAgent(),
			Timestamp:  g.faker.DateRange(g.now.AddDate(0, -3, 0), g.now),
			Browser:    g.faker.RandomString(browsers),
			Location:   g.faker.City(),
		}

		if action == entity.AuditActionUpdate {
			entry.Before = entity.ChangeSnapshot{"status": entity.InvoiceStatusPending}
			entry.After = entity.ChangeSnapshot{"status": g.faker.RandomString(entity.InvoiceStatuses)}
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
