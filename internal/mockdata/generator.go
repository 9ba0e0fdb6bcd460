// Package mockdata produces the synthetic dataset backing the dashboard's
// demo mode. Every generator is a pure function of its inputs and the
// seeded random source: the same seed yields the same dataset.
package mockdata

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Counts configures how many records each generator produces.
type Counts struct {
	Vendors      int
	Clients      int
	Invoices     int
	Budgets      int
	AuditEntries int
	EmailImports int
}

// DefaultCounts returns the record counts the demo dashboard ships with.
func DefaultCounts() Counts {
	return Counts{
		Vendors:      50,
		Clients:      40,
		Invoices:     150,
		Budgets:      12,
		AuditEntries: 80,
		EmailImports: 30,
	}
}

// Generator produces synthetic entities from a seeded random source.
// A Generator is not safe for concurrent use; generate once, then share
// the resulting slices freely since records are never mutated.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// New creates a Generator seeded with the given value. now anchors every
// date draw so a fixed (seed, now) pair reproduces the dataset exactly.
func New(seed uint64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

// Now returns the generation anchor time.
func (g *Generator) Now() time.Time {
	return g.now
}

// dateWithin draws a timestamp from the trailing window of whole years
// ending at the anchor time.
func (g *Generator) dateWithin(years int) time.Time {
	return g.faker.DateRange(g.now.AddDate(-years, 0, 0), g.now)
}

// round2 rounds a monetary amount to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// seqID formats a zero-padded sequential identifier like "VEN-0007".
func seqID(prefix string, n int) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// quarterStart returns midnight on the first day of t's calendar quarter.
func quarterStart(t time.Time) time.Time {
	month := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}
