package seeder

import "github.com/Rana718/fakebank/internal/bank"

type SeedConfig struct {
	Batch         int  // Rows per INSERT statement
	Truncate      bool // Clear tables before seeding
	CreateSchema  bool // Run CREATE TABLE IF NOT EXISTS first
	NoTransaction bool // Disable transaction wrapping
}

type TableInfo struct {
	Name         string
	Dependencies []string
	Table        bank.Table
}

func newTableInfo(t bank.Table) *TableInfo {
	return &TableInfo{Name: t.Name, Dependencies: t.DependsOn(), Table: t}
}

// Result reports how many rows were written per table, in insertion order.
type Result struct {
	Order []string
	Rows  map[string]int
}

func (r Result) Total() int {
	n := 0
	for _, c := range r.Rows {
		n += c
	}
	return n
}
