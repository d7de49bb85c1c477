package database

import (
	"fmt"
	"strings"

	"github.com/Rana718/fakebank/internal/bank"
)

type dialect struct {
	quote   func(string) string
	mapType func(bank.Column) string
	suffix  string
}

// createTableSQL renders CREATE TABLE IF NOT EXISTS with table-level
// foreign keys, which every supported engine enforces the same way.
func (d dialect) createTableSQL(table bank.Table) string {
	var defs []string
	for _, col := range table.Columns {
		def := d.quote(col.Name) + " " + d.mapType(col)
		if !col.Nullable {
			def += " NOT NULL"
		}
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	for _, col := range table.Columns {
		if col.References == "" {
			continue
		}
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.quote(col.Name), d.quote(col.References), d.quote(primaryKey(col.References))))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)%s",
		d.quote(table.Name), strings.Join(defs, ",\n  "), d.suffix)
}

func primaryKey(table string) string {
	for _, col := range bank.Schema()[table] {
		if col.PrimaryKey {
			return col.Name
		}
	}
	return "id"
}

// quoteWith doubles q inside name and wraps it.
func quoteWith(q string) func(string) string {
	return func(name string) string {
		return q + strings.ReplaceAll(name, q, q+q) + q
	}
}
