package database

import (
	"fmt"

	"github.com/Rana718/fakebank/internal/synth"
)

// NewAdapter returns the adapter for provider. driver picks the PostgreSQL
// driver ("pgx" or "pq") and is ignored otherwise.
func NewAdapter(provider, driver string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return NewPostgresAdapter(driver)
	case "mysql":
		return NewMySQLAdapter(), nil
	case "sqlite", "sqlite3":
		return NewSQLiteAdapter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database provider: %s", synth.ErrConfiguration, provider)
	}
}
