package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/fakebank/internal/bank"
)

// DatabaseAdapter is one SQL dialect the seeder can write the dataset to.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// DB is valid after Connect.
	DB() *sql.DB
	Provider() string
	Builder() squirrel.StatementBuilderType

	// SQL generation
	QuoteIdentifier(name string) string
	GenerateCreateTableSQL(table bank.Table) string
	GenerateTruncateSQL(tableName string) string

	// Data type mapping
	MapColumnType(column bank.Column) string
	ConvertValue(column bank.Column, value any) any
}

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Execer = (*sql.DB)(nil)
	_ Execer = (*sql.Tx)(nil)
)
