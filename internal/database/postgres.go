package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/synth"
)

type PostgresAdapter struct {
	driver string
	pool   *pgxpool.Pool
	db     *sql.DB
	qb     squirrel.StatementBuilderType
}

var pgTypeMap = map[bank.ColumnKind]string{
	bank.KindText:      "TEXT",
	bank.KindInt:       "INTEGER",
	bank.KindDate:      "DATE",
	bank.KindTimestamp: "TIMESTAMP",
	bank.KindDecimal:   "NUMERIC(12,2)",
}

// NewPostgresAdapter supports the pgx pool ("pgx", default) and lib/pq
// ("pq") drivers.
func NewPostgresAdapter(driver string) (*PostgresAdapter, error) {
	switch driver {
	case "", "pgx":
		driver = "pgx"
	case "pq":
	default:
		return nil, fmt.Errorf("%w: unsupported postgres driver: %s", synth.ErrConfiguration, driver)
	}
	return &PostgresAdapter{
		driver: driver,
		qb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func (p *PostgresAdapter) Connect(ctx context.Context, url string) error {
	if p.driver == "pq" {
		db, err := sql.Open("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to open postgres connection: %w", err)
		}
		p.db = db
		return nil
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	p.pool = pool
	p.db = stdlib.OpenDBFromPool(pool)
	return nil
}

func (p *PostgresAdapter) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return err
}

func (p *PostgresAdapter) Ping(ctx context.Context) error {
	if p.pool != nil {
		return p.pool.Ping(ctx)
	}
	return p.db.PingContext(ctx)
}

func (p *PostgresAdapter) DB() *sql.DB { return p.db }

func (p *PostgresAdapter) Provider() string { return "postgresql" }

func (p *PostgresAdapter) Builder() squirrel.StatementBuilderType { return p.qb }

func (p *PostgresAdapter) QuoteIdentifier(name string) string { return pq.QuoteIdentifier(name) }

func (p *PostgresAdapter) dialect() dialect {
	return dialect{quote: pq.QuoteIdentifier, mapType: p.MapColumnType}
}

func (p *PostgresAdapter) GenerateCreateTableSQL(table bank.Table) string {
	return p.dialect().createTableSQL(table)
}

func (p *PostgresAdapter) GenerateTruncateSQL(tableName string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", pq.QuoteIdentifier(tableName))
}

func (p *PostgresAdapter) MapColumnType(column bank.Column) string {
	return pgTypeMap[column.Kind]
}

// ConvertValue passes values through; time.Time and decimal.Decimal are
// handled by both drivers.
func (p *PostgresAdapter) ConvertValue(_ bank.Column, value any) any {
	return value
}
