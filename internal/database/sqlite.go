package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/Rana718/fakebank/internal/bank"
)

type SQLiteAdapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var sqliteTypeMap = map[bank.ColumnKind]string{
	bank.KindText:      "TEXT",
	bank.KindInt:       "INTEGER",
	bank.KindDate:      "TEXT",
	bank.KindTimestamp: "TEXT",
	bank.KindDecimal:   "REAL",
}

func NewSQLiteAdapter() *SQLiteAdapter {
	return &SQLiteAdapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Connect opens a file path, optionally prefixed with sqlite://, with
// foreign keys enforced.
func (s *SQLiteAdapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// one writer keeps the transaction on a single connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *SQLiteAdapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteAdapter) DB() *sql.DB { return s.db }

func (s *SQLiteAdapter) Provider() string { return "sqlite" }

func (s *SQLiteAdapter) Builder() squirrel.StatementBuilderType { return s.qb }

func (s *SQLiteAdapter) QuoteIdentifier(name string) string { return quoteWith(`"`)(name) }

func (s *SQLiteAdapter) GenerateCreateTableSQL(table bank.Table) string {
	d := dialect{quote: quoteWith(`"`), mapType: s.MapColumnType}
	return d.createTableSQL(table)
}

func (s *SQLiteAdapter) GenerateTruncateSQL(tableName string) string {
	return "DELETE FROM " + quoteWith(`"`)(tableName)
}

func (s *SQLiteAdapter) MapColumnType(column bank.Column) string {
	return sqliteTypeMap[column.Kind]
}

// ConvertValue stores dates and timestamps as their text rendering and
// amounts as REAL.
func (s *SQLiteAdapter) ConvertValue(column bank.Column, value any) any {
	switch v := value.(type) {
	case time.Time:
		return column.Format(v)
	case decimal.Decimal:
		return v.InexactFloat64()
	default:
		return value
	}
}
