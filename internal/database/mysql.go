package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"

	"github.com/Rana718/fakebank/internal/bank"
)

type MySQLAdapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var mysqlTypeMap = map[bank.ColumnKind]string{
	bank.KindText:      "VARCHAR(255)",
	bank.KindInt:       "INT",
	bank.KindDate:      "DATE",
	bank.KindTimestamp: "DATETIME",
	bank.KindDecimal:   "DECIMAL(12,2)",
}

func NewMySQLAdapter() *MySQLAdapter {
	return &MySQLAdapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Connect accepts a go-sql-driver DSN, optionally prefixed with mysql://.
func (m *MySQLAdapter) Connect(ctx context.Context, url string) error {
	cfg, err := mysql.ParseDSN(strings.TrimPrefix(url, "mysql://"))
	if err != nil {
		return fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	m.db = db
	return nil
}

func (m *MySQLAdapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *MySQLAdapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *MySQLAdapter) DB() *sql.DB { return m.db }

func (m *MySQLAdapter) Provider() string { return "mysql" }

func (m *MySQLAdapter) Builder() squirrel.StatementBuilderType { return m.qb }

func (m *MySQLAdapter) QuoteIdentifier(name string) string { return quoteWith("`")(name) }

func (m *MySQLAdapter) GenerateCreateTableSQL(table bank.Table) string {
	d := dialect{
		quote:   quoteWith("`"),
		mapType: m.MapColumnType,
		suffix:  " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	}
	return d.createTableSQL(table)
}

// GenerateTruncateSQL uses DELETE since TRUNCATE commits implicitly and
// refuses tables referenced by foreign keys.
func (m *MySQLAdapter) GenerateTruncateSQL(tableName string) string {
	return "DELETE FROM " + quoteWith("`")(tableName)
}

func (m *MySQLAdapter) MapColumnType(column bank.Column) string {
	if column.PrimaryKey || column.References != "" {
		return "VARCHAR(9)"
	}
	return mysqlTypeMap[column.Kind]
}

func (m *MySQLAdapter) ConvertValue(_ bank.Column, value any) any {
	return value
}
