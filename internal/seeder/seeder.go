package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/database"
	"github.com/Rana718/fakebank/internal/logger"
	"github.com/Rana718/fakebank/internal/metrics"
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const (
	defaultBatch = 500
	// stays under the bind-variable limit of every supported engine
	maxPlaceholders = 30000
)

type Seeder struct {
	adapter  database.DatabaseAdapter
	logger   *slog.Logger
	metrics  *metrics.Metrics
	progress io.Writer
}

type Option func(*Seeder)

func WithLogger(l *slog.Logger) Option {
	return func(s *Seeder) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Seeder) { s.metrics = m }
}

// WithProgress prints colored per-table progress to w.
func WithProgress(w io.Writer) Option {
	return func(s *Seeder) {
		if w != nil {
			s.progress = w
		}
	}
}

// New returns a seeder writing through a connected adapter.
func New(adapter database.DatabaseAdapter, opts ...Option) *Seeder {
	s := &Seeder{
		adapter:  adapter,
		logger:   logger.Discard(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// isValidIdentifier checks if a string is a valid SQL identifier
func isValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

func (s *Seeder) Close() error {
	return s.adapter.Close()
}

func (s *Seeder) say(attr color.Attribute, format string, args ...any) {
	color.New(attr).Fprintf(s.progress, format+"\n", args...)
}

// Seed writes every table of ds in dependency order. Unless
// NoTransaction is set, truncation and inserts run in one transaction that
// is rolled back on the first error.
func (s *Seeder) Seed(ctx context.Context, ds *bank.Dataset, cfg SeedConfig) (Result, error) {
	return s.SeedTables(ctx, ds.Tables(), cfg)
}

func (s *Seeder) SeedTables(ctx context.Context, input []bank.Table, cfg SeedConfig) (Result, error) {
	db := s.adapter.DB()
	if db == nil {
		return Result{}, fmt.Errorf("adapter %s is not connected", s.adapter.Provider())
	}
	start := time.Now()
	s.say(color.FgCyan, "🌱 Starting database seeding...")

	graph := NewDependencyGraph()
	tables := make(map[string]*TableInfo)
	for _, t := range input {
		if !isValidIdentifier(t.Name) {
			return Result{}, fmt.Errorf("invalid table name: %s", t.Name)
		}
		for _, col := range t.Columns {
			if !isValidIdentifier(col.Name) {
				return Result{}, fmt.Errorf("invalid column name in table %s: %s", t.Name, col.Name)
			}
		}
		info := newTableInfo(t)
		tables[t.Name] = info
		graph.AddTable(info)
	}

	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return Result{}, fmt.Errorf("failed to build insertion order: %w", err)
	}
	if err := validateForeignKeys(tables, order); err != nil {
		return Result{}, fmt.Errorf("foreign key validation failed: %w", err)
	}

	s.say(color.FgGreen, "📊 Found %d tables", len(order))
	s.say(color.FgCyan, "📋 Insertion order: %s", strings.Join(order, " → "))
	s.logger.Debug("insertion order", "provider", s.adapter.Provider(), "order", order)

	// DDL runs outside the transaction; MySQL commits implicitly on it.
	if cfg.CreateSchema {
		for _, name := range order {
			if _, err := db.ExecContext(ctx, s.adapter.GenerateCreateTableSQL(tables[name].Table)); err != nil {
				return Result{}, fmt.Errorf("failed to create table %s: %w", name, err)
			}
		}
		s.logger.Info("schema ensured", "tables", len(order))
	}

	var exec database.Execer = db
	var tx *sql.Tx
	if !cfg.NoTransaction {
		tx, err = db.BeginTx(ctx, nil)
		if err != nil {
			return Result{}, fmt.Errorf("failed to begin transaction: %w", err)
		}
		exec = tx
		s.say(color.FgCyan, "🔒 Transaction started")
	}

	res, seedErr := s.seedAll(ctx, exec, tables, order, cfg)

	if tx != nil {
		if seedErr != nil {
			s.say(color.FgYellow, "🔄 Rolling back transaction due to error...")
			if rbErr := tx.Rollback(); rbErr != nil {
				return Result{}, fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, seedErr)
			}
			return Result{}, seedErr
		}
		if err := tx.Commit(); err != nil {
			return Result{}, fmt.Errorf("failed to commit transaction: %w", err)
		}
		s.say(color.FgCyan, "🔓 Transaction committed")
	} else if seedErr != nil {
		return res, seedErr
	}

	for _, name := range res.Order {
		s.metrics.ObserveWrite(s.adapter.Provider(), name, res.Rows[name])
	}
	s.metrics.ObserveWriteDuration(s.adapter.Provider(), start)
	s.say(color.FgGreen, "✅ Database seeding completed: %d rows in %s", res.Total(), time.Since(start).Round(time.Millisecond))
	return res, nil
}

func (s *Seeder) seedAll(ctx context.Context, exec database.Execer, tables map[string]*TableInfo, order []string, cfg SeedConfig) (Result, error) {
	res := Result{Order: order, Rows: make(map[string]int, len(order))}

	if cfg.Truncate {
		for i := len(order) - 1; i >= 0; i-- {
			if _, err := exec.ExecContext(ctx, s.adapter.GenerateTruncateSQL(order[i])); err != nil {
				return res, fmt.Errorf("failed to truncate %s: %w", order[i], err)
			}
		}
		s.say(color.FgYellow, "🧹 Truncated %d tables", len(order))
	}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n, err := s.seedTable(ctx, exec, tables[name].Table, cfg.Batch)
		if err != nil {
			return res, fmt.Errorf("failed to seed table %s: %w", name, err)
		}
		res.Rows[name] = n
	}
	return res, nil
}

// validateForeignKeys checks that every referenced table is seeded first.
func validateForeignKeys(tables map[string]*TableInfo, order []string) error {
	orderIndex := make(map[string]int)
	for i, name := range order {
		orderIndex[name] = i
	}

	for _, table := range tables {
		for _, col := range table.Table.Columns {
			if col.References == "" {
				continue
			}
			refIdx, exists := orderIndex[col.References]
			if !exists {
				return fmt.Errorf("table %s has FK column %s referencing non-existent table %s",
					table.Name, col.Name, col.References)
			}
			if refIdx >= orderIndex[table.Name] {
				return fmt.Errorf("table %s has FK column %s but referenced table %s is seeded later",
					table.Name, col.Name, col.References)
			}
		}
	}
	return nil
}

func batchSize(requested, columns int) int {
	if requested <= 0 {
		requested = defaultBatch
	}
	if columns > 0 && requested*columns > maxPlaceholders {
		requested = maxPlaceholders / columns
	}
	return max(requested, 1)
}

func (s *Seeder) seedTable(ctx context.Context, exec database.Execer, table bank.Table, batch int) (int, error) {
	s.say(color.FgCyan, "  📝 Seeding %s (%d records)...", table.Name, len(table.Rows))

	size := batchSize(batch, len(table.Columns))
	written := 0
	for lo := 0; lo < len(table.Rows); lo += size {
		hi := min(lo+size, len(table.Rows))
		if err := s.insertBatch(ctx, exec, table, table.Rows[lo:hi]); err != nil {
			return written, fmt.Errorf("failed to insert batch at row %d: %w", lo, err)
		}
		written += hi - lo
	}

	s.logger.Debug("table seeded", "table", table.Name, "rows", written)
	s.say(color.FgGreen, "  ✅ %s seeded successfully", table.Name)
	return written, nil
}

// insertBatch inserts rows in a single multi-row statement.
func (s *Seeder) insertBatch(ctx context.Context, exec database.Execer, table bank.Table, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	columns := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = s.adapter.QuoteIdentifier(col.Name)
	}

	q := s.adapter.Builder().
		Insert(s.adapter.QuoteIdentifier(table.Name)).
		Columns(columns...)
	for _, row := range rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("row has %d values, table %s has %d columns", len(row), table.Name, len(table.Columns))
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = s.adapter.ConvertValue(table.Columns[i], v)
		}
		q = q.Values(values...)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}
	_, err = exec.ExecContext(ctx, query, args...)
	return err
}
