package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/logger"
	"github.com/Rana718/fakebank/internal/metrics"
	"github.com/Rana718/fakebank/internal/synth"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

const (
	WorkbookFile = "fakebank.xlsx"
	DatabaseFile = "fakebank.db"
	ManifestFile = "manifest.yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatXLSX, FormatSQLite:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", synth.ErrConfiguration, s)
	}
}

// writer stores every table under dir and returns the file holding each one.
type writer func(ctx context.Context, dir string, tables []bank.Table) (map[string]string, error)

type Exporter struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
	manifest bool
}

type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Exporter) { e.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithManifest toggles manifest.yaml. It is written by default.
func WithManifest(on bool) Option {
	return func(e *Exporter) { e.manifest = on }
}

func New(opts ...Option) *Exporter {
	e := &Exporter{
		logger:   logger.Discard(),
		now:      time.Now,
		manifest: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes ds to dir in the given format. Files are written into a
// staging directory next to dir and moved into dir only once everything has
// been written; on error dir is left untouched. Files in dir that fakebank
// did not write are kept.
func (e *Exporter) Export(ctx context.Context, ds *bank.Dataset, dir string, format Format) (*Manifest, error) {
	start := e.now()
	write, err := e.writerFor(format)
	if err != nil {
		return nil, err
	}

	parent := filepath.Dir(filepath.Clean(dir))
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output parent directory: %w", err)
	}
	staging, err := os.MkdirTemp(parent, ".fakebank-staging-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			os.RemoveAll(staging)
		}
	}()

	tables := ds.Tables()
	files, err := write(ctx, staging, tables)
	if err != nil {
		return nil, fmt.Errorf("%s export failed: %w", format, err)
	}

	m := newManifest(ds, format, start, tables, files)
	if e.manifest {
		if err := m.WriteFile(filepath.Join(staging, ManifestFile)); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := publish(staging, dir); err != nil {
		return nil, err
	}
	committed = true

	if format != FormatSQLite {
		for _, t := range tables {
			e.metrics.ObserveWrite(string(format), t.Name, len(t.Rows))
		}
		e.metrics.ObserveWriteDuration(string(format), start)
	}
	e.logger.Info("dataset exported", "dir", dir, "format", format, "run_id", m.RunID,
		"rows", m.TotalRows(), "elapsed", time.Since(start).Round(time.Millisecond))
	return m, nil
}

func (e *Exporter) writerFor(format Format) (writer, error) {
	switch format {
	case FormatCSV, "":
		return exportToCSV, nil
	case FormatJSON:
		return exportToJSON, nil
	case FormatXLSX:
		return exportToXLSX, nil
	case FormatSQLite:
		return e.exportToSQLite, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", synth.ErrConfiguration, format)
	}
}

// publish moves the files written to staging into dir. Only files named by
// the new run or by the previous run's manifest are replaced or removed;
// anything else already in dir is left alone. On error dir is restored.
func publish(staging, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.Rename(staging, dir); err != nil {
			return fmt.Errorf("failed to move output into place: %w", err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	entries, err := os.ReadDir(staging)
	if err != nil {
		return fmt.Errorf("failed to read staging directory: %w", err)
	}
	fresh := make([]string, 0, len(entries))
	for _, entry := range entries {
		fresh = append(fresh, entry.Name())
	}

	backup := staging + ".old"
	if err := os.Mkdir(backup, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	defer os.RemoveAll(backup)

	var saved, placed []string
	rollback := func() {
		for _, name := range placed {
			os.Remove(filepath.Join(dir, name))
		}
		for _, name := range saved {
			os.Rename(filepath.Join(backup, name), filepath.Join(dir, name))
		}
	}

	for _, name := range ownedFiles(dir, fresh) {
		err := os.Rename(filepath.Join(dir, name), filepath.Join(backup, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			rollback()
			return fmt.Errorf("failed to move previous %s aside: %w", name, err)
		}
		saved = append(saved, name)
	}
	for _, name := range fresh {
		if err := os.Rename(filepath.Join(staging, name), filepath.Join(dir, name)); err != nil {
			rollback()
			return fmt.Errorf("failed to move %s into place: %w", name, err)
		}
		placed = append(placed, name)
	}
	os.Remove(staging)
	return nil
}

// ownedFiles lists the files of dir that belong to fakebank: the new run's
// files plus whatever the previous manifest recorded.
func ownedFiles(dir string, fresh []string) []string {
	owned := append([]string{ManifestFile}, fresh...)
	prev, err := ReadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return dedupe(owned)
	}
	for _, t := range prev.Tables {
		// a manifest only ever names files directly inside dir
		if t.File != "" && t.File == filepath.Base(t.File) && t.File != "." && t.File != ".." {
			owned = append(owned, t.File)
		}
	}
	return dedupe(owned)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func exportToCSV(ctx context.Context, dir string, tables []bank.Table) (map[string]string, error) {
	files := make(map[string]string, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := t.Name + ".csv"
		if err := writeCSV(filepath.Join(dir, name), t); err != nil {
			return nil, fmt.Errorf("failed to write CSV for %s: %w", t.Name, err)
		}
		files[t.Name] = name
	}
	return files, nil
}

func writeCSV(path string, t bank.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.ColumnNames()); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = col.Format(row[i])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}

func exportToJSON(ctx context.Context, dir string, tables []bank.Table) (map[string]string, error) {
	files := make(map[string]string, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records := make([]record, len(t.Rows))
		for i, row := range t.Rows {
			records[i] = record{columns: t.Columns, values: row}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", t.Name, err)
		}

		name := t.Name + ".json"
		if err := os.WriteFile(filepath.Join(dir, name), append(data, '\n'), 0644); err != nil {
			return nil, fmt.Errorf("failed to write file: %w", err)
		}
		files[t.Name] = name
	}
	return files, nil
}

// record marshals one row as an object with keys in column order.
type record struct {
	columns []bank.Column
	values  []any
}

func (r record) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, col := range r.columns {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(jsonValue(col, r.values[i]))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		buf = append(append(append(buf, key...), ':'), val...)
	}
	return append(buf, '}'), nil
}

func jsonValue(col bank.Column, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return x
	case decimal.Decimal:
		return json.Number(x.StringFixed(2))
	default:
		return col.Format(v)
	}
}
