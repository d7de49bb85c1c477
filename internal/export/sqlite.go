package export

import (
	"context"
	"path/filepath"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/database"
	"github.com/Rana718/fakebank/internal/seeder"
)

// exportToSQLite loads the tables into a fresh database file through the
// same seeder used for live databases.
func (e *Exporter) exportToSQLite(ctx context.Context, dir string, tables []bank.Table) (map[string]string, error) {
	adapter := database.NewSQLiteAdapter()
	if err := adapter.Connect(ctx, filepath.Join(dir, DatabaseFile)); err != nil {
		return nil, err
	}
	defer adapter.Close()

	s := seeder.New(adapter, seeder.WithLogger(e.logger), seeder.WithMetrics(e.metrics))
	if _, err := s.SeedTables(ctx, tables, seeder.SeedConfig{CreateSchema: true}); err != nil {
		return nil, err
	}

	files := make(map[string]string, len(tables))
	for _, t := range tables {
		files[t.Name] = DatabaseFile
	}
	return files, adapter.Close()
}
