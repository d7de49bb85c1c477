package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/fakebank/internal/database"
	"github.com/Rana718/fakebank/internal/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the dataset and load it into a database",
	Long: `
Generates the dataset and inserts it into the database named by the
database.url_env environment variable (DATABASE_URL by default). Tables are
created when missing, filled customers first, and written inside a single
transaction unless --no-transaction is given.

Examples:
  fakebank seed --customers 100 --seed 1
  fakebank seed --provider mysql --truncate
  fakebank seed --provider postgresql --driver pq --batch 1000`,
	RunE: runSeed,
}

func init() {
	f := seedCmd.Flags()
	addGenerationFlags(seedCmd)
	f.String("provider", "postgresql", "database provider (postgresql, mysql, sqlite)")
	f.String("driver", "pgx", "PostgreSQL driver (pgx, pq)")
	f.Int("batch", 500, "rows per INSERT statement")
	f.Bool("truncate", false, "clear the tables before inserting")
	f.Bool("create-schema", true, "create missing tables")
	f.Bool("no-transaction", false, "insert without a wrapping transaction")

	bindFlags(f, map[string]string{
		"database.provider":       "provider",
		"database.driver":         "driver",
		"database.batch":          "batch",
		"database.truncate":       "truncate",
		"database.create_schema":  "create-schema",
		"database.no_transaction": "no-transaction",
	})
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	r, err := newRun()
	if err != nil {
		return err
	}
	return r.finish(r.seed())
}

func (r *run) seed() error {
	ctx, stop := signalContext()
	defer stop()

	db := r.cfg.Database
	adapter, err := database.NewAdapter(db.Provider, db.Driver)
	if err != nil {
		return err
	}
	dbURL, err := r.cfg.GetDatabaseURL()
	if err != nil {
		return err
	}

	// connect before generating so a bad URL fails fast
	if err := adapter.Connect(ctx, dbURL); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer adapter.Close()
	if err := adapter.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	r.log.Info("connected", "provider", adapter.Provider())

	ds, err := r.generate(ctx)
	if err != nil {
		return err
	}

	s := seeder.New(adapter,
		seeder.WithLogger(r.log),
		seeder.WithMetrics(r.metrics),
		seeder.WithProgress(color.Output),
	)
	res, err := s.Seed(ctx, ds, seeder.SeedConfig{
		Batch:         db.Batch,
		Truncate:      db.Truncate,
		CreateSchema:  db.CreateSchema,
		NoTransaction: db.NoTransaction,
	})
	if err != nil {
		return err
	}
	r.log.Info("seed completed", "provider", adapter.Provider(), "rows", res.Total())
	return nil
}
