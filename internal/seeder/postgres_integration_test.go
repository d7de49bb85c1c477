//go:build integration

package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/database"
)

func postgresURL(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("fakebank"),
		tcpostgres.WithUsername("fakebank"),
		tcpostgres.WithPassword("fakebank"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	return url
}

func TestSeed_Postgres(t *testing.T) {
	url := postgresURL(t)
	ds := dataset(t)

	for _, driver := range []string{"pgx", "pq"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			a, err := database.NewPostgresAdapter(driver)
			require.NoError(t, err)
			require.NoError(t, a.Connect(ctx, url))
			t.Cleanup(func() { a.Close() })
			require.NoError(t, a.Ping(ctx))

			res, err := New(a).Seed(ctx, ds, SeedConfig{CreateSchema: true, Truncate: true, Batch: 50})
			require.NoError(t, err)
			assert.Equal(t, len(ds.Transfers), res.Rows[bank.TableTransfers])
			assert.Equal(t, len(ds.FraudHolds), count(t, a, bank.TableFraudHolds))

			var total string
			require.NoError(t, a.DB().QueryRowContext(ctx, `SELECT sum("amount")::text FROM "transfers"`).Scan(&total))
			want := ds.Transfers[0].Amount
			for _, tr := range ds.Transfers[1:] {
				want = want.Add(tr.Amount)
			}
			assert.Equal(t, want.StringFixed(2), total)
		})
	}
}
