package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/synth"
)

func load(t *testing.T, yaml string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.CustomerCount)
	assert.Equal(t, 200, cfg.ExCustomerCount)
	assert.Nil(t, cfg.Seed)
	assert.Nil(t, cfg.ContactsPerCustomer)
	assert.Empty(t, cfg.ReferenceDate)
	assert.Equal(t, "data/in/cities_regions.csv", cfg.CitiesPath)
	assert.Equal(t, "domestic", cfg.ContactLocale)
	assert.Equal(t, "data/out", cfg.Output.Dir)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Output.Manifest)
	assert.Equal(t, "postgresql", cfg.Database.Provider)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
	assert.Equal(t, 500, cfg.Database.Batch)
	assert.True(t, cfg.Database.CreateSchema)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_File(t *testing.T) {
	cfg := load(t, `
customer_count: 5
ex_customer_count: 0
seed: 42
contacts_per_customer: 0
reference_date: "2024-06-30"
exclude_ids: ["000000001"]
contact_locale: address
parallel: true
output:
  format: xlsx
  manifest: false
database:
  provider: sqlite
  batch: 50
`)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	require.NotNil(t, cfg.ContactsPerCustomer)
	assert.Equal(t, 0, *cfg.ContactsPerCustomer)
	assert.Equal(t, []string{"000000001"}, cfg.ExcludeIDs)
	assert.Equal(t, "xlsx", cfg.Output.Format)
	assert.False(t, cfg.Output.Manifest)
	assert.True(t, cfg.IsSQLite())
	assert.Equal(t, 50, cfg.Database.Batch)
	assert.NoError(t, cfg.Validate())

	ref, err := cfg.ParseReferenceDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), ref)
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("FAKEBANK_SEED", "7")
	t.Setenv("FAKEBANK_OUTPUT_FORMAT", "json")
	t.Setenv("FAKEBANK_CUSTOMER_COUNT", "12")

	v := viper.New()
	BindEnv(v)
	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 12, cfg.CustomerCount)
}

func TestLoadFrom_ExcludeIDsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.txt")
	require.NoError(t, os.WriteFile(path, []byte("# reserved\n000000002\n\n  000000003 \n"), 0644))

	cfg := load(t, "exclude_ids: [\"000000001\"]\nexclude_ids_file: "+path+"\n")
	assert.Equal(t, []string{"000000001", "000000002", "000000003"}, cfg.ExcludeIDs)

	v := viper.New()
	v.Set("exclude_ids_file", filepath.Join(t.TempDir(), "missing.txt"))
	_, err := LoadFrom(v)
	assert.ErrorIs(t, err, synth.ErrConfiguration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero customers", "customer_count: 0", "'customer_count' must be greater than 0"},
		{"negative ex-customers", "ex_customer_count: -1", "'ex_customer_count' must be at least 0"},
		{"short excluded id", "exclude_ids: [\"123\"]", "'exclude_ids[0]' must have length 9"},
		{"non-numeric excluded id", "exclude_ids: [\"12345678a\"]", "'exclude_ids[0]' must be numeric"},
		{"negative contacts", "contacts_per_customer: -2", "'contacts_per_customer' must be at least 0"},
		{"bad date", "reference_date: 2024-13-01", "'reference_date' must be a YYYY-MM-DD date"},
		{"bad locale", "contact_locale: moon", "'contact_locale' must be one of"},
		{"bad format", "output:\n  format: parquet", "'output.format' must be one of"},
		{"bad provider", "database:\n  provider: oracle", "'database.provider' must be one of"},
		{"bad driver", "database:\n  driver: odbc", "'database.driver' must be one of"},
		{"zero batch", "database:\n  batch: 0", "'database.batch' must be greater than 0"},
		{"bad level", "log:\n  level: trace", "'log.level' must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := load(t, tt.yaml).Validate()
			require.ErrorIs(t, err, synth.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := &Config{Database: Database{URLEnv: "FAKEBANK_TEST_DB_URL"}}
	_, err := cfg.GetDatabaseURL()
	assert.ErrorIs(t, err, synth.ErrConfiguration)

	t.Setenv("FAKEBANK_TEST_DB_URL", "postgres://localhost/bank")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/bank", url)
}

func TestGenerationOptions(t *testing.T) {
	cities := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(cities, []byte("city,region\nMadrid,Comunidad de Madrid\n"), 0644))

	cfg := load(t, "seed: 3\nreference_date: \"2023-01-15\"\ncities_path: "+cities+"\ncontact_locale: address\n")
	opts, err := cfg.GenerationOptions()
	require.NoError(t, err)

	assert.Equal(t, 1000, opts.CustomerCount)
	assert.Equal(t, int64(3), *opts.Seed)
	assert.Equal(t, bank.ContactLocaleAddress, opts.ContactLocale)
	assert.Equal(t, []bank.CityRegion{{City: "Madrid", Region: "Comunidad de Madrid"}}, opts.Cities)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), opts.ReferenceDate)

	cfg.CitiesPath = filepath.Join(t.TempDir(), "none.csv")
	_, err = cfg.GenerationOptions()
	assert.ErrorIs(t, err, synth.ErrConfiguration)
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{Output: Output{Dir: filepath.Join(root, "nested", "out")}}
	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, filepath.Join(root, "nested"))
	assert.NoDirExists(t, filepath.Join(root, "nested", "out"))
}
