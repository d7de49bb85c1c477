package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/fakebank/internal/export"
	"github.com/Rana718/fakebank/internal/synth"
)

func TestGenerateCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	prom := filepath.Join(t.TempDir(), "fakebank.prom")

	rootCmd.SetArgs([]string{
		"generate",
		"--customers", "5",
		"--ex-customers", "2",
		"--seed", "42",
		"--reference-date", "2024-01-01",
		"--cities", "../data/in/cities_regions.csv",
		"--out", dir,
		"--format", "json",
		"--metrics-textfile", prom,
		"--log-level", "warn",
	})
	require.NoError(t, Execute())

	m, err := export.ReadManifest(filepath.Join(dir, export.ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, int64(42), m.Seed)
	assert.True(t, m.SeedConfigured)
	assert.Equal(t, "2024-01-01", m.ReferenceDate)
	assert.Equal(t, export.FormatJSON, m.Format)
	assert.Equal(t, 5, m.Tables[0].Rows)
	assert.FileExists(t, filepath.Join(dir, "fraud_holds.json"))

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fakebank_rows_generated{table="customers"} 5`)
	assert.Contains(t, string(data), "fakebank_last_run_success_timestamp_seconds")
}

func TestGenerateCommand_InvalidConfig(t *testing.T) {
	rootCmd.SetArgs([]string{
		"generate",
		"--customers", "0",
		"--cities", "../data/in/cities_regions.csv",
		"--out", filepath.Join(t.TempDir(), "out"),
	})
	err := Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, synth.ErrConfiguration)
}
