package export

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/synth"
)

// Manifest describes one exported run.
type Manifest struct {
	RunID          string          `yaml:"run_id"`
	GeneratedAt    string          `yaml:"generated_at"`
	ReferenceDate  string          `yaml:"reference_date"`
	Seed           int64           `yaml:"seed"`
	SeedConfigured bool            `yaml:"seed_configured"`
	Format         Format          `yaml:"format"`
	Tables         []ManifestTable `yaml:"tables"`
}

type ManifestTable struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	File string `yaml:"file"`
}

func newManifest(ds *bank.Dataset, format Format, at time.Time, tables []bank.Table, files map[string]string) *Manifest {
	m := &Manifest{
		RunID:          uuid.NewString(),
		GeneratedAt:    at.UTC().Format(time.RFC3339),
		ReferenceDate:  ds.ReferenceDate.Format(synth.DateLayout),
		Seed:           ds.Seed,
		SeedConfigured: ds.SeedConfigured,
		Format:         format,
	}
	for _, t := range tables {
		m.Tables = append(m.Tables, ManifestTable{Name: t.Name, Rows: len(t.Rows), File: files[t.Name]})
	}
	return m
}

func (m *Manifest) TotalRows() int {
	n := 0
	for _, t := range m.Tables {
		n += t.Rows
	}
	return n
}

func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}
