package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/synth"
)

const (
	EnvPrefix  = "FAKEBANK"
	ConfigName = "fakebank.config"
)

type Config struct {
	CustomerCount       int      `json:"customer_count" mapstructure:"customer_count" validate:"gt=0"`
	ExCustomerCount     int      `json:"ex_customer_count" mapstructure:"ex_customer_count" validate:"gte=0"`
	ExcludeIDs          []string `json:"exclude_ids" mapstructure:"exclude_ids" validate:"dive,len=9,numeric"`
	ExcludeIDsFile      string   `json:"exclude_ids_file" mapstructure:"exclude_ids_file"`
	Seed                *int64   `json:"seed,omitempty" mapstructure:"seed"`
	ContactsPerCustomer *int     `json:"contacts_per_customer,omitempty" mapstructure:"contacts_per_customer" validate:"omitempty,gte=0"`
	ReferenceDate       string   `json:"reference_date,omitempty" mapstructure:"reference_date" validate:"omitempty,datetime=2006-01-02"`
	CitiesPath          string   `json:"cities_path" mapstructure:"cities_path" validate:"required"`
	ContactLocale       string   `json:"contact_locale" mapstructure:"contact_locale" validate:"oneof=domestic address"`
	Parallel            bool     `json:"parallel" mapstructure:"parallel"`
	Output              Output   `json:"output" mapstructure:"output"`
	Database            Database `json:"database" mapstructure:"database"`
	Metrics             Metrics  `json:"metrics" mapstructure:"metrics"`
	Log                 Log      `json:"log" mapstructure:"log"`
}

type Output struct {
	Dir      string `json:"dir" mapstructure:"dir" validate:"required"`
	Format   string `json:"format" mapstructure:"format" validate:"oneof=csv json xlsx sqlite"`
	Manifest bool   `json:"manifest" mapstructure:"manifest"`
}

type Database struct {
	Provider      string `json:"provider" mapstructure:"provider" validate:"oneof=postgresql postgres mysql sqlite sqlite3"`
	Driver        string `json:"driver" mapstructure:"driver" validate:"oneof=pgx pq"`
	URLEnv        string `json:"url_env" mapstructure:"url_env" validate:"required"`
	Batch         int    `json:"batch" mapstructure:"batch" validate:"gt=0"`
	Truncate      bool   `json:"truncate" mapstructure:"truncate"`
	CreateSchema  bool   `json:"create_schema" mapstructure:"create_schema"`
	NoTransaction bool   `json:"no_transaction" mapstructure:"no_transaction"`
}

type Metrics struct {
	Textfile string `json:"textfile" mapstructure:"textfile"`
}

type Log struct {
	Level  string `json:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" mapstructure:"format" validate:"oneof=text json"`
}

// SetDefaults registers every default on v. Keys without a default (seed,
// contacts_per_customer, reference_date) stay unset unless configured.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("customer_count", 1000)
	v.SetDefault("ex_customer_count", 200)
	v.SetDefault("exclude_ids", []string{})
	v.SetDefault("exclude_ids_file", "")
	v.SetDefault("cities_path", "data/in/cities_regions.csv")
	v.SetDefault("contact_locale", string(bank.ContactLocaleDomestic))
	v.SetDefault("parallel", false)
	v.SetDefault("output.dir", "data/out")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.manifest", true)
	v.SetDefault("database.provider", "postgresql")
	v.SetDefault("database.driver", "pgx")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("database.batch", 500)
	v.SetDefault("database.truncate", false)
	v.SetDefault("database.create_schema", true)
	v.SetDefault("database.no_transaction", false)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// BindEnv makes FAKEBANK_* variables override configuration keys, with "."
// mapped to "_" (FAKEBANK_OUTPUT_FORMAT).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"seed", "contacts_per_customer", "reference_date"} {
		_ = v.BindEnv(key)
	}
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v and merges exclude_ids_file into ExcludeIDs.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", synth.ErrConfiguration, err)
	}
	if !v.IsSet("seed") {
		cfg.Seed = nil
	}
	if !v.IsSet("contacts_per_customer") {
		cfg.ContactsPerCustomer = nil
	}

	if cfg.ExcludeIDsFile != "" {
		ids, err := readIDFile(cfg.ExcludeIDsFile)
		if err != nil {
			return nil, err
		}
		cfg.ExcludeIDs = append(cfg.ExcludeIDs, ids...)
	}
	return &cfg, nil
}

// readIDFile reads one id per line; blank lines and # comments are skipped.
func readIDFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: exclude_ids_file: %v", synth.ErrConfiguration, err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: exclude_ids_file: %v", synth.ErrConfiguration, err)
	}
	return ids, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", synth.ErrConfiguration, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", synth.ErrConfiguration, strings.Join(msgs, ", "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "gt":
		return fmt.Sprintf("'%s' must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "len":
		return fmt.Sprintf("'%s' must have length %s", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("'%s' must be numeric", field)
	case "datetime":
		return fmt.Sprintf("'%s' must be a YYYY-MM-DD date", field)
	}
	return fmt.Sprintf("'%s' failed validation for '%s'", field, fe.Tag())
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("%w: database URL not found in environment variable %s", synth.ErrConfiguration, c.Database.URLEnv)
	}
	return dbURL, nil
}

// EnsureDirectories creates the parent of the output directory so the
// exporter can stage next to it.
func (c *Config) EnsureDirectories() error {
	parent := filepath.Dir(filepath.Clean(c.Output.Dir))
	if parent == "." || parent == "/" {
		return nil
	}
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", parent, err)
	}
	return nil
}

// ParseReferenceDate returns the configured reference day, or the zero time
// when unset.
func (c *Config) ParseReferenceDate() (time.Time, error) {
	if c.ReferenceDate == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(synth.DateLayout, c.ReferenceDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: reference_date: %v", synth.ErrConfiguration, err)
	}
	return t, nil
}

// GenerationOptions builds the pipeline options, loading the city reference
// table from CitiesPath.
func (c *Config) GenerationOptions() (bank.Options, error) {
	ref, err := c.ParseReferenceDate()
	if err != nil {
		return bank.Options{}, err
	}
	cities, err := bank.LoadCityRegions(c.CitiesPath)
	if err != nil {
		return bank.Options{}, err
	}
	return bank.Options{
		CustomerCount:       c.CustomerCount,
		ExCustomerCount:     c.ExCustomerCount,
		ExcludeIDs:          c.ExcludeIDs,
		Seed:                c.Seed,
		ContactsPerCustomer: c.ContactsPerCustomer,
		Cities:              cities,
		ReferenceDate:       ref,
		ContactLocale:       bank.ContactLocale(c.ContactLocale),
		Parallel:            c.Parallel,
	}, nil
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}
