package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/config"
	"github.com/Rana718/fakebank/internal/logger"
	"github.com/Rana718/fakebank/internal/metrics"
)

// bindFlags maps config keys to flags; a flag only overrides the file and
// environment when it is set on the command line.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// run carries what every command needs once configuration is resolved.
type run struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
}

func newRun() (*run, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	if f := viper.ConfigFileUsed(); f != "" {
		log.Debug("using config file", "path", f)
	}
	return &run{cfg: cfg, log: log, metrics: metrics.New()}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (r *run) generate(ctx context.Context) (*bank.Dataset, error) {
	opts, err := r.cfg.GenerationOptions()
	if err != nil {
		return nil, err
	}

	color.Cyan("🔨 Generating %d customers and %d ex-customers...", opts.CustomerCount, opts.ExCustomerCount)
	start := time.Now()
	p := bank.NewPipeline(bank.WithLogger(r.log), bank.WithObserver(r.metrics))
	ds, err := p.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	counts := ds.RowCounts()
	for _, name := range bank.TableNames {
		color.White("  • %-12s %d rows", name, counts[name])
	}
	if ds.SeedConfigured {
		color.Green("✅ Dataset generated in %s (seed %d)", time.Since(start).Round(time.Millisecond), ds.Seed)
	} else {
		color.Green("✅ Dataset generated in %s (seed %d, pass --seed %d to reproduce)",
			time.Since(start).Round(time.Millisecond), ds.Seed, ds.Seed)
	}
	return ds, nil
}

// finish records the outcome and writes the metrics textfile when one is
// configured. The run's error wins over a metrics write failure.
func (r *run) finish(err error) error {
	if err != nil {
		r.metrics.RunFailed()
	} else {
		r.metrics.RunSucceeded(time.Now())
	}

	if path := r.cfg.Metrics.Textfile; path != "" {
		if werr := r.metrics.WriteTextfile(path); werr != nil {
			if err != nil {
				r.log.Error("failed to write metrics textfile", "path", path, "error", werr)
				return err
			}
			return werr
		}
		r.log.Debug("metrics written", "path", path)
	}
	return err
}
