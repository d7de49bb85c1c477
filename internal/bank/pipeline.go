package bank

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Rana718/fakebank/internal/synth"
)

type ContactLocale string

const (
	// ContactLocaleDomestic synthesizes every contact with the domestic provider.
	ContactLocaleDomestic ContactLocale = "domestic"
	// ContactLocaleAddress follows the country of the first domicile.
	ContactLocaleAddress ContactLocale = "address"
)

// Options describes one generation run.
type Options struct {
	CustomerCount   int
	ExCustomerCount int
	ExcludeIDs      []string

	// Seed fixes the master stream; nil seeds from entropy.
	Seed *int64
	// ContactsPerCustomer fixes the contact count; nil draws 1 to 4.
	ContactsPerCustomer *int

	Cities []CityRegion
	// ReferenceDate is "today"; zero means the current UTC date.
	ReferenceDate time.Time
	ContactLocale ContactLocale
	// Parallel runs the dependent generators concurrently on forked streams.
	Parallel bool
}

// Observer receives per-step timings and row counts.
type Observer interface {
	ObserveStep(step string, d time.Duration)
	ObserveRows(table string, n int)
}

type Pipeline struct {
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
}

type PipelineOption func(*Pipeline)

func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithObserver(o Observer) PipelineOption {
	return func(p *Pipeline) { p.observer = o }
}

// WithClock overrides the clock used when no reference date is given.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks o and returns the exclusion set.
func (o Options) Validate() (map[string]struct{}, error) {
	if o.CustomerCount <= 0 {
		return nil, fmt.Errorf("%w: customer count must be > 0, got %d", synth.ErrConfiguration, o.CustomerCount)
	}
	if o.ExCustomerCount < 0 {
		return nil, fmt.Errorf("%w: ex-customer count must be >= 0, got %d", synth.ErrConfiguration, o.ExCustomerCount)
	}
	if o.ContactsPerCustomer != nil && *o.ContactsPerCustomer < 0 {
		return nil, fmt.Errorf("%w: contacts per customer must be >= 0, got %d", synth.ErrConfiguration, *o.ContactsPerCustomer)
	}
	if len(o.Cities) == 0 {
		return nil, fmt.Errorf("%w: city reference table is empty", synth.ErrConfiguration)
	}
	switch o.ContactLocale {
	case "", ContactLocaleDomestic, ContactLocaleAddress:
	default:
		return nil, fmt.Errorf("%w: unknown contact locale %q", synth.ErrConfiguration, o.ContactLocale)
	}
	excluded := make(map[string]struct{}, len(o.ExcludeIDs))
	for _, id := range o.ExcludeIDs {
		if !synth.IsID(id) {
			return nil, fmt.Errorf("%w: excluded id %q is not 9 digits", synth.ErrConfiguration, id)
		}
		excluded[id] = struct{}{}
	}
	return excluded, nil
}

// Generate runs every generator and verifies the result. It returns either a
// complete dataset or an error.
func (p *Pipeline) Generate(ctx context.Context, o Options) (*Dataset, error) {
	excluded, err := o.Validate()
	if err != nil {
		return nil, err
	}

	var src *synth.Source
	if o.Seed != nil {
		src = synth.NewSource(*o.Seed)
	} else {
		src = synth.NewEntropySource()
	}
	today := o.ReferenceDate
	if today.IsZero() {
		today = p.now().UTC()
	}
	env := NewEnv(src, today)

	ds := &Dataset{
		Seed:           src.Seed(),
		SeedConfigured: o.Seed != nil,
		ReferenceDate:  env.Today(),
	}
	p.logger.Info("generating dataset",
		"seed", ds.Seed,
		"reference_date", ds.ReferenceDate.Format(synth.DateLayout),
		"customers", o.CustomerCount,
		"ex_customers", o.ExCustomerCount,
		"parallel", o.Parallel,
	)

	err = p.step(ctx, TableCustomers, func() (n int, err error) {
		ds.Customers, err = GenerateCustomers(ctx, env, o.CustomerCount, excluded)
		return len(ds.Customers), err
	})
	if err != nil {
		return nil, err
	}

	err = p.step(ctx, TableExCustomers, func() (n int, err error) {
		taken := make(map[string]struct{}, len(excluded)+len(ds.Customers))
		for id := range excluded {
			taken[id] = struct{}{}
		}
		for _, c := range ds.Customers {
			taken[c.ID] = struct{}{}
		}
		ds.ExCustomers, err = GenerateExCustomers(ctx, env, o.ExCustomerCount, taken)
		return len(ds.ExCustomers), err
	})
	if err != nil {
		return nil, err
	}

	if o.Parallel {
		err = p.dependentsParallel(ctx, env, o, ds)
	} else {
		err = p.dependents(ctx, env, o, ds)
	}
	if err != nil {
		return nil, err
	}

	if err := Verify(ds, VerifyOptions{Excluded: excluded, Cities: o.Cities}); err != nil {
		return nil, err
	}
	return ds, nil
}

type generator struct {
	table string
	run   func(ctx context.Context, env *Env) (int, error)
}

// plan lists the dependent generators in draw order. Each closure writes a
// distinct field of ds.
func plan(o Options, ds *Dataset) []generator {
	contractGen := generator{TableContracts, func(ctx context.Context, env *Env) (n int, err error) {
		ds.Catalog = NewCatalog(env.src)
		ds.Contracts, err = GenerateContracts(ctx, env, ds.Catalog, ds.Customers)
		return len(ds.Contracts), err
	}}
	contactGen := generator{TableContacts, func(ctx context.Context, env *Env) (n int, err error) {
		copts := ContactOptions{PerCustomer: o.ContactsPerCustomer}
		if o.ContactLocale == ContactLocaleAddress {
			copts.Residence = Residences(ds.Addresses)
		}
		ds.Contacts, err = GenerateContacts(ctx, env, ds.Customers, copts)
		return len(ds.Contacts), err
	}}
	addressGen := generator{TableAddresses, func(ctx context.Context, env *Env) (n int, err error) {
		ds.Addresses, err = GenerateAddresses(ctx, env, ds.Customers, o.Cities)
		return len(ds.Addresses), err
	}}
	transferGen := generator{TableTransfers, func(ctx context.Context, env *Env) (n int, err error) {
		ds.Transfers, err = GenerateTransfers(ctx, env, ds.Customers)
		return len(ds.Transfers), err
	}}
	fraudGen := generator{TableFraudHolds, func(ctx context.Context, env *Env) (n int, err error) {
		ds.FraudHolds, err = GenerateFraudHolds(ctx, env, ds.Customers)
		return len(ds.FraudHolds), err
	}}

	if o.ContactLocale == ContactLocaleAddress {
		return []generator{contractGen, addressGen, contactGen, transferGen, fraudGen}
	}
	return []generator{contractGen, contactGen, addressGen, transferGen, fraudGen}
}

func (p *Pipeline) dependents(ctx context.Context, env *Env, o Options, ds *Dataset) error {
	for _, g := range plan(o, ds) {
		if err := p.step(ctx, g.table, func() (int, error) { return g.run(ctx, env) }); err != nil {
			return err
		}
	}
	return nil
}

// dependentsParallel runs each generator on env.Fork(table). In address
// mode contacts wait for addresses since they read its residences.
func (p *Pipeline) dependentsParallel(ctx context.Context, env *Env, o Options, ds *Dataset) error {
	g, gctx := errgroup.WithContext(ctx)
	addressesDone := make(chan struct{})
	addressesOK := false

	for _, gen := range plan(o, ds) {
		forked := env.Fork(gen.table)
		g.Go(func() error {
			if gen.table == TableAddresses {
				defer close(addressesDone)
			}
			if gen.table == TableContacts && o.ContactLocale == ContactLocaleAddress {
				select {
				case <-addressesDone:
				case <-gctx.Done():
					return gctx.Err()
				}
				if !addressesOK {
					return nil
				}
			}
			err := p.step(gctx, gen.table, func() (int, error) { return gen.run(gctx, forked) })
			if gen.table == TableAddresses && err == nil {
				addressesOK = true
			}
			return err
		})
	}
	return g.Wait()
}

func (p *Pipeline) step(ctx context.Context, table string, run func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	n, err := run()
	if err != nil {
		p.logger.Error("generation failed", "table", table, "error", err)
		return err
	}
	elapsed := time.Since(start)
	if p.observer != nil {
		p.observer.ObserveStep(table, elapsed)
		p.observer.ObserveRows(table, n)
	}
	p.logger.Debug("generated table", "table", table, "rows", n, "elapsed", elapsed)
	return nil
}
