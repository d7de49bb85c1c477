package bank_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

var (
	refDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	cities  = []bank.CityRegion{
		{City: "Madrid", Region: "Comunidad de Madrid"},
		{City: "Barcelona", Region: "Cataluña"},
		{City: "Sevilla", Region: "Andalucía"},
		{City: "Bilbao", Region: "País Vasco"},
	}
)

func seeded(seed int64) *int64 { return &seed }

func baseOptions() bank.Options {
	return bank.Options{
		CustomerCount:   50,
		ExCustomerCount: 10,
		Seed:            seeded(7),
		Cities:          cities,
		ReferenceDate:   refDate,
	}
}

func generate(t *testing.T, o bank.Options) *bank.Dataset {
	t.Helper()
	ds, err := bank.NewPipeline().Generate(context.Background(), o)
	require.NoError(t, err)
	return ds
}

func TestGenerate_FiveCustomersSeed42(t *testing.T) {
	o := baseOptions()
	o.CustomerCount = 5
	o.ExCustomerCount = 0
	o.Seed = seeded(42)
	ds := generate(t, o)

	require.Len(t, ds.Customers, 5)
	assert.Empty(t, ds.ExCustomers)
	assert.Len(t, ds.FraudHolds, 1)
	assert.True(t, ds.SeedConfigured)
	assert.Equal(t, int64(42), ds.Seed)

	ids := map[string]bool{}
	for _, c := range ds.Customers {
		assert.True(t, synth.IsID(c.ID), c.ID)
		ids[c.ID] = true
	}
	assert.Len(t, ids, 5)

	perSender := map[string]int{}
	for _, tr := range ds.Transfers {
		perSender[tr.SenderID]++
		assert.NotEqual(t, tr.SenderID, tr.ReceiverID)
		assert.True(t, ids[tr.ReceiverID])
	}
	for id := range ids {
		assert.GreaterOrEqual(t, perSender[id], 2)
		assert.LessOrEqual(t, perSender[id], 20)
	}

	perCustomer := map[string]int{}
	for _, ct := range ds.Contracts {
		perCustomer[ct.CustomerID]++
	}
	for id := range ids {
		assert.GreaterOrEqual(t, perCustomer[id], 3)
		assert.LessOrEqual(t, perCustomer[id], 15)
	}
}

func TestGenerate_ExcludedIDNeverAppears(t *testing.T) {
	o := baseOptions()
	o.CustomerCount = 200
	o.ExCustomerCount = 100
	o.ExcludeIDs = []string{"000000001"}
	ds := generate(t, o)

	for _, c := range ds.Customers {
		assert.NotEqual(t, "000000001", c.ID)
	}
	for _, c := range ds.ExCustomers {
		assert.NotEqual(t, "000000001", c.ID)
	}
}

func TestGenerate_CustomerAndExCustomerIDsDisjoint(t *testing.T) {
	ds := generate(t, baseOptions())
	live := map[string]bool{}
	for _, c := range ds.Customers {
		live[c.ID] = true
	}
	for _, c := range ds.ExCustomers {
		assert.False(t, live[c.ID], c.ID)
	}
}

func TestGenerate_TemporalOrdering(t *testing.T) {
	ds := generate(t, baseOptions())
	end := synth.EndOfDay(refDate)

	for _, c := range ds.Customers {
		assert.False(t, c.EnrollmentDate.Before(c.BirthDate))
		assert.False(t, c.EnrollmentDate.After(refDate))
		assert.False(t, c.BirthDate.Before(synth.YearsBefore(refDate, 120)))
	}
	for _, c := range ds.ExCustomers {
		assert.False(t, c.ExclusionDate.Before(c.EnrollmentDate))
		if c.ReactivationDate != nil {
			assert.False(t, c.ReactivationDate.Before(c.ExclusionDate))
		}
	}
	for _, ct := range ds.Contracts {
		assert.Equal(t, ct.Status == bank.StatusActive, synth.IsSentinel(ct.CloseDate))
		assert.False(t, ct.CloseDate.Before(ct.OpenDate))
	}
	for _, h := range ds.FraudHolds {
		assert.False(t, h.InclusionTimestamp.After(end))
		if h.BlockTimestamp != nil {
			assert.Equal(t, bank.FraudBlocked, h.Status)
			assert.False(t, h.BlockTimestamp.Before(h.InclusionTimestamp))
			assert.False(t, h.BlockTimestamp.After(end))
		} else {
			assert.Equal(t, bank.FraudUnderInvestigation, h.Status)
		}
	}
	for _, tr := range ds.Transfers {
		assert.False(t, tr.Timestamp.After(end))
	}
}

func TestGenerate_ContractCodes(t *testing.T) {
	ds := generate(t, baseOptions())
	require.NotNil(t, ds.Catalog)
	assert.Len(t, ds.Catalog.SubproductProducts(), 10)

	for _, ct := range ds.Contracts {
		assert.True(t, ds.Catalog.HasBranch(ct.CompanyCode, ct.BranchCode))
		if ds.Catalog.HasSubproduct(ct.ProductCode) {
			assert.NotEqual(t, bank.NoSubproduct, ct.SubproductCode)
			assert.Contains(t, ds.Catalog.Subproducts, ct.SubproductCode)
		} else {
			assert.Equal(t, bank.NoSubproduct, ct.SubproductCode)
		}
		assert.Len(t, ct.ContractNumber, 7)
	}
}

func TestGenerate_AddressesDenseAndCoherent(t *testing.T) {
	ds := generate(t, baseOptions())
	pairs := map[bank.CityRegion]bool{}
	for _, cr := range cities {
		pairs[cr] = true
	}

	seqs := map[string][]int{}
	for _, a := range ds.Addresses {
		seqs[a.CustomerID] = append(seqs[a.CustomerID], a.SequenceNumber)
		if a.Country == "Spain" {
			assert.True(t, pairs[bank.CityRegion{City: a.City, Region: a.Region}], "%s/%s", a.City, a.Region)
		} else {
			assert.Contains(t, []string{"France", "Germany", "United States"}, a.Country)
			assert.True(t, locale.KnownPlace(locale.ParseCountry(a.Country), a.City, a.Region),
				"%s: %s/%s", a.Country, a.City, a.Region)
		}
	}
	require.Len(t, seqs, len(ds.Customers))
	for id, s := range seqs {
		assert.ElementsMatch(t, denseFrom1(len(s)), s, id)
	}
}

func denseFrom1(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestGenerate_Reproducible(t *testing.T) {
	a := generate(t, baseOptions())
	b := generate(t, baseOptions())
	assert.Equal(t, a.Tables(), b.Tables())

	o := baseOptions()
	o.Seed = seeded(8)
	c := generate(t, o)
	assert.NotEqual(t, a.Tables()[0].Rows, c.Tables()[0].Rows)
}

func TestGenerate_ParallelReproducible(t *testing.T) {
	o := baseOptions()
	o.Parallel = true
	a := generate(t, o)
	b := generate(t, o)
	assert.Equal(t, a.Tables(), b.Tables())

	seq := generate(t, baseOptions())
	assert.Equal(t, seq.Customers, a.Customers, "customer tables share the master stream")
}

func TestGenerate_AddressContactLocale(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		o := baseOptions()
		o.ContactLocale = bank.ContactLocaleAddress
		o.Parallel = parallel
		ds := generate(t, o)
		assert.NotEmpty(t, ds.Contacts)

		res := bank.Residences(ds.Addresses)
		assert.Len(t, res, len(ds.Customers))
	}
}

func TestGenerate_FixedContactCount(t *testing.T) {
	o := baseOptions()
	o.ContactsPerCustomer = new(int)
	ds := generate(t, o)
	assert.Empty(t, ds.Contacts)

	three := 3
	o.ContactsPerCustomer = &three
	ds = generate(t, o)
	assert.Len(t, ds.Contacts, 3*len(ds.Customers))
}

func TestGenerate_DefaultsToClock(t *testing.T) {
	o := baseOptions()
	o.ReferenceDate = time.Time{}
	clock := func() time.Time { return time.Date(2020, 2, 29, 15, 4, 5, 0, time.UTC) }
	ds, err := bank.NewPipeline(bank.WithClock(clock)).Generate(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), ds.ReferenceDate)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*bank.Options)
	}{
		{"zero customers", func(o *bank.Options) { o.CustomerCount = 0 }},
		{"negative ex-customers", func(o *bank.Options) { o.ExCustomerCount = -1 }},
		{"negative contacts", func(o *bank.Options) { n := -1; o.ContactsPerCustomer = &n }},
		{"no cities", func(o *bank.Options) { o.Cities = nil }},
		{"bad contact locale", func(o *bank.Options) { o.ContactLocale = "moon" }},
		{"bad excluded id", func(o *bank.Options) { o.ExcludeIDs = []string{"12ab"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := baseOptions()
			tt.mutate(&o)
			_, err := bank.NewPipeline().Generate(context.Background(), o)
			assert.ErrorIs(t, err, synth.ErrConfiguration)
		})
	}
}

func TestGenerate_SingleCustomerFailsTransfers(t *testing.T) {
	o := baseOptions()
	o.CustomerCount = 1
	_, err := bank.NewPipeline().Generate(context.Background(), o)
	assert.ErrorIs(t, err, synth.ErrPrecondition)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ds, err := bank.NewPipeline().Generate(ctx, baseOptions())
	assert.Nil(t, ds)
	assert.True(t, errors.Is(err, context.Canceled))
}

type recorder struct {
	steps []string
	rows  map[string]int
}

func (r *recorder) ObserveStep(step string, _ time.Duration) { r.steps = append(r.steps, step) }
func (r *recorder) ObserveRows(table string, n int)          { r.rows[table] = n }

func TestGenerate_ObserverSeesEveryTable(t *testing.T) {
	rec := &recorder{rows: map[string]int{}}
	ds, err := bank.NewPipeline(bank.WithObserver(rec)).Generate(context.Background(), baseOptions())
	require.NoError(t, err)
	assert.Equal(t, bank.TableNames, rec.steps)
	assert.Equal(t, ds.RowCounts(), rec.rows)
}

func TestGenerateCustomers_DocTypeDistribution(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(2024), refDate)
	customers, err := bank.GenerateCustomers(context.Background(), env, 10_000, nil)
	require.NoError(t, err)

	counts := map[bank.DocType]int{}
	for _, c := range customers {
		counts[c.DocType]++
		require.NoError(t, bank.ValidateDocCode(c.DocType, c.DocCode))
		if c.DocType == bank.DocDNI || c.DocType == bank.DocNIE {
			assert.Equal(t, "Spain", c.Nationality)
		}
	}
	want := map[bank.DocType]float64{bank.DocDNI: 0.6, bank.DocNIE: 0.15, bank.DocPassport: 0.2, bank.DocOther: 0.05}
	for dt, p := range want {
		assert.InDelta(t, p, float64(counts[dt])/10_000, 0.03, dt)
	}
}

func TestGenerateCustomers_SecondSurnameOptional(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(3), refDate)
	customers, err := bank.GenerateCustomers(context.Background(), env, 2_000, nil)
	require.NoError(t, err)

	missing := 0
	for _, c := range customers {
		if c.Surname2 == nil {
			missing++
		} else {
			assert.NotEmpty(t, *c.Surname2)
		}
	}
	assert.InDelta(t, 0.25, float64(missing)/2_000, 0.04)
}

func TestGenerateCustomers_Capacity(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(1), refDate)
	_, err := bank.GenerateCustomers(context.Background(), env, synth.IDSpace, nil)
	assert.ErrorIs(t, err, synth.ErrCapacity)
}

func TestGenerateTransfers_Precondition(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(1), refDate)
	_, err := bank.GenerateTransfers(context.Background(), env, []bank.Customer{{ID: "000000001"}})
	assert.ErrorIs(t, err, synth.ErrPrecondition)

	_, err = bank.GenerateTransfers(context.Background(), env, nil)
	assert.ErrorIs(t, err, synth.ErrPrecondition)
}

func TestGenerateTransfers_Amounts(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(5), refDate)
	customers := []bank.Customer{{ID: "000000001"}, {ID: "000000002"}}
	transfers, err := bank.GenerateTransfers(context.Background(), env, customers)
	require.NoError(t, err)

	for _, tr := range transfers {
		assert.NotEqual(t, tr.SenderID, tr.ReceiverID)
		assert.True(t, tr.Amount.GreaterThanOrEqual(bank.MinAmount))
		assert.True(t, tr.Amount.LessThanOrEqual(bank.MaxAmount))
		assert.Equal(t, int32(-2), tr.Amount.Exponent())
	}
}

func TestFraudHoldCount(t *testing.T) {
	assert.Equal(t, 0, bank.FraudHoldCount(0))
	assert.Equal(t, 1, bank.FraudHoldCount(1))
	assert.Equal(t, 1, bank.FraudHoldCount(100))
	assert.Equal(t, 2, bank.FraudHoldCount(101))
	assert.Equal(t, 10, bank.FraudHoldCount(1000))
}

func TestGenerateFraudHolds_NoCustomers(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(1), refDate)
	holds, err := bank.GenerateFraudHolds(context.Background(), env, nil)
	require.NoError(t, err)
	assert.Empty(t, holds)
}

func TestGenerateFraudHolds_Notes(t *testing.T) {
	ds := generate(t, baseOptions())
	for _, h := range ds.FraudHolds {
		assert.Len(t, strings.Fields(h.Note), 8)
	}
}

func TestGenerateAddresses_EmptyReference(t *testing.T) {
	env := bank.NewEnv(synth.NewSource(1), refDate)
	_, err := bank.GenerateAddresses(context.Background(), env, []bank.Customer{{ID: "000000001"}}, nil)
	assert.ErrorIs(t, err, synth.ErrConfiguration)
}

func TestGenerate_ForeignPlacesCoherent(t *testing.T) {
	o := baseOptions()
	o.CustomerCount = 200
	o.Seed = seeded(9)
	ds := generate(t, o)

	foreign := 0
	for _, a := range ds.Addresses {
		if a.Country == "Spain" {
			continue
		}
		foreign++
		assert.True(t, locale.KnownPlace(locale.ParseCountry(a.Country), a.City, a.Region),
			"%s: %s/%s", a.Country, a.City, a.Region)
	}
	assert.Positive(t, foreign)
	assert.NoError(t, bank.Verify(ds, bank.VerifyOptions{Cities: cities}))
}
