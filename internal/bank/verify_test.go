package bank_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/fakebank/internal/bank"
	"github.com/Rana718/fakebank/internal/synth"
)

func TestCheckLetter(t *testing.T) {
	assert.Equal(t, byte('Z'), bank.CheckLetter(12345678))
	assert.Equal(t, byte('T'), bank.CheckLetter(0))
	assert.Equal(t, byte('E'), bank.CheckLetter(22))
}

func TestValidateDocCode(t *testing.T) {
	tests := []struct {
		docType bank.DocType
		code    string
		ok      bool
	}{
		{bank.DocDNI, "12345678Z", true},
		{bank.DocDNI, "12345678A", false},
		{bank.DocDNI, "1234567Z", false},
		{bank.DocNIE, "X0000000T", true},
		{bank.DocNIE, "Y0000000Z", true},
		{bank.DocNIE, "Y0000000T", false},
		{bank.DocNIE, "A0000000T", false},
		{bank.DocPassport, "AB1234567", true},
		{bank.DocPassport, "ab1234567", false},
		{bank.DocOther, "ZZ99ZZ99", true},
		{bank.DocOther, "ZZ99ZZ9", false},
		{bank.DocType("VISA"), "12345678", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType)+"/"+tt.code, func(t *testing.T) {
			err := bank.ValidateDocCode(tt.docType, tt.code)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDocCode_AlwaysValid(t *testing.T) {
	src := synth.NewSource(11)
	for _, dt := range []bank.DocType{bank.DocDNI, bank.DocNIE, bank.DocPassport, bank.DocOther} {
		for i := 0; i < 500; i++ {
			code := bank.DocCode(src, dt)
			require.NoError(t, bank.ValidateDocCode(dt, code), code)
		}
	}
}

func TestReadCityRegions(t *testing.T) {
	rows, err := bank.ReadCityRegions(strings.NewReader(" City , REGION\nMadrid,Comunidad de Madrid\n\n\"Palma\",  Islas Baleares\n"))
	require.NoError(t, err)
	assert.Equal(t, []bank.CityRegion{
		{City: "Madrid", Region: "Comunidad de Madrid"},
		{City: "Palma", Region: "Islas Baleares"},
	}, rows)

	rows, err = bank.ReadCityRegions(strings.NewReader("region,city\nAndalucía,Sevilla\n"))
	require.NoError(t, err)
	assert.Equal(t, "Sevilla", rows[0].City)
}

func TestReadCityRegions_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"no header":     "Madrid,Comunidad de Madrid\n",
		"header only":   "city,region\n",
		"empty region":  "city,region\nMadrid,\n",
		"missing field": "city,region\nMadrid\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := bank.ReadCityRegions(strings.NewReader(in))
			assert.ErrorIs(t, err, synth.ErrConfiguration)
		})
	}
}

func TestLoadCityRegions_MissingFile(t *testing.T) {
	_, err := bank.LoadCityRegions(t.TempDir() + "/nope.csv")
	assert.ErrorIs(t, err, synth.ErrConfiguration)
}

func TestLoadCityRegions_DefaultFile(t *testing.T) {
	rows, err := bank.LoadCityRegions("../../data/in/cities_regions.csv")
	require.NoError(t, err)
	assert.Greater(t, len(rows), 20)
}

func TestVerify_AcceptsGeneratedDataset(t *testing.T) {
	ds := generate(t, baseOptions())
	assert.NoError(t, bank.Verify(ds, bank.VerifyOptions{Cities: cities}))
}

func TestVerify_Violations(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		mutate func(*bank.Dataset)
		want   string
	}{
		{"duplicate id", func(d *bank.Dataset) { d.Customers[1].ID = d.Customers[0].ID }, "duplicate id"},
		{"ex-customer collides", func(d *bank.Dataset) { d.ExCustomers[0].ID = d.Customers[0].ID }, "also a live customer"},
		{"bad check letter", func(d *bank.Dataset) {
			d.Customers[0].DocType = bank.DocDNI
			d.Customers[0].DocCode = "12345678A"
		}, "check letter"},
		{"enrollment before birth", func(d *bank.Dataset) {
			d.Customers[0].BirthDate = day(2000, 1, 2)
			d.Customers[0].EnrollmentDate = day(2000, 1, 1)
		}, "enrollment before birth"},
		{"active with close date", func(d *bank.Dataset) {
			d.Contracts[0].Status = bank.StatusActive
			d.Contracts[0].CloseDate = d.Contracts[0].OpenDate
		}, "status Active"},
		{"self transfer", func(d *bank.Dataset) { d.Transfers[0].ReceiverID = d.Transfers[0].SenderID }, "self transfer"},
		{"amount too large", func(d *bank.Dataset) { d.Transfers[0].Amount = decimal.New(500001, -2) }, "out of bounds"},
		{"sequence gap", func(d *bank.Dataset) { d.Addresses[0].SequenceNumber = 9 }, "not dense"},
		{"unknown customer", func(d *bank.Dataset) { d.Contacts[0].CustomerID = "999999999" }, "unknown customer"},
		{"block without status", func(d *bank.Dataset) {
			ts := d.FraudHolds[0].InclusionTimestamp
			d.FraudHolds[0].Status = bank.FraudUnderInvestigation
			d.FraudHolds[0].BlockTimestamp = &ts
		}, "block timestamp"},
		{"made-up city", func(d *bank.Dataset) {
			for i := range d.Addresses {
				if d.Addresses[i].Country == "Spain" {
					d.Addresses[i].City = "Atlantis"
					return
				}
			}
		}, "reference pair"},
		{"foreign region mismatch", func(d *bank.Dataset) {
			for i := range d.Addresses {
				if d.Addresses[i].Country != "Spain" {
					d.Addresses[i].Region = "Atlantis"
					return
				}
			}
		}, "is not a place in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := generate(t, baseOptions())
			tt.mutate(ds)
			err := bank.Verify(ds, bank.VerifyOptions{Cities: cities})
			require.ErrorIs(t, err, bank.ErrInvariant)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerify_ExcludedID(t *testing.T) {
	ds := generate(t, baseOptions())
	excluded := map[string]struct{}{ds.Customers[0].ID: {}}
	assert.ErrorIs(t, bank.Verify(ds, bank.VerifyOptions{Excluded: excluded}), bank.ErrInvariant)
}

func TestTables_Shape(t *testing.T) {
	ds := generate(t, baseOptions())
	tables := ds.Tables()
	require.Len(t, tables, len(bank.TableNames))

	for i, tbl := range tables {
		assert.Equal(t, bank.TableNames[i], tbl.Name)
		assert.Equal(t, ds.RowCounts()[tbl.Name], len(tbl.Rows))
		for _, row := range tbl.Rows {
			require.Len(t, row, len(tbl.Columns))
		}
	}
	assert.Equal(t, []string{
		"customer_id", "company_code", "branch_code", "product_code", "subproduct_code",
		"contract_number", "holder_role", "open_date", "close_date", "status",
	}, tables[2].ColumnNames())
	assert.Equal(t, []string{bank.TableCustomers}, tables[5].DependsOn())
	assert.Empty(t, tables[0].DependsOn())
}

func TestColumnFormat(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "2024-03-05", bank.Column{Kind: bank.KindDate}.Format(ts))
	assert.Equal(t, "2024-03-05 07:08:09", bank.Column{Kind: bank.KindTimestamp}.Format(ts))
	assert.Equal(t, "9999-12-31", bank.Column{Kind: bank.KindDate}.Format(synth.SentinelDate))
	assert.Equal(t, "10.50", bank.Column{Kind: bank.KindDecimal}.Format(decimal.New(1050, -2)))
	assert.Equal(t, "3", bank.Column{Kind: bank.KindInt}.Format(3))
	assert.Equal(t, "", bank.Column{Nullable: true}.Format(nil))
}
