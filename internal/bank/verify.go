package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

// ErrInvariant reports a generated row that breaks a dataset invariant.
var ErrInvariant = errors.New("bank: invariant violated")

const maxReported = 10

// VerifyOptions carries the run inputs the verifier checks against.
type VerifyOptions struct {
	Excluded map[string]struct{}
	// Cities, when set, is the reference table domestic addresses must come from.
	Cities []CityRegion
}

type violations struct {
	msgs  []string
	total int
}

func (v *violations) addf(format string, args ...any) {
	v.total++
	if len(v.msgs) < maxReported {
		v.msgs = append(v.msgs, fmt.Sprintf(format, args...))
	}
}

func (v *violations) err() error {
	if v.total == 0 {
		return nil
	}
	msg := strings.Join(v.msgs, "; ")
	if v.total > len(v.msgs) {
		msg += fmt.Sprintf(" (and %d more)", v.total-len(v.msgs))
	}
	return fmt.Errorf("%w: %s", ErrInvariant, msg)
}

// Verify checks every cross-row and per-row invariant of d.
func Verify(d *Dataset, opts VerifyOptions) error {
	v := &violations{}

	customers := make(map[string]Customer, len(d.Customers))
	for _, c := range d.Customers {
		if _, dup := customers[c.ID]; dup {
			v.addf("customers: duplicate id %s", c.ID)
		}
		if _, ex := opts.Excluded[c.ID]; ex {
			v.addf("customers: id %s is excluded", c.ID)
		}
		customers[c.ID] = c
		checkPerson(v, TableCustomers, c)
	}

	exIDs := make(map[string]bool, len(d.ExCustomers))
	for _, c := range d.ExCustomers {
		if exIDs[c.ID] {
			v.addf("ex_customers: duplicate id %s", c.ID)
		}
		exIDs[c.ID] = true
		if _, live := customers[c.ID]; live {
			v.addf("ex_customers: id %s is also a live customer", c.ID)
		}
		if _, ex := opts.Excluded[c.ID]; ex {
			v.addf("ex_customers: id %s is excluded", c.ID)
		}
		checkPerson(v, TableExCustomers, c.Customer)
		if c.ExclusionDate.Before(c.EnrollmentDate) {
			v.addf("ex_customers %s: exclusion before enrollment", c.ID)
		}
		if c.ReactivationDate != nil && c.ReactivationDate.Before(c.ExclusionDate) {
			v.addf("ex_customers %s: reactivation before exclusion", c.ID)
		}
	}

	for _, ct := range d.Contracts {
		if _, ok := customers[ct.CustomerID]; !ok {
			v.addf("contracts: unknown customer %s", ct.CustomerID)
		}
		if d.Catalog != nil {
			if !d.Catalog.HasBranch(ct.CompanyCode, ct.BranchCode) {
				v.addf("contracts %s: branch %s not in %s", ct.ContractNumber, ct.BranchCode, ct.CompanyCode)
			}
			if d.Catalog.HasSubproduct(ct.ProductCode) == (ct.SubproductCode == NoSubproduct) {
				v.addf("contracts %s: product %s with subproduct %s", ct.ContractNumber, ct.ProductCode, ct.SubproductCode)
			}
		}
		if (ct.Status == StatusActive) != synth.IsSentinel(ct.CloseDate) {
			v.addf("contracts %s: status %s with close date %s", ct.ContractNumber, ct.Status, ct.CloseDate.Format(synth.DateLayout))
		}
		if ct.CloseDate.Before(ct.OpenDate) {
			v.addf("contracts %s: close before open", ct.ContractNumber)
		}
	}

	for _, ct := range d.Contacts {
		c, ok := customers[ct.CustomerID]
		if !ok {
			v.addf("contacts: unknown customer %s", ct.CustomerID)
			continue
		}
		if ct.Value == "" {
			v.addf("contacts %s: empty %s value", ct.CustomerID, ct.ContactType)
		}
		if ct.OpenDate.Before(c.EnrollmentDate) {
			v.addf("contacts %s: open before enrollment", ct.CustomerID)
		}
		if !synth.IsSentinel(ct.CloseDate) && ct.CloseDate.Before(ct.OpenDate) {
			v.addf("contacts %s: close before open", ct.CustomerID)
		}
	}

	pairs := make(map[CityRegion]bool, len(opts.Cities))
	for _, cr := range opts.Cities {
		pairs[cr] = true
	}
	sequences := map[string][]int{}
	for _, a := range d.Addresses {
		if _, ok := customers[a.CustomerID]; !ok {
			v.addf("addresses: unknown customer %s", a.CustomerID)
		}
		sequences[a.CustomerID] = append(sequences[a.CustomerID], a.SequenceNumber)
		if a.Country == locale.Domestic.String() {
			if len(pairs) > 0 && !pairs[CityRegion{City: a.City, Region: a.Region}] {
				v.addf("addresses %s: %s/%s is not a reference pair", a.CustomerID, a.City, a.Region)
			}
		} else if !locale.KnownPlace(locale.ParseCountry(a.Country), a.City, a.Region) {
			v.addf("addresses %s: %s/%s is not a place in %s", a.CustomerID, a.City, a.Region, a.Country)
		}
	}
	for id, seqs := range sequences {
		seen := make([]bool, len(seqs)+1)
		for _, s := range seqs {
			if s < 1 || s > len(seqs) || seen[s] {
				v.addf("addresses %s: sequence numbers %v are not dense from 1", id, seqs)
				break
			}
			seen[s] = true
		}
	}

	for _, t := range d.Transfers {
		_, okS := customers[t.SenderID]
		_, okR := customers[t.ReceiverID]
		if !okS || !okR {
			v.addf("transfers: unknown customer in %s -> %s", t.SenderID, t.ReceiverID)
		}
		if t.SenderID == t.ReceiverID {
			v.addf("transfers: self transfer by %s", t.SenderID)
		}
		if t.Amount.LessThan(MinAmount) || t.Amount.GreaterThan(MaxAmount) {
			v.addf("transfers %s: amount %s out of bounds", t.SenderID, t.Amount.StringFixed(2))
		}
		if t.Amount.Exponent() < -2 {
			v.addf("transfers %s: amount %s has more than 2 decimals", t.SenderID, t.Amount)
		}
	}

	held := make(map[string]bool, len(d.FraudHolds))
	for _, h := range d.FraudHolds {
		if _, ok := customers[h.CustomerID]; !ok {
			v.addf("fraud_holds: unknown customer %s", h.CustomerID)
		}
		if held[h.CustomerID] {
			v.addf("fraud_holds: customer %s held twice", h.CustomerID)
		}
		held[h.CustomerID] = true
		if (h.Status == FraudBlocked) != (h.BlockTimestamp != nil) {
			v.addf("fraud_holds %s: status %s with block timestamp %v", h.CustomerID, h.Status, h.BlockTimestamp)
		}
		if h.BlockTimestamp != nil && h.BlockTimestamp.Before(h.InclusionTimestamp) {
			v.addf("fraud_holds %s: block before inclusion", h.CustomerID)
		}
	}

	return v.err()
}

func checkPerson(v *violations, table string, c Customer) {
	if !synth.IsID(c.ID) {
		v.addf("%s: malformed id %q", table, c.ID)
	}
	if err := ValidateDocCode(c.DocType, c.DocCode); err != nil {
		v.addf("%s %s: %v", table, c.ID, err)
	}
	if (c.DocType == DocDNI || c.DocType == DocNIE) && c.Nationality != locale.Domestic.String() {
		v.addf("%s %s: %s holder with nationality %q", table, c.ID, c.DocType, c.Nationality)
	}
	if c.EnrollmentDate.Before(c.BirthDate) {
		v.addf("%s %s: enrollment before birth", table, c.ID)
	}
	if c.Surname2 != nil && *c.Surname2 == "" {
		v.addf("%s %s: empty second surname", table, c.ID)
	}
	if c.Gender != GenderMale && c.Gender != GenderFemale {
		v.addf("%s %s: gender %q", table, c.ID, c.Gender)
	}
}
