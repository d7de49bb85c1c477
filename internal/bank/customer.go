package bank

import (
	"context"
	"fmt"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

const maxAgeYears = 120

var (
	docTypes = synth.MustCategorical(
		[]DocType{DocDNI, DocNIE, DocPassport, DocOther},
		[]float64{0.6, 0.15, 0.2, 0.05},
	)
	genders = synth.MustCategorical(
		[]Gender{GenderMale, GenderFemale},
		[]float64{0.49, 0.51},
	)
	maritalStatuses = synth.MustCategorical(
		[]MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed, MaritalSeparated, MaritalDomesticPartner},
		[]float64{0.4, 0.45, 0.06, 0.05, 0.02, 0.02},
	)
	educationLevels = synth.MustCategorical(
		[]string{"01", "02", "03", "04", "05", "06"},
		[]float64{0.15, 0.2, 0.3, 0.2, 0.1, 0.05},
	)
	// Spanish, Catalan, Galician, Basque, German, French.
	languageCodes = synth.MustCategorical(
		[]string{"E", "C", "G", "H", "A", "F"},
		[]float64{0.85, 0.05, 0.03, 0.03, 0.02, 0.02},
	)
	exitReasons = synth.Uniform([]ExitReason{ExitVoluntary, ExitBreach, ExitDeceased})
)

// GenerateCustomers returns count customers whose ids avoid excluded. Rows
// come back shuffled.
func GenerateCustomers(ctx context.Context, env *Env, count int, excluded map[string]struct{}) ([]Customer, error) {
	ids, err := synth.ReserveIDs(env.src, count, excluded)
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}

	out := make([]Customer, 0, count)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := env.person(id)
		if err != nil {
			return nil, fmt.Errorf("customers: %w", err)
		}
		out = append(out, c)
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}

// GenerateExCustomers returns count former customers. excluded must already
// hold the live customer ids.
func GenerateExCustomers(ctx context.Context, env *Env, count int, excluded map[string]struct{}) ([]ExCustomer, error) {
	ids, err := synth.ReserveIDs(env.src, count, excluded)
	if err != nil {
		return nil, fmt.Errorf("ex_customers: %w", err)
	}

	out := make([]ExCustomer, 0, count)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := env.person(id)
		if err != nil {
			return nil, fmt.Errorf("ex_customers: %w", err)
		}
		ex := ExCustomer{Customer: c, ExitReason: exitReasons.Draw(env.src)}
		ex.ExclusionDate, err = synth.DateBetween(env.src, c.EnrollmentDate, env.today)
		if err != nil {
			return nil, fmt.Errorf("ex_customers: exclusion date: %w", err)
		}
		if env.src.Chance(0.2) {
			reactivated, err := synth.DateBetween(env.src, ex.ExclusionDate, env.today)
			if err != nil {
				return nil, fmt.Errorf("ex_customers: reactivation date: %w", err)
			}
			ex.ReactivationDate = &reactivated
		}
		out = append(out, ex)
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}

// person draws the fields shared by customers and ex-customers.
func (e *Env) person(id string) (Customer, error) {
	c := Customer{ID: id, DocType: docTypes.Draw(e.src)}
	c.DocCode = DocCode(e.src, c.DocType)

	names := e.locales.Default()
	if c.DocType == DocDNI || c.DocType == DocNIE {
		names = e.locales.For(locale.Domestic)
	}
	c.GivenName = names.FirstName()
	c.Surname1 = names.LastName()
	if !e.src.Chance(0.25) {
		s := names.LastName()
		c.Surname2 = &s
	}

	if c.DocType == DocDNI || c.DocType == DocNIE {
		c.Nationality = locale.Domestic.String()
	} else {
		c.Nationality = e.locales.Default().CountryName()
	}

	var err error
	c.BirthDate, err = synth.DateBetween(e.src, synth.YearsBefore(e.today, maxAgeYears), e.today)
	if err != nil {
		return Customer{}, fmt.Errorf("birth date: %w", err)
	}
	c.EnrollmentDate, err = synth.DateBetween(e.src, c.BirthDate, e.today)
	if err != nil {
		return Customer{}, fmt.Errorf("enrollment date: %w", err)
	}

	c.Gender = genders.Draw(e.src)
	c.MaritalStatus = maritalStatuses.Draw(e.src)
	c.EducationLevel = educationLevels.Draw(e.src)
	c.LanguageCode = languageCodes.Draw(e.src)
	return c, nil
}
