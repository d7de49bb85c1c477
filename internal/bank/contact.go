package bank

import (
	"context"
	"fmt"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

var contactTypes = synth.MustCategorical(
	[]ContactType{ContactEmail, ContactPhone, ContactFax, ContactWeb},
	[]float64{0.45, 0.4, 0.08, 0.07},
)

// ContactOptions tunes contact generation.
type ContactOptions struct {
	// PerCustomer fixes the contact count; nil draws uniformly from 1 to 4.
	PerCustomer *int
	// Residence maps a customer id to the country whose provider synthesizes
	// its contact values. Missing ids use the domestic country.
	Residence map[string]locale.Country
}

// GenerateContacts draws contact channels for every customer.
func GenerateContacts(ctx context.Context, env *Env, customers []Customer, opts ContactOptions) ([]Contact, error) {
	if opts.PerCustomer != nil && *opts.PerCustomer < 0 {
		return nil, fmt.Errorf("%w: contacts per customer must be >= 0, got %d", synth.ErrConfiguration, *opts.PerCustomer)
	}

	var out []Contact
	for _, cust := range customers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		country, ok := opts.Residence[cust.ID]
		if !ok {
			country = locale.Domestic
		}
		p := env.locales.For(country)

		n := 0
		if opts.PerCustomer != nil {
			n = *opts.PerCustomer
		} else {
			n = env.src.IntBetween(1, 4)
		}
		for k := 0; k < n; k++ {
			ct := Contact{CustomerID: cust.ID, ContactType: contactTypes.Draw(env.src)}
			switch ct.ContactType {
			case ContactEmail:
				ct.Value = p.Email()
			case ContactPhone, ContactFax:
				ct.Value = p.Phone()
			case ContactWeb:
				ct.Value = p.URL()
			}

			var err error
			ct.OpenDate, err = synth.DateBetween(env.src, cust.EnrollmentDate, env.today)
			if err != nil {
				return nil, fmt.Errorf("contacts: open date: %w", err)
			}
			if env.src.Chance(0.8) {
				ct.CloseDate = synth.SentinelDate
			} else {
				ct.CloseDate, err = synth.DateBetween(env.src, ct.OpenDate, env.today)
				if err != nil {
					return nil, fmt.Errorf("contacts: close date: %w", err)
				}
			}
			out = append(out, ct)
		}
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}
