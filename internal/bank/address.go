package bank

import (
	"context"
	"fmt"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

var domicileCounts = synth.MustCategorical(
	[]int{1, 2, 3, 4, 5},
	[]float64{0.6, 0.3, 0.07, 0.02, 0.01},
)

const domesticShare = 0.75

// GenerateAddresses draws one to five domiciles per customer. City and
// region are always drawn as a pair: from cities for domestic addresses and
// from the country's provider otherwise.
func GenerateAddresses(ctx context.Context, env *Env, customers []Customer, cities []CityRegion) ([]Address, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: addresses: empty city reference table", synth.ErrConfiguration)
	}
	domestic := env.locales.For(locale.Domestic)

	var out []Address
	for _, cust := range customers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := domicileCounts.Draw(env.src)
		for seq := 1; seq <= n; seq++ {
			a := Address{CustomerID: cust.ID, SequenceNumber: seq}
			if env.src.Chance(domesticShare) {
				a.Street = domestic.StreetAddress()
				cr := synth.Pick(env.src, cities)
				a.City, a.Region = cr.City, cr.Region
				a.PostalCode = domestic.Postcode()
				a.Country = locale.Domestic.String()
			} else {
				country := synth.Pick(env.src, locale.Foreign)
				p := env.locales.For(country)
				a.Street = p.StreetAddress()
				pl := p.Place()
				a.City, a.Region = pl.City, pl.Region
				a.PostalCode = p.Postcode()
				a.Country = country.String()
			}
			out = append(out, a)
		}
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}

// Residences maps each customer to the country of its first domicile.
func Residences(addresses []Address) map[string]locale.Country {
	out := make(map[string]locale.Country)
	for _, a := range addresses {
		if a.SequenceNumber == 1 {
			out[a.CustomerID] = locale.ParseCountry(a.Country)
		}
	}
	return out
}
