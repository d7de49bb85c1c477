package locale

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/Rana718/fakebank/internal/synth"
)

// fakeitProvider serves en_US text from gofakeit, which shares the Source's
// generator so its draws stay on the run's stream.
type fakeitProvider struct {
	src   *synth.Source
	faker *gofakeit.Faker
}

func newFakeitProvider(src *synth.Source) *fakeitProvider {
	return &fakeitProvider{
		src:   src,
		faker: gofakeit.NewFaker(src.Rand(), false),
	}
}

func (p *fakeitProvider) Locale() string        { return "en_US" }
func (p *fakeitProvider) FirstName() string     { return p.faker.FirstName() }
func (p *fakeitProvider) LastName() string      { return p.faker.LastName() }
func (p *fakeitProvider) Email() string         { return p.faker.Email() }
func (p *fakeitProvider) Phone() string         { return p.faker.PhoneFormatted() }
func (p *fakeitProvider) URL() string           { return p.faker.URL() }
func (p *fakeitProvider) StreetAddress() string { return p.faker.Street() }
func (p *fakeitProvider) Place() Place          { return synth.Pick(p.src, usPlaces) }
func (p *fakeitProvider) Postcode() string      { return p.faker.Zip() }
func (p *fakeitProvider) CountryName() string   { return p.faker.Country() }

func (p *fakeitProvider) Sentence(words int) string {
	return sentence(p.src, english, words)
}
