package locale

import (
	"fmt"

	"github.com/Rana718/fakebank/internal/synth"
)

// localeData is the word list backing a tableProvider.
type localeData struct {
	locale       string
	firstNames   []string
	lastNames    []string
	streetTypes  []string
	streetNames  []string
	streetFormat string // %[1]s type, %[2]s name, %[3]d number
	places       []Place
	postcodes    []string // '#' patterns
	phones       []string // '#' patterns
	mailDomains  []string
	tld          string
	words        []string
}

type tableProvider struct {
	src  *synth.Source
	data localeData
}

func newTableProvider(src *synth.Source, data localeData) *tableProvider {
	return &tableProvider{src: src, data: data}
}

func (p *tableProvider) Locale() string { return p.data.locale }

func (p *tableProvider) FirstName() string { return synth.Pick(p.src, p.data.firstNames) }

func (p *tableProvider) LastName() string { return synth.Pick(p.src, p.data.lastNames) }

func (p *tableProvider) Email() string {
	user := slug(p.FirstName()) + "." + slug(p.LastName())
	if p.src.Chance(0.5) {
		user += fmt.Sprintf("%d", p.src.IntBetween(1, 99))
	}
	return user + "@" + synth.Pick(p.src, p.data.mailDomains)
}

func (p *tableProvider) Phone() string {
	return numerify(p.src, synth.Pick(p.src, p.data.phones))
}

func (p *tableProvider) URL() string {
	return fmt.Sprintf("https://www.%s%s.%s/", slug(p.LastName()), slug(synth.Pick(p.src, p.data.words)), p.data.tld)
}

func (p *tableProvider) StreetAddress() string {
	return fmt.Sprintf(p.data.streetFormat,
		synth.Pick(p.src, p.data.streetTypes),
		synth.Pick(p.src, p.data.streetNames),
		p.src.IntBetween(1, 250))
}

func (p *tableProvider) Place() Place { return synth.Pick(p.src, p.data.places) }

func (p *tableProvider) Postcode() string {
	return numerify(p.src, synth.Pick(p.src, p.data.postcodes))
}

func (p *tableProvider) CountryName() string { return synth.Pick(p.src, worldCountries) }

func (p *tableProvider) Sentence(words int) string {
	return sentence(p.src, p.data.words, words)
}

var worldCountries = []string{
	"Argentina", "Brazil", "Canada", "Chile", "China", "Colombia", "Ecuador", "Egypt",
	"France", "Germany", "India", "Ireland", "Italy", "Japan", "Mexico", "Morocco",
	"Netherlands", "Nigeria", "Peru", "Poland", "Portugal", "Romania", "Senegal",
	"Sweden", "Switzerland", "Ukraine", "United Kingdom", "United States", "Venezuela",
}
