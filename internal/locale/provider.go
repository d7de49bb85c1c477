// Package locale synthesizes locale-specific text (names, contact values,
// street addresses) for the dataset generators.
//
// Providers draw from a synth.Source so that their output is part of the
// run's reproducible random stream.
package locale

import (
	"strings"

	"github.com/Rana718/fakebank/internal/synth"
)

// Provider is the text capability the generators depend on.
type Provider interface {
	Locale() string
	FirstName() string
	LastName() string
	Email() string
	Phone() string
	URL() string
	StreetAddress() string
	// Place returns a city together with the region it belongs to.
	Place() Place
	Postcode() string
	// CountryName returns a country name suitable for a nationality field.
	CountryName() string
	Sentence(words int) string
}

// Place is a city and its region.
type Place struct {
	City   string
	Region string
}

var placesByCountry = map[Country][]Place{
	CountrySpain:        spanish.places,
	CountryFrance:       french.places,
	CountryGermany:      german.places,
	CountryUnitedStates: usPlaces,
}

// KnownPlace reports whether city and region form a pair that the provider
// of c can produce. Countries without a provider never match.
func KnownPlace(c Country, city, region string) bool {
	for _, pl := range placesByCountry[c] {
		if pl.City == city && pl.Region == region {
			return true
		}
	}
	return false
}

// Registry resolves countries to providers bound to one Source.
type Registry struct {
	providers map[Country]Provider
	fallback  Provider
}

// NewRegistry builds the providers for every supported country plus the
// multi-locale fallback, all drawing from src.
func NewRegistry(src *synth.Source) *Registry {
	providers := map[Country]Provider{
		CountrySpain:        newTableProvider(src, spanish),
		CountryFrance:       newTableProvider(src, french),
		CountryGermany:      newTableProvider(src, german),
		CountryUnitedStates: newFakeitProvider(src),
	}
	members := []Provider{
		providers[CountrySpain],
		providers[CountryUnitedStates],
		providers[CountryFrance],
		providers[CountryGermany],
	}
	return &Registry{
		providers: providers,
		fallback:  &multiProvider{src: src, members: members},
	}
}

// For returns the provider of c, or the multi-locale default when c has no
// dedicated provider.
func (r *Registry) For(c Country) Provider {
	if p, ok := r.providers[c]; ok {
		return p
	}
	return r.fallback
}

// ForName resolves a free-form country name first.
func (r *Registry) ForName(name string) Provider {
	return r.For(ParseCountry(name))
}

// Default returns the multi-locale provider.
func (r *Registry) Default() Provider {
	return r.fallback
}

// numerify replaces every '#' in pattern with a random digit.
func numerify(src *synth.Source, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		if r == '#' {
			b.WriteByte(byte('0' + src.IntN(10)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// slug lower-cases s, folds accents and drops everything that is not a
// letter or digit.
func slug(s string) string {
	s = strings.ToLower(fold(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sentence(src *synth.Source, vocabulary []string, words int) string {
	if words < 1 {
		words = 1
	}
	parts := make([]string, words)
	for i := range parts {
		parts[i] = synth.Pick(src, vocabulary)
	}
	first := []rune(parts[0])
	parts[0] = strings.ToUpper(string(first[0])) + string(first[1:])
	return strings.Join(parts, " ") + "."
}
