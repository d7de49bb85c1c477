package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Country is the closed set of countries with a dedicated text provider.
type Country int

const (
	CountryUnknown Country = iota
	CountrySpain
	CountryFrance
	CountryGermany
	CountryUnitedStates
)

// Domestic is the bank's home country.
const Domestic = CountrySpain

// Foreign lists the countries used for non-domestic addresses.
var Foreign = []Country{CountryFrance, CountryGermany, CountryUnitedStates}

var countryNames = map[Country]string{
	CountryUnknown:      "Unknown",
	CountrySpain:        "Spain",
	CountryFrance:       "France",
	CountryGermany:      "Germany",
	CountryUnitedStates: "United States",
}

var countryLocales = map[Country]string{
	CountrySpain:        "es_ES",
	CountryFrance:       "fr_FR",
	CountryGermany:      "de_DE",
	CountryUnitedStates: "en_US",
}

// aliases are matched after lower-casing and accent folding.
var aliases = map[string]Country{
	"spain":                    CountrySpain,
	"espana":                   CountrySpain,
	"es":                       CountrySpain,
	"france":                   CountryFrance,
	"francia":                  CountryFrance,
	"fr":                       CountryFrance,
	"germany":                  CountryGermany,
	"alemania":                 CountryGermany,
	"deutschland":              CountryGermany,
	"de":                       CountryGermany,
	"united states":            CountryUnitedStates,
	"united states of america": CountryUnitedStates,
	"estados unidos":           CountryUnitedStates,
	"usa":                      CountryUnitedStates,
	"us":                       CountryUnitedStates,
}

// String returns the English display name used in output tables.
func (c Country) String() string {
	if name, ok := countryNames[c]; ok {
		return name
	}
	return countryNames[CountryUnknown]
}

// Locale returns the locale tag of the country, or "" for CountryUnknown.
func (c Country) Locale() string {
	return countryLocales[c]
}

// ParseCountry resolves a free-form country name. Unrecognized names map to
// CountryUnknown.
func ParseCountry(name string) Country {
	key := strings.ToLower(strings.TrimSpace(fold(name)))
	if c, ok := aliases[key]; ok {
		return c
	}
	return CountryUnknown
}

// fold strips diacritics ("España" -> "Espana").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
