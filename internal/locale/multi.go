package locale

import "github.com/Rana718/fakebank/internal/synth"

// multiProvider picks one member locale per call.
type multiProvider struct {
	src     *synth.Source
	members []Provider
}

func (p *multiProvider) pick() Provider { return synth.Pick(p.src, p.members) }

func (p *multiProvider) Locale() string            { return "multi" }
func (p *multiProvider) FirstName() string         { return p.pick().FirstName() }
func (p *multiProvider) LastName() string          { return p.pick().LastName() }
func (p *multiProvider) Email() string             { return p.pick().Email() }
func (p *multiProvider) Phone() string             { return p.pick().Phone() }
func (p *multiProvider) URL() string               { return p.pick().URL() }
func (p *multiProvider) StreetAddress() string     { return p.pick().StreetAddress() }
func (p *multiProvider) Place() Place              { return p.pick().Place() }
func (p *multiProvider) Postcode() string          { return p.pick().Postcode() }
func (p *multiProvider) CountryName() string       { return p.pick().CountryName() }
func (p *multiProvider) Sentence(words int) string { return p.pick().Sentence(words) }
