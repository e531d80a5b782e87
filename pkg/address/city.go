package address

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// City is a value object naming a city, optionally disambiguated by country
// (Portland US vs Portland AU).
type City struct {
	name    string
	country Country
}

// NewCity constructs a City from its name.
func NewCity(cityName string) (City, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return City{}, dErrors.New(dErrors.CodeInvalidInput, "city name is required")
	}
	return City{name: cityName}, nil
}

// MustNewCity is NewCity for static fixtures; it panics on invalid input.
func MustNewCity(cityName string) City {
	c, err := NewCity(cityName)
	if err != nil {
		panic(err)
	}
	return c
}

// In returns a copy disambiguated by country.
func (c City) In(country Country) City {
	c.country = country
	return c
}

// Name returns the city name.
func (c City) Name() string { return c.name }

// Country returns the disambiguating country, or CountryUnspecified.
func (c City) Country() Country { return c.country }

// IsZero reports whether the City is the invalid zero value.
func (c City) IsZero() bool { return c == City{} }

// CompareCities orders cities by name, then by country display name; an
// unspecified country orders first.
var CompareCities = compare.Chain[City](
	compare.On(City.Name),
	compare.By(City.Country, CompareCountries),
)

func (c City) String() string { return c.name }
