// Package address models postal addresses: the value objects they are built
// from (Street, City, PostalCode, Unit, Coordinates), the Address entity with
// its country-specific variants, and the Builder that assembles them.
package address

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// Country is an ISO 3166-1 alpha-2 region code.
//
// Usage: construct via ParseCountry or CountryFromLocale at trust boundaries;
// direct casting bypasses validation.
type Country string

// CountryUnspecified is the zero Country.
const CountryUnspecified Country = ""

// Countries the library treats specially.
const (
	CountryUnitedStates Country = "US"
)

// ParseCountry constructs a Country from external input. It accepts ISO
// 3166-1 alpha-2, alpha-3 and numeric forms and normalizes to alpha-2.
//
// Errors: returns CodeInvalidInput when the value is empty or not a known
// country region.
func ParseCountry(s string) (Country, error) {
	if s == "" {
		return CountryUnspecified, dErrors.New(dErrors.CodeInvalidInput, "country cannot be empty")
	}
	region, err := language.ParseRegion(s)
	if err != nil {
		return CountryUnspecified, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid country "+s)
	}
	if !region.IsCountry() {
		return CountryUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "region %q is not a country", s)
	}
	return Country(region.String()), nil
}

// CountryFromLocale resolves the country of a BCP 47 locale tag such as
// "en-US" or "pt-BR".
//
// Errors: returns CodeInvalidInput when the tag cannot be parsed or carries
// no country region.
func CountryFromLocale(locale string) (Country, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return CountryUnspecified, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid locale "+locale)
	}
	region, _ := tag.Region()
	if !region.IsCountry() {
		return CountryUnspecified, dErrors.Newf(dErrors.CodeInvalidInput,
			"locale %q does not identify a country", locale)
	}
	return Country(region.String()), nil
}

// Code returns the alpha-2 code.
func (c Country) Code() string { return string(c) }

// Name returns the English country name, falling back to the code when the
// region is unknown to the CLDR data.
func (c Country) Name() string {
	region, err := language.ParseRegion(string(c))
	if err != nil {
		return string(c)
	}
	if n := display.English.Regions().Name(region); n != "" {
		return n
	}
	return string(c)
}

// String returns the alpha-2 code.
func (c Country) String() string { return string(c) }

// CompareCountries orders countries by English display name, so iteration
// over addresses groups them the way a person would read them.
func CompareCountries(a, b Country) int {
	an, bn := a.Name(), b.Name()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}
