package address

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// PostalCode is a value object wrapping a postal code, optionally
// disambiguated by country since formats collide across postal systems.
type PostalCode struct {
	value   string
	country Country
}

// NewPostalCode constructs a PostalCode from its textual value.
func NewPostalCode(value string) (PostalCode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PostalCode{}, dErrors.New(dErrors.CodeInvalidInput, "postal code is required")
	}
	return PostalCode{value: value}, nil
}

// MustNewPostalCode is NewPostalCode for static fixtures; it panics on
// invalid input.
func MustNewPostalCode(value string) PostalCode {
	pc, err := NewPostalCode(value)
	if err != nil {
		panic(err)
	}
	return pc
}

// In returns a copy disambiguated by country.
func (pc PostalCode) In(country Country) PostalCode {
	pc.country = country
	return pc
}

// Value returns the postal code text.
func (pc PostalCode) Value() string { return pc.value }

// Country returns the disambiguating country, or CountryUnspecified.
func (pc PostalCode) Country() Country { return pc.country }

// IsZero reports whether the PostalCode is the invalid zero value.
func (pc PostalCode) IsZero() bool { return pc == PostalCode{} }

// ComparePostalCodes orders postal codes by value, then by country display
// name; an unspecified country orders first.
var ComparePostalCodes = compare.Chain[PostalCode](
	compare.On(PostalCode.Value),
	compare.By(PostalCode.Country, CompareCountries),
)

func (pc PostalCode) String() string { return pc.value }
