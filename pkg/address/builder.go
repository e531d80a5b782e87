package address

import (
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/sentinel"
)

// Builder accumulates the components of an Address and assembles the concrete
// variant for its country on Build. Street, city and postal code are
// required; unit, coordinates and type are optional.
type Builder struct {
	country  Country
	street   Street
	unit     Unit
	city     City
	postal   PostalCode
	coords   *Coordinates
	addrType AddressType
}

// NewBuilder starts an address for the given country. The country fixes the
// concrete variant: countries with a registered factory produce their
// specialization, everything else produces Generic.
func NewBuilder(country Country) *Builder {
	return &Builder{country: country}
}

// On sets the street.
func (b *Builder) On(street Street) *Builder {
	b.street = street
	return b
}

// In sets the city.
func (b *Builder) In(city City) *Builder {
	b.city = city
	return b
}

// WithUnit sets the unit.
func (b *Builder) WithUnit(unit Unit) *Builder {
	b.unit = unit
	return b
}

// WithPostalCode sets the postal code.
func (b *Builder) WithPostalCode(pc PostalCode) *Builder {
	b.postal = pc
	return b
}

// At sets the coordinates.
func (b *Builder) At(coords Coordinates) *Builder {
	b.coords = &coords
	return b
}

// As sets the address type.
func (b *Builder) As(t AddressType) *Builder {
	b.addrType = t
	return b
}

// Build assembles the concrete Address. Required components are applied
// first, optional ones after. The builder's country is stamped onto the city
// and postal code, so the assembled components all carry the same country.
//
// Errors: returns sentinel.ErrInvalidState wrapped with CodeInvariantViolation
// when street, city or postal code was never set; setter errors from the
// concrete variant (such as a United States address rejecting a non-ZIP postal
// code) propagate unchanged.
func (b *Builder) Build() (Address, error) {
	if b.street.IsZero() {
		return nil, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvariantViolation,
			"cannot build an address without a street")
	}
	if b.city.IsZero() {
		return nil, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvariantViolation,
			"cannot build an address without a city")
	}
	if b.postal.IsZero() {
		return nil, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvariantViolation,
			"cannot build an address without a postal code")
	}

	addr := factoryFor(b.country)()
	if err := addr.SetStreet(b.street); err != nil {
		return nil, err
	}
	if err := addr.SetCity(b.city.In(b.country)); err != nil {
		return nil, err
	}
	if err := addr.SetPostalCode(b.postal.In(b.country)); err != nil {
		return nil, err
	}

	if !b.unit.IsEmpty() {
		addr.SetUnit(b.unit)
	}
	if b.coords != nil {
		addr.SetCoordinates(*b.coords)
	}
	if b.addrType != TypeUnspecified {
		if err := addr.As(b.addrType); err != nil {
			return nil, err
		}
	}
	return addr, nil
}
