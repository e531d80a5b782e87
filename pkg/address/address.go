package address

import (
	"strings"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// AddressType classifies how an address is used.
type AddressType string

// Supported address types.
const (
	TypeUnspecified AddressType = ""
	TypeBilling     AddressType = "billing"
	TypeHome        AddressType = "home"
	TypeMailing     AddressType = "mailing"
	TypeOffice      AddressType = "office"
	TypePoBox       AddressType = "po_box"
	TypeWork        AddressType = "work"
)

// validAddressTypes is the single source of truth for valid address types.
var validAddressTypes = map[AddressType]bool{
	TypeBilling: true,
	TypeHome:    true,
	TypeMailing: true,
	TypeOffice:  true,
	TypePoBox:   true,
	TypeWork:    true,
}

// ParseAddressType constructs an AddressType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseAddressType(s string) (AddressType, error) {
	if s == "" {
		return TypeUnspecified, dErrors.New(dErrors.CodeInvalidInput, "address type cannot be empty")
	}
	t := AddressType(s)
	if !validAddressTypes[t] {
		return TypeUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid address type %q", s)
	}
	return t, nil
}

func (t AddressType) String() string { return string(t) }

// Address is the capability surface shared by all country-specific address
// variants. Obtain instances through the Builder; the concrete variant is
// chosen by Country through the registration table.
type Address interface {
	// ID returns the address identifier; the nil UUID means unassigned.
	ID() id.AddressID
	// Identify assigns an identifier.
	Identify(id.AddressID)

	Street() Street
	// SetStreet rejects the zero Street with CodeInvalidInput.
	SetStreet(Street) error

	// Unit returns the unit, or the EmptyUnit sentinel.
	Unit() Unit
	SetUnit(Unit)

	City() City
	// SetCity rejects the zero City with CodeInvalidInput.
	SetCity(City) error

	PostalCode() PostalCode
	// SetPostalCode rejects the zero PostalCode with CodeInvalidInput.
	// Variants may impose stricter formats (see UnitedStatesAddress).
	SetPostalCode(PostalCode) error

	Country() Country

	// Coordinates returns the geographic location, or false when not set.
	Coordinates() (Coordinates, bool)
	SetCoordinates(Coordinates)

	// Type returns how the address is used, or TypeUnspecified.
	Type() AddressType
	// As records the address type. Variants with a fixed type reject the
	// call with CodeUnsupported (see Office).
	As(AddressType) error

	String() string
}

// base carries the state and behavior common to every Address variant.
type base struct {
	id       id.AddressID
	street   Street
	unit     Unit
	city     City
	postal   PostalCode
	country  Country
	coords   *Coordinates
	addrType AddressType
}

func (b *base) ID() id.AddressID        { return b.id }
func (b *base) Identify(a id.AddressID) { b.id = a }
func (b *base) Street() Street          { return b.street }
func (b *base) Unit() Unit              { return b.unit }
func (b *base) SetUnit(u Unit)          { b.unit = u }
func (b *base) City() City              { return b.city }
func (b *base) PostalCode() PostalCode  { return b.postal }
func (b *base) Country() Country        { return b.country }
func (b *base) Type() AddressType       { return b.addrType }

func (b *base) SetStreet(s Street) error {
	if s.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "street is required")
	}
	b.street = s
	return nil
}

func (b *base) SetCity(c City) error {
	if c.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "city is required")
	}
	b.city = c
	return nil
}

func (b *base) SetPostalCode(pc PostalCode) error {
	if pc.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "postal code is required")
	}
	b.postal = pc
	return nil
}

func (b *base) Coordinates() (Coordinates, bool) {
	if b.coords == nil {
		return Coordinates{}, false
	}
	return *b.coords, true
}

func (b *base) SetCoordinates(c Coordinates) {
	b.coords = &c
}

func (b *base) As(t AddressType) error {
	b.addrType = t
	return nil
}

func (b *base) String() string {
	parts := []string{b.street.String()}
	if !b.unit.IsEmpty() {
		parts = append(parts, b.unit.String())
	}
	parts = append(parts, b.city.String(), b.postal.String(), b.country.Name())
	return strings.Join(parts, ", ")
}

// Generic is the Address variant used for every country without a registered
// specialization.
type Generic struct {
	base
}

// NewGeneric constructs an empty Generic address for the given country.
// Prefer the Builder for fully assembled addresses.
func NewGeneric(country Country) *Generic {
	return &Generic{base{country: country}}
}

// Office is an Address whose type is permanently TypeOffice. As always
// rejects, since the type is fixed.
type Office struct {
	Generic
}

// NewOffice constructs an empty Office address for the given country.
func NewOffice(country Country) *Office {
	o := &Office{Generic{base{country: country}}}
	o.addrType = TypeOffice
	return o
}

// As always fails: an Office address cannot be reclassified.
func (o *Office) As(AddressType) error {
	return dErrors.New(dErrors.CodeUnsupported, "an office address is always of type office")
}

// Compare orders addresses by country display name, city, postal code,
// street, then unit; the empty unit sentinel orders first.
func Compare(a, b Address) int {
	if c := CompareCountries(a.Country(), b.Country()); c != 0 {
		return c
	}
	if c := CompareCities(a.City(), b.City()); c != 0 {
		return c
	}
	if c := ComparePostalCodes(a.PostalCode(), b.PostalCode()); c != 0 {
		return c
	}
	if c := CompareStreets(a.Street(), b.Street()); c != 0 {
		return c
	}
	return CompareUnits(a.Unit(), b.Unit())
}

// Equal reports whether two addresses identify the same place: equal street,
// unit, city, postal code and country. ID, type and coordinates are
// observational and excluded.
func Equal(a, b Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Compare(a, b) == 0
}
