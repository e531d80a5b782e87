package address

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// UnitType classifies a unit within a building.
type UnitType string

// Supported unit types.
const (
	UnitTypeUnspecified UnitType = ""
	UnitTypeApartment   UnitType = "Apt"
	UnitTypeOffice      UnitType = "Ofc"
	UnitTypeRoom        UnitType = "Rm"
	UnitTypeSuite       UnitType = "Ste"
	UnitTypeUnit        UnitType = "Unit"
)

func (t UnitType) String() string { return string(t) }

// Unit is a value object identifying a unit within a building, such as an
// apartment or suite. The zero Unit is the defined sentinel for "no unit" and
// orders before every real unit.
type Unit struct {
	number string
	uType  UnitType
}

// EmptyUnit is the sentinel for an absent unit.
var EmptyUnit = Unit{}

// NewUnit constructs a Unit from its number or designator.
func NewUnit(number string) (Unit, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Unit{}, dErrors.New(dErrors.CodeInvalidInput, "unit number is required")
	}
	return Unit{number: number}, nil
}

// MustNewUnit is NewUnit for static fixtures; it panics on invalid input.
func MustNewUnit(number string) Unit {
	u, err := NewUnit(number)
	if err != nil {
		panic(err)
	}
	return u
}

// As returns a copy with the unit type set.
func (u Unit) As(t UnitType) Unit {
	u.uType = t
	return u
}

// Number returns the unit number or designator.
func (u Unit) Number() string { return u.number }

// Type returns the unit type, or UnitTypeUnspecified.
func (u Unit) Type() UnitType { return u.uType }

// IsEmpty reports whether the Unit is the absent sentinel.
func (u Unit) IsEmpty() bool { return u == EmptyUnit }

// CompareUnits orders units by number, then type; the empty sentinel orders
// first.
var CompareUnits = compare.Chain[Unit](
	compare.On(Unit.Number),
	compare.On(func(u Unit) string { return string(u.uType) }),
)

// String renders "[Type ]Number", or the empty string for the sentinel.
func (u Unit) String() string {
	if u.IsEmpty() {
		return ""
	}
	if u.uType == UnitTypeUnspecified {
		return u.number
	}
	return string(u.uType) + " " + u.number
}
