package address

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// Parse helpers for the enumerated qualifiers, used at trust boundaries such
// as the serialization codecs. Direct casting bypasses validation.

// ParseDirection constructs a Direction from an abbreviation or full word
// ("NE", "Northeast").
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DirectionUnspecified, dErrors.New(dErrors.CodeInvalidInput, "direction cannot be empty")
	}
	if d, ok := directionsByToken[strings.ToUpper(strings.TrimSuffix(s, "."))]; ok {
		return d, nil
	}
	return DirectionUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid direction %q", s)
}

// ParseStreetType constructs a StreetType from an abbreviation or full word
// ("Ave", "Avenue").
func ParseStreetType(s string) (StreetType, error) {
	if s == "" {
		return StreetTypeUnspecified, dErrors.New(dErrors.CodeInvalidInput, "street type cannot be empty")
	}
	if t, ok := streetTypesByToken[strings.ToUpper(strings.TrimSuffix(s, "."))]; ok {
		return t, nil
	}
	return StreetTypeUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid street type %q", s)
}

// unitTypesByToken maps tokens to unit types.
var unitTypesByToken = map[string]UnitType{
	"APT": UnitTypeApartment, "APARTMENT": UnitTypeApartment,
	"OFC": UnitTypeOffice, "OFFICE": UnitTypeOffice,
	"RM": UnitTypeRoom, "ROOM": UnitTypeRoom,
	"STE": UnitTypeSuite, "SUITE": UnitTypeSuite,
	"UNIT": UnitTypeUnit,
}

// ParseUnitType constructs a UnitType from an abbreviation or full word
// ("Apt", "Apartment").
func ParseUnitType(s string) (UnitType, error) {
	if s == "" {
		return UnitTypeUnspecified, dErrors.New(dErrors.CodeInvalidInput, "unit type cannot be empty")
	}
	if t, ok := unitTypesByToken[strings.ToUpper(strings.TrimSuffix(s, "."))]; ok {
		return t, nil
	}
	return UnitTypeUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid unit type %q", s)
}

// ParseLengthUnit constructs a LengthUnit from its symbol ("m", "ft").
func ParseLengthUnit(s string) (LengthUnit, error) {
	u := LengthUnit(strings.ToLower(s))
	if !u.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid length unit %q", s)
	}
	return u, nil
}
