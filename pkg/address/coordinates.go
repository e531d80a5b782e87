package address

import (
	"fmt"
	"math"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// LengthUnit is a unit of length for elevation measurements.
type LengthUnit string

// Supported length units.
const (
	Meter     LengthUnit = "m"
	Kilometer LengthUnit = "km"
	Foot      LengthUnit = "ft"
	Yard      LengthUnit = "yd"
	Mile      LengthUnit = "mi"
)

// metersPer is the single source of truth for unit conversion.
var metersPer = map[LengthUnit]float64{
	Meter:     1,
	Kilometer: 1000,
	Foot:      0.3048,
	Yard:      0.9144,
	Mile:      1609.344,
}

// IsValid checks if the length unit is one of the supported enum values.
func (u LengthUnit) IsValid() bool {
	_, ok := metersPer[u]
	return ok
}

func (u LengthUnit) String() string { return string(u) }

// Elevation is a value object measuring altitude in a given length unit.
// Comparison and equality are unit-normalized: 1 km equals 1000 m.
type Elevation struct {
	altitude float64
	unit     LengthUnit
}

// NewElevation constructs an Elevation.
//
// Errors: returns CodeInvalidInput for an unsupported unit or a non-finite
// altitude.
func NewElevation(altitude float64, unit LengthUnit) (Elevation, error) {
	if !unit.IsValid() {
		return Elevation{}, dErrors.Newf(dErrors.CodeInvalidInput, "unsupported length unit %q", unit)
	}
	if math.IsNaN(altitude) || math.IsInf(altitude, 0) {
		return Elevation{}, dErrors.New(dErrors.CodeInvalidInput, "altitude must be a finite number")
	}
	return Elevation{altitude: altitude, unit: unit}, nil
}

// Altitude returns the altitude in the elevation's own unit.
func (e Elevation) Altitude() float64 { return e.altitude }

// Unit returns the length unit.
func (e Elevation) Unit() LengthUnit { return e.unit }

// Meters returns the altitude normalized to meters.
func (e Elevation) Meters() float64 { return e.altitude * metersPer[e.unit] }

// Compare orders elevations by meter-normalized altitude.
func (e Elevation) Compare(other Elevation) int {
	a, b := e.Meters(), other.Meters()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports unit-normalized equality.
func (e Elevation) Equal(other Elevation) bool { return e.Compare(other) == 0 }

func (e Elevation) String() string {
	return fmt.Sprintf("%g %s", e.altitude, e.unit)
}

// Coordinates is a value object locating a point on the globe, with an
// optional elevation.
//
// Invariants: latitude in [-90, 90], longitude in [-180, 180].
type Coordinates struct {
	latitude  float64
	longitude float64
	elevation *Elevation
}

// NewCoordinates constructs Coordinates from latitude and longitude degrees.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return Coordinates{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"latitude %g must be in [-90, 90]", latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return Coordinates{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"longitude %g must be in [-180, 180]", longitude)
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

// At returns a copy with the elevation set.
func (c Coordinates) At(e Elevation) Coordinates {
	c.elevation = &e
	return c
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 { return c.latitude }

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 { return c.longitude }

// Elevation returns the elevation, or false when not measured.
func (c Coordinates) Elevation() (Elevation, bool) {
	if c.elevation == nil {
		return Elevation{}, false
	}
	return *c.elevation, true
}

// Equal reports numeric equality of latitude, longitude and meter-normalized
// elevation.
func (c Coordinates) Equal(other Coordinates) bool {
	if c.latitude != other.latitude || c.longitude != other.longitude {
		return false
	}
	ce, cok := c.Elevation()
	oe, ook := other.Elevation()
	if cok != ook {
		return false
	}
	return !cok || ce.Equal(oe)
}

func (c Coordinates) String() string {
	if c.elevation != nil {
		return fmt.Sprintf("[%g, %g] at %s", c.latitude, c.longitude, c.elevation)
	}
	return fmt.Sprintf("[%g, %g]", c.latitude, c.longitude)
}
