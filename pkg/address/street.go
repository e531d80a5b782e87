package address

import (
	"strconv"
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// Direction is a compass point qualifying a street, as in "100 N Main St".
type Direction string

// Supported directions.
const (
	DirectionUnspecified Direction = ""
	North                Direction = "N"
	Northeast            Direction = "NE"
	East                 Direction = "E"
	Southeast            Direction = "SE"
	South                Direction = "S"
	Southwest            Direction = "SW"
	West                 Direction = "W"
	Northwest            Direction = "NW"
)

var directionsByToken = map[string]Direction{
	"N": North, "NORTH": North,
	"NE": Northeast, "NORTHEAST": Northeast,
	"E": East, "EAST": East,
	"SE": Southeast, "SOUTHEAST": Southeast,
	"S": South, "SOUTH": South,
	"SW": Southwest, "SOUTHWEST": Southwest,
	"W": West, "WEST": West,
	"NW": Northwest, "NORTHWEST": Northwest,
}

func (d Direction) String() string { return string(d) }

// StreetType classifies a street, as in "Main St" vs "Main Ave".
type StreetType string

// Supported street types; the value is the conventional abbreviation.
const (
	StreetTypeUnspecified StreetType = ""
	Avenue                StreetType = "Ave"
	Boulevard             StreetType = "Blvd"
	Circle                StreetType = "Cir"
	Court                 StreetType = "Ct"
	Drive                 StreetType = "Dr"
	Highway               StreetType = "Hwy"
	Lane                  StreetType = "Ln"
	Place                 StreetType = "Pl"
	Road                  StreetType = "Rd"
	Route                 StreetType = "Rte"
	StreetTypeStreet      StreetType = "St"
	Way                   StreetType = "Way"
)

var streetTypesByToken = map[string]StreetType{
	"AVE": Avenue, "AVENUE": Avenue,
	"BLVD": Boulevard, "BOULEVARD": Boulevard,
	"CIR": Circle, "CIRCLE": Circle,
	"CT": Court, "COURT": Court,
	"DR": Drive, "DRIVE": Drive,
	"HWY": Highway, "HIGHWAY": Highway,
	"LN": Lane, "LANE": Lane,
	"PL": Place, "PLACE": Place,
	"RD": Road, "ROAD": Road,
	"RTE": Route, "ROUTE": Route,
	"ST": StreetTypeStreet, "STREET": StreetTypeStreet,
	"WAY": Way,
}

func (t StreetType) String() string { return string(t) }

// Street is a value object identifying a street by number and name, with
// optional direction and type qualifiers.
//
// Invariants: Number is positive, Name is non-blank.
type Street struct {
	number    int
	name      string
	direction Direction
	sType     StreetType
}

// NewStreet constructs a Street from a building number and street name.
func NewStreet(number int, streetName string) (Street, error) {
	streetName = strings.TrimSpace(streetName)
	if number <= 0 {
		return Street{}, dErrors.Newf(dErrors.CodeInvalidInput, "street number %d must be positive", number)
	}
	if streetName == "" {
		return Street{}, dErrors.New(dErrors.CodeInvalidInput, "street name is required")
	}
	return Street{number: number, name: streetName}, nil
}

// MustNewStreet is NewStreet for static fixtures; it panics on invalid input.
func MustNewStreet(number int, streetName string) Street {
	s, err := NewStreet(number, streetName)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseStreet constructs a Street from a string such as "100 Main St" or
// "4550 NE Football Blvd". The leading token must be the numeric building
// number; a direction token may follow it, and a trailing token matching a
// known street type becomes the type.
//
// Errors: returns CodeInvalidInput when the input is blank, the leading token
// is not a positive integer, or no street name remains.
func ParseStreet(s string) (Street, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return Street{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"cannot parse street from %q: need a number and a name", s)
	}

	number, err := strconv.Atoi(tokens[0])
	if err != nil || number <= 0 {
		return Street{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"cannot parse street from %q: leading token must be a positive number", s)
	}
	tokens = tokens[1:]

	direction := DirectionUnspecified
	if d, ok := directionsByToken[strings.ToUpper(strings.TrimSuffix(tokens[0], "."))]; ok && len(tokens) > 1 {
		direction = d
		tokens = tokens[1:]
	}

	sType := StreetTypeUnspecified
	if len(tokens) > 1 {
		if t, ok := streetTypesByToken[strings.ToUpper(strings.TrimSuffix(tokens[len(tokens)-1], "."))]; ok {
			sType = t
			tokens = tokens[:len(tokens)-1]
		}
	}

	street, err := NewStreet(number, strings.Join(tokens, " "))
	if err != nil {
		return Street{}, err
	}
	return street.WithDirection(direction).WithType(sType), nil
}

// Number returns the building number.
func (s Street) Number() int { return s.number }

// Name returns the street name.
func (s Street) Name() string { return s.name }

// Direction returns the compass qualifier, or DirectionUnspecified.
func (s Street) Direction() Direction { return s.direction }

// Type returns the street type, or StreetTypeUnspecified.
func (s Street) Type() StreetType { return s.sType }

// IsZero reports whether the Street is the invalid zero value.
func (s Street) IsZero() bool { return s == Street{} }

// WithDirection returns a copy with the compass qualifier set.
func (s Street) WithDirection(d Direction) Street {
	s.direction = d
	return s
}

// WithType returns a copy with the street type set.
func (s Street) WithType(t StreetType) Street {
	s.sType = t
	return s
}

// CompareStreets orders streets by name, type, direction, then number.
var CompareStreets = compare.Chain[Street](
	compare.On(Street.Name),
	compare.On(func(s Street) string { return string(s.sType) }),
	compare.On(func(s Street) string { return string(s.direction) }),
	compare.On(Street.Number),
)

// String renders "number [direction ]name[ type]".
func (s Street) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.number))
	if s.direction != DirectionUnspecified {
		b.WriteString(" ")
		b.WriteString(string(s.direction))
	}
	b.WriteString(" ")
	b.WriteString(s.name)
	if s.sType != StreetTypeUnspecified {
		b.WriteString(" ")
		b.WriteString(string(s.sType))
	}
	return b.String()
}
