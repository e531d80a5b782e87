package jsoncodec

import (
	"encoding/json"

	"github.com/codeprimate-software/cp-domain-sub001/pkg/address"
	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// StreetDocument is the JSON shape of a Street.
type StreetDocument struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Direction string `json:"direction,omitempty"`
	Type      string `json:"type,omitempty"`
}

// UnitDocument is the JSON shape of a Unit.
type UnitDocument struct {
	Number string `json:"number"`
	Type   string `json:"type,omitempty"`
}

// ElevationDocument is the JSON shape of an Elevation.
type ElevationDocument struct {
	Altitude float64 `json:"altitude"`
	Unit     string  `json:"unit"`
}

// CoordinatesDocument is the JSON shape of Coordinates.
type CoordinatesDocument struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Elevation *ElevationDocument `json:"elevation,omitempty"`
}

// AddressDocument is the JSON shape of any Address variant. State is present
// only for United States addresses.
type AddressDocument struct {
	ID          string               `json:"id,omitempty"`
	Street      StreetDocument       `json:"street"`
	Unit        *UnitDocument        `json:"unit,omitempty"`
	City        string               `json:"city"`
	State       string               `json:"state,omitempty"`
	PostalCode  string               `json:"postalCode"`
	Country     string               `json:"country"`
	Coordinates *CoordinatesDocument `json:"coordinates,omitempty"`
	Type        string               `json:"type,omitempty"`
}

// AddressToDocument maps any Address variant onto its document shape.
func AddressToDocument(a address.Address) AddressDocument {
	doc := AddressDocument{
		Street: StreetDocument{
			Number:    a.Street().Number(),
			Name:      a.Street().Name(),
			Direction: a.Street().Direction().String(),
			Type:      a.Street().Type().String(),
		},
		City:       a.City().Name(),
		PostalCode: a.PostalCode().Value(),
		Country:    a.Country().Code(),
		Type:       a.Type().String(),
	}
	if !a.ID().IsNil() {
		doc.ID = a.ID().String()
	}
	if u := a.Unit(); !u.IsEmpty() {
		doc.Unit = &UnitDocument{Number: u.Number(), Type: u.Type().String()}
	}
	if us, ok := a.(*address.UnitedStatesAddress); ok {
		doc.State = us.State().Code()
	}
	if c, ok := a.Coordinates(); ok {
		cd := &CoordinatesDocument{Latitude: c.Latitude(), Longitude: c.Longitude()}
		if e, ok := c.Elevation(); ok {
			cd.Elevation = &ElevationDocument{Altitude: e.Altitude(), Unit: e.Unit().String()}
		}
		doc.Coordinates = cd
	}
	return doc
}

// AddressFromDocument reconstructs an Address through the Builder, so the
// country again selects the concrete variant and all invariants revalidate.
//
// Errors: CodeValidation wrapping the underlying violation.
func AddressFromDocument(doc AddressDocument) (address.Address, error) {
	country, err := address.ParseCountry(doc.Country)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid country")
	}

	street, err := address.NewStreet(doc.Street.Number, doc.Street.Name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid street")
	}
	if doc.Street.Direction != "" {
		d, err := address.ParseDirection(doc.Street.Direction)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid street direction")
		}
		street = street.WithDirection(d)
	}
	if doc.Street.Type != "" {
		t, err := address.ParseStreetType(doc.Street.Type)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid street type")
		}
		street = street.WithType(t)
	}

	city, err := address.NewCity(doc.City)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid city")
	}
	postal, err := address.NewPostalCode(doc.PostalCode)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid postal code")
	}

	// Build stamps the country onto the city and postal code.
	b := address.NewBuilder(country).
		On(street).
		In(city).
		WithPostalCode(postal)

	if doc.Unit != nil {
		unit, err := address.NewUnit(doc.Unit.Number)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid unit")
		}
		if doc.Unit.Type != "" {
			ut, err := address.ParseUnitType(doc.Unit.Type)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid unit type")
			}
			unit = unit.As(ut)
		}
		b.WithUnit(unit)
	}

	if doc.Coordinates != nil {
		coords, err := address.NewCoordinates(doc.Coordinates.Latitude, doc.Coordinates.Longitude)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has invalid coordinates")
		}
		if doc.Coordinates.Elevation != nil {
			lu, err := address.ParseLengthUnit(doc.Coordinates.Elevation.Unit)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid elevation unit")
			}
			elev, err := address.NewElevation(doc.Coordinates.Elevation.Altitude, lu)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid elevation")
			}
			coords = coords.At(elev)
		}
		b.At(coords)
	}

	if doc.Type != "" {
		t, err := address.ParseAddressType(doc.Type)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid type")
		}
		b.As(t)
	}

	addr, err := b.Build()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document is incomplete")
	}

	if doc.State != "" {
		us, ok := addr.(*address.UnitedStatesAddress)
		if !ok {
			return nil, dErrors.New(dErrors.CodeValidation, "address document has a state but is not a United States address")
		}
		state, err := address.ParseState(doc.State)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid state")
		}
		if err := us.SetState(state); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid state")
		}
	}

	if doc.ID != "" {
		addressID, err := id.ParseAddressID(doc.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "address document has an invalid id")
		}
		addr.Identify(addressID)
	}
	return addr, nil
}

// EncodeAddress renders an Address as a JSON object.
func EncodeAddress(a address.Address) ([]byte, error) {
	return json.Marshal(AddressToDocument(a))
}

// DecodeAddress reconstructs an Address from a JSON object.
//
// Errors: CodeValidation on malformed JSON or invariant violations.
func DecodeAddress(data []byte) (address.Address, error) {
	var doc AddressDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed address JSON")
	}
	return AddressFromDocument(doc)
}
