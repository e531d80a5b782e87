package address

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// State is a United States state or federal district, by USPS two-letter
// code.
//
// Usage: construct via ParseState at trust boundaries; direct casting
// bypasses validation.
type State string

// StateUnspecified is the zero State.
const StateUnspecified State = ""

// stateNames is the single source of truth for valid states.
var stateNames = map[State]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DE": "Delaware", "DC": "District of Columbia", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland", "MA": "Massachusetts",
	"MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire",
	"NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

// ParseState constructs a State from a two-letter USPS code.
//
// Errors: returns CodeInvalidInput when the value is empty or not a known
// state code.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateUnspecified, dErrors.New(dErrors.CodeInvalidInput, "state cannot be empty")
	}
	st := State(strings.ToUpper(s))
	if _, ok := stateNames[st]; !ok {
		return StateUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid state %q", s)
	}
	return st, nil
}

// Code returns the two-letter USPS code.
func (s State) Code() string { return string(s) }

// Name returns the full state name.
func (s State) Name() string { return stateNames[s] }

func (s State) String() string { return string(s) }

// ZIP is a United States postal code: five digits with an optional plus-four
// extension.
type ZIP struct {
	code     string
	plusFour string
}

// NewZIP constructs a ZIP from "12345" or "12345-6789" form.
//
// Errors: returns CodeInvalidInput for anything else.
func NewZIP(value string) (ZIP, error) {
	value = strings.TrimSpace(value)
	code, plusFour, _ := strings.Cut(value, "-")
	if !digits(code, 5) {
		return ZIP{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"ZIP %q must start with five digits", value)
	}
	if plusFour != "" && !digits(plusFour, 4) {
		return ZIP{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"ZIP extension in %q must be four digits", value)
	}
	return ZIP{code: code, plusFour: plusFour}, nil
}

func digits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Code returns the five-digit code.
func (z ZIP) Code() string { return z.code }

// PlusFour returns the plus-four extension, or the empty string.
func (z ZIP) PlusFour() string { return z.plusFour }

// String renders "12345" or "12345-6789".
func (z ZIP) String() string {
	if z.plusFour == "" {
		return z.code
	}
	return z.code + "-" + z.plusFour
}

// UnitedStatesAddress is the Address variant for the United States. It adds a
// State and keeps its postal code in ZIP form: SetPostalCode rejects values
// that are not valid ZIP codes.
type UnitedStatesAddress struct {
	base
	state State
	zip   ZIP
}

// NewUnitedStates constructs an empty United States address. Prefer the
// Builder for fully assembled addresses.
func NewUnitedStates() *UnitedStatesAddress {
	return &UnitedStatesAddress{base: base{country: CountryUnitedStates}}
}

// State returns the state, or StateUnspecified.
func (u *UnitedStatesAddress) State() State { return u.state }

// SetState records the state.
//
// Errors: returns CodeInvalidInput for an unknown state code.
func (u *UnitedStatesAddress) SetState(s State) error {
	if _, ok := stateNames[s]; !ok {
		return dErrors.Newf(dErrors.CodeInvalidInput, "invalid state %q", s)
	}
	u.state = s
	return nil
}

// ZIP returns the postal code in ZIP form.
func (u *UnitedStatesAddress) ZIP() ZIP { return u.zip }

// SetPostalCode records the postal code, which must be a valid ZIP.
func (u *UnitedStatesAddress) SetPostalCode(pc PostalCode) error {
	if pc.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "postal code is required")
	}
	zip, err := NewZIP(pc.Value())
	if err != nil {
		return err
	}
	u.zip = zip
	u.postal = pc.In(CountryUnitedStates)
	return nil
}

// String renders the address with the state between city and ZIP.
func (u *UnitedStatesAddress) String() string {
	parts := []string{u.street.String()}
	if !u.unit.IsEmpty() {
		parts = append(parts, u.unit.String())
	}
	parts = append(parts, u.city.String())
	if u.state != StateUnspecified {
		parts = append(parts, u.state.Code())
	}
	parts = append(parts, u.zip.String(), u.country.Name())
	return strings.Join(parts, ", ")
}
