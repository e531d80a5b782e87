package person

import dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"

// Gender is an observational attribute of a Person. It does not participate
// in Person identity or natural ordering.
//
// Usage: construct via ParseGender at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Gender string

// Supported genders. The empty string means unspecified.
const (
	GenderUnspecified Gender = ""
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderNonBinary   Gender = "non_binary"
)

// validGenders is the single source of truth for valid gender values.
var validGenders = map[Gender]bool{
	GenderFemale:    true,
	GenderMale:      true,
	GenderNonBinary: true,
}

// ParseGender constructs a Gender from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseGender(s string) (Gender, error) {
	if s == "" {
		return GenderUnspecified, dErrors.New(dErrors.CodeInvalidInput, "gender cannot be empty")
	}
	g := Gender(s)
	if !g.IsValid() {
		return GenderUnspecified, dErrors.Newf(dErrors.CodeInvalidInput, "invalid gender %q", s)
	}
	return g, nil
}

// IsValid checks if the gender is one of the supported enum values.
func (g Gender) IsValid() bool {
	return validGenders[g]
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}
