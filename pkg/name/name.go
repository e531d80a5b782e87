// Package name models a person's name as an immutable value object.
//
// Invariants:
//   - First and Last are non-blank
//   - Middle is normalized to the empty string when blank
//
// Equality covers all three components. Ordering is last name, first name,
// middle name; an absent middle name orders before any present one.
package name

import (
	"strings"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// Name is an immutable value object. The zero value is not a valid Name;
// construct via New, NewFull or Parse.
type Name struct {
	first  string
	middle string
	last   string
}

// titles and suffixes are stripped (case-insensitively, with or without a
// trailing period) when parsing a full name string.
var titles = map[string]bool{
	"DR":   true,
	"LADY": true,
	"LORD": true,
	"MISS": true,
	"MRS":  true,
	"MR":   true,
	"MS":   true,
	"SIR":  true,
}

var suffixes = map[string]bool{
	"JR": true,
	"SR": true,
}

// New constructs a Name from first and last components.
func New(first, last string) (Name, error) {
	return NewFull(first, "", last)
}

// NewFull constructs a Name from first, middle and last components. A blank
// middle name is normalized to absent.
func NewFull(first, middle, last string) (Name, error) {
	first = strings.TrimSpace(first)
	middle = strings.TrimSpace(middle)
	last = strings.TrimSpace(last)

	if first == "" {
		return Name{}, dErrors.New(dErrors.CodeInvalidInput, "first name is required")
	}
	if last == "" {
		return Name{}, dErrors.New(dErrors.CodeInvalidInput, "last name is required")
	}
	return Name{first: first, middle: middle, last: last}, nil
}

// MustNew is New for static fixtures; it panics on invalid input.
func MustNew(first, last string) Name {
	n, err := New(first, last)
	if err != nil {
		panic(err)
	}
	return n
}

// MustNewFull is NewFull for static fixtures; it panics on invalid input.
func MustNewFull(first, middle, last string) Name {
	n, err := NewFull(first, middle, last)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse constructs a Name from a whitespace-separated full name string.
// Recognized honorific titles (Dr, Lady, Lord, Miss, Mrs, Mr, Ms, Sir) and
// suffixes (Jr, Sr) are stripped before splitting. At least two tokens must
// remain: the first becomes the first name, the last becomes the last name,
// and anything between becomes the middle name.
//
// Errors: returns CodeInvalidInput when the input is blank or fewer than two
// tokens remain after stripping.
func Parse(fullName string) (Name, error) {
	fields := strings.Fields(fullName)

	tokens := fields[:0:0]
	for _, f := range fields {
		key := strings.ToUpper(strings.TrimSuffix(f, "."))
		if titles[key] || suffixes[key] {
			continue
		}
		tokens = append(tokens, f)
	}

	if len(tokens) < 2 {
		return Name{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"cannot parse name from %q: need at least a first and last name", fullName)
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	middle := strings.Join(tokens[1:len(tokens)-1], " ")

	return NewFull(first, middle, last)
}

// First returns the first name.
func (n Name) First() string { return n.first }

// Middle returns the middle name, or the empty string when absent.
func (n Name) Middle() string { return n.middle }

// Last returns the last name.
func (n Name) Last() string { return n.last }

// HasMiddle reports whether a middle name is present.
func (n Name) HasMiddle() bool { return n.middle != "" }

// IsZero reports whether the Name is the invalid zero value.
func (n Name) IsZero() bool { return n == Name{} }

// Change returns a copy of the Name with a new last name, typically for a
// name change on marriage or deed poll.
func (n Name) Change(last string) (Name, error) {
	return NewFull(n.first, n.middle, last)
}

// Compare orders names by last name, then first name, then middle name.
// The empty middle name acts as the sentinel for absent and orders first.
var Compare = compare.Chain[Name](
	compare.On(Name.Last),
	compare.On(Name.First),
	compare.On(Name.Middle),
)

// Equal reports component-wise equality.
func (n Name) Equal(other Name) bool { return n == other }

// String renders "First [Middle ]Last"; Parse reconstructs an equal Name from
// it for components containing no internal whitespace.
func (n Name) String() string {
	if n.middle == "" {
		return n.first + " " + n.last
	}
	return n.first + " " + n.middle + " " + n.last
}

// FormatLastFirst renders "Last, First[ Middle]", the roster form used when
// listing group members.
func (n Name) FormatLastFirst() string {
	if n.middle == "" {
		return n.last + ", " + n.first
	}
	return n.last + ", " + n.first + " " + n.middle
}
