// Package person models a person as a mutable entity around an immutable
// Name.
//
// Invariants:
//   - Name is always a valid, non-zero Name
//   - BirthDate, when set, is not in the future
//   - DeathDate, when set, does not precede BirthDate and is not in the future
//
// # Identity
//
// Person identity is the (birth date, name) pair. Gender and ID are
// observational data and deliberately excluded: two Persons with the same
// name and birth date but different gender or ID are Equal. Natural ordering
// compares name first, then birth date (absent before present).
package person

import (
	"time"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// Person is a mutable entity. Construct via New or NewBorn; the fluent
// mutators (Born, Died, As, Change, Identify) return the receiver for
// chaining and validate at the point of mutation.
type Person struct {
	id        id.PersonID
	name      name.Name
	birthDate *time.Time
	deathDate *time.Time
	gender    Gender

	// now is the clock used for temporal invariants; overridable in tests.
	now func() time.Time
}

// New constructs a Person with the given name.
func New(n name.Name) (*Person, error) {
	if n.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "person requires a name")
	}
	return &Person{name: n, now: time.Now}, nil
}

// NewBorn constructs a Person with the given name and birth date.
func NewBorn(n name.Name, birthDate time.Time) (*Person, error) {
	p, err := New(n)
	if err != nil {
		return nil, err
	}
	return p.Born(birthDate)
}

// MustNewBorn is NewBorn for static fixtures; it panics on invalid input.
func MustNewBorn(n name.Name, birthDate time.Time) *Person {
	p, err := NewBorn(n, birthDate)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns the person's identifier; the nil UUID means unassigned.
func (p *Person) ID() id.PersonID { return p.id }

// Identify assigns an identifier and returns the receiver for chaining.
func (p *Person) Identify(personID id.PersonID) *Person {
	p.id = personID
	return p
}

// Name returns the person's current name.
func (p *Person) Name() name.Name { return p.name }

// BirthDate returns the birth date, or nil when unknown.
func (p *Person) BirthDate() *time.Time { return p.birthDate }

// DeathDate returns the date of death, or nil while alive or unknown.
func (p *Person) DeathDate() *time.Time { return p.deathDate }

// Gender returns the person's gender, or GenderUnspecified.
func (p *Person) Gender() Gender { return p.gender }

// IsAlive reports whether no date of death has been recorded.
func (p *Person) IsAlive() bool { return p.deathDate == nil }

// IsFemale reports whether the recorded gender is female.
func (p *Person) IsFemale() bool { return p.gender == GenderFemale }

// IsMale reports whether the recorded gender is male.
func (p *Person) IsMale() bool { return p.gender == GenderMale }

// Born records the birth date and returns the receiver for chaining.
//
// Errors: CodeInvalidInput when the date is in the future;
// CodeInvariantViolation when a recorded death date would precede it.
func (p *Person) Born(birthDate time.Time) (*Person, error) {
	if birthDate.After(p.clock()) {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput,
			"birth date %s cannot be in the future", birthDate.Format(time.DateOnly))
	}
	if p.deathDate != nil && p.deathDate.Before(birthDate) {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation,
			"birth date %s cannot follow the date of death %s",
			birthDate.Format(time.DateOnly), p.deathDate.Format(time.DateOnly))
	}
	d := birthDate
	p.birthDate = &d
	return p, nil
}

// Died records the date of death and returns the receiver for chaining.
//
// Errors: CodeInvalidInput when the date is in the future;
// CodeInvariantViolation when the date precedes the birth date.
func (p *Person) Died(deathDate time.Time) (*Person, error) {
	if deathDate.After(p.clock()) {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput,
			"date of death %s cannot be in the future", deathDate.Format(time.DateOnly))
	}
	if p.birthDate != nil && deathDate.Before(*p.birthDate) {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation,
			"date of death %s cannot precede the birth date %s",
			deathDate.Format(time.DateOnly), p.birthDate.Format(time.DateOnly))
	}
	d := deathDate
	p.deathDate = &d
	return p, nil
}

// As records the gender and returns the receiver for chaining.
func (p *Person) As(g Gender) *Person {
	p.gender = g
	return p
}

// Change gives the person a new last name and returns the receiver for
// chaining. The underlying Name value is replaced, not mutated.
func (p *Person) Change(lastName string) (*Person, error) {
	n, err := p.name.Change(lastName)
	if err != nil {
		return nil, err
	}
	p.name = n
	return p, nil
}

// Rename replaces the person's name wholesale.
func (p *Person) Rename(n name.Name) (*Person, error) {
	if n.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "person requires a name")
	}
	p.name = n
	return p, nil
}

// Age returns the person's age in whole years as of the given instant, using
// the death date as the upper bound when the person has died. The second
// return is false when the birth date is unknown or asOf precedes it.
func (p *Person) Age(asOf time.Time) (int, bool) {
	if p.birthDate == nil {
		return 0, false
	}
	end := asOf
	if p.deathDate != nil && p.deathDate.Before(end) {
		end = *p.deathDate
	}
	if end.Before(*p.birthDate) {
		return 0, false
	}

	born := *p.birthDate
	years := end.Year() - born.Year()
	// Not yet reached this year's birthday.
	if end.Month() < born.Month() || (end.Month() == born.Month() && end.Day() < born.Day()) {
		years--
	}
	return years, true
}

// IsAdultAsOf reports whether the person is at least 18 years old as of the
// given instant. Unknown birth dates report false.
func (p *Person) IsAdultAsOf(asOf time.Time) bool {
	age, ok := p.Age(asOf)
	return ok && age >= 18
}

// Compare defines the natural ordering: name, then birth date, with an
// unknown birth date ordering before any known one.
var Compare = compare.Chain[*Person](
	compare.By((*Person).Name, name.Compare),
	compare.By((*Person).BirthDate, compare.OptionalTimes),
)

// Equal reports identity equality on the (birth date, name) pair. Gender and
// ID are intentionally excluded.
func (p *Person) Equal(other *Person) bool {
	if other == nil {
		return false
	}
	return Compare(p, other) == 0
}

// String renders the roster form "Last, First[ Middle]".
func (p *Person) String() string {
	return p.name.FormatLastFirst()
}

// WithClock overrides the clock used for temporal invariants. Intended for
// tests that need a fixed reference instant.
func (p *Person) WithClock(now func() time.Time) *Person {
	p.now = now
	return p
}

func (p *Person) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}
