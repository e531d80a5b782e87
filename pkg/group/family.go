package group

import (
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// CompareFamilyMembers is the Family ordering: last name, birth date (unknown
// first), first name, then middle name. It also defines Family membership
// identity.
var CompareFamilyMembers = compare.Chain[*person.Person](
	compare.On(func(p *person.Person) string { return p.Name().Last() }),
	compare.By((*person.Person).BirthDate, compare.OptionalTimes),
	compare.On(func(p *person.Person) string { return p.Name().First() }),
	compare.On(func(p *person.Person) string { return p.Name().Middle() }),
)

// Family is a Group of people ordered by CompareFamilyMembers.
type Family struct {
	*Group[*person.Person]
}

// NewFamily creates an empty Family.
func NewFamily() *Family {
	return &Family{Group: New(CompareFamilyMembers)}
}

// FamilyOf creates a Family of the given people, deduplicated under the
// Family ordering.
func FamilyOf(members ...*person.Person) *Family {
	return &Family{Group: Of(CompareFamilyMembers, members...)}
}
