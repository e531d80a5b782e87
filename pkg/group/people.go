package group

import (
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
)

// ComparePeople is the People ordering: full name (last, first, middle), then
// birth date with unknown first. It also defines People membership identity.
var ComparePeople = compare.Chain[*person.Person](
	compare.On(func(p *person.Person) string { return p.Name().Last() }),
	compare.On(func(p *person.Person) string { return p.Name().First() }),
	compare.On(func(p *person.Person) string { return p.Name().Middle() }),
	compare.By((*person.Person).BirthDate, compare.OptionalTimes),
)

// People is a general-purpose Group of people ordered by ComparePeople, for
// collections that are not families.
type People struct {
	*Group[*person.Person]
}

// NewPeople creates an empty People group.
func NewPeople() *People {
	return &People{Group: New(ComparePeople)}
}

// PeopleOf creates a People group of the given people, deduplicated under the
// People ordering.
func PeopleOf(members ...*person.Person) *People {
	return &People{Group: Of(ComparePeople, members...)}
}
