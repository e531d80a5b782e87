package group

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
)

// doeFamily returns the eight Does used across the family tests.
func doeFamily(t *testing.T) map[string]*person.Person {
	t.Helper()

	born := func(n name.Name, g person.Gender, year int, month time.Month, day int) *person.Person {
		birth := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return person.MustNewBorn(n, birth).As(g)
	}

	return map[string]*person.Person{
		"jon":    born(name.MustNewFull("Jon", "R", "Doe"), person.GenderMale, 1974, time.May, 27),
		"jane":   born(name.MustNewFull("Jane", "R", "Doe"), person.GenderFemale, 1975, time.January, 22),
		"joe":    born(name.MustNew("Joe", "Doe"), person.GenderMale, 1981, time.October, 2),
		"hoe":    born(name.MustNew("Hoe", "Doe"), person.GenderFemale, 1984, time.March, 14),
		"fro":    born(name.MustNewFull("Fro", "R", "Doe"), person.GenderMale, 1988, time.November, 5),
		"sour":   born(name.MustNew("Sour", "Doe"), person.GenderMale, 2011, time.August, 8),
		"pie":    born(name.MustNew("Pie", "Doe"), person.GenderFemale, 2013, time.April, 1),
		"cookie": born(name.MustNew("Cookie", "Doe"), person.GenderFemale, 2016, time.December, 9),
	}
}

func TestFamily_Does(t *testing.T) {
	does := doeFamily(t)
	family := FamilyOf(
		does["sour"], does["jon"], does["cookie"], does["jane"],
		does["pie"], does["joe"], does["fro"], does["hoe"],
	)
	asOf := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	t.Run("holds all eight members", func(t *testing.T) {
		assert.Equal(t, 8, family.Size())
	})

	t.Run("iterates eldest first", func(t *testing.T) {
		want := []*person.Person{
			does["jon"], does["jane"], does["joe"], does["hoe"],
			does["fro"], does["sour"], does["pie"], does["cookie"],
		}
		assert.Equal(t, want, family.Members())
	})

	t.Run("finds the adults", func(t *testing.T) {
		adults, err := family.FindBy(func(p *person.Person) bool {
			return p.IsAdultAsOf(asOf)
		})
		require.NoError(t, err)
		assert.Equal(t, []*person.Person{
			does["jon"], does["jane"], does["joe"], does["hoe"], does["fro"],
		}, adults)
	})

	t.Run("counts the women and girls", func(t *testing.T) {
		females, err := family.FindBy((*person.Person).IsFemale)
		require.NoError(t, err)
		assert.Equal(t, []*person.Person{
			does["jane"], does["hoe"], does["pie"], does["cookie"],
		}, females)
	})

	t.Run("renders members in order", func(t *testing.T) {
		subset := FamilyOf(does["jon"], does["jane"], does["fro"], does["cookie"])
		assert.Equal(t, "[Doe, Jon R; Doe, Jane R; Doe, Fro R; Doe, Cookie]", subset.String())
	})
}

func TestFamily_DeduplicatesUnderOrdering(t *testing.T) {
	does := doeFamily(t)

	// A second Jon R Doe born the same day ties under the Family ordering and
	// cannot join, whatever the gender.
	twin := person.MustNewBorn(
		name.MustNewFull("Jon", "R", "Doe"),
		time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC),
	).As(person.GenderNonBinary)

	family := FamilyOf(does["jon"], twin)
	assert.Equal(t, 1, family.Size())
	assert.True(t, family.Contains(twin))
}

func TestNewFamily_Empty(t *testing.T) {
	family := NewFamily()
	assert.True(t, family.IsEmpty())
	assert.True(t, family.Join(doeFamily(t)["pie"]))
}

func TestPeople_Ordering(t *testing.T) {
	does := doeFamily(t)
	smith := person.MustNewBorn(name.MustNew("Ann", "Smith"),
		time.Date(1990, time.July, 1, 0, 0, 0, 0, time.UTC))

	// People order by full name before birth date, so Cookie precedes Jon.
	people := PeopleOf(does["jon"], smith, does["cookie"])
	assert.Equal(t, []*person.Person{does["cookie"], does["jon"], smith}, people.Members())
}
