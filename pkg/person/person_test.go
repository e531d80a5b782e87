package person

import (
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
)

// now is the fixed reference instant for temporal invariants in these tests.
var now = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func newPerson(t *testing.T, first, last string) *Person {
	t.Helper()
	p, err := New(name.MustNew(first, last))
	require.NoError(t, err)
	return p.WithClock(fixedClock)
}

func TestNew(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		_, err := New(name.Name{})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("starts alive with nothing recorded", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		assert.True(t, p.IsAlive())
		assert.Nil(t, p.BirthDate())
		assert.Nil(t, p.DeathDate())
		assert.Equal(t, GenderUnspecified, p.Gender())
		assert.True(t, p.ID().IsNil())
	})
}

func TestBorn(t *testing.T) {
	t.Run("records the birth date and chains", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		birth := time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC)

		chained, err := p.Born(birth)
		require.NoError(t, err)
		assert.Same(t, p, chained)
		require.NotNil(t, p.BirthDate())
		assert.True(t, p.BirthDate().Equal(birth))
	})

	t.Run("rejects a future birth date", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Born(now.AddDate(0, 0, 1))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Nil(t, p.BirthDate())
	})

	t.Run("rejects a birth date after a recorded death", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Died(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		_, err = p.Born(time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestDied(t *testing.T) {
	birth := time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC)

	t.Run("records the date of death", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Born(birth)
		require.NoError(t, err)

		_, err = p.Died(time.Date(2020, time.March, 3, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.False(t, p.IsAlive())
	})

	t.Run("rejects death before birth", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Born(birth)
		require.NoError(t, err)

		_, err = p.Died(birth.AddDate(0, 0, -1))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		assert.True(t, p.IsAlive())
	})

	t.Run("rejects a future date of death", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Died(now.AddDate(0, 0, 1))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestAs(t *testing.T) {
	p := newPerson(t, "Jane", "Doe").As(GenderFemale)
	assert.True(t, p.IsFemale())
	assert.False(t, p.IsMale())
}

func TestChange(t *testing.T) {
	p := newPerson(t, "Jane", "Smith")

	chained, err := p.Change("Doe")
	require.NoError(t, err)
	assert.Same(t, p, chained)
	assert.Equal(t, "Doe", p.Name().Last())

	_, err = p.Change(" ")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestAge(t *testing.T) {
	birth := time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC)

	t.Run("unknown without a birth date", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, ok := p.Age(now)
		assert.False(t, ok)
	})

	t.Run("whole years as of the given instant", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Born(birth)
		require.NoError(t, err)

		age, ok := p.Age(now)
		require.True(t, ok)
		assert.Equal(t, 50, age)

		// Day before the birthday.
		age, ok = p.Age(time.Date(2024, time.May, 26, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 49, age)
	})

	t.Run("capped at the date of death", func(t *testing.T) {
		p := newPerson(t, "Jon", "Doe")
		_, err := p.Born(birth)
		require.NoError(t, err)
		_, err = p.Died(time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		age, ok := p.Age(now)
		require.True(t, ok)
		assert.Equal(t, 26, age)
	})
}

func TestEqual_IdentityIsNameAndBirthDate(t *testing.T) {
	birth := time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC)

	a := MustNewBorn(name.MustNew("Jon", "Doe"), birth)
	b := MustNewBorn(name.MustNew("Jon", "Doe"), birth)

	// Different gender and ID do not break identity.
	a.As(GenderMale).Identify(id.NewPersonID())
	b.As(GenderNonBinary)

	assert.True(t, a.Equal(b))
	assert.Zero(t, Compare(a, b))

	c := MustNewBorn(name.MustNew("Jon", "Doe"), birth.AddDate(1, 0, 0))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestCompare_NameThenBirthDate(t *testing.T) {
	birth := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

	adams := MustNewBorn(name.MustNew("Zed", "Adams"), birth)
	doeOld := MustNewBorn(name.MustNew("Jon", "Doe"), birth)
	doeYoung := MustNewBorn(name.MustNew("Jon", "Doe"), birth.AddDate(10, 0, 0))
	doeUnknown, err := New(name.MustNew("Jon", "Doe"))
	require.NoError(t, err)

	assert.Negative(t, Compare(adams, doeOld), "name is the first key")
	assert.Negative(t, Compare(doeOld, doeYoung), "birth date breaks name ties")
	assert.Negative(t, Compare(doeUnknown, doeOld), "unknown birth date orders first")
}

// TestCompare_TotalOrder exercises reflexivity, antisymmetry and transitivity
// over randomized people.
func TestCompare_TotalOrder(t *testing.T) {
	people := make([]*Person, 0, 60)
	for i := 0; i < 60; i++ {
		n := name.MustNew(randomdata.FirstName(randomdata.RandomGender), randomdata.LastName())
		p, err := New(n)
		require.NoError(t, err)
		if i%3 != 0 {
			birth := time.Date(1930+randomdata.Number(0, 90), time.Month(randomdata.Number(1, 13)),
				randomdata.Number(1, 28), 0, 0, 0, 0, time.UTC)
			_, err = p.WithClock(fixedClock).Born(birth)
			require.NoError(t, err)
		}
		people = append(people, p)
	}

	for _, p := range people {
		assert.Zero(t, Compare(p, p), "reflexivity")
	}
	for _, a := range people {
		for _, b := range people {
			assert.Equal(t, sign(Compare(a, b)), -sign(Compare(b, a)), "antisymmetry")
			for _, c := range people {
				if Compare(a, b) < 0 && Compare(b, c) < 0 {
					assert.Negative(t, Compare(a, c), "transitivity")
				}
			}
		}
	}
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

func TestString(t *testing.T) {
	p, err := New(name.MustNewFull("Jon", "R", "Doe"))
	require.NoError(t, err)
	assert.Equal(t, "Doe, Jon R", p.String())
}
