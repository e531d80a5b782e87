package jsoncodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeprimate-software/cp-domain-sub001/pkg/address"
	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/group"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
)

func newJonDoe(t *testing.T) *person.Person {
	t.Helper()
	p := person.MustNewBorn(
		name.MustNewFull("Jon", "R", "Doe"),
		time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC),
	).As(person.GenderMale)
	p.Identify(id.NewPersonID())
	return p
}

func TestPersonRoundTrip(t *testing.T) {
	original := newJonDoe(t)
	_, err := original.Died(time.Date(2020, time.February, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	data, err := EncodePerson(original)
	require.NoError(t, err)

	decoded, err := DecodePerson(data)
	require.NoError(t, err)

	assert.True(t, original.Equal(decoded))
	assert.Equal(t, original.ID(), decoded.ID())
	assert.Equal(t, original.Name(), decoded.Name())
	assert.Equal(t, original.Gender(), decoded.Gender())
	require.NotNil(t, decoded.DeathDate())
	assert.True(t, original.DeathDate().Equal(*decoded.DeathDate()))
}

func TestPersonToDocument_OmitsAbsentFields(t *testing.T) {
	p, err := person.New(name.MustNew("Ann", "Smith"))
	require.NoError(t, err)

	doc := PersonToDocument(p)
	assert.Empty(t, doc.ID)
	assert.Nil(t, doc.BirthDate)
	assert.Nil(t, doc.DeathDate)
	assert.Empty(t, doc.Gender)
}

func TestDecodePerson_Invalid(t *testing.T) {
	millis := func(v int64) *int64 { return &v }

	tests := []struct {
		name string
		doc  PersonDocument
	}{
		{name: "blank last name", doc: PersonDocument{FirstName: "Jon"}},
		{name: "future birth date", doc: PersonDocument{
			FirstName: "Jon", LastName: "Doe",
			BirthDate: millis(time.Now().Add(24 * time.Hour).UnixMilli()),
		}},
		{name: "death before birth", doc: PersonDocument{
			FirstName: "Jon", LastName: "Doe",
			BirthDate: millis(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()),
			DeathDate: millis(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()),
		}},
		{name: "unknown gender", doc: PersonDocument{
			FirstName: "Jon", LastName: "Doe", Gender: "unknown",
		}},
		{name: "garbled id", doc: PersonDocument{
			FirstName: "Jon", LastName: "Doe", ID: "not-a-uuid",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PersonFromDocument(tc.doc)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), "got %v", err)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := DecodePerson([]byte(`{"firstName":`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestFamilyRoundTrip(t *testing.T) {
	jon := newJonDoe(t)
	jane := person.MustNewBorn(
		name.MustNewFull("Jane", "R", "Doe"),
		time.Date(1975, time.January, 22, 0, 0, 0, 0, time.UTC),
	).As(person.GenderFemale)

	family := group.FamilyOf(jane, jon)
	family.Rename("Does")
	family.Identify(id.NewGroupID())

	data, err := EncodeFamily(family)
	require.NoError(t, err)

	decoded, err := DecodeFamily(data)
	require.NoError(t, err)

	assert.Equal(t, family.ID(), decoded.ID())
	assert.Equal(t, "Does", decoded.Group.Name())
	require.Equal(t, 2, decoded.Size())

	// Iteration order survives the trip: Jon is the elder.
	members := decoded.Members()
	assert.Equal(t, "Jon", members[0].Name().First())
	assert.Equal(t, "Jane", members[1].Name().First())
}

func TestDecodeFamily_InvalidMember(t *testing.T) {
	_, err := DecodeFamily([]byte(`{"members":[{"firstName":"Jon"}]}`))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func newPortlandOffice(t *testing.T) address.Address {
	t.Helper()
	coords, err := address.NewCoordinates(45.52, -122.68)
	require.NoError(t, err)
	elev, err := address.NewElevation(15, address.Meter)
	require.NoError(t, err)

	street := address.MustNewStreet(100, "Main").WithType(address.StreetTypeStreet)
	addr, err := address.NewBuilder(address.CountryUnitedStates).
		On(street).
		In(address.MustNewCity("Portland")).
		WithUnit(address.MustNewUnit("16A").As(address.UnitTypeSuite)).
		WithPostalCode(address.MustNewPostalCode("97205")).
		At(coords.At(elev)).
		As(address.TypeOffice).
		Build()
	require.NoError(t, err)
	addr.Identify(id.NewAddressID())
	return addr
}

func TestAddressRoundTrip_UnitedStates(t *testing.T) {
	original := newPortlandOffice(t)
	us, ok := original.(*address.UnitedStatesAddress)
	require.True(t, ok)
	oregon, err := address.ParseState("OR")
	require.NoError(t, err)
	require.NoError(t, us.SetState(oregon))

	data, err := EncodeAddress(original)
	require.NoError(t, err)

	decoded, err := DecodeAddress(data)
	require.NoError(t, err)

	assert.True(t, address.Equal(original, decoded))
	assert.Equal(t, original.ID(), decoded.ID())
	assert.Equal(t, address.TypeOffice, decoded.Type())

	decodedUS, ok := decoded.(*address.UnitedStatesAddress)
	require.True(t, ok)
	assert.Equal(t, "Oregon", decodedUS.State().Name())

	coords, ok := decoded.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 45.52, coords.Latitude(), 1e-9)
	elev, ok := coords.Elevation()
	require.True(t, ok)
	assert.InDelta(t, 15, elev.Altitude(), 1e-9)
}

func TestAddressRoundTrip_Generic(t *testing.T) {
	original, err := address.NewBuilder(address.Country("DE")).
		On(address.MustNewStreet(7, "Unter den Linden")).
		In(address.MustNewCity("Berlin")).
		WithPostalCode(address.MustNewPostalCode("10117")).
		Build()
	require.NoError(t, err)

	data, err := EncodeAddress(original)
	require.NoError(t, err)

	decoded, err := DecodeAddress(data)
	require.NoError(t, err)

	assert.IsType(t, &address.Generic{}, decoded)
	assert.True(t, address.Equal(original, decoded))
	assert.Equal(t, address.Country("DE"), decoded.Country())
}

func TestDecodeAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  AddressDocument
	}{
		{name: "unknown country", doc: AddressDocument{
			Street: StreetDocument{Number: 1, Name: "Main"}, City: "X", PostalCode: "1", Country: "XX",
		}},
		{name: "missing city", doc: AddressDocument{
			Street: StreetDocument{Number: 1, Name: "Main"}, PostalCode: "1", Country: "US",
		}},
		{name: "state on a non US address", doc: AddressDocument{
			Street: StreetDocument{Number: 1, Name: "Main"}, City: "Berlin",
			State: "OR", PostalCode: "10117", Country: "DE",
		}},
		{name: "latitude out of range", doc: AddressDocument{
			Street: StreetDocument{Number: 1, Name: "Main"}, City: "X", PostalCode: "1", Country: "US",
			Coordinates: &CoordinatesDocument{Latitude: 91, Longitude: 0},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AddressFromDocument(tc.doc)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), "got %v", err)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := DecodeAddress([]byte(`{`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
