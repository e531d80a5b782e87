// Package domain holds typed identifiers shared across the model packages.
//
// Each identifier is a defined type over uuid.UUID so the compiler prevents
// cross-type assignment. Construct IDs from external input via the ParseXxxID
// functions, which enforce the invariant that IDs are valid, non-empty,
// non-nil UUIDs; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

// PersonID identifies a Person entity.
type PersonID uuid.UUID

// GroupID identifies a Group (Family, People).
type GroupID uuid.UUID

// AddressID identifies an Address.
type AddressID uuid.UUID

// NewPersonID allocates a fresh random PersonID.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// NewGroupID allocates a fresh random GroupID.
func NewGroupID() GroupID { return GroupID(uuid.New()) }

// NewAddressID allocates a fresh random AddressID.
func NewAddressID() AddressID { return AddressID(uuid.New()) }

func (id PersonID) String() string  { return uuid.UUID(id).String() }
func (id GroupID) String() string   { return uuid.UUID(id).String() }
func (id AddressID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id PersonID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id GroupID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id AddressID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id cannot be empty", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, kind+" id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id cannot be the nil UUID", kind)
	}
	return u, nil
}

// ParsePersonID constructs a PersonID from external input.
func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID(s, "person")
	return PersonID(u), err
}

// ParseGroupID constructs a GroupID from external input.
func ParseGroupID(s string) (GroupID, error) {
	u, err := parseUUID(s, "group")
	return GroupID(u), err
}

// ParseAddressID constructs an AddressID from external input.
func ParseAddressID(s string) (AddressID, error) {
	u, err := parseUUID(s, "address")
	return AddressID(u), err
}
