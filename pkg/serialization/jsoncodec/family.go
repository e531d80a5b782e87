package jsoncodec

import (
	"encoding/json"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/group"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
)

// FamilyDocument is the JSON shape of a Family: its members as person
// documents, in iteration order.
type FamilyDocument struct {
	ID      string           `json:"id,omitempty"`
	Name    string           `json:"name,omitempty"`
	Members []PersonDocument `json:"members"`
}

// FamilyToDocument maps a Family onto its document shape.
func FamilyToDocument(f *group.Family) FamilyDocument {
	doc := FamilyDocument{Name: f.Group.Name()}
	if !f.ID().IsNil() {
		doc.ID = f.ID().String()
	}
	for _, m := range f.Members() {
		doc.Members = append(doc.Members, PersonToDocument(m))
	}
	return doc
}

// FamilyFromDocument reconstructs a Family, revalidating every member.
//
// Errors: CodeValidation wrapping the underlying violation.
func FamilyFromDocument(doc FamilyDocument) (*group.Family, error) {
	members := make([]*person.Person, 0, len(doc.Members))
	for _, md := range doc.Members {
		p, err := PersonFromDocument(md)
		if err != nil {
			return nil, err
		}
		members = append(members, p)
	}
	f := group.FamilyOf(members...)
	f.Rename(doc.Name)
	if doc.ID != "" {
		groupID, err := id.ParseGroupID(doc.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "family document has an invalid id")
		}
		f.Identify(groupID)
	}
	return f, nil
}

// EncodeFamily renders a Family as a JSON object.
func EncodeFamily(f *group.Family) ([]byte, error) {
	return json.Marshal(FamilyToDocument(f))
}

// DecodeFamily reconstructs a Family from a JSON object.
//
// Errors: CodeValidation on malformed JSON or invariant violations.
func DecodeFamily(data []byte) (*group.Family, error) {
	var doc FamilyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed family JSON")
	}
	return FamilyFromDocument(doc)
}
