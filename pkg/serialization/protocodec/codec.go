// Package protocodec maps the domain model to and from a binary wire form.
// Documents are encoded as protobuf well-known Struct messages
// (google.protobuf.Struct) and marshaled with the protobuf wire format, so
// any protobuf consumer can read them without a dedicated schema.
//
// Field names and conventions match pkg/serialization/jsoncodec: firstName,
// middleName, lastName, birthDate/deathDate as millisecond Unix epochs,
// gender as the fixed enumeration.
package protocodec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/group"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/serialization/jsoncodec"
)

// EncodePerson renders a Person as a binary Struct message.
func EncodePerson(p *person.Person) ([]byte, error) {
	s, err := structpb.NewStruct(personFields(jsoncodec.PersonToDocument(p)))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "cannot encode person")
	}
	return proto.Marshal(s)
}

// DecodePerson reconstructs a Person from a binary Struct message.
//
// Errors: CodeValidation on a malformed message or invariant violations.
func DecodePerson(data []byte) (*person.Person, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed person message")
	}
	doc, err := personDocument(s.AsMap())
	if err != nil {
		return nil, err
	}
	return jsoncodec.PersonFromDocument(doc)
}

// EncodeFamily renders a Family as a binary Struct message with its members
// in iteration order.
func EncodeFamily(f *group.Family) ([]byte, error) {
	doc := jsoncodec.FamilyToDocument(f)
	members := make([]any, 0, len(doc.Members))
	for _, md := range doc.Members {
		members = append(members, personFields(md))
	}
	fields := map[string]any{"members": members}
	if doc.ID != "" {
		fields["id"] = doc.ID
	}
	if doc.Name != "" {
		fields["name"] = doc.Name
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "cannot encode family")
	}
	return proto.Marshal(s)
}

// DecodeFamily reconstructs a Family from a binary Struct message.
//
// Errors: CodeValidation on a malformed message or invariant violations.
func DecodeFamily(data []byte) (*group.Family, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed family message")
	}
	m := s.AsMap()

	doc := jsoncodec.FamilyDocument{}
	var err error
	if doc.ID, err = optionalString(m, "id"); err != nil {
		return nil, err
	}
	if doc.Name, err = optionalString(m, "name"); err != nil {
		return nil, err
	}
	rawMembers, _ := m["members"].([]any)
	for _, raw := range rawMembers {
		fields, ok := raw.(map[string]any)
		if !ok {
			return nil, dErrors.New(dErrors.CodeValidation, "family message member is not a struct")
		}
		md, err := personDocument(fields)
		if err != nil {
			return nil, err
		}
		doc.Members = append(doc.Members, md)
	}
	return jsoncodec.FamilyFromDocument(doc)
}

func personFields(doc jsoncodec.PersonDocument) map[string]any {
	fields := map[string]any{
		"firstName": doc.FirstName,
		"lastName":  doc.LastName,
	}
	if doc.ID != "" {
		fields["id"] = doc.ID
	}
	if doc.MiddleName != "" {
		fields["middleName"] = doc.MiddleName
	}
	if doc.BirthDate != nil {
		fields["birthDate"] = *doc.BirthDate
	}
	if doc.DeathDate != nil {
		fields["deathDate"] = *doc.DeathDate
	}
	if doc.Gender != "" {
		fields["gender"] = doc.Gender
	}
	return fields
}

func personDocument(m map[string]any) (jsoncodec.PersonDocument, error) {
	var doc jsoncodec.PersonDocument
	var err error
	if doc.ID, err = optionalString(m, "id"); err != nil {
		return doc, err
	}
	if doc.FirstName, err = optionalString(m, "firstName"); err != nil {
		return doc, err
	}
	if doc.MiddleName, err = optionalString(m, "middleName"); err != nil {
		return doc, err
	}
	if doc.LastName, err = optionalString(m, "lastName"); err != nil {
		return doc, err
	}
	if doc.Gender, err = optionalString(m, "gender"); err != nil {
		return doc, err
	}
	if doc.BirthDate, err = optionalMillis(m, "birthDate"); err != nil {
		return doc, err
	}
	if doc.DeathDate, err = optionalMillis(m, "deathDate"); err != nil {
		return doc, err
	}
	return doc, nil
}

func optionalString(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", dErrors.Newf(dErrors.CodeValidation, "message field %q is not a string", key)
	}
	return s, nil
}

func optionalMillis(m map[string]any, key string) (*int64, error) {
	raw, ok := m[key]
	if !ok {
		return nil, nil
	}
	// Struct numbers surface as float64; millisecond epochs fit exactly.
	f, ok := raw.(float64)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeValidation, "message field %q is not a number", key)
	}
	millis := int64(f)
	return &millis, nil
}
