// Package jsoncodec maps the domain model to and from its JSON document
// shapes. The codec is a thin adapter: it round-trips state through the
// model's accessors and construction factories, so every decode revalidates
// domain invariants.
//
// Timestamps travel as millisecond Unix epochs; gender as the fixed
// enumeration of pkg/person.
package jsoncodec

import (
	"encoding/json"
	"time"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
)

// PersonDocument is the JSON shape of a Person.
type PersonDocument struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	BirthDate  *int64 `json:"birthDate,omitempty"`
	DeathDate  *int64 `json:"deathDate,omitempty"`
	Gender     string `json:"gender,omitempty"`
}

// PersonToDocument maps a Person onto its document shape.
func PersonToDocument(p *person.Person) PersonDocument {
	doc := PersonDocument{
		FirstName:  p.Name().First(),
		MiddleName: p.Name().Middle(),
		LastName:   p.Name().Last(),
		Gender:     p.Gender().String(),
	}
	if !p.ID().IsNil() {
		doc.ID = p.ID().String()
	}
	if bd := p.BirthDate(); bd != nil {
		millis := bd.UnixMilli()
		doc.BirthDate = &millis
	}
	if dd := p.DeathDate(); dd != nil {
		millis := dd.UnixMilli()
		doc.DeathDate = &millis
	}
	return doc
}

// PersonFromDocument reconstructs a Person, revalidating all invariants.
//
// Errors: CodeValidation wrapping the underlying violation.
func PersonFromDocument(doc PersonDocument) (*person.Person, error) {
	n, err := name.NewFull(doc.FirstName, doc.MiddleName, doc.LastName)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document has an invalid name")
	}
	p, err := person.New(n)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document is invalid")
	}
	if doc.BirthDate != nil {
		if _, err := p.Born(time.UnixMilli(*doc.BirthDate)); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document has an invalid birth date")
		}
	}
	if doc.DeathDate != nil {
		if _, err := p.Died(time.UnixMilli(*doc.DeathDate)); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document has an invalid death date")
		}
	}
	if doc.Gender != "" {
		g, err := person.ParseGender(doc.Gender)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document has an invalid gender")
		}
		p.As(g)
	}
	if doc.ID != "" {
		personID, err := id.ParsePersonID(doc.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "person document has an invalid id")
		}
		p.Identify(personID)
	}
	return p, nil
}

// EncodePerson renders a Person as a JSON object.
func EncodePerson(p *person.Person) ([]byte, error) {
	return json.Marshal(PersonToDocument(p))
}

// DecodePerson reconstructs a Person from a JSON object.
//
// Errors: CodeValidation on malformed JSON or invariant violations.
func DecodePerson(data []byte) (*person.Person, error) {
	var doc PersonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed person JSON")
	}
	return PersonFromDocument(doc)
}
