package main

import (
	"fmt"
	"os"
	"time"

	"github.com/codeprimate-software/cp-domain-sub001/internal/platform/config"
	"github.com/codeprimate-software/cp-domain-sub001/internal/platform/logger"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/address"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/group"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/name"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/person"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/serialization/jsoncodec"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/serialization/protocodec"
)

// main assembles a sample family and address and prints them in the
// configured serialization format. Domain logic lives in the pkg packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	country, err := address.CountryFromLocale(cfg.Locale)
	if err != nil {
		log.Fatalf("cannot resolve country from locale %q: %v", cfg.Locale, err)
	}
	log.Printf("locale %s resolves to %s", cfg.Locale, country.Name())

	family := doeFamily(log)
	log.Printf("family %s has %d members", family.Group.Name(), family.Size())

	now := time.Now()
	adults, err := family.Count(func(p *person.Person) bool { return p.IsAdultAsOf(now) })
	if err != nil {
		log.Fatalf("cannot count adults: %v", err)
	}
	log.Printf("%d adults", adults)

	if err := family.Accept(group.VisitorFunc[*person.Person](func(m *person.Person) {
		if age, ok := m.Age(now); ok {
			log.Printf("  %s, age %d", m, age)
		} else {
			log.Printf("  %s", m)
		}
	})); err != nil {
		log.Fatalf("cannot walk family: %v", err)
	}

	home, err := address.NewBuilder(country).
		On(address.MustNewStreet(100, "Main").WithType(address.StreetTypeStreet)).
		In(address.MustNewCity("Portland")).
		WithPostalCode(address.MustNewPostalCode("97205")).
		As(address.TypeHome).
		Build()
	if err != nil {
		log.Fatalf("cannot build address: %v", err)
	}
	log.Printf("home address: %s", home)

	var payload []byte
	switch cfg.Format {
	case "proto":
		payload, err = protocodec.EncodeFamily(family)
	default:
		payload, err = jsoncodec.EncodeFamily(family)
	}
	if err != nil {
		log.Fatalf("cannot encode family: %v", err)
	}
	if _, err := os.Stdout.Write(payload); err != nil {
		log.Fatalf("cannot write output: %v", err)
	}
	fmt.Println()
}

// doeFamily builds the sample household used throughout the demo.
func doeFamily(log interface{ Fatalf(string, ...any) }) *group.Family {
	born := func(first, middle, last string, g person.Gender, year int, month time.Month, day int) *person.Person {
		var n name.Name
		var err error
		if middle == "" {
			n, err = name.New(first, last)
		} else {
			n, err = name.NewFull(first, middle, last)
		}
		if err != nil {
			log.Fatalf("bad name: %v", err)
		}
		p, err := person.NewBorn(n, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if err != nil {
			log.Fatalf("bad person: %v", err)
		}
		return p.As(g)
	}

	family := group.FamilyOf(
		born("Jon", "R", "Doe", person.GenderMale, 1974, time.May, 27),
		born("Jane", "R", "Doe", person.GenderFemale, 1975, time.January, 22),
		born("Joe", "", "Doe", person.GenderMale, 1981, time.October, 2),
		born("Hoe", "", "Doe", person.GenderFemale, 1984, time.March, 14),
		born("Fro", "R", "Doe", person.GenderMale, 1988, time.November, 5),
		born("Sour", "", "Doe", person.GenderMale, 2011, time.August, 8),
		born("Pie", "", "Doe", person.GenderFemale, 2013, time.April, 1),
		born("Cookie", "", "Doe", person.GenderFemale, 2016, time.December, 9),
	)
	family.Rename("Doe")
	return family
}
