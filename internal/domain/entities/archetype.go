// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchetype is returned when a string names no known archetype.
var ErrUnknownArchetype = errors.New("unknown archetype")

// Archetype is the narrative role a character plays. It determines the
// character's age range and motivation pool.
type Archetype string

const (
	ArchetypeHero      Archetype = "Hero"
	ArchetypeAntihero  Archetype = "Antihero"
	ArchetypeMentor    Archetype = "Mentor"
	ArchetypeTrickster Archetype = "Trickster"
	ArchetypeGuardian  Archetype = "Guardian"
	ArchetypeVillain   Archetype = "Villain"
	ArchetypeOutcast   Archetype = "Outcast"
	ArchetypeScholar   Archetype = "Scholar"
)

// AllArchetypes lists every archetype in a fixed order. Uniform sampling
// picks an index into this slice.
var AllArchetypes = []Archetype{
	ArchetypeHero,
	ArchetypeAntihero,
	ArchetypeMentor,
	ArchetypeTrickster,
	ArchetypeGuardian,
	ArchetypeVillain,
	ArchetypeOutcast,
	ArchetypeScholar,
}

// IsValid reports whether a is one of AllArchetypes.
func (a Archetype) IsValid() bool {
	for _, known := range AllArchetypes {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the display label.
func (a Archetype) String() string {
	return string(a)
}

// ParseArchetype resolves a case-insensitive label like "villain".
func ParseArchetype(s string) (Archetype, error) {
	s = strings.TrimSpace(s)
	for _, known := range AllArchetypes {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownArchetype, s)
}

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether age falls within the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}
