package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrigin is returned when a string names no known origin.
var ErrUnknownOrigin = errors.New("unknown origin")

// Origin is the social background a character comes from. It determines
// which name pool the character's name is drawn from.
type Origin string

const (
	OriginNoble    Origin = "Noble"
	OriginCommoner Origin = "Commoner"
	OriginOrphan   Origin = "Orphan"
	OriginExile    Origin = "Exile"
	OriginCriminal Origin = "Criminal"
	OriginMilitary Origin = "Military"
	OriginAcademic Origin = "Academic"
	OriginMystic   Origin = "Mystic"
)

// AllOrigins lists every origin in a fixed order.
var AllOrigins = []Origin{
	OriginNoble,
	OriginCommoner,
	OriginOrphan,
	OriginExile,
	OriginCriminal,
	OriginMilitary,
	OriginAcademic,
	OriginMystic,
}

// IsValid reports whether o is one of AllOrigins.
func (o Origin) IsValid() bool {
	for _, known := range AllOrigins {
		if o == known {
			return true
		}
	}
	return false
}

// String returns the display label.
func (o Origin) String() string {
	return string(o)
}

// ParseOrigin resolves a case-insensitive label like "exile".
func ParseOrigin(s string) (Origin, error) {
	s = strings.TrimSpace(s)
	for _, known := range AllOrigins {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOrigin, s)
}
