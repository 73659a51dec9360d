package entities

// CharacterLore is one generated character biography. Values are built once
// by the generator and not mutated afterwards.
type CharacterLore struct {
	Identity         Identity       `json:"identity"`
	Background       Background     `json:"background"`
	DefiningMoments  []string       `json:"defining_moments"`
	Psychology       Psychology     `json:"psychology"`
	KeyRelationships []Relationship `json:"key_relationships"`
}

// Identity holds who the character is at a glance.
type Identity struct {
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	Archetype          Archetype `json:"archetype"`
	PersonalityTraits  []string  `json:"personality_traits"`
	DistinctiveFeature string    `json:"distinctive_feature"`
}

// Background holds where the character comes from.
type Background struct {
	Origin     Origin `json:"origin"`
	Birthplace string `json:"birthplace"`
}

// Psychology holds what drives and haunts the character.
type Psychology struct {
	CoreMotivation   string `json:"core_motivation"`
	FatalFlaw        string `json:"fatal_flaw"`
	GreatestFear     string `json:"greatest_fear"`
	InternalConflict string `json:"internal_conflict"`
	// HiddenTruth is empty when no hidden truth was attached.
	HiddenTruth string `json:"hidden_truth,omitempty"`
}

// HasHiddenTruth reports whether a hidden truth was attached.
func (p Psychology) HasHiddenTruth() bool {
	return p.HiddenTruth != ""
}

// Relationship is one key tie: the other person's name, the role they play
// in the character's life, and how the tie stands.
type Relationship struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// RelationshipTemplate is a catalog entry pairing a role with the candidate
// descriptions one of which is picked per relationship.
type RelationshipTemplate struct {
	Role         string   `json:"role" yaml:"role"`
	Descriptions []string `json:"descriptions" yaml:"descriptions"`
}
