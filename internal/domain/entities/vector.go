package entities

// CharacterVector is an archived character's embedding plus the payload the
// similarity index stores alongside it.
type CharacterVector struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Origin    Origin    `json:"origin"`
	Age       int       `json:"age"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// SimilarCharacter is one similarity search hit.
type SimilarCharacter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Origin    Origin    `json:"origin"`
	Age       int       `json:"age"`
	Score     float32   `json:"score"`
}
