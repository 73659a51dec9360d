package mocks

import (
	"context"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// VectorDB is a mock implementation of ports.VectorDB.
type VectorDB struct {
	Results []entities.SimilarCharacter
	Err     error

	// Call tracking
	SaveBatchCallCount   int
	SaveBatchLastVectors []entities.CharacterVector
	SearchLastLimit      int
	SearchLastArchetype  entities.Archetype
	DeletedIDs           []string
	Stored               uint64
}

// SaveBatch records the vectors.
func (m *VectorDB) SaveBatch(ctx context.Context, vectors []entities.CharacterVector) error {
	m.SaveBatchCallCount++
	m.SaveBatchLastVectors = vectors
	if m.Err != nil {
		return m.Err
	}
	m.Stored += uint64(len(vectors))
	return nil
}

// Search returns up to limit configured results.
func (m *VectorDB) Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarCharacter, error) {
	m.SearchLastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Results) {
		return m.Results, nil
	}
	return m.Results[:limit], nil
}

// SearchByArchetype returns configured results matching archetype.
func (m *VectorDB) SearchByArchetype(ctx context.Context, embedding []float32, archetype entities.Archetype, limit int) ([]entities.SimilarCharacter, error) {
	m.SearchLastLimit = limit
	m.SearchLastArchetype = archetype
	if m.Err != nil {
		return nil, m.Err
	}
	var filtered []entities.SimilarCharacter
	for _, r := range m.Results {
		if r.Archetype == archetype {
			filtered = append(filtered, r)
		}
	}
	if limit > len(filtered) {
		return filtered, nil
	}
	return filtered[:limit], nil
}

// Delete records the ID.
func (m *VectorDB) Delete(ctx context.Context, id string) error {
	m.DeletedIDs = append(m.DeletedIDs, id)
	return m.Err
}

// Count returns how many vectors were saved.
func (m *VectorDB) Count(ctx context.Context) (uint64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Stored, nil
}
