// Package mocks provides hand-written test doubles for the domain ports.
package mocks

import "context"

// CollectionManager is a mock implementation of ports.CollectionManager.
type CollectionManager struct {
	EnsureErr error
	DeleteErr error

	EnsureCollectionCallCount int
	DeleteCollectionCallCount int
	// LastVectorSize is the size passed to the latest EnsureCollection.
	LastVectorSize uint64
}

func (m *CollectionManager) EnsureCollection(_ context.Context, vectorSize uint64) error {
	m.EnsureCollectionCallCount++
	m.LastVectorSize = vectorSize
	return m.EnsureErr
}

func (m *CollectionManager) DeleteCollection(_ context.Context) error {
	m.DeleteCollectionCallCount++
	return m.DeleteErr
}
