// Package ports defines the interfaces the domain needs from the outside world.
package ports

import "context"

// CollectionManager creates and drops the similarity index. Only init and
// index --reset need it, so it is kept apart from VectorDB.
type CollectionManager interface {
	// EnsureCollection creates the collection for vectors of the given size
	// unless it already exists.
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	// DeleteCollection drops the collection and every vector in it.
	DeleteCollection(ctx context.Context) error
}
