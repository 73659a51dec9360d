package ports

import "context"

// Embedder turns character narratives and free-text queries into vectors.
// Query and narrative must come from the same model to be comparable.
type Embedder interface {
	// Embed returns the vector for one text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
