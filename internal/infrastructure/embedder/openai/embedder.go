// Package openai provides an Embedder implementation using OpenAI.
package openai

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// VectorSize is the dimension of text-embedding-3-small vectors.
const VectorSize = 1536

// VectorSizeFor returns the embedding dimension produced by model.
func VectorSizeFor(model string) uint64 {
	switch openai.EmbeddingModel(model) {
	case openai.LargeEmbedding3:
		return 3072
	default:
		return VectorSize
	}
}

// Embedder implements the Embedder interface using OpenAI.
type Embedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewEmbedder creates a new OpenAI embedder.
func NewEmbedder(cfg config.EmbedderConfig) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := openai.SmallEmbedding3
	if cfg.Model != "" {
		model = openai.EmbeddingModel(cfg.Model)
	}

	return &Embedder{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Model returns the embedding model in use.
func (e *Embedder) Model() string {
	return string(e.model)
}

// Embed generates a vector embedding for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, errors.New("no embeddings returned")
	}

	return embeddings[0], nil
}

// EmbedBatch generates vector embeddings for multiple texts. The result is
// in input order whatever order the API answers in.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	data := slices.Clone(resp.Data)
	slices.SortFunc(data, func(a, b openai.Embedding) int { return cmp.Compare(a.Index, b.Index) })

	embeddings := make([][]float32, len(data))
	for i, d := range data {
		embeddings[i] = d.Embedding
	}

	return embeddings, nil
}
