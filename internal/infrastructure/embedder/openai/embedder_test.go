package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

func TestNewEmbedder(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.EmbedderConfig
		wantErr   bool
		errMsg    string
		wantModel string
	}{
		{
			name:      "valid config",
			cfg:       config.EmbedderConfig{APIKey: "test-key"},
			wantModel: "text-embedding-3-small",
		},
		{
			name:      "valid config with model",
			cfg:       config.EmbedderConfig{APIKey: "test-key", Model: "text-embedding-ada-002"},
			wantModel: "text-embedding-ada-002",
		},
		{
			name:    "missing API key",
			cfg:     config.EmbedderConfig{},
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder, err := NewEmbedder(tt.cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, embedder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, embedder.Model())
		})
	}
}

func TestVectorSizeFor(t *testing.T) {
	assert.Equal(t, uint64(VectorSize), VectorSizeFor("text-embedding-3-small"))
	assert.Equal(t, uint64(VectorSize), VectorSizeFor(""))
	assert.Equal(t, uint64(3072), VectorSizeFor("text-embedding-3-large"))
}

type embeddingRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// fakeServer answers embedding requests with one vector per input whose
// single component is the input's index, listed in reverse order.
func fakeServer(t *testing.T, dropOne bool) (*httptest.Server, *[]embeddingRequest) {
	t.Helper()
	var requests []embeddingRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		requests = append(requests, req)

		n := len(req.Input)
		if dropOne {
			n--
		}
		data := make([]map[string]any, 0, n)
		for i := n - 1; i >= 0; i-- {
			data = append(data, map[string]any{
				"object":    "embedding",
				"index":     i,
				"embedding": []float32{float32(i)},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   data,
			"model":  req.Model,
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestEmbedder_EmbedBatch(t *testing.T) {
	srv, requests := fakeServer(t, false)
	e, err := NewEmbedder(config.EmbedderConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	embeddings, err := e.EmbedBatch(context.Background(), []string{"alpha", "beta", "gamma"})
	require.NoError(t, err)

	assert.Equal(t, [][]float32{{0}, {1}, {2}}, embeddings)
	require.Len(t, *requests, 1)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, (*requests)[0].Input)
	assert.Equal(t, "text-embedding-3-small", (*requests)[0].Model)
}

func TestEmbedder_Embed(t *testing.T) {
	srv, _ := fakeServer(t, false)
	e, err := NewEmbedder(config.EmbedderConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	embedding, err := e.Embed(context.Background(), "a scarred noble")
	require.NoError(t, err)
	assert.Equal(t, []float32{0}, embedding)
}

func TestEmbedder_EmptyInput(t *testing.T) {
	srv, requests := fakeServer(t, false)
	e, err := NewEmbedder(config.EmbedderConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	embeddings, err := e.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, embeddings)
	assert.Empty(t, *requests)
}

func TestEmbedder_Errors(t *testing.T) {
	t.Run("short response", func(t *testing.T) {
		srv, _ := fakeServer(t, true)
		e, err := NewEmbedder(config.EmbedderConfig{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = e.EmbedBatch(context.Background(), []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 embeddings, got 1")
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
		}))
		t.Cleanup(srv.Close)

		e, err := NewEmbedder(config.EmbedderConfig{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating embeddings")
	})
}
