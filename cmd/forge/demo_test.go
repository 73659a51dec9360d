package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/services"
	"github.com/ersonp/lore-forge/internal/infrastructure/random"
)

func newTestGenerateHandler() *handlers.GenerateHandler {
	gen := services.NewLoreGenerator(catalog.Default(), random.NewSource(1))
	return handlers.NewGenerateHandler(gen, random.Factory, random.NewSeed, nil)
}

func TestRenderDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderDemo(t.Context(), newTestGenerateHandler(), 10, &buf))

	out := buf.String()
	assert.Contains(t, out, "(seed 10)")
	assert.Equal(t, len(demoShowcases), strings.Count(out, demoRule))
	assert.Contains(t, out, "1. Tragic Hero (tragic preset):")
	assert.Contains(t, out, "2. Mysterious Stranger (mysterious preset):")
	assert.Contains(t, out, "3. Epic Villain (epic-villain preset):")

	assert.Contains(t, out, "Archetype: Hero\n")
	assert.Contains(t, out, "Origin: Exile\n")
	assert.Contains(t, out, "Archetype: Villain\n")
}

func TestRenderDemo_AppliesPresets(t *testing.T) {
	h := newTestGenerateHandler()
	var buf bytes.Buffer
	require.NoError(t, renderDemo(t.Context(), h, 77, &buf))

	for i, s := range demoShowcases {
		result, err := h.Handle(t.Context(), handlers.GenerateCommand{
			Archetype:  s.archetype.String(),
			Origin:     s.origin.String(),
			Parameters: s.preset.Parameters(),
			Seed:       77 + int64(i),
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), result.Narrative, s.title)
	}
}

func TestRenderDemo_Reproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, renderDemo(t.Context(), newTestGenerateHandler(), 5, &a))
	require.NoError(t, renderDemo(t.Context(), newTestGenerateHandler(), 5, &b))

	assert.Equal(t, a.String(), b.String())
}
