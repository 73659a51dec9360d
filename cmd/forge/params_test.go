package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

func parseParamFlags(t *testing.T, args ...string) handlers.ParameterSource {
	t.Helper()
	var flags paramFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return flags.source(cmd)
}

func TestParamFlags_OnlyChangedFlagsOverride(t *testing.T) {
	src := parseParamFlags(t, "--preset", "tragic", "--mystery", "0.8")

	assert.Equal(t, "tragic", src.Preset)
	require.NotNil(t, src.MysteryFactor)
	assert.Equal(t, 0.8, *src.MysteryFactor)
	assert.Nil(t, src.TragedyWeight)
	assert.Nil(t, src.ComplexityWeight)
	assert.Nil(t, src.RelationshipWeight)
	assert.Nil(t, src.PowerScale)
}

func TestParamFlags_ZeroIsAnOverride(t *testing.T) {
	src := parseParamFlags(t, "--tragedy", "0", "--complexity", "5", "--relationships", "1", "--power", "7")

	require.NotNil(t, src.TragedyWeight)
	assert.Zero(t, *src.TragedyWeight)
	assert.Equal(t, 5, *src.ComplexityWeight)
	assert.Equal(t, 1, *src.RelationshipWeight)
	assert.Equal(t, 7, *src.PowerScale)
}

func TestDeps_ParameterSource(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Preset = "mysterious"
	cfg.Generation.ParametersFile = "params.yaml"
	d := &Deps{Config: cfg, BasePath: "/work"}

	tests := []struct {
		name       string
		in         handlers.ParameterSource
		wantPreset string
		wantFile   string
	}{
		{
			name:       "config fills unset fields",
			wantPreset: "mysterious",
			wantFile:   "/work/params.yaml",
		},
		{
			name:       "flags win",
			in:         handlers.ParameterSource{Preset: "tragic", File: "mine.json"},
			wantPreset: "tragic",
			wantFile:   "mine.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := d.parameterSource(tt.in)
			assert.Equal(t, tt.wantPreset, src.Preset)
			assert.Equal(t, tt.wantFile, src.File)
		})
	}
}
