// Package mcpserver exposes character generation as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// Tool names.
const (
	ToolGenerateCharacter = "generate_character"
	ToolListPresets       = "list_presets"
)

// GenerateInput is the generate_character tool input.
type GenerateInput struct {
	Archetype          string   `json:"archetype,omitempty" jsonschema:"archetype such as Hero or Villain; random when empty"`
	Origin             string   `json:"origin,omitempty" jsonschema:"origin such as Noble or Exile; random when empty"`
	Name               string   `json:"name,omitempty" jsonschema:"character name; drawn from the origin's names when empty"`
	Preset             string   `json:"preset,omitempty" jsonschema:"parameter preset: default, tragic, mysterious or epic-villain"`
	Seed               int64    `json:"seed,omitempty" jsonschema:"seed for a reproducible character; random when zero"`
	TragedyWeight      *float64 `json:"tragedy_weight,omitempty" jsonschema:"probability a defining moment is a tragedy, 0 to 1"`
	ComplexityWeight   *int     `json:"complexity_weight,omitempty" jsonschema:"target number of defining moments"`
	RelationshipWeight *int     `json:"relationship_weight,omitempty" jsonschema:"target number of relationships"`
	MysteryFactor      *float64 `json:"mystery_factor,omitempty" jsonschema:"probability of a hidden truth, 0 to 1"`
	PowerScale         *int     `json:"power_scale,omitempty" jsonschema:"power scale carried with the character"`
}

// GenerateOutput is the generate_character tool result.
type GenerateOutput struct {
	Seed       int64                         `json:"seed" jsonschema:"seed that reproduces this character"`
	Parameters entities.GenerationParameters `json:"parameters" jsonschema:"parameters the character was generated with"`
	Lore       entities.CharacterLore        `json:"lore" jsonschema:"structured character lore"`
	Narrative  string                        `json:"narrative" jsonschema:"markdown character sheet"`
}

// ListPresetsInput is the list_presets tool input.
type ListPresetsInput struct{}

// ListPresetsOutput is the list_presets tool result.
type ListPresetsOutput struct {
	Presets []handlers.PresetInfo `json:"presets" jsonschema:"available parameter presets"`
}

// Server serves the forge tools.
type Server struct {
	server   *mcp.Server
	generate *handlers.GenerateHandler
	logger   *slog.Logger
}

// New creates a server with every tool registered.
func New(generate *handlers.GenerateHandler, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: "forge", Version: version}, nil),
		generate: generate,
		logger:   logger,
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGenerateCharacter,
		Description: "Generate a procedural character with background, psychology and relationships",
	}, s.handleGenerate)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListPresets,
		Description: "List the generation parameter presets",
	}, s.handleListPresets)

	return s
}

// Run serves until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("mcp server starting")
	if err := s.server.Run(ctx, transport); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serving mcp: %w", err)
	}
	return nil
}

// Connect attaches one session over transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, in GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	params, err := handlers.ResolveParameters(handlers.ParameterSource{
		Preset:             in.Preset,
		TragedyWeight:      in.TragedyWeight,
		ComplexityWeight:   in.ComplexityWeight,
		RelationshipWeight: in.RelationshipWeight,
		MysteryFactor:      in.MysteryFactor,
		PowerScale:         in.PowerScale,
	})
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	result, err := s.generate.Handle(ctx, handlers.GenerateCommand{
		Archetype:  in.Archetype,
		Origin:     in.Origin,
		Name:       in.Name,
		Parameters: params,
		Seed:       in.Seed,
	})
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	s.logger.Debug("generated character over mcp", "name", result.Lore.Identity.Name, "seed", result.Seed)

	out := GenerateOutput{
		Seed:       result.Seed,
		Parameters: params,
		Lore:       result.Lore,
		Narrative:  result.Narrative,
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Narrative}},
	}, out, nil
}

func (s *Server) handleListPresets(_ context.Context, _ *mcp.CallToolRequest, _ ListPresetsInput) (*mcp.CallToolResult, ListPresetsOutput, error) {
	return nil, ListPresetsOutput{Presets: handlers.Presets()}, nil
}
