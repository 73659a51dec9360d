package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/infrastructure/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve character generation as MCP tools over stdio",
		Long:  "Runs a Model Context Protocol server on stdin/stdout exposing the generate_character and list_presets tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				return mcpserver.New(d.GenerateHandler, version, d.Logger).Run(ctx, &mcp.StdioTransport{})
			})
		},
	}
}
