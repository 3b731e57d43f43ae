/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements the "interactions serve" command. It blocks handling
// MCP requests over stdio until the client disconnects.

package cmd

import (
	"github.com/jpl-au/interactions/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio so LLM clients
can query the interaction registry.

Use --root to serve a custom extensions root:
  interactions serve --root ./extensions`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(Registry())
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
