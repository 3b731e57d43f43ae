// Package mcp implements the Model Context Protocol server, exposing the
// interaction registry to LLMs so an assistant can look up interaction types,
// their HTML bodies and the frontend dependencies a page needs.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio.
func Serve(reg *interaction.Registry) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Populate up front so a broken extensions root fails fast.
	if err := reg.Refresh(); err != nil {
		slog.Error("failed to load interactions", "error", err)
		return err
	}

	s := newServer(&handlers{reg: reg})
	slog.Info("interactions MCP server ready", "version", version.Short(), "interactions", reg.Len(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the registry.
type handlers struct {
	reg *interaction.Registry
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"interactions",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	return s
}

// registerResources adds URI-based access to interaction HTML bodies.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"interaction://{id}",
			"Interaction",
			mcp.WithTemplateDescription("HTML body of an interaction"),
			mcp.WithTemplateMIMEType("text/html"),
		),
		h.readInteraction,
	)
}

// registerTools exposes registry queries as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("interactions_list",
			mcp.WithDescription("List available interaction ids"),
			mcp.WithString("pattern", mcp.Description("Glob filter on ids, comma separated alternatives (e.g. '*Input,Continue')")),
		),
		h.listInteractions,
	)

	s.AddTool(
		mcp.NewTool("interactions_get",
			mcp.WithDescription("Describe a single interaction"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Interaction id (e.g. 'CodeRepl')")),
			mcp.WithBoolean("include_html", mcp.Description("Include the HTML body")),
		),
		h.getInteraction,
	)

	s.AddTool(
		mcp.NewTool("interactions_html",
			mcp.WithDescription("Concatenated HTML bodies for the given interactions, in order"),
			mcp.WithArray("ids", mcp.Required(), mcp.Description("Interaction ids"), mcp.WithStringItems()),
		),
		h.html,
	)

	s.AddTool(
		mcp.NewTool("interactions_dependencies",
			mcp.WithDescription("Deduplicated frontend dependency ids needed by the given interactions"),
			mcp.WithArray("ids", mcp.Required(), mcp.Description("Interaction ids"), mcp.WithStringItems()),
		),
		h.dependencies,
	)

	s.AddTool(
		mcp.NewTool("interactions_configs",
			mcp.WithDescription("Display mode and terminal flag of every interaction"),
		),
		h.configs,
	)

	s.AddTool(
		mcp.NewTool("interactions_refresh",
			mcp.WithDescription("Rescan the interaction directories"),
		),
		h.refresh,
	)

	s.AddTool(
		mcp.NewTool("interactions_guide",
			mcp.WithDescription("Read a guide page. Omit topic for the overview"),
			mcp.WithString("topic", mcp.Description("Guide topic")),
		),
		h.getGuide,
	)
}

// readInteraction handles interaction://{id} resource requests.
func (h *handlers) readInteraction(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx unused
	id, err := parseInteractionURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	i, err := h.reg.Get(id)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/html",
			Text:     i.HTMLBody(),
		},
	}, nil
}
