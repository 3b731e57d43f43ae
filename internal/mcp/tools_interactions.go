// tools_interactions.go implements the MCP tools over the interaction
// registry. Registry failures are returned as tool error results so the
// client sees the message; Go errors are reserved for protocol failures.

package mcp

import (
	"context"

	"github.com/jpl-au/interactions/internal/format"
	"github.com/jpl-au/interactions/internal/glob"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// listInteractions handles interactions_list tool calls.
func (h *handlers) listInteractions(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern := getString(req, "pattern", "")

	ids, err := h.reg.IDs()
	if err == nil {
		ids, err = glob.Filter(pattern, ids)
	}
	log.Event("mcp:list", "list").Author("mcp").Detail("pattern", pattern).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ids == nil {
		ids = []string{}
	}
	return jsonResult(map[string]any{"ids": ids})
}

// getInteraction handles interactions_get tool calls.
func (h *handlers) getInteraction(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	i, err := h.reg.Get(id)
	log.Event("mcp:get", "read").Author("mcp").Target(id).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(format.Summarise(i, getBool(req, "include_html", false)))
}

// html handles interactions_html tool calls.
func (h *handlers) html(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := getStrings(req, "ids")
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids is required"), nil
	}

	body, err := h.reg.HTML(ids)
	log.Event("mcp:html", "read").Author("mcp").Detail("count", len(ids)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(body), nil
}

// dependencies handles interactions_dependencies tool calls.
func (h *handlers) dependencies(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := getStrings(req, "ids")
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids is required"), nil
	}

	deps, err := h.reg.DependencyIDs(ids)
	log.Event("mcp:dependencies", "read").Author("mcp").Detail("count", len(ids)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if deps == nil {
		deps = []string{}
	}
	return jsonResult(map[string]any{"dependency_ids": deps})
}

// configs handles interactions_configs tool calls.
func (h *handlers) configs(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := h.reg.Configs()
	log.Event("mcp:configs", "read").Author("mcp").Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(configs)
}

// refresh handles interactions_refresh tool calls.
func (h *handlers) refresh(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := h.reg.Refresh()
	n := h.reg.Len()
	log.Event("mcp:refresh", "refresh").Author("mcp").Detail("count", n).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"refreshed": n})
}
