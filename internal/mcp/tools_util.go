// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the default rather than an error, since LLM clients frequently omit them.

package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map. A string
// "true" is not accepted.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getStrings extracts a string array parameter. Non-string elements are
// skipped. A single string is accepted as a comma separated list, which
// clients sometimes send instead of an array.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	switch v := args[name].(type) {
	case []any:
		result := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case string:
		var result []string
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// jsonResult serialises v as indented JSON in a text result. Marshalling
// failures become tool error results.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
