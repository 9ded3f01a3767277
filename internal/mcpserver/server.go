// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasnorm capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasnorm"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasnorm MCP server: normalizes OpenAPI documents before code generation.

Tools:
- dedupe_enums: remove string enum values that only differ by letter case, keeping the first spelling and its x-enumNames entry
- property_names: derive language-safe property identifiers from raw schema property names

Configuration: defaults are read from OASNORM_* environment variables set in your MCP client config.
- OASNORM_CASE_MODE (default: ordinal): ordinal or unicode comparison for dedupe_enums
- OASNORM_MAX_NAMES (default: 1000): most names accepted by one property_names call
- OASNORM_FIX_LIMIT (default: 100): default number of fixes returned per page
- OASNORM_MAX_LIMIT (default: 1000): largest page size a call may request
- OASNORM_MAX_INLINE_SIZE (default: 10485760): largest inline spec content in bytes
- OASNORM_ALLOW_PRIVATE_IPS (default: false): allow url inputs on private networks`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasnorm", Version: oasnorm.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "dedupe_enums",
		Description: "Remove case-insensitive duplicate string enum values across an entire OpenAPI 3.x document (component schemas, parameters, request bodies, responses, nested properties, array items and additionalProperties). The first spelling of each value is kept together with its x-enumNames display name. Use dry_run=true to preview. Set include_document or output to get the rewritten document. case_mode is ordinal (default, configurable via OASNORM_CASE_MODE) or unicode.",
	}, handleDedupeEnums)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "property_names",
		Description: "Convert raw schema property names into language-safe identifiers using a fixed character substitution table (e.g. foo.bar -> foo_bar, a+b -> aplusb, *flag -> Starflag). Casing is preserved and collisions are not resolved. At most OASNORM_MAX_NAMES names per call.",
	}, handlePropertyNames)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.FixLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.FixLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths, which are stripped from
// error messages before they reach MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
