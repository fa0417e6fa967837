package mcptools

import (
	"feature-catalog/core/catalog"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server exposing the catalogue tools.
func NewServer(registry *catalog.Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"feature-catalog",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Browse the feature catalogue. Start with catalog_list or catalog_stats, then use catalog_get for a single user story."),
	)

	listTool := NewListTool(registry)
	s.AddTool(listTool.Definition(), listTool.Handle)

	getTool := NewGetTool(registry)
	s.AddTool(getTool.Definition(), getTool.Handle)

	statsTool := NewStatsTool(registry)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	return s
}
