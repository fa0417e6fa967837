package mcptools

import (
	"context"
	"fmt"
	"strings"

	"feature-catalog/core/catalog"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListTool handles the catalog_list MCP tool.
type ListTool struct {
	registry *catalog.Registry
}

// NewListTool creates a ListTool over the registry.
func NewListTool(registry *catalog.Registry) *ListTool {
	return &ListTool{registry: registry}
}

// Definition returns the MCP tool definition for catalog_list.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("catalog_list",
		mcp.WithDescription(
			"List feature descriptors of the catalogue. Use this to find user stories by category, "+
				"priority or keyword before asking for one with catalog_get.",
		),
		mcp.WithString("category",
			mcp.Description("Only descriptors of this category (e.g. editing, navigation)"),
		),
		mcp.WithString("priority",
			mcp.Description("Only descriptors of this priority"),
			mcp.Enum(catalog.PriorityCritical, catalog.PriorityHigh, catalog.PriorityMedium, catalog.PriorityLow),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text matched against title, want and so-that"),
		),
	)
}

// Handle processes the catalog_list tool call.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := catalog.Filter{
		Category: req.GetString("category", ""),
		Priority: req.GetString("priority", ""),
		Query:    req.GetString("query", ""),
	}

	features := t.registry.Filter(filter)
	if len(features) == 0 {
		return mcp.NewToolResultText("No features match the given filters."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Features (%d)\n\n", len(features)))

	current := ""
	for _, d := range features {
		if d.Metadata.Category != current {
			current = d.Metadata.Category
			sb.WriteString(fmt.Sprintf("### %s\n\n", current))
		}
		sb.WriteString(fmt.Sprintf("- **%s** %s [%s]\n", d.ID, d.Metadata.Title, d.Metadata.Priority))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
