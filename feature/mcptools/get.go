package mcptools

import (
	"context"
	"fmt"
	"strings"

	"feature-catalog/core/catalog"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetTool handles the catalog_get MCP tool.
type GetTool struct {
	registry *catalog.Registry
}

// NewGetTool creates a GetTool over the registry.
func NewGetTool(registry *catalog.Registry) *GetTool {
	return &GetTool{registry: registry}
}

// Definition returns the MCP tool definition for catalog_get.
func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("catalog_get",
		mcp.WithDescription("Show one feature descriptor: its user story, acceptance criteria and effort."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Descriptor id, e.g. US-0101"),
		),
	)
}

// Handle processes the catalog_get tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	d, ok := t.registry.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("feature %s not found", id)), nil
	}

	m := d.Metadata
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s: %s\n\n", d.ID, m.Title))
	sb.WriteString(fmt.Sprintf("- **Category**: %s\n", m.Category))
	sb.WriteString(fmt.Sprintf("- **Priority**: %s\n", m.Priority))
	if m.UserType != "" {
		sb.WriteString(fmt.Sprintf("- **User type**: %s\n", m.UserType))
	}
	if m.Platform != "" {
		sb.WriteString(fmt.Sprintf("- **Platform**: %s\n", m.Platform))
	}
	if m.Effort != "" {
		sb.WriteString(fmt.Sprintf("- **Effort**: %s\n", m.Effort))
	}
	sb.WriteString(fmt.Sprintf("- **Module**: %s\n", d.File))

	if m.As != "" || m.Want != "" || m.SoThat != "" {
		sb.WriteString(fmt.Sprintf("\nAs %s, I want %s so that %s.\n", m.As, m.Want, m.SoThat))
	}

	if len(m.Criteria) > 0 {
		sb.WriteString("\n### Acceptance criteria\n\n")
		for _, c := range m.Criteria {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
