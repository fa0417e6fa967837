package mcptools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"feature-catalog/core/catalog"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatsTool handles the catalog_stats MCP tool.
type StatsTool struct {
	registry *catalog.Registry
}

// NewStatsTool creates a StatsTool over the registry.
func NewStatsTool(registry *catalog.Registry) *StatsTool {
	return &StatsTool{registry: registry}
}

// Definition returns the MCP tool definition for catalog_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("catalog_stats",
		mcp.WithDescription("Show catalogue statistics: feature counts per category, priority and effort."),
	)
}

// Handle processes the catalog_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := t.registry.Stats()

	var sb strings.Builder
	sb.WriteString("## Catalogue Statistics\n\n")
	sb.WriteString(fmt.Sprintf("- **Features**: %d\n", stats.Total))
	writeCounts(&sb, "Categories", stats.ByCategory)
	writeCounts(&sb, "Priorities", stats.ByPriority)
	writeCounts(&sb, "Effort", stats.ByEffort)

	return mcp.NewToolResultText(sb.String()), nil
}

func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString(fmt.Sprintf("\n### %s\n\n", title))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "unspecified"
		}
		sb.WriteString(fmt.Sprintf("- %s: %d\n", name, counts[k]))
	}
}
