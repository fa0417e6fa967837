// Package mcptools exposes the feature catalogue as MCP tools so that AI assistants can
// browse user stories over stdio.
//
// Tools:
//   - catalog_list: descriptors, optionally filtered by category, priority or free text.
//   - catalog_get: one descriptor with its story and acceptance criteria.
//   - catalog_stats: counts per category, priority and effort.
package mcptools
