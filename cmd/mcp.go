package cmd

import (
	"fmt"

	"feature-catalog/feature/mcptools"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the catalogue as MCP tools over stdio",
	Long:  `Starts a Model Context Protocol server on stdin/stdout exposing catalog_list, catalog_get and catalog_stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openCatalog()
		if err != nil {
			return err
		}

		if err := server.ServeStdio(mcptools.NewServer(registry, Version)); err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}
