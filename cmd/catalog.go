package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"feature-catalog/core/catalog"
	"feature-catalog/core/config"
	featurecatalog "feature-catalog/feature/catalog"

	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the feature catalogue",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feature descriptors",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openCatalog()
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		priority, _ := cmd.Flags().GetString("priority")
		query, _ := cmd.Flags().GetString("query")
		features := registry.Filter(catalog.Filter{Category: category, Priority: priority, Query: query})

		current := ""
		for _, d := range features {
			if d.Metadata.Category != current {
				current = d.Metadata.Category
				fmt.Println(titleStyle.Render(current))
			}
			fmt.Printf("  %s  %s %s\n", idStyle.Render(d.ID), d.Metadata.Title, mutedStyle.Render("["+d.Metadata.Priority+"]"))
		}
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d of %d features", len(features), registry.Len())))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one feature descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openCatalog()
		if err != nil {
			return err
		}

		d, ok := registry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("feature %s not found", args[0])
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printJSON(d)
		}

		m := d.Metadata
		fmt.Println(titleStyle.Render(d.ID + " " + m.Title))
		fmt.Printf("Category: %s\nPriority: %s\nUser type: %s\nPlatform: %s\nEffort: %s\nModule: %s\n",
			m.Category, m.Priority, m.UserType, m.Platform, m.Effort, d.File)
		if m.Want != "" {
			fmt.Printf("\nAs %s, I want %s so that %s.\n", m.As, m.Want, m.SoThat)
		}
		if len(m.Criteria) > 0 {
			fmt.Println("\n" + sectionStyle.Render("Acceptance criteria"))
			for _, c := range m.Criteria {
				fmt.Println("  - " + c)
			}
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalogue",
	Long:  `Checks descriptor ids, files, titles, metadata and priorities, and reports every problem found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openCatalog()
		if err != nil {
			return err
		}

		if err := registry.Validate(); err != nil {
			fmt.Println(failStyle.Render("Catalogue has problems:"))
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Println("  - " + line)
			}
			return errors.New("catalogue validation failed")
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("Catalogue OK (%d features)", registry.Len())))
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalogue statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openCatalog()
		if err != nil {
			return err
		}

		stats := registry.Stats()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(stats)
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Features: %d", stats.Total)))
		printCounts("Categories", stats.ByCategory)
		printCounts("Priorities", stats.ByPriority)
		printCounts("Effort", stats.ByEffort)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload the catalogue to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		svc := featurecatalog.NewService(env.registry, env.client, env.cfg.Storage.Bucket, env.logger)
		result, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}
		for _, key := range result.Objects {
			fmt.Println(okStyle.Render("uploaded ") + result.Bucket + "/" + key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogValidateCmd, catalogStatsCmd, catalogExportCmd)

	catalogListCmd.Flags().String("category", "", "Only this category")
	catalogListCmd.Flags().String("priority", "", "Only this priority")
	catalogListCmd.Flags().StringP("query", "q", "", "Free text matched against title, want and so-that")
	catalogShowCmd.Flags().Bool("json", false, "Print the descriptor as JSON")
	catalogStatsCmd.Flags().Bool("json", false, "Print the statistics as JSON")
}

// openCatalog loads the configured catalogue without connecting any backend.
func openCatalog() (*catalog.Registry, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	registry, err := cfg.Catalog.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return registry, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printCounts(title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("\n" + sectionStyle.Render(title))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "unspecified"
		}
		fmt.Printf("  %-20s %d\n", name, counts[k])
	}
}
