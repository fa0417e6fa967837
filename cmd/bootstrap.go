package cmd

import (
	"errors"
	"fmt"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"

	"github.com/spf13/cobra"
)

// bootstrapCmd represents the bootstrap command
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Load every catalogue module once and report the outcome",
	Long: `Flattens the catalogue, loads the module of every descriptor and runs its init hook
concurrently. Failing modules are reported but never stop the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		category, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")
		strict, _ := cmd.Flags().GetBool("strict")

		report := env.bootstrapService().Run(cmd.Context(), catalog.Filter{Category: category})

		if asJSON {
			if err := printJSON(report); err != nil {
				return err
			}
		} else {
			printReport(report)
		}

		if strict && !report.OK() {
			return errors.New("some modules failed to initialize")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bootstrapCmd)

	bootstrapCmd.Flags().String("category", "", "Only load modules of this category")
	bootstrapCmd.Flags().Bool("json", false, "Print the full report as JSON")
	bootstrapCmd.Flags().Bool("strict", false, "Exit non-zero when any module failed")
}

func printReport(report *loader.Report) {
	fmt.Println(titleStyle.Render("Module loading run " + report.RunID))

	for _, res := range report.Results {
		status := statusStyle(string(res.Status)).Render(fmt.Sprintf("%-11s", res.Status))
		line := fmt.Sprintf("  %s %s %s", status, idStyle.Render(res.ID), mutedStyle.Render(res.File))
		if !res.Succeeded() {
			line += failStyle.Render(fmt.Sprintf(" (%s: %s)", res.Stage, res.Error))
		}
		fmt.Println(line)
	}

	summary := fmt.Sprintf("\nTotal: %d  Succeeded: %d  Failed: %d  Duration: %s",
		report.Total, report.Succeeded, report.Failed, report.Duration())
	if report.OK() {
		fmt.Println(okStyle.Render(summary))
	} else {
		fmt.Println(warnStyle.Render(summary))
	}
}
