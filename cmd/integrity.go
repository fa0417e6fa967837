package cmd

import (
	"errors"
	"fmt"

	"feature-catalog/feature/integrity"
	"feature-catalog/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks",
	Long:  `Validates the catalogue against the module table, the storage bucket structure and the run history schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true, true)
	},
}

var integrityCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check descriptors and module coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false, false)
	},
}

var integrityStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the bucket structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true, false)
	},
}

var integrityServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the run history database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(integrityCatalogCmd, integrityStorageCmd, integrityServerCmd)

	integrityStorageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folders")
}

func runIntegrityChecks(cmd *cobra.Command, doCatalog, doStorage, doServer bool) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	svc := env.integrityService()
	failed := false

	if doCatalog {
		report := svc.CheckCatalog()
		printSection("Catalog", report.Status)
		for _, p := range report.Problems {
			fmt.Println("  - " + p)
		}
		for _, id := range report.Unregistered {
			fmt.Println("  - no module registered for " + idStyle.Render(id))
		}
		for _, id := range report.Orphaned {
			fmt.Println("  - module " + idStyle.Render(id) + " has no descriptor")
		}
		failed = failed || report.Status != "ok"
	}

	if doStorage {
		report, err := svc.CheckStorage(cmd.Context(), fixFlag)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			printSection("Storage", "skipped")
		case err != nil:
			printSection("Storage", "error")
			env.logger.Error("Storage check failed", zap.Error(err))
			failed = true
		default:
			printSection("Storage", report.Status)
			for _, folder := range report.Missing {
				fmt.Println("  - missing " + folder + "/")
			}
			failed = failed || (report.Status == "checked" && len(report.Missing) > 0)
		}
	}

	if doServer {
		report, err := svc.CheckServer()
		switch {
		case errors.Is(err, integrity.ErrDatabaseDisabled):
			printSection("Server", "skipped")
		case err != nil:
			printSection("Server", "error")
			env.logger.Error("Server schema check failed", zap.Error(err))
			failed = true
		default:
			printServerReport(report)
			failed = failed || !report.Matched
		}
	}

	if failed {
		return errors.New("integrity checks failed")
	}
	return nil
}

func printSection(name, status string) {
	fmt.Printf("%s %s\n", titleStyle.Render(name), statusStyle(status).Render(status))
}

func printServerReport(report *checks.ServerReport) {
	status := "ok"
	if !report.Matched {
		status = "error"
	}
	printSection("Server", status)
	for table, tbl := range report.Tables {
		for _, col := range tbl.MissingColumns {
			fmt.Printf("  - %s is missing column %s\n", table, col)
		}
	}
	for _, e := range report.Errors {
		fmt.Println("  - " + e)
	}
}
