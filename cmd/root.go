package cmd

import (
	"fmt"
	"os"

	"feature-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the build version, overridden with -ldflags.
var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "feature-catalog",
	Short: "Feature Catalogue Service",
	Long: `Feature Catalogue serves the catalogue of user-story feature descriptors and
loads the module registered for every descriptor at start-up.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
