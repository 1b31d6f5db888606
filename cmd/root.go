package cmd

import (
	"fmt"
	"os"

	"furnishing-helper/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "furnishing-helper",
	Short: "Gift set furnishing tracker",
	Long: `Furnishing Helper tracks which characters a user owns, which gift sets they
have claimed, and which furnishings and materials are still needed to claim the rest.
The gift set catalog is read from object storage and mirrored into the database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable timestamps.
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
