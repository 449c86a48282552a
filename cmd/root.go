package cmd

import (
	"fmt"
	"os"

	"match-canon/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "match-canon",
	Short: "Mahjong match log converter",
	Long: `match-canon converts recorded four-player mahjong matches from the XML log
format (mjlog) and the JSON log format (mjson) into one canonical JSON record,
and cross-checks that both formats decode a match identically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI users
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
