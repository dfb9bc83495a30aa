package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "macrex",
	Short: "macrex - pattern matching and macro-rule expansion over token sequences",
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'macrex' is entered
		_ = cmd.Help()
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(expandCmd)
}
