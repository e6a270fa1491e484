package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/config"
)

const version = "1.0.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "stdguard",
	Short: "Coding-standards extraction and AI code review",
	Long: "Stdguard extracts coding rules from guideline documents and reviews\n" +
		"submitted code against them using LLM providers.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// newLogger builds the production logger commands share.
func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print stdguard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "stdguard version %s\n", version)
	},
}
