package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes returned by Run.
const (
	ExitSuccess      = 0
	ExitCollisions   = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "langmerge",
	Short: "Merge per-module translation files into one dictionary",
	Long:  "Langmerge aggregates per-module translation files into one combined language dictionary, namespacing every key with a prefix derived from the file's path.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print langmerge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "langmerge version %s\n", version)
	},
}
