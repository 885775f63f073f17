package cmd

import (
	logger "github.com/fahim-mle/career-scout-platform/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	SecretsCmd = &cobra.Command{
		Use:   "secrets",
		Short: "Provision and inspect local development secrets",
		Long: `Manages the secret files consumed by the Career Scout development stack:
generation, status reporting, purging, and sealed archive transfer.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing secrets command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SecretsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SecretsCmd.AddCommand(generateCmd)
	SecretsCmd.AddCommand(statusCmd)
	SecretsCmd.AddCommand(purgeCmd)
	SecretsCmd.AddCommand(exportCmd)
	SecretsCmd.AddCommand(importCmd)
}

// Helper functions for testing

// GetSecretsCmd returns the SecretsCmd for testing.
func GetSecretsCmd() *cobra.Command {
	return SecretsCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetGenerateCommandState()
	resetStatusCommandState()
	resetPurgeCommandState()
	resetExportCommandState()
	resetImportCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
