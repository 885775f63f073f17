package main

import (
	"fmt"
	"os"

	"github.com/fahim-mle/career-scout-platform/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Scout - developer tooling for the Career Scout platform.",
	Long: `Scout manages the local development environment of the Career Scout
job-tracking platform: it provisions the secret files consumed by the
containerized database, the monitoring stack, and the LinkedIn scraper.

Usage:
  scout <command> [flags]

Available Commands:
  secrets    Provision and inspect local development secrets

Run 'scout help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		figure.NewFigure("scout", "", true).Print()
		fmt.Println("Run 'scout --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SecretsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
