package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fahim-mle/career-scout-platform/internal/configs"
	"github.com/fahim-mle/career-scout-platform/internal/secrets"
	"github.com/fahim-mle/career-scout-platform/internal/ui"

	"github.com/spf13/cobra"
)

var (
	exportOutputPath string
	exportPassphrase string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path for the archive (default: scout-secrets-YYYY-MM-DD.sealed)")
	exportCmd.Flags().StringVarP(&exportPassphrase, "passphrase", "p", "", "passphrase protecting the archive (or SCOUT_ARCHIVE_PASSPHRASE)")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutputPath = ""
	exportPassphrase = ""
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Seal the current secret files into a passphrase-protected archive",
	Long: `Packs every existing secret file into a single sealed archive so a dev
machine's secret set can be moved without ever committing plaintext.

The key is derived from the passphrase with scrypt and the payload is
sealed with NaCl secretbox, so the archive is safe to send over chat or
email. Sealing the same set twice produces different bytes.

Examples:
  # Export to default filename
  scout secrets export --passphrase hunter2

  # Export to custom path, passphrase from the environment
  SCOUT_ARCHIVE_PASSPHRASE=hunter2 scout secrets export -o /tmp/dev.sealed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Sealing secrets...", verbose)
		defer cleanup()

		passphrase, err := resolvePassphrase(exportPassphrase)
		if err != nil {
			return err
		}

		Logger.Debugf("Initializing project settings")
		if err := configs.InitProjectSettings(); err != nil {
			return Logger.ErrorfAndReturn("failed to init project settings: %v", err)
		}
		secretsDir := configs.ProjectScoutSettings.SecretsPath
		Logger.Debugf("Secrets directory: %s", secretsDir)

		specs := secrets.SpecsWithExtra(configs.ProjectScoutSettings.ExtraNames)
		values, err := secrets.ReadValues(specs, secretsDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read secret files: %v", err)
		}
		if len(values) == 0 {
			finalMessage := ui.Error.Sprint("✗") + " No secret files exist in " + ui.Path.Sprint(secretsDir) + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("scout secrets generate") + " first"
			spinner.FinalMSG = finalMessage
			return fmt.Errorf("no secret files to export")
		}

		archive, err := secrets.SealArchive(values, passphrase)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to seal archive: %v", err)
		}

		outputPath := exportOutputPath
		if outputPath == "" {
			outputPath = fmt.Sprintf("scout-secrets-%s.sealed", time.Now().Format("2006-01-02"))
		}
		Logger.Debugf("Output path: %s", outputPath)

		if err := os.WriteFile(outputPath, archive, 0600); err != nil {
			return Logger.ErrorfAndReturn("failed to write archive: %v", err)
		}
		Logger.Infof("Sealed %d secrets into %s", len(values), outputPath)

		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" Sealed %d secret(s) into ", len(values)) +
			ui.Path.Sprint(outputPath) + "\n" +
			ui.Info.Sprint("→") + " Import on another machine with " +
			ui.Code.Sprint("scout secrets import "+outputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// resolvePassphrase returns the flag value or falls back to the
// SCOUT_ARCHIVE_PASSPHRASE environment variable.
func resolvePassphrase(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("SCOUT_ARCHIVE_PASSPHRASE"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("a passphrase is required: pass --passphrase or set SCOUT_ARCHIVE_PASSPHRASE")
}
