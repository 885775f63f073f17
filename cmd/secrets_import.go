package cmd

import (
	"errors"
	"os"

	"github.com/fahim-mle/career-scout-platform/internal/configs"
	scouterrors "github.com/fahim-mle/career-scout-platform/internal/errors"
	"github.com/fahim-mle/career-scout-platform/internal/secrets"
	"github.com/fahim-mle/career-scout-platform/internal/ui"

	"github.com/spf13/cobra"
)

var (
	importPassphrase string
	importForce      bool
)

func init() {
	importCmd.Flags().StringVarP(&importPassphrase, "passphrase", "p", "", "passphrase protecting the archive (or SCOUT_ARCHIVE_PASSPHRASE)")
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "overwrite existing secret files")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importPassphrase = ""
	importForce = false
}

var importCmd = &cobra.Command{
	Use:   "import <archive>",
	Short: "Unseal an archive and write its secret files",
	Long: `Opens an archive produced by 'scout secrets export' and writes each
contained secret into the project's secrets directory with owner-only
permissions.

Same guard as generate: existing target files abort the whole import
unless --force is passed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		spinner, cleanup := startSpinner("Unsealing secrets...", verbose)
		defer cleanup()

		passphrase, err := resolvePassphrase(importPassphrase)
		if err != nil {
			return err
		}

		archivePath := args[0]
		data, err := os.ReadFile(archivePath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read archive %s: %v", archivePath, err)
		}

		values, err := secrets.OpenArchive(data, passphrase)
		if err != nil {
			if errors.Is(err, scouterrors.ErrWrongPassphrase) {
				finalMessage := ui.Error.Sprint("✗") + " Could not unseal " + ui.Path.Sprint(archivePath) + "\n" +
					ui.Info.Sprint("→") + " Check the passphrase; the archive may also be corrupted"
				spinner.FinalMSG = finalMessage
			}
			return Logger.ErrorfAndReturn("failed to open archive: %v", err)
		}
		Logger.Infof("Unsealed %d secrets from %s", len(values), archivePath)

		Logger.Debugf("Initializing project settings")
		if err := configs.InitProjectSettings(); err != nil {
			return Logger.ErrorfAndReturn("failed to init project settings: %v", err)
		}
		secretsDir := configs.ProjectScoutSettings.SecretsPath
		Logger.Debugf("Secrets directory: %s", secretsDir)

		written, err := secrets.WriteValues(values, secretsDir, importForce)
		if err != nil {
			if errors.Is(err, scouterrors.ErrSecretsExist) {
				finalMessage := ui.Error.Sprint("✗") + " Some secret files already exist\n" +
					"To overwrite them, run: " + ui.Code.Sprint("scout secrets import "+archivePath+" --force")
				spinner.FinalMSG = finalMessage
			}
			return Logger.ErrorfAndReturn("failed to write secrets: %v", err)
		}

		finalMessage := ui.Success.Sprint("✓") + " The following secret files were imported into " +
			ui.Path.Sprint(secretsDir) + ":\n"
		for _, path := range written {
			finalMessage += "    created: " + ui.Path.Sprint(path) + "\n"
		}
		finalMessage += ui.Info.Sprint("→") + " Do not commit these files"
		spinner.FinalMSG = finalMessage
		return nil
	},
}
