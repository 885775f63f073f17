package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fahim-mle/career-scout-platform/internal/configs"
	"github.com/fahim-mle/career-scout-platform/internal/secrets"
	"github.com/fahim-mle/career-scout-platform/internal/ui"

	"github.com/spf13/cobra"
)

var force bool

func init() {
	generateCmd.Flags().BoolVarP(&force, "force", "f", false, "regenerate and overwrite existing secret files")
}

// resetGenerateCommandState resets the generate command's global state for testing.
func resetGenerateCommandState() {
	force = false
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the secret files the development stack mounts",
	Long: `Creates every secret file the Docker Compose stack expects under the
project's secrets directory, each holding a fresh crypto-random value with
owner-only permissions.

Safe by default: if any target file already exists, nothing is written and
the conflicting paths are reported. Pass --force to regenerate everything.

Two concurrent non-forced runs can both pass the existence check and both
write; the tool does no locking since it targets a single local operator.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")
		spinner, cleanup := startSpinner("Generating secrets...", verbose)
		defer cleanup()

		Logger.Debugf("Initializing project settings")
		if err := configs.InitProjectSettings(); err != nil {
			return Logger.ErrorfAndReturn("failed to init project settings: %v", err)
		}
		secretsDir := configs.ProjectScoutSettings.SecretsPath
		Logger.Debugf("Secrets directory: %s", secretsDir)

		specs := secrets.SpecsWithExtra(configs.ProjectScoutSettings.ExtraNames)
		Logger.Debugf("Provisioning %d secret specs", len(specs))

		if !force {
			Logger.Debugf("Force flag not set, checking for existing secret files")
			existing, err := secrets.ExistingTargets(specs, secretsDir)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to check existing secrets: %v", err)
			}
			if len(existing) > 0 {
				finalMessage := ui.Error.Sprint("✗") + " The following secret files already exist:\n"
				for _, path := range existing {
					finalMessage += "    " + ui.Path.Sprint(path) + "\n"
				}
				finalMessage += "To regenerate them, run: " + ui.Code.Sprint("scout secrets generate --force")
				spinner.FinalMSG = finalMessage
				return fmt.Errorf("secret files already exist: %s", strings.Join(existing, ", "))
			}
		} else {
			Logger.Infof("Force flag set, existing secret files will be overwritten")
			if !verbose && !debug {
				spinner.Stop()
			}
			Logger.WarnfUser("Using --force will overwrite existing secrets - dependent containers must be restarted")
			if !verbose && !debug {
				spinner.Restart()
			}
		}

		result, err := secrets.Provision(specs, secretsDir, force)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to provision secrets: %v", err)
		}
		Logger.Infof("Generated %d secret files", len(result.Written))

		finalMessage := ui.Success.Sprint("✓") + " The following secret files were generated in " +
			ui.Path.Sprint(result.SecretsDir) + ":\n"
		for _, path := range result.Written {
			finalMessage += "    created: " + ui.Path.Sprint(path) + "\n"
		}
		dirHint := result.SecretsDir
		if rel, err := filepath.Rel(configs.ProjectScoutSettings.ProjectPath, dirHint); err == nil {
			dirHint = rel
		}
		finalMessage += ui.Info.Sprint("→") + " Do not commit these files - keep " +
			ui.Path.Sprint(dirHint+"/") + " in your .gitignore"

		spinner.FinalMSG = finalMessage
		return nil
	},
}
