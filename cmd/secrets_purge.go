package cmd

import (
	"fmt"

	"github.com/fahim-mle/career-scout-platform/internal/configs"
	"github.com/fahim-mle/career-scout-platform/internal/secrets"
	"github.com/fahim-mle/career-scout-platform/internal/ui"

	"github.com/spf13/cobra"
)

var purgeConfirmed bool

func init() {
	purgeCmd.Flags().BoolVarP(&purgeConfirmed, "yes", "y", false, "confirm removal of the generated secret files")
}

func resetPurgeCommandState() {
	purgeConfirmed = false
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Removes the generated secret files",
	Long: `Deletes every known secret file from the secrets directory. Only the
files the tool provisions are touched; anything else in the directory is
left alone. Requires --yes to actually delete.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting purge command")

		Logger.Debugf("Initializing project settings")
		if err := configs.InitProjectSettings(); err != nil {
			return Logger.ErrorfAndReturn("failed to init project settings: %v", err)
		}
		secretsDir := configs.ProjectScoutSettings.SecretsPath
		Logger.Debugf("Secrets directory: %s", secretsDir)

		specs := secrets.SpecsWithExtra(configs.ProjectScoutSettings.ExtraNames)
		existing, err := secrets.ExistingTargets(specs, secretsDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to check existing secrets: %v", err)
		}

		if len(existing) == 0 {
			fmt.Println(ui.Success.Sprint("✓") + " Nothing to purge - no secret files exist in " + ui.Path.Sprint(secretsDir))
			return nil
		}

		if !purgeConfirmed {
			fmt.Println(ui.Warning.Sprint("⚠") + " The following secret files would be removed:")
			for _, path := range existing {
				fmt.Println("    " + ui.Path.Sprint(path))
			}
			fmt.Println(ui.Info.Sprint("→") + " Re-run with " + ui.Flag.Sprint("--yes") + " to delete them")
			return fmt.Errorf("purge requires confirmation with --yes")
		}

		removed, err := secrets.Purge(specs, secretsDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to purge secrets: %v", err)
		}
		Logger.Infof("Removed %d secret files", len(removed))

		fmt.Println(ui.Success.Sprint("✓") + " The following secret files were removed:")
		for _, path := range removed {
			fmt.Println("    deleted: " + ui.Path.Sprint(path))
		}
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("scout secrets generate") + " to provision a fresh set")
		return nil
	},
}
