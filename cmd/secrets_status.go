package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fahim-mle/career-scout-platform/internal/configs"
	"github.com/fahim-mle/career-scout-platform/internal/secrets"
	"github.com/fahim-mle/career-scout-platform/internal/ui"

	"github.com/spf13/cobra"
)

var statusJSONOutput bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "output in JSON format")
}

func resetStatusCommandState() {
	statusJSONOutput = false
}

// StatusResult holds the result of the status command.
type StatusResult struct {
	ProjectName string                 `json:"project"`
	SecretsDir  string                 `json:"secrets_dir"`
	Targets     []secrets.TargetStatus `json:"targets"`
	Summary     StatusSummary          `json:"summary"`
}

// StatusSummary holds counts of targets by state.
type StatusSummary struct {
	Present  int `json:"present"`
	Missing  int `json:"missing"`
	Insecure int `json:"insecure"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which secret files exist and whether their permissions are safe",
	Long: `Reports, for every secret the development stack expects, whether the file
exists and whether its permission mode is owner-only. A file readable by
group or others is flagged insecure.

Use --json for machine-readable output. This command never writes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		Logger.Debugf("Initializing project settings")
		if err := configs.InitProjectSettings(); err != nil {
			return Logger.ErrorfAndReturn("failed to init project settings: %v", err)
		}
		secretsDir := configs.ProjectScoutSettings.SecretsPath
		Logger.Debugf("Secrets directory: %s", secretsDir)

		specs := secrets.SpecsWithExtra(configs.ProjectScoutSettings.ExtraNames)
		targets, err := secrets.Inspect(specs, secretsDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to inspect secret files: %v", err)
		}

		result := StatusResult{
			ProjectName: configs.ProjectScoutSettings.ProjectName,
			SecretsDir:  secretsDir,
			Targets:     targets,
		}
		for _, target := range targets {
			if target.Exists {
				result.Summary.Present++
				if target.Insecure {
					result.Summary.Insecure++
				}
			} else {
				result.Summary.Missing++
			}
		}

		if statusJSONOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal status to JSON: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("Secrets for " + ui.Highlight.Sprint(result.ProjectName) + " in " + ui.Path.Sprint(secretsDir) + ":")
		for _, target := range targets {
			switch {
			case !target.Exists:
				fmt.Println("  " + ui.Error.Sprint("✗") + " " + target.Name + " " + ui.Muted.Sprint("missing"))
			case target.Insecure:
				fmt.Println("  " + ui.Warning.Sprint("⚠") + " " + target.Name + " " +
					ui.Warning.Sprintf("mode %s is wider than 0600", target.Mode))
			default:
				fmt.Println("  " + ui.Success.Sprint("✓") + " " + target.Name + " " + ui.Muted.Sprint(target.Consumer))
			}
		}

		if result.Summary.Missing > 0 {
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("scout secrets generate") + " to create missing secrets")
		}
		if result.Summary.Insecure > 0 {
			Logger.WarnfAlways("%d secret file(s) have permissions wider than 0600", result.Summary.Insecure)
		}
		return nil
	},
}
