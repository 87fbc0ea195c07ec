package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/services"
)

var modelsJSON bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show the active completion model",
	Long: `Show which completion model feedback generation will use.

The model is resolved from stored settings first, then from the
POKER_FEEDBACK_MODEL environment variable, then from the built-in
default. Any model name supported by the configured provider can be
used; set one with --model, 'contentgen settings model', or the
environment variable.`,
	RunE: runModels,
}

func runModels(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	model, source := resolveModel(settings.Generation.Model)

	if modelsJSON {
		output := map[string]any{
			"active_model": model,
			"source":       source,
		}
		if feedbackService != nil {
			registered := feedbackService.AvailableModels()
			if registered == nil {
				registered = []string{}
			}
			output["registered_generators"] = registered
		}
		return printJSON(cmd, output)
	}

	cmd.Printf("Active model: %s (%s)\n", model, source)

	if feedbackService != nil {
		registered := feedbackService.AvailableModels()
		if len(registered) > 0 {
			cmd.Println("\nRegistered generators:")
			for _, name := range registered {
				cmd.Printf("  - %s\n", name)
			}
		}
	}

	return nil
}

// resolveModel mirrors the resolution order used by feedback generation:
// stored settings, then the environment, then the built-in default.
func resolveModel(configured string) (model, source string) {
	if configured != "" {
		return configured, "from settings"
	}
	if env := os.Getenv(services.EnvFeedbackModel); env != "" {
		return env, "from " + services.EnvFeedbackModel
	}
	return domain.DefaultModel, "built-in default"
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(modelsCmd)
}
