package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/beeflow/contentgen/internal/core/ports/driving"
	"github.com/beeflow/contentgen/internal/logger"
)

// version is reported by the version command. Overridden via SetVersion.
var version = "dev"

// Services driving the commands. Installed by ConfigureServices before
// Execute; each command guards against the services it needs being nil.
var (
	feedbackService   driving.FeedbackService
	validationService driving.ValidationService
	settingsService   driving.SettingsService

	// schemaWatch blocks watching the schema directory for edits,
	// refreshing cached validators. Started by long-running commands.
	schemaWatch func(ctx context.Context) error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "contentgen",
	Short: "Poker feedback generation toolkit",
	Long: `contentgen turns poker session statistics into short coaching feedback
using chat-completion models.

Session payloads can be validated against JSON Schemas before generation,
and every generated response is kept in a local history for later review.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// ServiceSet carries the wired service implementations the CLI drives.
type ServiceSet struct {
	Feedback   driving.FeedbackService
	Validation driving.ValidationService
	Settings   driving.SettingsService

	// SchemaWatch optionally watches the schema directory, refreshing
	// cached validators when documents change. Used by server commands.
	SchemaWatch func(ctx context.Context) error
}

// ConfigureServices installs the services the commands use. Unset fields
// leave the matching commands reporting a configuration error.
func ConfigureServices(s ServiceSet) {
	feedbackService = s.Feedback
	validationService = s.Validation
	settingsService = s.Settings
	schemaWatch = s.SchemaWatch
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
