package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/logger"
)

var (
	feedbackLanguage  string
	feedbackMaxChars  int
	feedbackTone      string
	feedbackModel     string
	feedbackTopP      float64
	feedbackMaxTokens int
	feedbackValidate  bool
	feedbackNoSave    bool
	feedbackJSON      bool
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [stats-file]",
	Short: "Generate coaching feedback for a poker session",
	Long: `Generate short coaching feedback from poker session statistics.

The statistics are read as JSON from the given file, or from stdin when
the file is omitted or "-". Generation defaults (language, character
budget, tone, model) come from stored settings and can be overridden
per call with flags.

Examples:
  contentgen feedback session.json
  cat session.json | contentgen feedback
  contentgen feedback session.json --language en --tone friendly
  contentgen feedback session.json --validate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFeedback,
}

func runFeedback(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	data, err := readJSONInput(cmd, path)
	if err != nil {
		return err
	}

	var stats domain.SessionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("parsing session stats: %w", err)
	}

	if feedbackValidate {
		if err := validateStats(cmd, data); err != nil {
			return err
		}
	}

	request := domain.FeedbackRequest{
		Stats:    stats,
		Language: feedbackLanguage,
		MaxChars: feedbackMaxChars,
		Model:    feedbackModel,
		Options:  feedbackOptions(cmd),
		NoSave:   feedbackNoSave,
	}

	if feedbackTone != "" {
		tone := domain.Tone(strings.ToLower(strings.TrimSpace(feedbackTone)))
		if !tone.IsValid() {
			return fmt.Errorf("invalid tone %q (valid: %s)", feedbackTone, toneNames())
		}
		request.Tone = tone
	}

	feedback, err := feedbackService.Generate(cmd.Context(), request)
	if err != nil {
		return err
	}

	logger.Debug("generated %d chars with %s (id %s)", len([]rune(feedback.Text)), feedback.Model, feedback.ID)

	if feedbackJSON {
		return printJSON(cmd, feedback)
	}

	cmd.Println(feedback.Text)

	return nil
}

// validateStats checks the raw payload against the bundled session
// statistics schema before any model call is made.
func validateStats(cmd *cobra.Command, data []byte) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parsing session stats: %w", err)
	}

	result, err := validationService.ValidatePayload(driven.SchemaPackagePoker, driven.SchemaSessionStats, payload)
	if err != nil {
		return fmt.Errorf("validating session stats: %w", err)
	}

	if !result.OK {
		for _, violation := range result.Errors {
			cmd.Printf("  - %s\n", violation)
		}
		return fmt.Errorf("session stats failed validation with %d violation(s)", len(result.Errors))
	}

	return nil
}

// feedbackOptions builds sampling options from the flags. An explicit
// --max-tokens of zero or below removes the cap entirely.
func feedbackOptions(cmd *cobra.Command) domain.GenerateOptions {
	options := domain.GenerateOptions{TopP: feedbackTopP}

	if cmd.Flags().Changed("max-tokens") && feedbackMaxTokens <= 0 {
		return options
	}

	maxTokens := feedbackMaxTokens
	options.MaxTokens = &maxTokens

	return options
}

// readJSONInput reads the payload from path, or from stdin when path is
// empty or "-".
func readJSONInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

func printJSON(cmd *cobra.Command, data any) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting JSON: %w", err)
	}

	cmd.Println(string(output))

	return nil
}

func toneNames() string {
	tones := domain.AllTones()
	names := make([]string, len(tones))
	for i, tone := range tones {
		names[i] = tone.String()
	}
	return strings.Join(names, ", ")
}

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackLanguage, "language", "l", "", "response language code (default from settings)")
	feedbackCmd.Flags().IntVar(&feedbackMaxChars, "max-chars", 0, "response character budget (default from settings)")
	feedbackCmd.Flags().StringVar(&feedbackTone, "tone", "", "coaching tone: neutral, friendly or direct (default from settings)")
	feedbackCmd.Flags().StringVarP(&feedbackModel, "model", "m", "", "completion model to use (default from settings)")
	feedbackCmd.Flags().Float64Var(&feedbackTopP, "top-p", domain.DefaultTopP, "nucleus sampling parameter")
	feedbackCmd.Flags().IntVar(&feedbackMaxTokens, "max-tokens", domain.DefaultMaxTokens, "completion token cap (0 sends no cap)")
	feedbackCmd.Flags().BoolVar(&feedbackValidate, "validate", false, "validate the stats against the session schema first")
	feedbackCmd.Flags().BoolVar(&feedbackNoSave, "no-save", false, "skip saving the response to history")
	feedbackCmd.Flags().BoolVar(&feedbackJSON, "json", false, "output the full record as JSON")
	rootCmd.AddCommand(feedbackCmd)
}
