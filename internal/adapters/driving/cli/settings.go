package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/beeflow/contentgen/internal/adapters/driven/completion/openai"
	"github.com/beeflow/contentgen/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure generation defaults, the completion provider,
and feedback history.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGenerationCmd = &cobra.Command{
	Use:   "generation",
	Short: "Configure generation defaults",
	Long: `Configure the default response language, character budget and
coaching tone applied when a request leaves them unset.`,
	RunE: runSettingsGeneration,
}

var settingsModelClear bool

var settingsModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Set the completion model override",
	Long: `Set the completion model used for feedback generation.

Without a name the current resolution is printed. Clearing the override
with --clear falls back to the POKER_FEEDBACK_MODEL environment variable,
then the built-in default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsModel,
}

var settingsClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Configure the completion provider",
	Long: `Configure the completion provider endpoint, API key and request
timeout. The API key is read without echo and stored in the config file;
when no key is stored, the OPENAI_API_KEY environment variable is used.`,
	RunE: runSettingsClient,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history <on|off>",
	Short: "Enable or disable feedback history",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistory,
}

func init() {
	settingsModelCmd.Flags().BoolVar(&settingsModelClear, "clear", false, "clear the model override")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGenerationCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsClientCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// Generation settings
	cmd.Println("[Generation]")
	cmd.Printf("  Language: %s\n", settings.Generation.Language)
	cmd.Printf("  Max chars: %d\n", settings.Generation.MaxChars)
	cmd.Printf("  Tone: %s\n", settings.Generation.Tone)
	model, source := resolveModel(settings.Generation.Model)
	cmd.Printf("  Model: %s (%s)\n", model, source)
	cmd.Println()

	// Client settings
	cmd.Println("[Client]")
	if settings.Client.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.Client.BaseURL)
	} else {
		cmd.Printf("  Base URL: (provider default)\n")
	}
	switch {
	case settings.Client.APIKey != "":
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Client.APIKey))
	case os.Getenv(openai.EnvAPIKey) != "":
		cmd.Printf("  API Key: (from %s)\n", openai.EnvAPIKey)
	default:
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.Client.TimeoutSeconds > 0 {
		cmd.Printf("  Timeout: %ds\n", settings.Client.TimeoutSeconds)
	} else {
		cmd.Printf("  Timeout: (provider default)\n")
	}
	status := "configured"
	if !settings.Client.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	// History settings
	cmd.Println("[History]")
	enabled := "no"
	if settings.History.Enabled {
		enabled = "yes"
	}
	cmd.Printf("  Enabled: %s\n", enabled)
	cmd.Println()

	// Validation
	if settings.Client.IsConfigured() || os.Getenv(openai.EnvAPIKey) != "" {
		cmd.Println("Configuration is valid.")
	} else {
		cmd.Printf("Warning: no API key is stored and %s is not set.\n", openai.EnvAPIKey)
		cmd.Println("Run 'contentgen settings client' to fix configuration issues.")
	}

	return nil
}

func runSettingsGeneration(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Generation Defaults")
	cmd.Println("-------------------")
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	cmd.Printf("Response language [%s]: ", settings.Generation.Language)
	language := readLine(reader)

	cmd.Printf("Character budget [%d]: ", settings.Generation.MaxChars)
	maxChars := 0
	if input := readLine(reader); input != "" {
		maxChars, err = strconv.Atoi(input)
		if err != nil || maxChars < 1 {
			return fmt.Errorf("invalid character budget %q", input)
		}
	}

	tones := domain.AllTones()
	cmd.Println("Coaching tone:")
	for i, tone := range tones {
		cmd.Printf("  %d. %s - %s\n", i+1, tone, tone.Hint())
	}
	cmd.Printf("\nEnter choice [current: %s]: ", settings.Generation.Tone)
	var tone domain.Tone
	if input := readLine(reader); input != "" {
		idx := parseChoice(input, len(tones), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		tone = tones[idx-1]
	}

	if err := settingsService.SetGenerationDefaults(language, maxChars, tone); err != nil {
		return fmt.Errorf("failed to set generation defaults: %w", err)
	}

	cmd.Println("Generation defaults saved.")

	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if settingsModelClear {
		if err := settingsService.SetModel(""); err != nil {
			return fmt.Errorf("failed to clear model override: %w", err)
		}
		model, source := resolveModel("")
		cmd.Printf("Model override cleared; using %s (%s).\n", model, source)
		return nil
	}

	if len(args) == 0 {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		model, source := resolveModel(settings.Generation.Model)
		cmd.Printf("Active model: %s (%s)\n", model, source)
		return nil
	}

	if err := settingsService.SetModel(args[0]); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}

	cmd.Printf("Model set to: %s\n", args[0])

	return nil
}

func runSettingsClient(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Completion Provider")
	cmd.Println("-------------------")
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	currentURL := settings.Client.BaseURL
	if currentURL == "" {
		currentURL = "provider default"
	}
	cmd.Printf("Base URL [%s]: ", currentURL)
	baseURL := readLine(reader)

	cmd.Print("API key: ")
	apiKey := readPassword()
	cmd.Println()

	currentTimeout := "provider default"
	if settings.Client.TimeoutSeconds > 0 {
		currentTimeout = fmt.Sprintf("%ds", settings.Client.TimeoutSeconds)
	}
	cmd.Printf("Request timeout in seconds [%s]: ", currentTimeout)
	timeout := 0
	if input := readLine(reader); input != "" {
		timeout, err = strconv.Atoi(input)
		if err != nil || timeout < 1 {
			return fmt.Errorf("invalid timeout %q", input)
		}
	}

	if err := settingsService.SetClient(baseURL, apiKey); err != nil {
		return fmt.Errorf("failed to configure client: %w", err)
	}

	if timeout > 0 {
		settings, err = settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings.Client.TimeoutSeconds = timeout
		if err := settingsService.Save(settings); err != nil {
			return fmt.Errorf("failed to save client timeout: %w", err)
		}
	}

	// Validate the configuration by pinging the provider
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateClientConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("client configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Println("Completion provider configured.")

	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q (use on or off)", args[0])
	}

	if err := settingsService.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to update history setting: %w", err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	cmd.Printf("Feedback history %s.\n", state)

	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
