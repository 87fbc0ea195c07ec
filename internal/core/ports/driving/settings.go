package driving

import "github.com/beeflow/contentgen/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGenerationDefaults updates the default prompt constraints.
	// Empty language, non-positive max chars or empty tone leave the
	// stored value unchanged.
	SetGenerationDefaults(language string, maxChars int, tone domain.Tone) error

	// SetModel updates the completion model override.
	SetModel(model string) error

	// SetClient configures the completion provider endpoint and key.
	SetClient(baseURL, apiKey string) error

	// SetHistoryEnabled toggles feedback history persistence.
	SetHistoryEnabled(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateClientConfig validates the configured completion client by
	// pinging the provider.
	ValidateClientConfig() error
}
