package services

import (
	"fmt"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGenLanguage   = "generation.language"
	keyGenMaxChars   = "generation.max_chars"
	keyGenTone       = "generation.tone"
	keyGenModel      = "generation.model"
	keyClientBaseURL = "client.base_url"
	keyClientAPIKey  = "client.api_key"
	keyClientTimeout = "client.timeout_seconds"
	keyHistoryOn     = "history.enabled"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore     driven.ConfigStore
	clientValidator driven.ClientConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, clientValidator driven.ClientConfigValidator) *SettingsService {
	return &SettingsService{
		configStore:     configStore,
		clientValidator: clientValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Generation: domain.GenerationSettings{
			Language: s.getString(keyGenLanguage, defaults.Generation.Language),
			MaxChars: s.getInt(keyGenMaxChars, defaults.Generation.MaxChars),
			Tone:     s.getTone(defaults.Generation.Tone),
			Model:    s.configStore.GetString(keyGenModel), // No default - empty means environment resolution
		},
		Client: domain.ClientSettings{
			BaseURL:        s.configStore.GetString(keyClientBaseURL), // No default - empty means provider default
			APIKey:         s.configStore.GetString(keyClientAPIKey),
			TimeoutSeconds: s.configStore.GetInt(keyClientTimeout),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryOn, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save generation settings
	if err := s.configStore.Set(keyGenLanguage, settings.Generation.Language); err != nil {
		return fmt.Errorf("save generation language: %w", err)
	}
	if err := s.configStore.Set(keyGenMaxChars, settings.Generation.MaxChars); err != nil {
		return fmt.Errorf("save generation max chars: %w", err)
	}
	if err := s.configStore.Set(keyGenTone, settings.Generation.Tone.String()); err != nil {
		return fmt.Errorf("save generation tone: %w", err)
	}
	if err := s.configStore.Set(keyGenModel, settings.Generation.Model); err != nil {
		return fmt.Errorf("save generation model: %w", err)
	}

	// Save client settings
	if err := s.configStore.Set(keyClientBaseURL, settings.Client.BaseURL); err != nil {
		return fmt.Errorf("save client base_url: %w", err)
	}
	if settings.Client.APIKey != "" {
		if err := s.configStore.Set(keyClientAPIKey, settings.Client.APIKey); err != nil {
			return fmt.Errorf("save client api_key: %w", err)
		}
	}
	if settings.Client.TimeoutSeconds > 0 {
		if err := s.configStore.Set(keyClientTimeout, settings.Client.TimeoutSeconds); err != nil {
			return fmt.Errorf("save client timeout: %w", err)
		}
	}

	// Save history settings
	if err := s.configStore.Set(keyHistoryOn, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}

	return nil
}

// SetGenerationDefaults updates the default prompt constraints.
// Empty or non-positive arguments leave the stored value unchanged.
func (s *SettingsService) SetGenerationDefaults(language string, maxChars int, tone domain.Tone) error {
	if tone != "" && !tone.IsValid() {
		return fmt.Errorf("invalid tone: %s", tone)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if language != "" {
		settings.Generation.Language = language
	}
	if maxChars > 0 {
		settings.Generation.MaxChars = maxChars
	}
	if tone != "" {
		settings.Generation.Tone = tone
	}

	return s.Save(settings)
}

// SetModel updates the completion model override.
// An empty model restores environment resolution.
func (s *SettingsService) SetModel(model string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Generation.Model = model

	return s.Save(settings)
}

// SetClient configures the completion provider endpoint and key.
// Empty arguments leave the stored value unchanged.
func (s *SettingsService) SetClient(baseURL, apiKey string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if baseURL != "" {
		settings.Client.BaseURL = baseURL
	}
	if apiKey != "" {
		settings.Client.APIKey = apiKey
	}

	return s.Save(settings)
}

// SetHistoryEnabled toggles feedback history persistence.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.History.Enabled = enabled

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateClientConfig validates the configured completion client by
// pinging the provider.
func (s *SettingsService) ValidateClientConfig() error {
	if s.clientValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.clientValidator.ValidateClient(&settings.Client)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTone(defaultVal domain.Tone) domain.Tone {
	val := s.configStore.GetString(keyGenTone)
	if val == "" {
		return defaultVal
	}
	tone := domain.Tone(val)
	if !tone.IsValid() {
		return defaultVal
	}
	return tone
}
