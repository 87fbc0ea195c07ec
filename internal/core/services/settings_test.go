package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beeflow/contentgen/internal/adapters/driven/storage/memory"
	"github.com/beeflow/contentgen/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Generation.Language, settings.Generation.Language)
	assert.Equal(t, defaults.Generation.MaxChars, settings.Generation.MaxChars)
	assert.Equal(t, defaults.Generation.Tone, settings.Generation.Tone)
	assert.Empty(t, settings.Generation.Model)
	assert.Empty(t, settings.Client.BaseURL)
	assert.True(t, settings.History.Enabled)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("generation.language", "en")
	_ = store.Set("generation.max_chars", 200)
	_ = store.Set("generation.tone", "friendly")
	_ = store.Set("generation.model", "gpt-5-mini")
	_ = store.Set("client.base_url", "https://proxy.example.com/v1")
	_ = store.Set("history.enabled", false)

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "en", settings.Generation.Language)
	assert.Equal(t, 200, settings.Generation.MaxChars)
	assert.Equal(t, domain.ToneFriendly, settings.Generation.Tone)
	assert.Equal(t, "gpt-5-mini", settings.Generation.Model)
	assert.Equal(t, "https://proxy.example.com/v1", settings.Client.BaseURL)
	assert.False(t, settings.History.Enabled)
}

func TestSettingsService_Get_InvalidToneReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("generation.tone", "sarcastic")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ToneNeutral, settings.Generation.Tone)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings := &domain.AppSettings{
		Generation: domain.GenerationSettings{
			Language: "en",
			MaxChars: 160,
			Tone:     domain.ToneDirect,
			Model:    "gpt-5",
		},
		Client: domain.ClientSettings{
			BaseURL:        "https://api.openai.com/v1",
			APIKey:         "sk-test-key",
			TimeoutSeconds: 45,
		},
		History: domain.HistorySettings{
			Enabled: true,
		},
	}

	err := service.Save(settings)
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "en", retrieved.Generation.Language)
	assert.Equal(t, 160, retrieved.Generation.MaxChars)
	assert.Equal(t, domain.ToneDirect, retrieved.Generation.Tone)
	assert.Equal(t, "gpt-5", retrieved.Generation.Model)
	assert.Equal(t, "https://api.openai.com/v1", retrieved.Client.BaseURL)
	assert.Equal(t, "sk-test-key", retrieved.Client.APIKey)
	assert.Equal(t, 45, retrieved.Client.TimeoutSeconds)
	assert.True(t, retrieved.History.Enabled)
}

func TestSettingsService_Save_EmptyAPIKeyLeavesStoredKey(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("client.api_key", "sk-existing")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()
	require.NoError(t, err)
	settings.Client.APIKey = ""

	err = service.Save(settings)
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-existing", retrieved.Client.APIKey)
}

func TestSettingsService_SetGenerationDefaults_Valid(t *testing.T) {
	tests := []struct {
		name string
		tone domain.Tone
	}{
		{"neutral", domain.ToneNeutral},
		{"friendly", domain.ToneFriendly},
		{"direct", domain.ToneDirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store, nil)

			err := service.SetGenerationDefaults("en", 200, tt.tone)

			require.NoError(t, err)

			settings, _ := service.Get()
			assert.Equal(t, "en", settings.Generation.Language)
			assert.Equal(t, 200, settings.Generation.MaxChars)
			assert.Equal(t, tt.tone, settings.Generation.Tone)
		})
	}
}

func TestSettingsService_SetGenerationDefaults_Partial(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetGenerationDefaults("en", 200, domain.ToneFriendly))

	// Empty and non-positive arguments leave stored values unchanged
	err := service.SetGenerationDefaults("", 0, "")
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.Equal(t, "en", settings.Generation.Language)
	assert.Equal(t, 200, settings.Generation.MaxChars)
	assert.Equal(t, domain.ToneFriendly, settings.Generation.Tone)
}

func TestSettingsService_SetGenerationDefaults_InvalidTone(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetGenerationDefaults("", 0, domain.Tone("sarcastic"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tone")
}

func TestSettingsService_SetModel(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetModel("gpt-5-mini")
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.Equal(t, "gpt-5-mini", settings.Generation.Model)
}

func TestSettingsService_SetModel_EmptyRestoresEnvResolution(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetModel("gpt-5-mini"))

	err := service.SetModel("")
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.Empty(t, settings.Generation.Model)
}

func TestSettingsService_SetClient(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetClient("https://proxy.example.com/v1", "sk-test-key")
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.Equal(t, "https://proxy.example.com/v1", settings.Client.BaseURL)
	assert.Equal(t, "sk-test-key", settings.Client.APIKey)
}

func TestSettingsService_SetClient_EmptyArgumentsLeaveUnchanged(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetClient("https://proxy.example.com/v1", "sk-test-key"))

	err := service.SetClient("", "")
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.Equal(t, "https://proxy.example.com/v1", settings.Client.BaseURL)
	assert.Equal(t, "sk-test-key", settings.Client.APIKey)
}

func TestSettingsService_SetHistoryEnabled(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetHistoryEnabled(false)
	require.NoError(t, err)

	settings, _ := service.Get()
	assert.False(t, settings.History.Enabled)

	err = service.SetHistoryEnabled(true)
	require.NoError(t, err)

	settings, _ = service.Get()
	assert.True(t, settings.History.Enabled)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultLanguage, defaults.Generation.Language)
	assert.Equal(t, domain.DefaultMaxChars, defaults.Generation.MaxChars)
	assert.Equal(t, domain.ToneNeutral, defaults.Generation.Tone)
}

func TestSettingsService_ValidateClientConfig_NoValidator(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.ValidateClientConfig()
	assert.NoError(t, err)
}

type stubClientValidator struct {
	err      error
	received *domain.ClientSettings
}

func (v *stubClientValidator) ValidateClient(config *domain.ClientSettings) error {
	v.received = config
	return v.err
}

func TestSettingsService_ValidateClientConfig_PassesStoredClient(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("client.api_key", "sk-test-key")
	_ = store.Set("client.base_url", "https://proxy.example.com/v1")

	validator := &stubClientValidator{}
	service := NewSettingsService(store, validator)

	err := service.ValidateClientConfig()

	require.NoError(t, err)
	require.NotNil(t, validator.received)
	assert.Equal(t, "sk-test-key", validator.received.APIKey)
	assert.Equal(t, "https://proxy.example.com/v1", validator.received.BaseURL)
}

func TestSettingsService_ValidateClientConfig_PropagatesError(t *testing.T) {
	store := memory.NewConfigStore()
	validator := &stubClientValidator{err: errors.New("ping failed")}
	service := NewSettingsService(store, validator)

	err := service.ValidateClientConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
}
