package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultAppSettings verifies defaults cover every section
func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, DefaultLanguage, settings.Generation.Language)
	assert.Equal(t, DefaultMaxChars, settings.Generation.MaxChars)
	assert.Equal(t, ToneNeutral, settings.Generation.Tone)
	assert.Empty(t, settings.Generation.Model)

	assert.False(t, settings.Client.IsConfigured())
	assert.True(t, settings.History.Enabled)
}

// TestClientSettings_IsConfigured tests the stored-key check
func TestClientSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings ClientSettings
		expected bool
	}{
		{
			name:     "empty settings are unconfigured",
			settings: ClientSettings{},
			expected: false,
		},
		{
			name:     "base URL alone is not enough",
			settings: ClientSettings{BaseURL: "https://api.example.com/v1"},
			expected: false,
		},
		{
			name:     "stored key is configured",
			settings: ClientSettings{APIKey: "sk-test"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

// TestDefaultGenerateOptions verifies the standard sampling options
func TestDefaultGenerateOptions(t *testing.T) {
	opts := DefaultGenerateOptions()

	assert.InDelta(t, 0.9, opts.TopP, 0.0001)
	require.NotNil(t, opts.MaxTokens)
	assert.Equal(t, 120, *opts.MaxTokens)
}

// TestValidationResult_Constructors verifies the OK/Errors pairing invariant
func TestValidationResult_Constructors(t *testing.T) {
	valid := ValidResult()
	assert.True(t, valid.OK)
	assert.Empty(t, valid.Errors)
	assert.NotNil(t, valid.Errors)

	invalid := InvalidResult([]string{"$.age: must be >= 0"})
	assert.False(t, invalid.OK)
	assert.Len(t, invalid.Errors, 1)
}
