package domain

// DefaultModel is the completion model used when neither settings nor
// environment provide one.
const DefaultModel = "gpt-5"

// GenerationSettings holds the default prompt constraints applied when a
// request leaves them unset.
type GenerationSettings struct {
	// Language is the default response language code.
	Language string

	// MaxChars is the default response character budget.
	MaxChars int

	// Tone is the default coaching voice.
	Tone Tone

	// Model is the completion model override. Empty means resolve from
	// the environment, then fall back to DefaultModel.
	Model string
}

// ClientSettings holds completion provider configuration.
type ClientSettings struct {
	// BaseURL is the API endpoint. Empty means the provider default.
	BaseURL string

	// APIKey is the provider API key. Empty means read the
	// provider's environment variable at client construction.
	APIKey string

	// TimeoutSeconds is the request timeout. Zero means the provider default.
	TimeoutSeconds int
}

// IsConfigured returns true if an API key is stored in settings.
// A key supplied via the environment does not count as configured here;
// the client itself falls back to the environment.
func (c ClientSettings) IsConfigured() bool {
	return c.APIKey != ""
}

// HistorySettings holds feedback history configuration.
type HistorySettings struct {
	// Enabled indicates whether generated feedback is persisted.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Generation holds default prompt constraints.
	Generation GenerationSettings

	// Client holds completion provider configuration.
	Client ClientSettings

	// History holds feedback history configuration.
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The client is left unconfigured; the API key is read from the
// environment until one is stored explicitly.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Generation: GenerationSettings{
			Language: DefaultLanguage,
			MaxChars: DefaultMaxChars,
			Tone:     ToneNeutral,
		},
		Client: ClientSettings{},
		History: HistorySettings{
			Enabled: true,
		},
	}
}
