package domain

import "time"

// FeedbackRequest describes one feedback generation request.
// Zero-valued constraint fields are filled from stored settings before
// the prompt is built.
type FeedbackRequest struct {
	// Stats is the session to give feedback on.
	Stats SessionStats

	// Language overrides the default response language when non-empty.
	Language string

	// MaxChars overrides the default character budget when positive.
	MaxChars int

	// Tone overrides the default coaching voice when non-empty.
	Tone Tone

	// Model overrides the configured model when non-empty.
	Model string

	// Options configures sampling. A zero TopP means DefaultTopP; a nil
	// MaxTokens means no cap is sent to the provider.
	Options GenerateOptions

	// NoSave skips history persistence for this request.
	NoSave bool
}

// Feedback is one generated coaching response, kept as an audit record.
// History never feeds back into generation; every request reaches the model.
type Feedback struct {
	// ID uniquely identifies the record (UUID).
	ID string

	// Model is the resolved model name the completion was requested from.
	Model string

	// Language is the language code the response was requested in.
	Language string

	// Tone is the coaching voice the response was requested in.
	Tone Tone

	// MaxChars is the character budget the response was bounded to.
	MaxChars int

	// Prompt is the full user prompt sent to the model.
	Prompt string

	// Text is the final trimmed, bounded response.
	Text string

	// CreatedAt is when the generation completed.
	CreatedAt time.Time
}
