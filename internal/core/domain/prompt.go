package domain

import "strings"

// Tone selects the coaching voice used in generated feedback.
type Tone string

// Available tones.
const (
	// ToneNeutral gives balanced, constructive feedback.
	ToneNeutral Tone = "neutral"

	// ToneFriendly gives warm, encouraging feedback.
	ToneFriendly Tone = "friendly"

	// ToneDirect gives blunt, actionable feedback.
	ToneDirect Tone = "direct"
)

// Default prompt constraints.
const (
	// DefaultLanguage is the language code used when none is specified.
	DefaultLanguage = "pl"

	// DefaultMaxChars is the response character budget used when none is specified.
	DefaultMaxChars = 280
)

// IsValid returns true if the tone is recognised.
func (t Tone) IsValid() bool {
	switch t {
	case ToneNeutral, ToneFriendly, ToneDirect:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Tone) String() string {
	return string(t)
}

// Hint returns the short phrase embedded in prompts for this tone.
// The tone name is trimmed and lowercased first; unknown or empty
// tones resolve to the neutral phrase, never an error.
func (t Tone) Hint() string {
	switch Tone(strings.ToLower(strings.TrimSpace(string(t)))) {
	case ToneFriendly:
		return "friendly, encouraging"
	case ToneDirect:
		return "direct, actionable"
	default:
		return "balanced, constructive"
	}
}

// AllTones returns all available tones.
func AllTones() []Tone {
	return []Tone{
		ToneNeutral,
		ToneFriendly,
		ToneDirect,
	}
}

// PromptSpec holds the constraints a prompt is built under.
// A spec is immutable for the duration of one build.
type PromptSpec struct {
	// Language is the language code the model must respond in.
	Language string

	// MaxChars is the response character budget stated in the prompt
	// and enforced on the generated text.
	MaxChars int

	// Tone selects the coaching voice.
	Tone Tone
}

// DefaultPromptSpec returns a spec with the standard defaults.
func DefaultPromptSpec() PromptSpec {
	return PromptSpec{
		Language: DefaultLanguage,
		MaxChars: DefaultMaxChars,
		Tone:     ToneNeutral,
	}
}
