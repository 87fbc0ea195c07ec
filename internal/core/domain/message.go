package domain

// Chat message roles understood by completion providers.
const (
	// RoleSystem carries persona and hard output constraints.
	RoleSystem = "system"

	// RoleUser carries the task prompt.
	RoleUser = "user"

	// RoleAssistant carries model turns in a conversation.
	RoleAssistant = "assistant"
)

// ChatMessage is a single message in a chat-completion conversation.
// Message order is significant; the system message comes first.
type ChatMessage struct {
	// Role is one of RoleSystem, RoleUser or RoleAssistant.
	Role string

	// Content is the message text.
	Content string
}

// GenerateOptions configures sampling for one generation call.
type GenerateOptions struct {
	// TopP is the nucleus sampling parameter. Zero means use the
	// standard default of 0.9.
	TopP float64

	// MaxTokens caps the completion length. Nil means no cap is sent
	// to the provider at all; the field is absent from the request.
	MaxTokens *int
}

// Standard sampling defaults applied by the outer surfaces (CLI, MCP).
// Generate itself passes options through untouched so library callers
// keep full control over MaxTokens omission.
const (
	// DefaultTopP is the standard nucleus sampling parameter.
	DefaultTopP = 0.9

	// DefaultMaxTokens is the standard completion length cap.
	DefaultMaxTokens = 120
)

// DefaultGenerateOptions returns the standard sampling options.
func DefaultGenerateOptions() GenerateOptions {
	maxTokens := DefaultMaxTokens
	return GenerateOptions{
		TopP:      DefaultTopP,
		MaxTokens: &maxTokens,
	}
}
