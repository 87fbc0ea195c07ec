package driven

import (
	"context"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// CompletionClient sends chat-completion requests to a model provider.
//
// Implementations may include:
//   - OpenAI (chat completions API)
//   - OpenAI-compatible endpoints (Azure OpenAI, local inference servers)
type CompletionClient interface {
	// Complete sends one request and returns the primary choice's text,
	// trimmed of surrounding whitespace. An absent or empty completion
	// yields "" without error; transport and API failures are returned
	// as errors.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Ping validates the client is reachable by making a lightweight
	// request that does not run inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompletionRequest is one chat-completion call.
type CompletionRequest struct {
	// Model is the provider model name.
	Model string

	// Messages is the ordered conversation; system message first.
	Messages []domain.ChatMessage

	// TopP is the nucleus sampling parameter. Sent as given.
	TopP float64

	// MaxTokens caps the completion length. Nil means the field is
	// omitted from the provider request entirely, not sent as zero.
	MaxTokens *int
}
