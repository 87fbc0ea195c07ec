package driving

import (
	"context"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// FeedbackService generates poker coaching feedback for external actors.
type FeedbackService interface {
	// Generate produces feedback for one session and records it in
	// history unless the request or settings opt out.
	Generate(ctx context.Context, req domain.FeedbackRequest) (*domain.Feedback, error)

	// History returns recent feedback records, newest first.
	History(ctx context.Context, limit int) ([]domain.Feedback, error)

	// GetFeedback retrieves one feedback record by ID.
	GetFeedback(ctx context.Context, id string) (*domain.Feedback, error)

	// DeleteFeedback removes one feedback record.
	DeleteFeedback(ctx context.Context, id string) error

	// AvailableModels returns the model names with a registered generator,
	// sorted alphabetically.
	AvailableModels() []string
}
