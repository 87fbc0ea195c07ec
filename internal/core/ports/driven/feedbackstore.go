package driven

import (
	"context"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// FeedbackStore persists generated feedback records.
type FeedbackStore interface {
	// Save stores a feedback record.
	Save(ctx context.Context, feedback domain.Feedback) error

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.Feedback, error)

	// List returns records newest first, at most limit entries.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]domain.Feedback, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}
