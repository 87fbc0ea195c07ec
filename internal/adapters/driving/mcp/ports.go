package mcp

import (
	"github.com/beeflow/contentgen/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Feedback generates coaching feedback and owns the history.
	Feedback driving.FeedbackService

	// Validation checks payloads against stored schemas.
	Validation driving.ValidationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Feedback == nil {
		return ErrMissingFeedbackService
	}
	// Validation is optional; validate_payload reports when it is missing
	return nil
}
