// Package domain defines the core business entities for contentgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SessionStats: Aggregated statistics for a single poker session
//   - PromptSpec: Language, length and tone constraints for a prompt
//   - ChatMessage: A single message in a chat-completion conversation
//   - Feedback: A persisted record of one generation
//   - ValidationResult: Outcome of validating a payload against a schema
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
