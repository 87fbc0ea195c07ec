// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CompletionClient: Chat-completion transport to a model provider
//   - ConfigStore: Application configuration
//   - SchemaStore: JSON Schema document access
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FeedbackStore: Generation history persistence. Without it,
//     feedback is generated but not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
