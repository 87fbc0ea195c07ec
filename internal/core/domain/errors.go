package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClientUnavailable indicates the completion client is not configured.
	// Generation has no degraded mode; callers must surface this to the user.
	ErrClientUnavailable = errors.New("completion client unavailable")

	// ErrGeneratorUnavailable indicates no generator is registered for the
	// requested model and one could not be constructed.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrSchemaNotFound indicates a named schema document does not exist
	// in the schema store.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrHistoryDisabled indicates feedback history persistence is switched off.
	ErrHistoryDisabled = errors.New("history disabled")
)
