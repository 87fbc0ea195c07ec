package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/core/ports/driving"
)

// Ensure ValidationService implements the interface.
var _ driving.ValidationService = (*ValidationService)(nil)

// ValidationService validates payloads against schemas from the store,
// caching compiled validators per schema coordinate.
type ValidationService struct {
	schemas driven.SchemaStore

	mu    sync.Mutex
	cache map[string]*SchemaValidator
}

// NewValidationService creates a validation service.
func NewValidationService(schemas driven.SchemaStore) *ValidationService {
	return &ValidationService{
		schemas: schemas,
		cache:   make(map[string]*SchemaValidator),
	}
}

// ValidatePayload checks a decoded JSON payload against the schema stored
// under (pkg, name). The error is reserved for infrastructure failures;
// payload violations land in the result.
func (s *ValidationService) ValidatePayload(pkg, name string, payload any) (domain.ValidationResult, error) {
	validator, err := s.validatorFor(pkg, name)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return validator.Validate(payload), nil
}

// ValidateStats checks session statistics against the bundled
// session-stats schema.
func (s *ValidationService) ValidateStats(stats domain.SessionStats) (domain.ValidationResult, error) {
	payload, err := normalisePayload(stats)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return s.ValidatePayload(driven.SchemaPackagePoker, driven.SchemaSessionStats, payload)
}

// Reload drops the compiled validator cache and reloads the schema store,
// so edited schema files take effect on the next validation.
func (s *ValidationService) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]*SchemaValidator)
	s.mu.Unlock()

	if s.schemas != nil {
		s.schemas.Reload()
	}
}

// validatorFor returns a cached compiled validator for the coordinate,
// compiling and caching on first use.
func (s *ValidationService) validatorFor(pkg, name string) (*SchemaValidator, error) {
	if s.schemas == nil {
		return nil, fmt.Errorf("schema store not configured: %w", domain.ErrSchemaNotFound)
	}

	key := pkg + "/" + name

	s.mu.Lock()
	defer s.mu.Unlock()

	if validator, ok := s.cache[key]; ok {
		return validator, nil
	}

	validator, err := NewSchemaValidatorFromStore(s.schemas, pkg, name)
	if err != nil {
		return nil, err
	}
	s.cache[key] = validator
	return validator, nil
}

// normalisePayload converts a value into the decoded-JSON form the
// validator expects by round-tripping it through JSON.
func normalisePayload(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}
