package driving

import "github.com/beeflow/contentgen/internal/core/domain"

// ValidationService validates payloads against named JSON Schemas.
type ValidationService interface {
	// ValidatePayload checks a decoded JSON payload against the schema
	// stored under (pkg, name). The result lists every violation; the
	// error is reserved for infrastructure failures such as a missing
	// or malformed schema document.
	ValidatePayload(pkg, name string, payload any) (domain.ValidationResult, error)

	// ValidateStats checks session statistics against the bundled
	// session-stats schema.
	ValidateStats(stats domain.SessionStats) (domain.ValidationResult, error)
}
