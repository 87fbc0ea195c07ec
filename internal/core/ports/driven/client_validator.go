package driven

import "github.com/beeflow/contentgen/internal/core/domain"

// ClientConfigValidator validates completion provider configurations.
// Implementations verify a configuration works by testing connectivity
// to the underlying service.
type ClientConfigValidator interface {
	// ValidateClient validates a client configuration by pinging the provider.
	// Returns nil if the configuration is valid or not configured.
	ValidateClient(config *domain.ClientSettings) error
}
