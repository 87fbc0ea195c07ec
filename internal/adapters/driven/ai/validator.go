package ai

import (
	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.ClientConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates completion provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new client config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateClient validates a client configuration by pinging the provider.
func (v *ConfigValidator) ValidateClient(config *domain.ClientSettings) error {
	return ValidateClientConfig(config)
}
