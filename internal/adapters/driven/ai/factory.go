// Package ai provides factory functions for creating completion client
// adapters from stored settings.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beeflow/contentgen/internal/adapters/driven/completion/openai"
	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for provider connectivity validation.
const pingTimeout = 5 * time.Second

// CreateCompletionClient creates a completion client from client settings.
// Returns nil when no API key is configured and none is present in the
// environment; feedback generation then reports the client as unavailable
// while the rest of the application keeps working.
func CreateCompletionClient(settings *domain.ClientSettings) (driven.CompletionClient, error) {
	var config openai.Config
	if settings != nil {
		config.APIKey = settings.APIKey
		config.BaseURL = settings.BaseURL
		config.Timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}

	if config.APIKey == "" && os.Getenv(openai.EnvAPIKey) == "" {
		return nil, nil
	}

	return openai.NewClient(config)
}

// CreateAndValidateCompletionClient creates a completion client and
// validates connectivity. Returns the client if successful, or an error
// with guidance.
func CreateAndValidateCompletionClient(settings *domain.ClientSettings) (driven.CompletionClient, error) {
	client, err := CreateCompletionClient(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'contentgen settings client' to fix",
			domain.ErrClientUnavailable, err)
	}
	if client == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: provider unreachable (%w). Run 'contentgen settings client' to fix",
			domain.ErrClientUnavailable, err)
	}

	return client, nil
}

// ValidateClientConfig validates a client configuration by creating a
// client and pinging the provider. This is intended for validating
// credentials when they are configured.
func ValidateClientConfig(settings *domain.ClientSettings) error {
	client, err := CreateCompletionClient(settings)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return client.Ping(ctx)
}
