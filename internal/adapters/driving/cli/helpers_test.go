package cli

import (
	"context"
	"fmt"

	"github.com/beeflow/contentgen/internal/adapters/driven/storage/memory"
	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/core/services"
)

// stubCompletionText is the canned response used by command tests.
const stubCompletionText = "Solid session overall. Tighten up your preflop ranges."

// stubClient is the fixture client installed by setupTestServices, kept
// for request assertions.
var stubClient *stubCompletionClient

// stubCompletionClient returns a canned completion for command tests.
type stubCompletionClient struct {
	text string
	err  error

	lastRequest driven.CompletionRequest
}

func (c *stubCompletionClient) Complete(_ context.Context, req driven.CompletionRequest) (string, error) {
	c.lastRequest = req
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *stubCompletionClient) Ping(_ context.Context) error { return c.err }

func (c *stubCompletionClient) Close() error { return nil }

// testSchemaStore serves the session stats schema from memory.
type testSchemaStore struct{}

func (s *testSchemaStore) Load(pkg, name string) (map[string]any, error) {
	if pkg != driven.SchemaPackagePoker || name != driven.SchemaSessionStats {
		return nil, fmt.Errorf("schema %s/%s: %w", pkg, name, domain.ErrSchemaNotFound)
	}
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"hands_played":      map[string]any{"type": "integer", "minimum": 0},
			"vpip":              map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"pfr":               map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"three_bet":         map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"aggression_factor": map[string]any{"type": "number", "minimum": 0},
			"showdown_win_rate": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"net_profit_bb":     map[string]any{"type": "integer"},
			"session_minutes":   map[string]any{"type": "integer", "minimum": 0},
			"strengths":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"leaks":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"additionalProperties": false,
	}, nil
}

func (s *testSchemaStore) Reload() {}

// setupTestServices wires the commands to in-memory services backed by a
// canned completion client. Returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	prevFeedback := feedbackService
	prevValidation := validationService
	prevSettings := settingsService
	prevWatch := schemaWatch

	settings := services.NewSettingsService(memory.NewConfigStore(), nil)
	stubClient = &stubCompletionClient{text: stubCompletionText}

	feedbackService = services.NewFeedbackService(
		stubClient,
		services.NewGeneratorRegistry(),
		settings,
		memory.NewFeedbackStore(),
	)
	validationService = services.NewValidationService(&testSchemaStore{})
	settingsService = settings
	schemaWatch = nil

	return func() {
		feedbackService = prevFeedback
		validationService = prevValidation
		settingsService = prevSettings
		schemaWatch = prevWatch
	}
}
