package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

func intPtr(v int) *int {
	return &v
}

func TestServer_handleGenerateFeedback(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns generated feedback", func(t *testing.T) {
		mockFeedback := &mockFeedbackService{
			feedback: &domain.Feedback{
				ID:        "fb-1",
				Model:     "gpt-5",
				Language:  "pl",
				Tone:      domain.ToneNeutral,
				MaxChars:  280,
				Prompt:    "prompt text",
				Text:      "Solid session overall.",
				CreatedAt: created,
			},
		}

		ports := &Ports{Feedback: mockFeedback}
		server, err := NewServer(ports)
		require.NoError(t, err)

		hands := 120
		input := GenerateFeedbackInput{
			Stats: domain.SessionStats{HandsPlayed: &hands},
		}
		_, output, err := server.handleGenerateFeedback(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "fb-1", output.ID)
		assert.Equal(t, "Solid session overall.", output.Text)
		assert.Equal(t, "gpt-5", output.Model)
		assert.Equal(t, "pl", output.Language)
		assert.Equal(t, "neutral", output.Tone)
		assert.Equal(t, 280, output.MaxChars)
		assert.Equal(t, "2025-06-01T12:00:00Z", output.CreatedAt)
	})

	t.Run("forwards overrides to the service", func(t *testing.T) {
		mockFeedback := &mockFeedbackService{
			feedback: &domain.Feedback{ID: "fb-2", CreatedAt: created},
		}

		ports := &Ports{Feedback: mockFeedback}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := GenerateFeedbackInput{
			Language:  "en",
			MaxChars:  150,
			Tone:      "direct",
			Model:     "gpt-5-mini",
			TopP:      0.5,
			MaxTokens: 80,
			NoSave:    true,
		}
		_, _, err = server.handleGenerateFeedback(ctx, nil, input)

		require.NoError(t, err)
		request := mockFeedback.lastRequest
		assert.Equal(t, "en", request.Language)
		assert.Equal(t, 150, request.MaxChars)
		assert.Equal(t, domain.ToneDirect, request.Tone)
		assert.Equal(t, "gpt-5-mini", request.Model)
		assert.Equal(t, 0.5, request.Options.TopP)
		assert.Equal(t, intPtr(80), request.Options.MaxTokens)
		assert.True(t, request.NoSave)
	})

	t.Run("applies surface defaults when sampling fields are unset", func(t *testing.T) {
		mockFeedback := &mockFeedbackService{
			feedback: &domain.Feedback{ID: "fb-3", CreatedAt: created},
		}

		ports := &Ports{Feedback: mockFeedback}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerateFeedback(ctx, nil, GenerateFeedbackInput{})

		require.NoError(t, err)
		request := mockFeedback.lastRequest
		assert.Equal(t, domain.DefaultTopP, request.Options.TopP)
		assert.Equal(t, intPtr(domain.DefaultMaxTokens), request.Options.MaxTokens)
	})

	t.Run("rejects invalid tone", func(t *testing.T) {
		ports := &Ports{Feedback: &mockFeedbackService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := GenerateFeedbackInput{Tone: "sarcastic"}
		_, _, err = server.handleGenerateFeedback(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid tone")
	})

	t.Run("returns error on generation failure", func(t *testing.T) {
		mockFeedback := &mockFeedbackService{
			err: errors.New("generation failed"),
		}

		ports := &Ports{Feedback: mockFeedback}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerateFeedback(ctx, nil, GenerateFeedbackInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generation failed")
	})
}

func TestServer_handleValidatePayload(t *testing.T) {
	ctx := context.Background()

	t.Run("returns valid result", func(t *testing.T) {
		mockValidation := &mockValidationService{
			result: domain.ValidResult(),
		}

		ports := &Ports{Feedback: &mockFeedbackService{}, Validation: mockValidation}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ValidatePayloadInput{Payload: map[string]any{"hands_played": float64(100)}}
		_, output, err := server.handleValidatePayload(ctx, nil, input)

		require.NoError(t, err)
		assert.True(t, output.OK)
		assert.Empty(t, output.Errors)
		assert.NotNil(t, output.Errors)
	})

	t.Run("returns violations", func(t *testing.T) {
		mockValidation := &mockValidationService{
			result: domain.InvalidResult([]string{"hands_played: must be >= 0"}),
		}

		ports := &Ports{Feedback: &mockFeedbackService{}, Validation: mockValidation}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleValidatePayload(ctx, nil, ValidatePayloadInput{})

		require.NoError(t, err)
		assert.False(t, output.OK)
		assert.Equal(t, []string{"hands_played: must be >= 0"}, output.Errors)
	})

	t.Run("defaults to the poker session schema", func(t *testing.T) {
		mockValidation := &mockValidationService{result: domain.ValidResult()}

		ports := &Ports{Feedback: &mockFeedbackService{}, Validation: mockValidation}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleValidatePayload(ctx, nil, ValidatePayloadInput{})

		require.NoError(t, err)
		assert.Equal(t, driven.SchemaPackagePoker, mockValidation.lastPkg)
		assert.Equal(t, driven.SchemaSessionStats, mockValidation.lastName)
	})

	t.Run("forwards explicit package and schema", func(t *testing.T) {
		mockValidation := &mockValidationService{result: domain.ValidResult()}

		ports := &Ports{Feedback: &mockFeedbackService{}, Validation: mockValidation}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ValidatePayloadInput{Package: "custom", Schema: "payload.schema.v2.json"}
		_, _, err = server.handleValidatePayload(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "custom", mockValidation.lastPkg)
		assert.Equal(t, "payload.schema.v2.json", mockValidation.lastName)
	})

	t.Run("nil validation service returns error", func(t *testing.T) {
		ports := &Ports{Feedback: &mockFeedbackService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleValidatePayload(ctx, nil, ValidatePayloadInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("returns error on validation failure", func(t *testing.T) {
		mockValidation := &mockValidationService{
			err: errors.New("schema missing"),
		}

		ports := &Ports{Feedback: &mockFeedbackService{}, Validation: mockValidation}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleValidatePayload(ctx, nil, ValidatePayloadInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema missing")
	})
}
