package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// GenerateFeedbackInput is the input schema for the generate_feedback tool.
type GenerateFeedbackInput struct {
	Stats     domain.SessionStats `json:"stats" jsonschema:"poker session statistics to give feedback on"`
	Language  string              `json:"language,omitempty" jsonschema:"response language code (default from settings)"`
	MaxChars  int                 `json:"max_chars,omitempty" jsonschema:"response character budget (default from settings)"`
	Tone      string              `json:"tone,omitempty" jsonschema:"coaching tone: neutral, friendly or direct (default from settings)"`
	Model     string              `json:"model,omitempty" jsonschema:"completion model override"`
	TopP      float64             `json:"top_p,omitempty" jsonschema:"nucleus sampling parameter (default 0.9)"`
	MaxTokens int                 `json:"max_tokens,omitempty" jsonschema:"completion token cap (default 120)"`
	NoSave    bool                `json:"no_save,omitempty" jsonschema:"skip saving the response to history"`
}

// GenerateFeedbackOutput is the output schema for the generate_feedback tool.
type GenerateFeedbackOutput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Model     string `json:"model"`
	Language  string `json:"language"`
	Tone      string `json:"tone"`
	MaxChars  int    `json:"max_chars"`
	CreatedAt string `json:"created_at"`
}

// ValidatePayloadInput is the input schema for the validate_payload tool.
type ValidatePayloadInput struct {
	Payload map[string]any `json:"payload" jsonschema:"the JSON payload to validate"`
	Package string         `json:"package,omitempty" jsonschema:"schema package (default poker)"`
	Schema  string         `json:"schema,omitempty" jsonschema:"schema file name (default session-stats.schema.v1.json)"`
}

// ValidatePayloadOutput is the output schema for the validate_payload tool.
type ValidatePayloadOutput struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_feedback",
		Description: "Generate short poker coaching feedback from session statistics",
	}, s.handleGenerateFeedback)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_payload",
		Description: "Validate a JSON payload against a stored schema",
	}, s.handleValidatePayload)
}

// handleGenerateFeedback handles the generate_feedback tool invocation.
func (s *Server) handleGenerateFeedback(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateFeedbackInput,
) (*mcp.CallToolResult, GenerateFeedbackOutput, error) {
	request := domain.FeedbackRequest{
		Stats:    input.Stats,
		Language: input.Language,
		MaxChars: input.MaxChars,
		Model:    input.Model,
		Options:  generateOptions(input),
		NoSave:   input.NoSave,
	}

	if input.Tone != "" {
		tone := domain.Tone(input.Tone)
		if !tone.IsValid() {
			return nil, GenerateFeedbackOutput{}, fmt.Errorf("invalid tone %q", input.Tone)
		}
		request.Tone = tone
	}

	feedback, err := s.ports.Feedback.Generate(ctx, request)
	if err != nil {
		return nil, GenerateFeedbackOutput{}, err
	}

	output := GenerateFeedbackOutput{
		ID:        feedback.ID,
		Text:      feedback.Text,
		Model:     feedback.Model,
		Language:  feedback.Language,
		Tone:      feedback.Tone.String(),
		MaxChars:  feedback.MaxChars,
		CreatedAt: feedback.CreatedAt.Format(time.RFC3339),
	}

	return nil, output, nil
}

// generateOptions maps tool input onto sampling options, applying the
// standard surface defaults when fields are unset.
func generateOptions(input GenerateFeedbackInput) domain.GenerateOptions {
	options := domain.DefaultGenerateOptions()
	if input.TopP > 0 {
		options.TopP = input.TopP
	}
	if input.MaxTokens > 0 {
		maxTokens := input.MaxTokens
		options.MaxTokens = &maxTokens
	}
	return options
}

// handleValidatePayload handles the validate_payload tool invocation.
func (s *Server) handleValidatePayload(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidatePayloadInput,
) (*mcp.CallToolResult, ValidatePayloadOutput, error) {
	if s.ports.Validation == nil {
		return nil, ValidatePayloadOutput{}, errors.New("validation service is not available")
	}

	pkg := input.Package
	if pkg == "" {
		pkg = driven.SchemaPackagePoker
	}
	name := input.Schema
	if name == "" {
		name = driven.SchemaSessionStats
	}

	result, err := s.ports.Validation.ValidatePayload(pkg, name, input.Payload)
	if err != nil {
		return nil, ValidatePayloadOutput{}, err
	}

	output := ValidatePayloadOutput{OK: result.OK, Errors: result.Errors}
	if output.Errors == nil {
		output.Errors = []string{}
	}

	return nil, output, nil
}
