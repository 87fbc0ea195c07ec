package services

import (
	"context"
	"os"
	"strings"
	"unicode"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// Environment variables consulted for model defaults.
const (
	// EnvFeedbackModel selects the poker feedback model when no explicit
	// model is configured.
	EnvFeedbackModel = "POKER_FEEDBACK_MODEL"

	// EnvContentModel selects the model for generators that carry no
	// override of their own.
	EnvContentModel = "STORY_GENERATION_MODEL"
)

// feedbackSystemPrompt pins the coach persona and the plain-text contract.
const feedbackSystemPrompt = "You are an expert poker coach. Follow the instructions strictly. " +
	"Answer with plain text only (no emojis, no markdown)."

// BuilderFactory produces a fresh prompt builder for one request's stats.
type BuilderFactory func(stats domain.SessionStats) PromptBuilder

// BaseGenerator carries the collaborators shared by all content generators:
// a completion client, an optional schema validator and a model name.
// The validator is held for generator variants that check their payloads;
// the feedback variant does not.
type BaseGenerator struct {
	client    driven.CompletionClient
	validator *SchemaValidator
	model     string
}

// NewBaseGenerator wires the shared collaborators. An empty model resolves
// from the STORY_GENERATION_MODEL environment variable, then DefaultModel.
func NewBaseGenerator(client driven.CompletionClient, validator *SchemaValidator, model string) BaseGenerator {
	if model == "" {
		model = envOr(EnvContentModel, domain.DefaultModel)
	}
	return BaseGenerator{
		client:    client,
		validator: validator,
		model:     model,
	}
}

// ModelName returns the model this generator requests completions from.
func (g *BaseGenerator) ModelName() string {
	return g.model
}

// FeedbackGenerator generates concise poker feedback grounded in session
// statistics. A builder factory prepares a per-request prompt; the output
// is bounded to the builder's character budget so it stays suitable for
// mobile and web UIs.
type FeedbackGenerator struct {
	BaseGenerator
	builderFactory BuilderFactory
}

// NewFeedbackGenerator creates a feedback generator.
// An empty model resolves from the POKER_FEEDBACK_MODEL environment
// variable, then DefaultModel. A nil factory produces default-spec
// feedback builders.
func NewFeedbackGenerator(client driven.CompletionClient, model string, factory BuilderFactory) *FeedbackGenerator {
	if model == "" {
		model = envOr(EnvFeedbackModel, domain.DefaultModel)
	}
	if factory == nil {
		factory = func(stats domain.SessionStats) PromptBuilder {
			return NewFeedbackPromptBuilder(stats, domain.DefaultPromptSpec())
		}
	}
	return &FeedbackGenerator{
		BaseGenerator:  NewBaseGenerator(client, nil, model),
		builderFactory: factory,
	}
}

// Generate returns concise feedback for the given session statistics.
//
// Exactly two messages are sent: the system persona and the built prompt.
// A zero TopP becomes DefaultTopP; a nil MaxTokens is omitted from the
// provider request entirely. Completion failures propagate to the caller
// unchanged. The response is trimmed and bounded to the builder's budget.
func (g *FeedbackGenerator) Generate(ctx context.Context, stats domain.SessionStats, opts domain.GenerateOptions) (string, error) {
	if g.client == nil {
		return "", domain.ErrClientUnavailable
	}

	builder := g.builderFactory(stats)
	prompt := builder.Build()

	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: feedbackSystemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}

	topP := opts.TopP
	if topP == 0 {
		topP = domain.DefaultTopP
	}

	content, err := g.client.Complete(ctx, driven.CompletionRequest{
		Model:     g.model,
		Messages:  messages,
		TopP:      topP,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	return boundText(content, builder.MaxChars()), nil
}

// boundText trims the text and enforces the character budget. Truncation
// counts characters rather than bytes, then drops any trailing whitespace
// it exposed. A non-positive budget falls back to DefaultMaxChars.
func boundText(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = domain.DefaultMaxChars
	}
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) <= maxChars {
		return trimmed
	}
	return strings.TrimRightFunc(string(runes[:maxChars]), unicode.IsSpace)
}

// envOr returns the environment value for key, or fallback when unset
// or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
