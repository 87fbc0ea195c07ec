package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// Ensure FeedbackPromptBuilder implements the interface.
var _ PromptBuilder = (*FeedbackPromptBuilder)(nil)

// PromptBuilder builds one complete user prompt for a generation call.
type PromptBuilder interface {
	// Build returns the full prompt text. Building is deterministic;
	// the same inputs always produce the same prompt.
	Build() string

	// MaxChars returns the response character budget the prompt asks for.
	MaxChars() int
}

// FeedbackPromptBuilder builds a compact, deterministic prompt instructing
// a chat model to produce short coach-style feedback from session statistics.
// The requested output is plain text suitable for mobile and web surfaces.
type FeedbackPromptBuilder struct {
	stats domain.SessionStats
	spec  domain.PromptSpec
}

// NewFeedbackPromptBuilder creates a builder for one session.
// Zero-valued spec fields fall back to the standard defaults.
func NewFeedbackPromptBuilder(stats domain.SessionStats, spec domain.PromptSpec) *FeedbackPromptBuilder {
	if spec.Language == "" {
		spec.Language = domain.DefaultLanguage
	}
	if spec.MaxChars <= 0 {
		spec.MaxChars = domain.DefaultMaxChars
	}
	if spec.Tone == "" {
		spec.Tone = domain.ToneNeutral
	}
	return &FeedbackPromptBuilder{stats: stats, spec: spec}
}

// Build returns the complete user prompt.
//
// The prompt contains the audience and constraints (language, length,
// no formatting, 2-3 sentences), a tone hint, and the session statistics
// as compact key:value pairs to ground the response.
func (b *FeedbackPromptBuilder) Build() string {
	header := fmt.Sprintf(
		"Provide concise poker coaching feedback based on the session stats below. "+
			"Respond in %s. Use 2-3 sentences, max %d characters, plain text only "+
			"(no emojis, no markdown, no lists). Focus on 1-2 strengths and 1-2 clear improvements.",
		b.spec.Language, b.spec.MaxChars,
	)
	return header + "\nTone:" + b.spec.Tone.Hint() + "\nStats:" + b.formatStats()
}

// MaxChars returns the response character budget.
func (b *FeedbackPromptBuilder) MaxChars() int {
	return b.spec.MaxChars
}

// Spec returns the resolved prompt constraints.
func (b *FeedbackPromptBuilder) Spec() domain.PromptSpec {
	return b.spec
}

// formatStats returns a single-line compact representation of the stats.
//
// Only present fields are included, in a fixed order to keep prompts
// stable. Integer fields render plain; rates render to one decimal.
// Lists are joined with "; " with blank items dropped.
func (b *FeedbackPromptBuilder) formatStats() string {
	var parts []string

	if v := b.stats.HandsPlayed; v != nil {
		parts = append(parts, "hands:"+strconv.Itoa(*v))
	}
	if v := b.stats.VPIP; v != nil {
		parts = append(parts, fmt.Sprintf("vpip%%:%.1f", *v))
	}
	if v := b.stats.PFR; v != nil {
		parts = append(parts, fmt.Sprintf("pfr%%:%.1f", *v))
	}
	if v := b.stats.ThreeBet; v != nil {
		parts = append(parts, fmt.Sprintf("3bet%%:%.1f", *v))
	}
	if v := b.stats.AggressionFactor; v != nil {
		parts = append(parts, fmt.Sprintf("AF:%.1f", *v))
	}
	if v := b.stats.ShowdownWinRate; v != nil {
		parts = append(parts, fmt.Sprintf("sd_win%%:%.1f", *v))
	}
	if v := b.stats.NetProfitBB; v != nil {
		parts = append(parts, "profit_bb:"+strconv.Itoa(*v))
	}
	if v := b.stats.SessionMinutes; v != nil {
		parts = append(parts, "mins:"+strconv.Itoa(*v))
	}

	if joined := joinItems(b.stats.Strengths); joined != "" {
		parts = append(parts, "strengths:"+joined)
	}
	if joined := joinItems(b.stats.Leaks); joined != "" {
		parts = append(parts, "leaks:"+joined)
	}

	return strings.Join(parts, " ")
}

// joinItems joins short strings with "; ", trimming whitespace and
// dropping blank entries. Returns "" when nothing survives.
func joinItems(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, "; ")
}
