package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
	"github.com/beeflow/contentgen/internal/core/ports/driving"
)

// Ensure FeedbackService implements the interface.
var _ driving.FeedbackService = (*FeedbackService)(nil)

// FeedbackService generates poker coaching feedback and maintains the
// generation history.
type FeedbackService struct {
	client   driven.CompletionClient
	registry *GeneratorRegistry
	settings driving.SettingsService
	history  driven.FeedbackStore
}

// NewFeedbackService creates a feedback service. A nil registry means the
// process-wide one; settings and history are optional and degrade to
// built-in defaults and no persistence respectively.
func NewFeedbackService(
	client driven.CompletionClient,
	registry *GeneratorRegistry,
	settings driving.SettingsService,
	history driven.FeedbackStore,
) *FeedbackService {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &FeedbackService{
		client:   client,
		registry: registry,
		settings: settings,
		history:  history,
	}
}

// Generate produces feedback for one session.
//
// Request fields left unset resolve from stored settings, then from the
// standard defaults. Every request reaches the model; history is an audit
// trail, never a response cache.
func (s *FeedbackService) Generate(ctx context.Context, req domain.FeedbackRequest) (*domain.Feedback, error) {
	if s.client == nil {
		return nil, domain.ErrClientUnavailable
	}

	settings := s.currentSettings()
	spec := resolveSpec(req, settings.Generation)
	model := resolveModel(req.Model, settings.Generation.Model)

	factory := func(stats domain.SessionStats) PromptBuilder {
		return NewFeedbackPromptBuilder(stats, spec)
	}
	construct := Registered(s.registry, func() ContentGenerator {
		return NewFeedbackGenerator(s.client, model, factory)
	})
	generator := construct().(*FeedbackGenerator)

	text, err := generator.Generate(ctx, req.Stats, req.Options)
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	feedback := domain.Feedback{
		ID:        uuid.NewString(),
		Model:     generator.ModelName(),
		Language:  spec.Language,
		Tone:      spec.Tone,
		MaxChars:  spec.MaxChars,
		Prompt:    NewFeedbackPromptBuilder(req.Stats, spec).Build(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if s.history != nil && settings.History.Enabled && !req.NoSave {
		if err := s.history.Save(ctx, feedback); err != nil {
			return nil, fmt.Errorf("saving feedback: %w", err)
		}
	}

	return &feedback, nil
}

// History returns recent feedback records, newest first.
func (s *FeedbackService) History(ctx context.Context, limit int) ([]domain.Feedback, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	records, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	return records, nil
}

// GetFeedback retrieves one feedback record by ID.
func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (*domain.Feedback, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	record, err := s.history.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading feedback %s: %w", id, err)
	}
	return record, nil
}

// DeleteFeedback removes one feedback record.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if s.history == nil {
		return domain.ErrHistoryDisabled
	}
	if err := s.history.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting feedback %s: %w", id, err)
	}
	return nil
}

// AvailableModels returns the model names with a registered generator.
func (s *FeedbackService) AvailableModels() []string {
	return s.registry.AvailableModels()
}

// currentSettings loads stored settings, falling back to the defaults
// when no settings service is wired or loading fails.
func (s *FeedbackService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings()
	}
	return *settings
}

// resolveSpec fills unset request constraints from the stored generation
// defaults. The stored defaults themselves always carry valid values.
func resolveSpec(req domain.FeedbackRequest, defaults domain.GenerationSettings) domain.PromptSpec {
	spec := domain.PromptSpec{
		Language: defaults.Language,
		MaxChars: defaults.MaxChars,
		Tone:     defaults.Tone,
	}
	if req.Language != "" {
		spec.Language = req.Language
	}
	if req.MaxChars > 0 {
		spec.MaxChars = req.MaxChars
	}
	if req.Tone != "" {
		spec.Tone = req.Tone
	}
	return spec
}

// resolveModel picks the request override, then the configured model,
// then the environment chain for feedback generation.
func resolveModel(requested, configured string) string {
	if requested != "" {
		return requested
	}
	if configured != "" {
		return configured
	}
	return envOr(EnvFeedbackModel, domain.DefaultModel)
}
