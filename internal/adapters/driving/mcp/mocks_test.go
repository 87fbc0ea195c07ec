package mcp

import (
	"context"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// mockFeedbackService is a mock implementation of driving.FeedbackService.
type mockFeedbackService struct {
	feedback *domain.Feedback
	records  []domain.Feedback
	models   []string
	err      error

	lastRequest domain.FeedbackRequest
}

func (m *mockFeedbackService) Generate(
	_ context.Context,
	req domain.FeedbackRequest,
) (*domain.Feedback, error) {
	m.lastRequest = req
	return m.feedback, m.err
}

func (m *mockFeedbackService) History(_ context.Context, _ int) ([]domain.Feedback, error) {
	return m.records, m.err
}

func (m *mockFeedbackService) GetFeedback(_ context.Context, _ string) (*domain.Feedback, error) {
	return m.feedback, m.err
}

func (m *mockFeedbackService) DeleteFeedback(_ context.Context, _ string) error {
	return m.err
}

func (m *mockFeedbackService) AvailableModels() []string {
	return m.models
}

// mockValidationService is a mock implementation of driving.ValidationService.
type mockValidationService struct {
	result domain.ValidationResult
	err    error

	lastPkg  string
	lastName string
}

func (m *mockValidationService) ValidatePayload(
	pkg, name string,
	_ any,
) (domain.ValidationResult, error) {
	m.lastPkg = pkg
	m.lastName = name
	return m.result, m.err
}

func (m *mockValidationService) ValidateStats(_ domain.SessionStats) (domain.ValidationResult, error) {
	return m.result, m.err
}
