package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// Ensure FeedbackStore implements the interface.
var _ driven.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore is an in-memory implementation of driven.FeedbackStore for testing.
type FeedbackStore struct {
	mu      sync.RWMutex
	records map[string]domain.Feedback
}

// NewFeedbackStore creates a new in-memory feedback store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{
		records: make(map[string]domain.Feedback),
	}
}

// Save stores a feedback record, replacing any existing record with the same ID.
func (s *FeedbackStore) Save(_ context.Context, feedback domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[feedback.ID] = feedback
	return nil
}

// Get retrieves a record by ID.
func (s *FeedbackStore) Get(_ context.Context, id string) (*domain.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first. A non-positive limit returns all records.
func (s *FeedbackStore) List(_ context.Context, limit int) ([]domain.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.Feedback, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Delete removes a record.
func (s *FeedbackStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
