package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// feedbackStore implements driven.FeedbackStore.
type feedbackStore struct {
	store *Store
}

var _ driven.FeedbackStore = (*feedbackStore)(nil)

// Save stores or updates a feedback record.
func (s *feedbackStore) Save(ctx context.Context, feedback domain.Feedback) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO feedback (id, model, language, tone, max_chars, prompt, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			model = excluded.model,
			language = excluded.language,
			tone = excluded.tone,
			max_chars = excluded.max_chars,
			prompt = excluded.prompt,
			text = excluded.text,
			created_at = excluded.created_at
	`, feedback.ID, feedback.Model, feedback.Language, string(feedback.Tone),
		feedback.MaxChars, feedback.Prompt, feedback.Text, feedback.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}

// Get retrieves a feedback record by ID.
func (s *feedbackStore) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, model, language, tone, max_chars, prompt, text, created_at
		FROM feedback WHERE id = ?
	`, id)

	return scanFeedback(row)
}

// List returns feedback records newest first, at most limit entries.
// A non-positive limit returns all records.
func (s *feedbackStore) List(ctx context.Context, limit int) ([]domain.Feedback, error) {
	query := `
		SELECT id, model, language, tone, max_chars, prompt, text, created_at
		FROM feedback ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var records []domain.Feedback //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanFeedbackRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}

	return records, nil
}

// Delete removes a feedback record.
func (s *feedbackStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM feedback WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting feedback: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanFeedback scans a single feedback row.
func scanFeedback(row *sql.Row) (*domain.Feedback, error) {
	var feedback domain.Feedback
	var tone string

	if err := row.Scan(&feedback.ID, &feedback.Model, &feedback.Language, &tone,
		&feedback.MaxChars, &feedback.Prompt, &feedback.Text, &feedback.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}

	feedback.Tone = domain.Tone(tone)
	return &feedback, nil
}

// scanFeedbackRows scans a feedback record from *sql.Rows.
func scanFeedbackRows(rows *sql.Rows) (*domain.Feedback, error) {
	var feedback domain.Feedback
	var tone string

	if err := rows.Scan(&feedback.ID, &feedback.Model, &feedback.Language, &tone,
		&feedback.MaxChars, &feedback.Prompt, &feedback.Text, &feedback.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}

	feedback.Tone = domain.Tone(tone)
	return &feedback, nil
}
