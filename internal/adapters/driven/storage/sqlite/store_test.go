package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beeflow/contentgen/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create a temporary directory for the test database
	tempDir, err := os.MkdirTemp("", "contentgen-test-*")
	require.NoError(t, err)

	// Create store in temp directory
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Return cleanup function
	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// testFeedback builds a feedback record with a distinct creation time.
func testFeedback(id string, createdAt time.Time) domain.Feedback {
	return domain.Feedback{
		ID:        id,
		Model:     "gpt-5",
		Language:  "pl",
		Tone:      domain.ToneNeutral,
		MaxChars:  280,
		Prompt:    "Provide concise poker coaching feedback for " + id,
		Text:      "Solid session overall for " + id + ".",
		CreatedAt: createdAt,
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "contentgen-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "history.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "contentgen-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create store in a nested directory that doesn't exist yet
	nestedDir := filepath.Join(tempDir, "nested", "path", "to", "db")
	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify all directories were created
	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Verify schema_migrations table recorded the applied migrations
	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Greater(t, count, 0, "should have at least one migration")

	// Verify the feedback table exists
	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='feedback'",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "contentgen-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not reapply migrations
	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	var version int
	err = reopened.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

// ==================== Feedback Store Tests ====================

func TestFeedbackStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	feedback := testFeedback("fb-1", now)

	err := store.FeedbackStore().Save(ctx, feedback)
	require.NoError(t, err)

	retrieved, err := store.FeedbackStore().Get(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, feedback.ID, retrieved.ID)
	assert.Equal(t, feedback.Model, retrieved.Model)
	assert.Equal(t, feedback.Language, retrieved.Language)
	assert.Equal(t, feedback.Tone, retrieved.Tone)
	assert.Equal(t, feedback.MaxChars, retrieved.MaxChars)
	assert.Equal(t, feedback.Prompt, retrieved.Prompt)
	assert.Equal(t, feedback.Text, retrieved.Text)
	assert.True(t, feedback.CreatedAt.Equal(retrieved.CreatedAt))
}

func TestFeedbackStore_Save_Upsert(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	feedback := testFeedback("fb-1", now)
	require.NoError(t, store.FeedbackStore().Save(ctx, feedback))

	feedback.Text = "Updated coaching text."
	feedback.Tone = domain.ToneDirect
	require.NoError(t, store.FeedbackStore().Save(ctx, feedback))

	retrieved, err := store.FeedbackStore().Get(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated coaching text.", retrieved.Text)
	assert.Equal(t, domain.ToneDirect, retrieved.Tone)

	// Still a single record
	records, err := store.FeedbackStore().List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFeedbackStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.FeedbackStore().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackStore_List_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback("fb-old", base)))
	require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback("fb-new", base.Add(2*time.Hour))))
	require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback("fb-mid", base.Add(time.Hour))))

	records, err := store.FeedbackStore().List(ctx, 0)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "fb-new", records[0].ID)
	assert.Equal(t, "fb-mid", records[1].ID)
	assert.Equal(t, "fb-old", records[2].ID)
}

func TestFeedbackStore_List_Limit(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		id := "fb-" + string(rune('0'+i))
		require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback(id, base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := store.FeedbackStore().List(ctx, 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "fb-4", records[0].ID)
	assert.Equal(t, "fb-3", records[1].ID)
}

func TestFeedbackStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	records, err := store.FeedbackStore().List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFeedbackStore_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback("fb-1", now)))

	err := store.FeedbackStore().Delete(ctx, "fb-1")
	require.NoError(t, err)

	_, err = store.FeedbackStore().Get(ctx, "fb-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackStore_Delete_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.FeedbackStore().Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackStore_PersistsAcrossReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "contentgen-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)
	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.FeedbackStore().Save(ctx, testFeedback("fb-1", now)))
	require.NoError(t, store.Close())

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	retrieved, err := reopened.FeedbackStore().Get(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", retrieved.Model)
	assert.True(t, now.Equal(retrieved.CreatedAt))
}
