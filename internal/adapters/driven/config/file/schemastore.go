package file

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/beeflow/contentgen/internal/core/domain"
	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

// Ensure SchemaStore implements the interface.
var _ driven.SchemaStore = (*SchemaStore)(nil)

// defaultSchemas contains the embedded schema documents.
// These are used when user files don't exist and as the initial content for new files.
//
//go:embed schemas
var defaultSchemas embed.FS

// schemaDebounce coalesces bursts of file events from editors that
// write in several steps.
const schemaDebounce = 200 * time.Millisecond

// SchemaStore loads JSON Schema documents from user-editable files on disk.
// Schemas are grouped by package in subdirectories of a configurable root,
// with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. This makes testing easier and avoids
// unexpected I/O.
type SchemaStore struct {
	mu        sync.RWMutex
	schemaDir string
	cache     map[string]map[string]any
	initOnce  sync.Once
	initErr   error
}

// NewSchemaStore creates a new file-based schema store.
// If schemaDir is empty, defaults to ~/.contentgen/schemas/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewSchemaStore(schemaDir string) (*SchemaStore, error) {
	if schemaDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		schemaDir = filepath.Join(home, ".contentgen", "schemas")
	}

	return &SchemaStore{
		schemaDir: schemaDir,
		cache:     make(map[string]map[string]any),
	}, nil
}

// Load returns the schema document for the given package and name.
// On first call, initialises the schema directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to the embedded default if the file doesn't exist, and returns
// domain.ErrSchemaNotFound when neither exists.
func (s *SchemaStore) Load(pkg, name string) (map[string]any, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if schema, ok := s.embeddedSchema(pkg, name); ok {
			return schema, nil
		}
		return nil, fmt.Errorf("schema store init failed: %w", s.initErr)
	}

	key := pkg + "/" + name

	// Check cache first (read lock)
	s.mu.RLock()
	if schema, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return schema, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	schema, err := s.loadFromFile(pkg, name)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		// Fall back to embedded default
		embedded, ok := s.embeddedSchema(pkg, name)
		if !ok {
			return nil, fmt.Errorf("schema %s/%s: %w", pkg, name, domain.ErrSchemaNotFound)
		}
		schema = embedded
	default:
		// Present but malformed documents are errors, not misses.
		return nil, fmt.Errorf("load schema %s/%s: %w", pkg, name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		// Another goroutine loaded it first, use their value
		schema = cached
	} else {
		s.cache[key] = schema
	}
	s.mu.Unlock()

	return schema, nil
}

// Reload clears the schema cache, forcing fresh loads from disk.
func (s *SchemaStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]map[string]any)
	s.mu.Unlock()
}

// Dir returns the schema directory path.
func (s *SchemaStore) Dir() string {
	return s.schemaDir
}

// Watch blocks watching the schema directory until ctx is done.
// When a schema document is created, modified, renamed or removed, the
// cache is cleared and onChange (if non-nil) is invoked. Bursts of events
// are coalesced before a reload is triggered.
func (s *SchemaStore) Watch(ctx context.Context, onChange func()) error {
	// The directory must exist before it can be watched.
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return fmt.Errorf("schema store init failed: %w", s.initErr)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create schema watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the schema root and each package directory.
	if err := watcher.Add(s.schemaDir); err != nil {
		return fmt.Errorf("watch %s: %w", s.schemaDir, err)
	}
	entries, err := os.ReadDir(s.schemaDir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := watcher.Add(filepath.Join(s.schemaDir, entry.Name())); err != nil {
			return fmt.Errorf("watch package %s: %w", entry.Name(), err)
		}
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					// New package directory: watch it too
					_ = watcher.Add(event.Name)
					continue
				}
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(schemaDebounce)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

		case <-pending:
			pending = nil
			s.Reload()
			if onChange != nil {
				onChange()
			}
		}
	}
}

// initialise creates the schema directory and default files.
// Called once via sync.Once on first Load().
func (s *SchemaStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.schemaDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create schema directory: %w", err)
		return
	}

	// Create default schema files (only if they don't exist)
	err := fs.WalkDir(defaultSchemas, "schemas", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "schemas/")
		target := filepath.Join(s.schemaDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0700); err != nil {
			return err
		}
		if _, err := os.Stat(target); os.IsNotExist(err) {
			data, err := defaultSchemas.ReadFile(p)
			if err != nil {
				return err
			}
			if err := os.WriteFile(target, data, 0600); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.initErr = fmt.Errorf("create default schemas: %w", err)
		return
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads and decodes a schema document from disk.
func (s *SchemaStore) loadFromFile(pkg, name string) (map[string]any, error) {
	p := filepath.Join(s.schemaDir, pkg, name)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	return schema, nil
}

// embeddedSchema decodes a schema document from the embedded defaults.
func (s *SchemaStore) embeddedSchema(pkg, name string) (map[string]any, bool) {
	data, err := defaultSchemas.ReadFile(path.Join("schemas", pkg, name))
	if err != nil {
		return nil, false
	}

	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, false
	}
	return schema, true
}

// createReadme writes a README file explaining the schemas directory.
func (s *SchemaStore) createReadme() error {
	p := filepath.Join(s.schemaDir, "README.md")
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Contentgen Schemas

This directory contains the JSON Schema documents used to validate
payloads before generation.

## Layout

Schemas are grouped by package, one subdirectory per package:

- ` + "`poker/session-stats.schema.v1.json`" + ` - validates poker session statistics

## Customisation

Edit any file to adjust validation rules, or add new documents for
additional payload types. Changes take effect on the next command, or
immediately when a running server watches this directory.

Documents must be valid JSON Schema (draft-07). A deleted document
falls back to the embedded default on the next load.
`
	return os.WriteFile(p, []byte(content), 0600)
}
