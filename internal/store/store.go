// Package store persists palettes as JSON documents on the local
// filesystem. Documents are opaque serialised snapshots; nothing in the
// engine depends on them.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/hueforge/hueforge/internal/colour"
)

// Document is a saved palette with its accessibility score.
type Document struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	CreatedAt time.Time                 `json:"createdAt"`
	Colors    []colour.Color            `json:"colors"`
	Score     colour.AccessibilityScore `json:"score"`
}

// Store reads and writes palette documents under a data directory.
type Store struct {
	dir    string
	logger hclog.Logger
}

// New creates a Store rooted at dir. The directory is created on first
// save, not here. A nil logger disables logging.
func New(dir string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{dir: dir, logger: logger}
}

// Save persists the palette under a fresh uuid and returns the document.
func (s *Store) Save(name string, colors []colour.Color) (Document, error) {
	if strings.TrimSpace(name) == "" {
		return Document{}, fmt.Errorf("palette name is required")
	}
	if len(colors) == 0 {
		return Document{}, fmt.Errorf("cannot save an empty palette")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Document{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	doc := Document{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Colors:    colors,
		Score:     colour.Score(colors),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Document{}, fmt.Errorf("failed to serialise palette: %w", err)
	}

	path := s.path(doc.ID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Document{}, fmt.Errorf("failed to write palette document: %w", err)
	}

	s.logger.Debug("palette saved", "id", doc.ID, "name", name, "colours", len(colors))
	return doc, nil
}

// Load reads a single document by id.
func (s *Store) Load(id string) (Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Document{}, fmt.Errorf("invalid palette id %q: %w", id, err)
	}

	data, err := os.ReadFile(s.path(id)) // #nosec G304 - Path derived from a validated uuid under the data dir
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("palette not found: %s", id)
		}
		return Document{}, fmt.Errorf("failed to read palette document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse palette document %s: %w", id, err)
	}
	return doc, nil
}

// List returns every stored document, newest first. A missing data
// directory is an empty store, not an error.
func (s *Store) List() ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		doc, err := s.Load(id)
		if err != nil {
			// Skip files that are not palette documents.
			s.logger.Warn("skipping unreadable document", "file", entry.Name(), "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

// Delete removes a stored document by id.
func (s *Store) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid palette id %q: %w", id, err)
	}
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("palette not found: %s", id)
		}
		return fmt.Errorf("failed to delete palette document: %w", err)
	}
	s.logger.Debug("palette deleted", "id", id)
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
