package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StoredDocument is the persisted form of a loaded document: raw page
// text only, in page order. The entry index is never persisted; it is
// rebuilt wholesale every time the document is loaded.
type StoredDocument struct {
	ID      string    `json:"id"`
	Pages   []string  `json:"pages"`
	SavedAt time.Time `json:"saved_at"`
}

// DocumentStorage defines the interface for saving extracted page text
type DocumentStorage interface {
	Save(doc *StoredDocument) error
	Get(id string) (*StoredDocument, error)
	Close() error
}

// FileStorage implements DocumentStorage using the local file system
type FileStorage struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStorage creates a new file-based storage
func NewFileStorage(baseDir string) (*FileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{
		baseDir: baseDir,
	}, nil
}

// Save writes the document's page text to a JSON file
func (fs *FileStorage) Save(doc *StoredDocument) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := filepath.Join(fs.baseDir, safeFilename(doc.ID))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Get retrieves a stored document from disk
func (fs *FileStorage) Get(id string) (*StoredDocument, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path := filepath.Join(fs.baseDir, safeFilename(id))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc StoredDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return &doc, nil
}

// Close is a no-op for file storage
func (fs *FileStorage) Close() error {
	return nil
}

// safeFilename converts a document id to a safe filename
func safeFilename(id string) string {
	safe := ""
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			safe += string(r)
		} else {
			safe += "_"
		}
	}
	// Limit length
	if len(safe) > 100 {
		safe = safe[:100]
	}
	return safe + ".json"
}
