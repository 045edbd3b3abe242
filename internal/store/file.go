package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// FileStore persists the map as a JSON object in a single local file.
// The file is read once when the store is opened; Flush writes the full
// snapshot to a temporary file and renames it over the target, so a crash
// mid-flush never leaves a truncated store behind.
type FileStore struct {
	snapshot
	path string
}

// OpenFileStore opens (or initializes) a FileStore at path. A missing file
// is treated as an empty store; it is created on the first Flush.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		snapshot: newSnapshot(),
		path:     path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, mapfs.ErrStoreCorrupt)
	}
	s.seed(entries)
	return s, nil
}

// Path returns the file the store persists to.
func (s *FileStore) Path() string {
	return s.path
}

// Flush writes the full entry set atomically: marshal, write to a uniquely
// named temporary file in the same directory, then rename into place.
func (s *FileStore) Flush() error {
	data, err := json.MarshalIndent(s.entriesCopy(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w: %v", mapfs.ErrFlushFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store file: %w: %v", mapfs.ErrFlushFailed, err)
	}

	s.clearChanges()
	return nil
}
