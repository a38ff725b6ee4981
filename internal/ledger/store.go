package ledger

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists ledger snapshots as a JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save writes the snapshot, creating parent directories as needed.
func (s *FileStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

// Load reads the snapshot. A missing file is not an error; it reads as
// empty state.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
