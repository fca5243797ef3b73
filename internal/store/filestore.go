package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"userdir/internal/core"
)

// FileStore persists the directory as a JSON array in a single file. Save
// writes a temp file in the same directory and renames it over the target,
// so readers never observe a half-written file.
//
// FileStore itself is not safe for concurrent mutation; the service
// serializes its load/save pairs.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path. The file and its
// directory are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file's location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the full collection. A missing file is an empty directory, not
// an error.
func (f *FileStore) Load(ctx context.Context) ([]core.User, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var users []core.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return users, nil
}

// Save replaces the collection. The JSON is indented so the file stays
// inspectable by hand.
func (f *FileStore) Save(ctx context.Context, users []core.User) error {
	if users == nil {
		users = []core.User{}
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}

// NewID returns a fresh record identifier.
func (f *FileStore) NewID() string {
	return newID()
}
