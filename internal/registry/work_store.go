package registry

import (
	"os"
	"path/filepath"

	rerrors "github.com/devtools/npm-registry/internal/errors"
)

// WorkFileName is the file under ~/.config that holds the work registry.
const WorkFileName = "npm-registry.txt"

// WorkStore manages ~/.config/npm-registry.txt. The file holds exactly one
// registry URL as its whole content, stored and returned byte-for-byte.
type WorkStore struct {
	path string
}

// NewWorkStore creates a store for the given home directory.
func NewWorkStore(home string) *WorkStore {
	return &WorkStore{
		path: filepath.Join(home, ".config", WorkFileName),
	}
}

// Path returns the store's file path
func (s *WorkStore) Path() string {
	return s.path
}

// Exists reports whether the work registry file is present. Any stat
// failure (missing file, ~/.config not a directory, no permission) counts
// as absent; a later Save surfaces the underlying problem.
func (s *WorkStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns the saved registry. found is false when the file does not
// exist. Once the file is known to exist any read failure is an error, even
// if it was removed in the meantime.
func (s *WorkStore) Load() (url string, found bool, err error) {
	if !s.Exists() {
		return "", false, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false, rerrors.IOReadError(s.path, err)
	}

	return string(data), true, nil
}

// Save writes url as the entire file content, creating ~/.config if needed.
func (s *WorkStore) Save(url string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return rerrors.IOWriteError(s.path, err)
	}

	if err := os.WriteFile(s.path, []byte(url), 0644); err != nil {
		return rerrors.IOWriteError(s.path, err)
	}

	return nil
}

// Remove deletes the saved registry. A missing file is not an error.
func (s *WorkStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return rerrors.IOWriteError(s.path, err)
	}
	return nil
}
