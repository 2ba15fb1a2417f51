package registry

import (
	"os"
	"path/filepath"
	"testing"

	rerrors "github.com/devtools/npm-registry/internal/errors"
)

// workStoreAt creates a store at an arbitrary path.
func workStoreAt(path string) *WorkStore {
	return &WorkStore{path: path}
}

func TestNewWorkStore_Path(t *testing.T) {
	store := NewWorkStore("/home/dev")
	want := filepath.Join("/home/dev", ".config", "npm-registry.txt")
	if store.Path() != want {
		t.Errorf("Path() = %s, want %s", store.Path(), want)
	}
}

func TestWorkStore_Load_MissingFile(t *testing.T) {
	store := NewWorkStore(t.TempDir())

	url, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if found {
		t.Error("Load() found = true, want false")
	}
	if url != "" {
		t.Errorf("Load() url = %q, want empty", url)
	}
}

func TestWorkStore_Save_CreatesDirectory(t *testing.T) {
	home := t.TempDir()
	store := NewWorkStore(home)

	if err := store.Save("https://private.example.com/"); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "npm-registry.txt"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "https://private.example.com/" {
		t.Errorf("file content = %q", data)
	}
}

func TestWorkStore_RoundTripIsVerbatim(t *testing.T) {
	store := NewWorkStore(t.TempDir())

	// Whitespace and newlines are neither added nor stripped
	raw := "  https://private.example.com/\n"
	if err := store.Save(raw); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	url, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !found {
		t.Fatal("Load() found = false, want true")
	}
	if url != raw {
		t.Errorf("Load() = %q, want %q", url, raw)
	}
}

func TestWorkStore_Load_ReadError(t *testing.T) {
	// A directory at the file path exists but cannot be read as a file
	path := filepath.Join(t.TempDir(), "npm-registry.txt")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	store := workStoreAt(path)

	_, _, err := store.Load()
	if err == nil {
		t.Fatal("Load() error = nil, want read error")
	}
	if !rerrors.HasCode(err, rerrors.CodeIOReadError) {
		t.Errorf("error code = %q, want %s", rerrors.Code(err), rerrors.CodeIOReadError)
	}
}

func TestWorkStore_Save_WriteError(t *testing.T) {
	// Parent of .config is a regular file, so the directory cannot be created
	home := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(home, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewWorkStore(home)

	err := store.Save("https://private.example.com/")
	if err == nil {
		t.Fatal("Save() error = nil, want write error")
	}
	if !rerrors.HasCode(err, rerrors.CodeIOWriteError) {
		t.Errorf("error code = %q, want %s", rerrors.Code(err), rerrors.CodeIOWriteError)
	}
}

func TestWorkStore_Remove(t *testing.T) {
	store := NewWorkStore(t.TempDir())

	// Removing a missing file is fine
	if err := store.Remove(); err != nil {
		t.Fatalf("Remove() on missing file error = %v", err)
	}

	if err := store.Save("https://private.example.com/"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if store.Exists() {
		t.Error("file still exists after Remove()")
	}
}

func TestWorkStore_Load_ConfigDirNotADirectory(t *testing.T) {
	// ~/.config is a regular file: stat fails with ENOTDIR, which means
	// "nothing saved" rather than a read failure
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".config"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewWorkStore(home)

	if store.Exists() {
		t.Error("Exists() = true, want false")
	}
	url, found, err := store.Load()
	if err != nil || found || url != "" {
		t.Errorf("Load() = %q, %v, %v, want not found", url, found, err)
	}

	err = store.Save("https://private.example.com/")
	if !rerrors.HasCode(err, rerrors.CodeIOWriteError) {
		t.Errorf("Save() error = %v, want %s", err, rerrors.CodeIOWriteError)
	}
}
