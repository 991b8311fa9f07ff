package records

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

// FileBackend keeps each record set in <dir>/<kind>.json. The directory must already
// exist; a missing directory is reported on write rather than created.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Path returns the file holding kind.
func (f *FileBackend) Path(kind Kind) string {
	return filepath.Join(f.dir, string(kind)+".json")
}

// Read returns the file content, or apperrors.ErrNotFound when the file is absent.
func (f *FileBackend) Read(ctx context.Context, kind Kind) ([]byte, error) {
	data, err := os.ReadFile(f.Path(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the file through a synced temp file and a rename.
func (f *FileBackend) Write(ctx context.Context, kind Kind, data []byte) error {
	return writeFileAtomic(f.Path(kind), data, 0o644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()
	return d.Sync()
}
