// Package fs implements filesystem access for the installer.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/darkstorage/install/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o755

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Stat returns file information for path.
func (f *FileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// Remove deletes path. A missing path is not an error.
func (f *FileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// Chmod changes the mode of path.
func (f *FileSystem) Chmod(path string, mode iofs.FileMode) error {
	if err := os.Chmod(path, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to change mode"), "path", path)
	}
	return nil
}

// CopyFile copies src to dst, preserving the file mode and modification time.
// The copy is staged next to dst and renamed into place, so a running dst is
// replaced rather than truncated.
func (f *FileSystem) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dst)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush destination"), "path", dst)
	}

	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to preserve mode"), "path", dst)
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to preserve modification time"), "path", dst)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move file into place"), "path", dst)
	}
	committed = true
	return nil
}

// Digest computes the XXHash of a file's content.
func (f *FileSystem) Digest(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
