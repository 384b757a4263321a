package ports

import "io/fs"

// FileSystem is the subset of filesystem operations the installer performs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file information for path.
	Stat(path string) (fs.FileInfo, error)

	// Remove deletes path. A missing path is not an error.
	Remove(path string) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// Chmod changes the mode of path.
	Chmod(path string, mode fs.FileMode) error

	// CopyFile copies src to dst, preserving the file mode and modification time.
	CopyFile(src, dst string) error

	// Digest returns a content digest of path.
	Digest(path string) (uint64, error)
}

// PathFinder resolves bare executable names through the search path.
type PathFinder interface {
	// LookPath returns the absolute path of the first match for name, or an error.
	LookPath(name string) (string, error)
}
