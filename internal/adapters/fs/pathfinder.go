package fs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/darkstorage/install/internal/core/ports"
)

var _ ports.PathFinder = (*PathFinder)(nil)

// PathFinder resolves executables against a PATH value read on each lookup.
type PathFinder struct {
	getenv func(string) string
	goos   string
}

// NewPathFinder creates a PathFinder reading PATH through getenv.
func NewPathFinder(getenv func(string) string, goos string) *PathFinder {
	return &PathFinder{getenv: getenv, goos: goos}
}

// LookPath returns the first executable named name in PATH.
// On Windows, name is also tried with an ".exe" suffix.
func (p *PathFinder) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if err := findExecutable(name, p.windows()); err != nil {
			return "", err
		}
		return name, nil
	}

	path := p.getenv("PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	candidates := []string{name}
	if p.windows() && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		candidates = append(candidates, name+".exe")
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, candidate := range candidates {
			full := filepath.Join(dir, candidate)
			if err := findExecutable(full, p.windows()); err == nil {
				return full, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func (p *PathFinder) windows() bool {
	return strings.EqualFold(p.goos, "windows")
}

func findExecutable(file string, windows bool) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if windows || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
