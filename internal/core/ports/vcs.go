package ports

import "context"

// VCS wraps the version-control operations the installer needs.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Executable returns the program name looked up by the requirement check.
	Executable() string

	// IsClean reports whether the working tree has no local changes, untracked files included.
	IsClean(ctx context.Context) (bool, error)

	// Stash sets local changes aside.
	Stash(ctx context.Context) error

	// Pull fetches and merges branch from remote.
	Pull(ctx context.Context, remote, branch string) error

	// Describe names HEAD relative to the nearest tag, falling back to the
	// abbreviated hash, with a "-dirty" suffix for tracked modifications.
	Describe(ctx context.Context) (string, error)

	// ShortCommit returns the abbreviated hash of HEAD.
	ShortCommit(ctx context.Context) (string, error)
}
