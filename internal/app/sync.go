package app

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
	"go.trai.ch/zerr"
)

// syncRepository stashes local changes and pulls the configured branch.
// The stash is never restored.
func (a *App) syncRepository(ctx context.Context, s *session) error {
	a.deps.Logger.Info("Updating repository...")

	clean, err := a.deps.VCS.IsClean(ctx)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStatusFailed.Error())
	}

	if !clean {
		a.deps.Logger.Warn("You have uncommitted changes. Stashing...")
		if err := a.deps.VCS.Stash(ctx); err != nil {
			return zerr.Wrap(err, domain.ErrStashFailed.Error())
		}
	}

	if err := a.deps.VCS.Pull(ctx, s.project.Remote, s.project.Branch); err != nil {
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrSyncFailed.Error()), "remote", s.project.Remote),
			"branch", s.project.Branch,
		)
	}

	a.deps.Logger.Success("Repository updated to latest version")
	return nil
}
