package app

import (
	"context"
	"fmt"

	"github.com/darkstorage/install/internal/core/domain"
	"go.trai.ch/zerr"
)

// cleanBuild removes the previous artifact and purges the toolchain caches.
// A failed purge only warns.
func (a *App) cleanBuild(ctx context.Context, s *session) error {
	a.deps.Logger.Info("Cleaning previous builds...")

	if _, err := a.deps.FileSystem.Stat(s.artifact.Path); err == nil {
		if err := a.deps.FileSystem.Remove(s.artifact.Path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", s.artifact.Path)
		}
		a.deps.Logger.Success("Removed old binary")
	}

	if err := a.deps.Toolchain.CleanCaches(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.deps.Logger.Warn("Failed to clean Go caches: " + err.Error())
		return nil
	}

	a.deps.Logger.Success("Cleaned Go caches")
	return nil
}

func (a *App) downloadDependencies(ctx context.Context) error {
	a.deps.Logger.Info("Downloading dependencies...")

	if err := a.deps.Toolchain.DownloadDependencies(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrDependencyFetchFailed.Error())
	}

	a.deps.Logger.Success("Dependencies downloaded")
	return nil
}

// buildBinary compiles the artifact and records its size.
func (a *App) buildBinary(ctx context.Context, s *session) error {
	a.deps.Logger.Info("Building Dark Storage CLI...")

	profile := a.buildProfile(ctx, s)

	err := a.deps.Toolchain.Build(ctx, profile, s.project.VersionPackage, s.project.MainPackage, s.artifact.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "profile", profile.Kind().String())
	}

	info, err := a.deps.FileSystem.Stat(s.artifact.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()), "path", s.artifact.Path)
	}
	s.artifact.Size = info.Size()

	a.deps.Logger.Success(fmt.Sprintf("Build complete (%s)", s.artifact.FormatSize()))
	return nil
}

// buildProfile selects the debug or release profile. Release metadata falls
// back to placeholders when the repository cannot be queried.
func (a *App) buildProfile(ctx context.Context, s *session) domain.BuildProfile {
	if s.cfg.DebugBuild {
		a.deps.Logger.Warn("Building with debug symbols (larger binary, slower execution)")
		return domain.DebugProfile{}
	}

	version, err := a.deps.VCS.Describe(ctx)
	if err != nil {
		version = ""
	}
	commit, err := a.deps.VCS.ShortCommit(ctx)
	if err != nil {
		commit = ""
	}

	return domain.ReleaseProfile{
		Metadata: domain.NewBuildMetadata(version, commit, a.now(), s.project.BuiltBy),
	}
}
