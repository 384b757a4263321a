package app

import (
	"context"

	"github.com/darkstorage/install/internal/core/domain"
	"go.trai.ch/zerr"
)

const toolchainDownloadURL = "https://go.dev/dl/"

// checkRequirements fails unless both the toolchain and the git client are
// on the search path.
func (a *App) checkRequirements(ctx context.Context) error {
	a.deps.Logger.Info("Checking requirements...")

	platform, err := a.deps.Platform.Detect(ctx)
	if err != nil {
		return err
	}
	a.deps.Logger.Info("Platform: " + platform.String())

	toolchain := a.deps.Toolchain.Executable()
	if _, err := a.deps.PathFinder.LookPath(toolchain); err != nil {
		return zerr.With(zerr.With(domain.ErrToolchainMissing, "tool", toolchain), "install_from", toolchainDownloadURL)
	}

	version, err := a.deps.Toolchain.Version(ctx)
	if err != nil {
		return err
	}
	a.deps.Logger.Success("Go installed: " + version)

	vcs := a.deps.VCS.Executable()
	if _, err := a.deps.PathFinder.LookPath(vcs); err != nil {
		return zerr.With(domain.ErrVCSMissing, "tool", vcs)
	}
	a.deps.Logger.Success("Git installed")

	return nil
}
