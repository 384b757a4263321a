package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/darkstorage/install/internal/core/domain"
)

// verifyInstallation checks that the installed binary is reachable through
// PATH. Every finding here is advisory.
func (a *App) verifyInstallation(ctx context.Context, s *session) error {
	a.deps.Logger.Info("Verifying installation...")

	found, err := a.deps.PathFinder.LookPath(domain.BinaryName)
	if err != nil {
		a.deps.Logger.Warn(domain.BinaryName + " is installed but not in PATH")
		a.println()
		a.deps.Logger.Warn("Add the install directory to your PATH")
		a.println("  " + a.deps.PathAdvisor.Hint(s.installDir))
	} else {
		a.deps.Logger.Success("Installation verified!")
		result := a.deps.Executor.Output(ctx, domain.NewCommand(found, "version"))
		a.println("  " + result.Stdout)

		if s.installed != "" && !samePath(found, s.installed) {
			a.deps.Logger.Warn(fmt.Sprintf("%s on PATH resolves to %s, not %s", domain.BinaryName, found, s.installed))
		}
	}

	a.checkDigest(s)
	return nil
}

// checkDigest warns when the installed file's content differs from the
// freshly built artifact.
func (a *App) checkDigest(s *session) {
	if s.installed == "" {
		return
	}

	built, err := a.deps.FileSystem.Digest(s.artifact.Path)
	if err != nil {
		return
	}
	installed, err := a.deps.FileSystem.Digest(s.installed)
	if err != nil {
		a.deps.Logger.Warn("Could not read installed binary at " + s.installed)
		return
	}

	if built != installed {
		a.deps.Logger.Warn("Installed binary at " + s.installed + " differs from the build output")
	}
}

func samePath(a, b string) bool {
	return resolvePath(a) == resolvePath(b)
}

func resolvePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}
