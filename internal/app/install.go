package app

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/darkstorage/install/internal/core/domain"
	"go.trai.ch/zerr"
)

const executablePerm iofs.FileMode = 0o755

// testBinary runs the artifact's version command. Empty output fails the
// stage; the verbose output is printed as-is.
func (a *App) testBinary(ctx context.Context, s *session) error {
	a.deps.Logger.Info("Testing binary...")

	if !domain.IsWindows(a.goos) {
		if err := a.deps.FileSystem.Chmod(s.artifact.Path, executablePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrSmokeTestFailed.Error()), "path", s.artifact.Path)
		}
	}

	binary := runnable(s.artifact.Path)

	result := a.deps.Executor.Output(ctx, domain.NewCommand(binary, "version"))
	if !result.Success || result.Stdout == "" {
		err := zerr.With(domain.ErrSmokeTestFailed, "exit_code", result.ExitCode)
		if result.Stderr != "" {
			err = zerr.With(err, "stderr", result.Stderr)
		}
		return err
	}
	a.deps.Logger.Success("Binary works correctly")

	verbose := a.deps.Executor.Output(ctx, domain.NewCommand(binary, "version", "--verbose"))
	a.println()
	a.println(verbose.Stdout)
	a.println()

	return nil
}

// installBinary copies the artifact into the install directory, falling
// back to sudo once when the directory or the copy is denied.
func (a *App) installBinary(ctx context.Context, s *session) error {
	a.deps.Logger.Info(fmt.Sprintf("Installing to %s...", s.installDir))

	dst := filepath.Join(s.installDir, domain.ArtifactName(a.goos))

	if err := a.deps.FileSystem.MkdirAll(s.installDir); err != nil {
		if !errors.Is(err, iofs.ErrPermission) {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallDirCreateFailed.Error()), "path", s.installDir)
		}
		return a.installEscalated(ctx, s, dst, true)
	}

	if err := a.deps.FileSystem.CopyFile(s.artifact.Path, dst); err != nil {
		if !errors.Is(err, iofs.ErrPermission) {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dst)
		}
		return a.installEscalated(ctx, s, dst, false)
	}

	s.installed = dst
	a.deps.Logger.Success("Installed to " + dst)
	return nil
}

func (a *App) installEscalated(ctx context.Context, s *session, dst string, createDir bool) error {
	if !a.deps.Escalator.Available() {
		a.deps.Logger.Warn(fmt.Sprintf("Try: %s=%s %s", domain.EnvInstallDir, domain.UserInstallDir, domain.InstallerName))
		return zerr.With(domain.ErrInstallDirNotWritable, "install_dir", s.installDir)
	}

	a.deps.Logger.Info("Need sudo permissions...")

	if createDir {
		if err := a.deps.Escalator.Run(ctx, domain.NewCommand("mkdir", "-p", s.installDir)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrEscalatedInstallFailed.Error()), "path", s.installDir)
		}
	}

	if err := a.deps.Escalator.Run(ctx, domain.NewCommand("cp", "-p", s.artifact.Path, dst)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEscalatedInstallFailed.Error()), "path", dst)
	}

	s.installed = dst
	a.deps.Logger.Success("Installed with sudo")
	return nil
}

// runnable makes a bare relative path executable without a PATH lookup.
func runnable(path string) string {
	if filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		return path
	}
	return "." + string(filepath.Separator) + path
}
