// Package app implements the installation pipeline for the Dark Storage CLI.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/darkstorage/install/internal/engine/pipeline"
	"github.com/darkstorage/install/internal/ui/output"
	"github.com/muesli/termenv"
)

// Deps groups the ports the installer drives.
type Deps struct {
	Logger       ports.Logger
	Executor     ports.Executor
	Toolchain    ports.Toolchain
	VCS          ports.VCS
	FileSystem   ports.FileSystem
	PathFinder   ports.PathFinder
	Escalator    ports.Escalator
	Platform     ports.PlatformDetector
	PathAdvisor  ports.PathAdvisor
	ConfigLoader ports.ConfigLoader
	Tracer       ports.Tracer
}

// App represents the main application logic.
type App struct {
	deps    Deps
	out     *termenv.Output
	now     func() time.Time
	getenv  func(string) string
	goos    string
	workDir string
}

// New creates a new App writing banners and tool output to stdout.
func New(deps Deps, stdout io.Writer) *App {
	return &App{
		deps:    deps,
		out:     output.New(stdout),
		now:     time.Now,
		getenv:  os.Getenv,
		goos:    runtime.GOOS,
		workDir: ".",
	}
}

// WithClock overrides the time source used for build dates and durations.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithEnv overrides the environment lookup.
func (a *App) WithEnv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// WithGOOS overrides the target operating system.
func (a *App) WithGOOS(goos string) *App {
	a.goos = goos
	return a
}

// WithWorkDir sets the source checkout the installer builds from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// session holds the state shared between stages of one run.
type session struct {
	cfg        domain.InstallConfig
	project    domain.ProjectConfig
	installDir string
	artifact   domain.Artifact
	installed  string
	started    time.Time
}

// Install runs the installation pipeline. It returns the first fatal error;
// warnings are logged and do not fail the run.
func (a *App) Install(ctx context.Context, cfg domain.InstallConfig) error {
	defer func() {
		_ = a.deps.Tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	s := &session{
		cfg:        cfg,
		installDir: domain.ResolveInstallDir(cfg.InstallDir, a.getenv(domain.EnvInstallDir)),
		artifact:   domain.Artifact{Path: filepath.Join(a.workDir, domain.ArtifactName(a.goos))},
		started:    a.now(),
	}

	a.printHeader()

	project, err := a.deps.ConfigLoader.Load(a.workDir)
	if err != nil {
		return err
	}
	s.project = project

	if err := pipeline.NewRunner(a.deps.Tracer).Run(ctx, a.stages(s)); err != nil {
		return err
	}

	// Every span, the report's included, has ended by now.
	a.printTimings(s)
	return nil
}

func (a *App) stages(s *session) []pipeline.Stage {
	return []pipeline.Stage{
		{
			Name: domain.StageRequirements,
			Run:  func(ctx context.Context) error { return a.checkRequirements(ctx) },
		},
		{
			Name:    domain.StageSync,
			Enabled: func() bool { return s.cfg.UpdateFirst },
			Run:     func(ctx context.Context) error { return a.syncRepository(ctx, s) },
		},
		{
			Name:    domain.StageClean,
			Enabled: func() bool { return s.cfg.FreshRebuild },
			Run:     func(ctx context.Context) error { return a.cleanBuild(ctx, s) },
		},
		{
			Name: domain.StageDependencies,
			Run:  func(ctx context.Context) error { return a.downloadDependencies(ctx) },
		},
		{
			Name: domain.StageBuild,
			Run:  func(ctx context.Context) error { return a.buildBinary(ctx, s) },
		},
		{
			Name: domain.StageSmokeTest,
			Run:  func(ctx context.Context) error { return a.testBinary(ctx, s) },
		},
		{
			Name: domain.StageInstall,
			Run:  func(ctx context.Context) error { return a.installBinary(ctx, s) },
		},
		{
			Name: domain.StageVerify,
			Run:  func(ctx context.Context) error { return a.verifyInstallation(ctx, s) },
		},
		{
			Name: domain.StageReport,
			Run: func(context.Context) error {
				a.printNextSteps(s)
				return nil
			},
		},
	}
}
