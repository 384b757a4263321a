package app_test

import (
	"bytes"
	"context"
	iofs "io/fs"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkstorage/install/internal/app"
	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	"github.com/darkstorage/install/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	workDir   = "/work"
	artifact  = "/work/darkstorage"
	installed = "/usr/local/bin/darkstorage"
	goVersion = "go version go1.25.3 linux/amd64"
)

var (
	linuxPlatform = domain.Platform{OS: "linux", Arch: "amd64", Distro: "ubuntu", Family: "debian", Version: "24.04"}

	versionResult = domain.CommandResult{Success: true, Stdout: "darkstorage version v1.2.3"}
	verboseResult = domain.CommandResult{Success: true, Stdout: "Dark Storage CLI v1.2.3\nCommit: abc1234\nBuilt by: local"}
)

type fileInfo struct {
	name string
	size int64
}

func (f fileInfo) Name() string        { return f.name }
func (f fileInfo) Size() int64         { return f.size }
func (f fileInfo) Mode() iofs.FileMode { return 0o755 }
func (f fileInfo) ModTime() time.Time  { return time.Time{} }
func (f fileInfo) IsDir() bool         { return false }
func (f fileInfo) Sys() any            { return nil }

func permissionDenied(path string) error {
	return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrPermission}
}

func notExist(path string) error {
	return &iofs.PathError{Op: "stat", Path: path, Err: iofs.ErrNotExist}
}

// harness drives the App through generated mocks. Logger and tracer calls
// are recorded into journal; every other port is set up by each test.
type harness struct {
	ctrl      *gomock.Controller
	logger    *mocks.MockLogger
	executor  *mocks.MockExecutor
	toolchain *mocks.MockToolchain
	vcs       *mocks.MockVCS
	fs        *mocks.MockFileSystem
	finder    *mocks.MockPathFinder
	escalator *mocks.MockEscalator
	platform  *mocks.MockPlatformDetector
	advisor   *mocks.MockPathAdvisor
	loader    *mocks.MockConfigLoader
	tracer    *mocks.MockTracer

	tracerPort ports.Tracer

	mu      sync.Mutex
	journal []string
	timings []domain.StageTiming
	profile domain.BuildProfile
	env     map[string]string
	stdout  bytes.Buffer
	ticks   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithTracer(t, nil)
}

// newHarnessWithTracer runs the App against tracer instead of the mock
// tracer when tracer is non-nil. Stages are then not journaled.
func newHarnessWithTracer(t *testing.T, tracer ports.Tracer) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		ctrl:      ctrl,
		logger:    mocks.NewMockLogger(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		vcs:       mocks.NewMockVCS(ctrl),
		fs:        mocks.NewMockFileSystem(ctrl),
		finder:    mocks.NewMockPathFinder(ctrl),
		escalator: mocks.NewMockEscalator(ctrl),
		platform:  mocks.NewMockPlatformDetector(ctrl),
		advisor:   mocks.NewMockPathAdvisor(ctrl),
		loader:    mocks.NewMockConfigLoader(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		env:       map[string]string{},
	}

	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { h.note("info: " + msg) }).AnyTimes()
	h.logger.EXPECT().Success(gomock.Any()).Do(func(msg string) { h.note("success: " + msg) }).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { h.note("warn: " + msg) }).AnyTimes()

	if tracer != nil {
		h.tracerPort = tracer
		return h
	}

	h.tracerPort = h.tracer
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	h.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string) (context.Context, ports.Span) {
			h.note("stage " + name)
			return ctx, span
		}).AnyTimes()
	h.tracer.EXPECT().Timings().DoAndReturn(func() []domain.StageTiming { return h.timings }).AnyTimes()
	h.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	return h
}

func (h *harness) note(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.journal = append(h.journal, entry)
}

func (h *harness) entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.journal...)
}

func (h *harness) has(prefix string) bool {
	for _, e := range h.entries() {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

// logged reports whether a log line at level contains fragment.
func (h *harness) logged(level, fragment string) bool {
	for _, e := range h.entries() {
		if msg, ok := strings.CutPrefix(e, level+": "); ok && strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// stages returns the names of the stages that were started, in order.
func (h *harness) stages() []string {
	var names []string
	for _, e := range h.entries() {
		if name, ok := strings.CutPrefix(e, "stage "); ok {
			names = append(names, name)
		}
	}
	return names
}

// clock advances by 1.5s on every reading.
func (h *harness) clock() time.Time {
	t := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC).Add(time.Duration(h.ticks) * 1500 * time.Millisecond)
	h.ticks++
	return t
}

func (h *harness) app() *app.App {
	deps := app.Deps{
		Logger:       h.logger,
		Executor:     h.executor,
		Toolchain:    h.toolchain,
		VCS:          h.vcs,
		FileSystem:   h.fs,
		PathFinder:   h.finder,
		Escalator:    h.escalator,
		Platform:     h.platform,
		PathAdvisor:  h.advisor,
		ConfigLoader: h.loader,
		Tracer:       h.tracerPort,
	}
	return app.New(deps, &h.stdout).
		WithClock(h.clock).
		WithEnv(func(k string) string { return h.env[k] }).
		WithGOOS("linux").
		WithWorkDir(workDir)
}

func calls(groups ...[]any) []any {
	var all []any
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

func (h *harness) expectProject(project domain.ProjectConfig) []any {
	return []any{h.loader.EXPECT().Load(workDir).Return(project, nil)}
}

func (h *harness) expectRequirements() []any {
	return []any{
		h.platform.EXPECT().Detect(gomock.Any()).Return(linuxPlatform, nil),
		h.toolchain.EXPECT().Executable().Return("go"),
		h.finder.EXPECT().LookPath("go").Return("/usr/bin/go", nil),
		h.toolchain.EXPECT().Version(gomock.Any()).Return(goVersion, nil),
		h.vcs.EXPECT().Executable().Return("git"),
		h.finder.EXPECT().LookPath("git").Return("/usr/bin/git", nil),
	}
}

func (h *harness) expectDependencies() []any {
	return []any{h.toolchain.EXPECT().DownloadDependencies(gomock.Any()).Return(nil)}
}

// releaseProfile is the profile built on the harness clock's second reading.
func releaseProfile(version, commit, builtBy string) domain.ReleaseProfile {
	return domain.ReleaseProfile{Metadata: domain.BuildMetadata{
		Version: version,
		Commit:  commit,
		Date:    "2026-10-15T09:30:01Z",
		BuiltBy: builtBy,
	}}
}

func (h *harness) expectDescribe(version, commit string) []any {
	return []any{
		h.vcs.EXPECT().Describe(gomock.Any()).Return(version, nil),
		h.vcs.EXPECT().ShortCommit(gomock.Any()).Return(commit, nil),
	}
}

func (h *harness) expectCompile(profile domain.BuildProfile, project domain.ProjectConfig, artifactPath string) []any {
	return []any{
		h.toolchain.EXPECT().
			Build(gomock.Any(), profile, project.VersionPackage, project.MainPackage, artifactPath).
			Return(nil),
		h.fs.EXPECT().Stat(artifactPath).Return(fileInfo{name: filepath.Base(artifactPath), size: 12_900_000}, nil),
	}
}

func (h *harness) expectReleaseBuild() []any {
	return calls(
		h.expectDescribe("v1.2.3", "abc1234"),
		h.expectCompile(releaseProfile("v1.2.3", "abc1234", domain.DefaultBuiltBy), domain.DefaultProjectConfig(), artifact),
	)
}

func (h *harness) expectSmokeTest() []any {
	return []any{
		h.fs.EXPECT().Chmod(artifact, iofs.FileMode(0o755)).Return(nil),
		h.executor.EXPECT().Output(gomock.Any(), domain.NewCommand(artifact, "version")).Return(versionResult),
		h.executor.EXPECT().Output(gomock.Any(), domain.NewCommand(artifact, "version", "--verbose")).Return(verboseResult),
	}
}

func (h *harness) expectInstall(dir string) []any {
	return []any{
		h.fs.EXPECT().MkdirAll(dir).Return(nil),
		h.fs.EXPECT().CopyFile(artifact, filepath.Join(dir, domain.BinaryName)).Return(nil),
	}
}

func (h *harness) expectVerify(dst string) []any {
	return []any{
		h.finder.EXPECT().LookPath(domain.BinaryName).Return(dst, nil),
		h.executor.EXPECT().Output(gomock.Any(), domain.NewCommand(dst, "version")).Return(versionResult),
		h.fs.EXPECT().Digest(artifact).Return(uint64(42), nil),
		h.fs.EXPECT().Digest(dst).Return(uint64(42), nil),
	}
}

// expectSuccessfulRun sets up a complete default run installing into dir.
func (h *harness) expectSuccessfulRun(dir string) {
	gomock.InOrder(calls(
		h.expectProject(domain.DefaultProjectConfig()),
		h.expectRequirements(),
		h.expectDependencies(),
		h.expectReleaseBuild(),
		h.expectSmokeTest(),
		h.expectInstall(dir),
		h.expectVerify(filepath.Join(dir, domain.BinaryName)),
	)...)
}

// missingTool selects which required tool is absent from the search path.
const (
	missingNone = iota
	missingToolchain
	missingVCS
)

// allowAll lets every port answer any call with a successful result and
// journals the calls that change state.
func (h *harness) allowAll(missing int) {
	h.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultProjectConfig(), nil).AnyTimes()
	h.platform.EXPECT().Detect(gomock.Any()).Return(linuxPlatform, nil).AnyTimes()
	h.toolchain.EXPECT().Executable().Return("go").AnyTimes()
	h.vcs.EXPECT().Executable().Return("git").AnyTimes()
	h.finder.EXPECT().LookPath(gomock.Any()).DoAndReturn(func(name string) (string, error) {
		switch {
		case name == "go" && missing == missingToolchain, name == "git" && missing == missingVCS:
			return "", exec.ErrNotFound
		case name == domain.BinaryName:
			return installed, nil
		}
		return "/usr/bin/" + name, nil
	}).AnyTimes()

	h.toolchain.EXPECT().Version(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		h.note("go version")
		return goVersion, nil
	}).AnyTimes()
	h.toolchain.EXPECT().DownloadDependencies(gomock.Any()).DoAndReturn(func(context.Context) error {
		h.note("go mod download")
		return nil
	}).AnyTimes()
	h.toolchain.EXPECT().CleanCaches(gomock.Any()).DoAndReturn(func(context.Context) error {
		h.note("go clean")
		return nil
	}).AnyTimes()
	h.toolchain.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile domain.BuildProfile, _, _, _ string) error {
			h.note("go build")
			h.profile = profile
			return nil
		}).AnyTimes()

	h.vcs.EXPECT().IsClean(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		h.note("git status")
		return false, nil
	}).AnyTimes()
	h.vcs.EXPECT().Stash(gomock.Any()).DoAndReturn(func(context.Context) error {
		h.note("git stash")
		return nil
	}).AnyTimes()
	h.vcs.EXPECT().Pull(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string, string) error {
		h.note("git pull")
		return nil
	}).AnyTimes()
	h.vcs.EXPECT().Describe(gomock.Any()).Return("v1.2.3", nil).AnyTimes()
	h.vcs.EXPECT().ShortCommit(gomock.Any()).Return("abc1234", nil).AnyTimes()

	h.fs.EXPECT().Stat(gomock.Any()).Return(fileInfo{name: domain.BinaryName, size: 1024}, nil).AnyTimes()
	h.fs.EXPECT().Remove(gomock.Any()).DoAndReturn(func(path string) error {
		h.note("fs remove " + path)
		return nil
	}).AnyTimes()
	h.fs.EXPECT().MkdirAll(gomock.Any()).Return(nil).AnyTimes()
	h.fs.EXPECT().Chmod(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.fs.EXPECT().CopyFile(gomock.Any(), gomock.Any()).DoAndReturn(func(src, dst string) error {
		h.note("fs copy " + src + " " + dst)
		return nil
	}).AnyTimes()
	h.fs.EXPECT().Digest(gomock.Any()).Return(uint64(42), nil).AnyTimes()

	h.executor.EXPECT().Output(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) domain.CommandResult {
			if slices.Contains(cmd.Args, "--verbose") {
				return verboseResult
			}
			return versionResult
		}).AnyTimes()
}
