package git_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darkstorage/install/internal/adapters/git"
	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports/mocks"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	n    int
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return &testRepo{t: t, dir: dir, repo: repo}
}

func (r *testRepo) signature() *object.Signature {
	return &object.Signature{
		Name:  "Installer Test",
		Email: "test@example.com",
		When:  time.Date(2026, 1, 1, 0, 0, r.n, 0, time.UTC),
	}
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	require.NoError(r.t, os.WriteFile(filepath.Join(r.dir, name), []byte(content), 0o600))
}

func (r *testRepo) commit(name string) plumbing.Hash {
	r.t.Helper()
	r.n++
	r.write(name, name)

	worktree, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = worktree.Add(name)
	require.NoError(r.t, err)

	hash, err := worktree.Commit("add "+name, &gogit.CommitOptions{Author: r.signature()})
	require.NoError(r.t, err)
	return hash
}

// commitOnto records a commit with the given parents and moves HEAD to it.
func (r *testRepo) commitOnto(name string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	r.n++
	r.write(name, name)

	worktree, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = worktree.Add(name)
	require.NoError(r.t, err)

	hash, err := worktree.Commit("add "+name, &gogit.CommitOptions{Author: r.signature(), Parents: parents})
	require.NoError(r.t, err)
	return hash
}

func (r *testRepo) tag(name string, hash plumbing.Hash, annotated bool) {
	r.t.Helper()
	var opts *gogit.CreateTagOptions
	if annotated {
		opts = &gogit.CreateTagOptions{Tagger: r.signature(), Message: "release " + name}
	}
	_, err := r.repo.CreateTag(name, hash, opts)
	require.NoError(r.t, err)
}

func (r *testRepo) client() *git.Client {
	return git.NewClient(r.dir, nil, &bytes.Buffer{}, &bytes.Buffer{})
}

func TestClient_Describe(t *testing.T) {
	ctx := context.Background()

	t.Run("No Tags", func(t *testing.T) {
		r := newTestRepo(t)
		head := r.commit("a.txt")

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, head.String()[:7], desc)
	})

	t.Run("Exact Lightweight Tag", func(t *testing.T) {
		r := newTestRepo(t)
		head := r.commit("a.txt")
		r.tag("v0.1.0", head, false)

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v0.1.0", desc)
	})

	t.Run("Commits Past Annotated Tag", func(t *testing.T) {
		r := newTestRepo(t)
		tagged := r.commit("a.txt")
		r.tag("v1.2.0", tagged, true)
		r.commit("b.txt")
		head := r.commit("c.txt")

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1.2.0-2-g"+head.String()[:7], desc)
	})

	t.Run("Nearest Tag Wins", func(t *testing.T) {
		r := newTestRepo(t)
		r.tag("v1.0.0", r.commit("a.txt"), false)
		r.tag("v1.1.0", r.commit("b.txt"), false)
		head := r.commit("c.txt")

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1.1.0-1-g"+head.String()[:7], desc)
	})

	t.Run("Merged Branch Commits Count", func(t *testing.T) {
		r := newTestRepo(t)
		base := r.commit("a.txt")
		r.tag("v1.0.0", base, false)
		trunk := r.commit("b.txt")
		side := r.commitOnto("c.txt", base)
		head := r.commitOnto("d.txt", trunk, side)

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1.0.0-3-g"+head.String()[:7], desc)
	})

	t.Run("Tag On Merged Branch", func(t *testing.T) {
		r := newTestRepo(t)
		base := r.commit("a.txt")
		r.tag("v1.0.0", base, false)
		trunk := r.commit("b.txt")
		side := r.commitOnto("c.txt", base)
		r.tag("v1.1.0", side, false)
		head := r.commitOnto("d.txt", trunk, side)

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1.1.0-2-g"+head.String()[:7], desc)
	})

	t.Run("Dirty Tracked File", func(t *testing.T) {
		r := newTestRepo(t)
		r.tag("v2.0.0", r.commit("a.txt"), false)
		r.write("a.txt", "changed")

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v2.0.0-dirty", desc)
	})

	t.Run("Untracked Files Are Not Dirty", func(t *testing.T) {
		r := newTestRepo(t)
		r.tag("v2.0.0", r.commit("a.txt"), false)
		r.write("scratch.txt", "notes")

		desc, err := r.client().Describe(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v2.0.0", desc)
	})

	t.Run("Not A Repository", func(t *testing.T) {
		client := git.NewClient(t.TempDir(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		_, err := client.Describe(ctx)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNotARepository.Error())
	})

	t.Run("No Commits", func(t *testing.T) {
		r := newTestRepo(t)

		_, err := r.client().Describe(ctx)
		require.ErrorIs(t, err, domain.ErrNoCommits)
	})
}

func TestClient_ShortCommit(t *testing.T) {
	r := newTestRepo(t)
	head := r.commit("a.txt")

	short, err := r.client().ShortCommit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, head.String()[:7], short)
	assert.Len(t, short, 7)
}

func TestClient_ShortCommit_Subdirectory(t *testing.T) {
	r := newTestRepo(t)
	head := r.commit("a.txt")
	sub := filepath.Join(r.dir, "cmd")
	require.NoError(t, os.Mkdir(sub, 0o755))

	client := git.NewClient(sub, nil, &bytes.Buffer{}, &bytes.Buffer{})
	short, err := client.ShortCommit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, head.String()[:7], short)
}

func TestClient_IsClean(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	r.commit("a.txt")

	clean, err := r.client().IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	r.write("untracked.txt", "new")
	clean, err = r.client().IsClean(ctx)
	require.NoError(t, err)
	assert.False(t, clean, "untracked files make the tree unclean")
}

func TestClient_IsClean_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRepo(t).client().IsClean(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_StashAndPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	client := git.NewClient("/src/cli", executor, stdout, stderr)

	gomock.InOrder(
		executor.EXPECT().
			Execute(gomock.Any(), domain.Command{Name: "git", Args: []string{"stash"}, Dir: "/src/cli", Interactive: true}, stdout, stderr).
			Return(nil),
		executor.EXPECT().
			Execute(gomock.Any(), domain.Command{Name: "git", Args: []string{"pull", "origin", "main"}, Dir: "/src/cli", Interactive: true}, stdout, stderr).
			Return(nil),
	)

	require.NoError(t, client.Stash(context.Background()))
	require.NoError(t, client.Pull(context.Background(), "origin", "main"))
	assert.Equal(t, "git", client.Executable())
}
