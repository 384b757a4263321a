// Package git answers repository queries with go-git and runs the git client
// for operations that change the working tree.
package git

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/core/ports"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.trai.ch/zerr"
)

const (
	// Executable is the git client program name.
	Executable = "git"

	shortHashLen = 7
	dirtySuffix  = "-dirty"

	// maxCandidates bounds how many reachable tags are compared.
	maxCandidates = 10
)

var _ ports.VCS = (*Client)(nil)

// Client implements ports.VCS for the repository containing repoPath.
type Client struct {
	repoPath string
	executor ports.Executor
	stdout   io.Writer
	stderr   io.Writer
}

// NewClient creates a new Client. Mutating operations run the git client
// through executor and stream its output to stdout and stderr.
func NewClient(repoPath string, executor ports.Executor, stdout, stderr io.Writer) *Client {
	return &Client{
		repoPath: repoPath,
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Executable returns the git client program name.
func (c *Client) Executable() string {
	return Executable
}

// IsClean reports whether the working tree has no changes. Untracked files
// count as changes.
func (c *Client) IsClean(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	status, err := c.status()
	if err != nil {
		return false, err
	}
	return status.IsClean(), nil
}

// Stash runs "git stash".
func (c *Client) Stash(ctx context.Context) error {
	return c.run(ctx, "stash")
}

// Pull runs "git pull <remote> <branch>".
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	return c.run(ctx, "pull", remote, branch)
}

// Describe names HEAD after the nearest reachable tag, lightweight tags
// included. It returns "<tag>" when HEAD is tagged, "<tag>-<n>-g<hash>"
// where n counts the commits reachable from HEAD but not from the tag, or
// the abbreviated hash when no tag is reachable. Tracked modifications add
// a "-dirty" suffix.
func (c *Client) Describe(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := c.open()
	if err != nil {
		return "", err
	}

	head, err := headRef(repo)
	if err != nil {
		return "", err
	}

	tags, err := tagsByCommit(repo)
	if err != nil {
		return "", err
	}

	name, depth, err := nearestTag(repo, head.Hash(), tags)
	if err != nil {
		return "", err
	}

	short := head.Hash().String()[:shortHashLen]
	description := short
	switch {
	case name != "" && depth == 0:
		description = name
	case name != "":
		description = fmt.Sprintf("%s-%d-g%s", name, depth, short)
	}

	dirty, err := c.hasTrackedChanges()
	if err != nil {
		return "", err
	}
	if dirty {
		description += dirtySuffix
	}
	return description, nil
}

// ShortCommit returns the abbreviated hash of HEAD.
func (c *Client) ShortCommit(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := c.open()
	if err != nil {
		return "", err
	}

	head, err := headRef(repo)
	if err != nil {
		return "", err
	}
	return head.Hash().String()[:shortHashLen], nil
}

func (c *Client) run(ctx context.Context, args ...string) error {
	cmd := domain.NewCommand(Executable, args...)
	cmd.Dir = c.repoPath
	cmd.Interactive = true
	return c.executor.Execute(ctx, cmd, c.stdout, c.stderr)
}

func (c *Client) open() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(c.repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, zerr.With(domain.ErrNotARepository, "path", c.repoPath)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open repository"), "path", c.repoPath)
	}
	return repo, nil
}

func (c *Client) status() (gogit.Status, error) {
	repo, err := c.open()
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open worktree")
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read worktree status")
	}
	return status, nil
}

// hasTrackedChanges ignores untracked files, matching "git describe --dirty".
func (c *Client) hasTrackedChanges() (bool, error) {
	status, err := c.status()
	if err != nil {
		return false, err
	}

	for _, file := range status {
		if file.Staging == gogit.Untracked && file.Worktree == gogit.Untracked {
			continue
		}
		if file.Staging != gogit.Unmodified || file.Worktree != gogit.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

func headRef(repo *gogit.Repository) (*plumbing.Reference, error) {
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, domain.ErrNoCommits
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve HEAD")
	}
	return head, nil
}

// tagsByCommit maps each tagged commit to its tag name. Annotated tags are
// peeled to their commit; tags of other objects are skipped. When a commit
// carries several tags the lexically smallest name wins.
func tagsByCommit(repo *gogit.Repository) (map[plumbing.Hash]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list tags")
	}

	tags := make(map[plumbing.Hash]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := repo.TagObject(target); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				return nil
			}
			target = commit.Hash
		}

		name := ref.Name().Short()
		if existing, ok := tags[target]; !ok || name < existing {
			tags[target] = name
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read tags")
	}
	return tags, nil
}

// nearestTag chooses among the tags reachable from start the one that
// leaves the fewest commits reachable from start but not from the tag, and
// returns that count as the depth. Ties go to the smaller tag name.
func nearestTag(repo *gogit.Repository, start plumbing.Hash, tags map[plumbing.Hash]string) (string, int, error) {
	if len(tags) == 0 {
		return "", 0, nil
	}

	reachable, order, err := ancestry(repo, start)
	if err != nil {
		return "", 0, err
	}

	var candidates []plumbing.Hash
	for _, hash := range order {
		if _, ok := tags[hash]; ok {
			candidates = append(candidates, hash)
			if len(candidates) == maxCandidates {
				break
			}
		}
	}

	name, depth := "", -1
	for _, candidate := range candidates {
		covered, _, err := ancestry(repo, candidate)
		if err != nil {
			return "", 0, err
		}

		n := 0
		for hash := range reachable {
			if _, ok := covered[hash]; !ok {
				n++
			}
		}

		if tag := tags[candidate]; depth == -1 || n < depth || (n == depth && tag < name) {
			name, depth = tag, n
		}
	}

	if name == "" {
		return "", 0, nil
	}
	return name, depth, nil
}

// ancestry returns every commit reachable from start, start included, as a
// set and in walk order.
func ancestry(repo *gogit.Repository, start plumbing.Hash) (map[plumbing.Hash]struct{}, []plumbing.Hash, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: start})
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to read history")
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	var order []plumbing.Hash
	err = iter.ForEach(func(commit *object.Commit) error {
		seen[commit.Hash] = struct{}{}
		order = append(order, commit.Hash)
		return nil
	})
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to walk history")
	}
	return seen, order, nil
}
