// Package gitrepo wraps access to the local Git repository. History
// queries go through go-git; the staged diff and push shell out to the
// git binary, which is the only producer of index-vs-HEAD unified diff
// text and the only path that reuses the user's credential helpers.
package gitrepo

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"

	"github.com/luisfpatrocinio/patro/internal/window"
)

var (
	ErrNotARepository = errors.New("not a git repository")
	ErrGitNotFound    = errors.New("git command not found in PATH")
)

// TimestampLayout is how author times are rendered in reports.
const TimestampLayout = "2006-01-02 15:04:05"

// Repo is an open repository handle. All operations are synchronous and
// hold no state beyond the underlying repository.
type Repo struct {
	repo *git.Repository
	dir  string
}

// Open opens the repository at path. A missing or invalid repository is
// fatal to every workflow, so this is the one precondition callers must
// check before doing anything else.
func Open(path string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
	}
	return &Repo{repo: r, dir: path}, nil
}

// ListRevisions returns the hashes of commits whose author time falls in
// [w.Since, w.Until), newest first. An empty window yields an empty
// slice, not an error.
func (r *Repo) ListRevisions(w window.Window) ([]string, error) {
	iter, err := r.repo.Log(&git.LogOptions{Since: &w.Since, Until: &w.Until})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil // unborn branch, nothing committed yet
		}
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	var hashes []string
	err = iter.ForEach(func(c *object.Commit) error {
		if w.Contains(c.Author.When) {
			hashes = append(hashes, c.Hash.String())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return hashes, nil
}

var errEnough = errors.New("enough commits")

// ListRecent returns the hashes of the count most recent commits,
// newest first.
func (r *Repo) ListRecent(count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	iter, err := r.repo.Log(&git.LogOptions{})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	var hashes []string
	err = iter.ForEach(func(c *object.Commit) error {
		hashes = append(hashes, c.Hash.String())
		if len(hashes) >= count {
			return errEnough
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return hashes, nil
}

// Message returns the full commit message for hash. The second return is
// false on any lookup failure; a single bad revision never aborts the
// caller.
func (r *Repo) Message(hash string) (string, bool) {
	c, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(c.Message), true
}

// Timestamp returns the author time of hash formatted with
// TimestampLayout, in the author's local offset.
func (r *Repo) Timestamp(hash string) (string, bool) {
	c, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return "", false
	}
	return c.Author.When.Format(TimestampLayout), true
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// RemoteURL returns the first URL of the named remote, or "" if the
// remote does not exist.
func (r *Repo) RemoteURL(name string) string {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return ""
	}
	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return ""
	}
	return cfg.URLs[0]
}

// StagedDiff returns the unified diff of the index against HEAD, or ""
// when nothing is staged.
func (r *Repo) StagedDiff() (string, error) {
	return r.execGit("diff", "--cached")
}

// StagedDiffPattern is StagedDiff restricted to paths matching pattern.
func (r *Repo) StagedDiffPattern(pattern string) (string, error) {
	return r.execGit("diff", "--cached", "--", pattern)
}

// AddAll stages every change in the worktree.
func (r *Repo) AddAll() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes with message and returns the new
// commit hash. Author identity comes from the user's git config.
func (r *Repo) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}
	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String(), nil
}

// Push pushes the current branch through the git binary so the user's
// configured credential helpers apply.
func (r *Repo) Push() error {
	_, err := r.execGit("push")
	return err
}

func (r *Repo) execGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}
