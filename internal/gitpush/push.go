package gitpush

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Step is the outcome of one stage of a publish run.
type Step struct {
	Name   string
	OK     bool
	Output string
}

// Options describes one publish run.
type Options struct {
	RepoPath  string
	StorePath string
	Remote    string
	Branch    string
	Message   string
	Author    string
	Email     string
}

// Push stages the rule store, commits it, and pushes the branch. Every
// stage appends a step; the first failure stops the run. A worktree with no
// changes to the store is reported as a successful no-op.
func Push(opts Options) []Step {
	var steps []Step
	fail := func(name string, err error) []Step {
		return append(steps, Step{Name: name, Output: err.Error()})
	}

	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return fail("open repository", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fail("open repository", err)
	}
	steps = append(steps, Step{Name: "open repository", OK: true, Output: opts.RepoPath})

	rel, err := filepath.Rel(wt.Filesystem.Root(), opts.StorePath)
	if err != nil {
		return fail("stage rules file", fmt.Errorf("rules file outside repository: %w", err))
	}
	if _, err := wt.Add(rel); err != nil {
		return fail("stage rules file", err)
	}
	steps = append(steps, Step{Name: "stage rules file", OK: true, Output: rel})

	status, err := wt.Status()
	if err != nil {
		return fail("commit", err)
	}
	// Only the store file is staged; unrelated worktree changes must not
	// turn an unchanged store into a failed publish.
	fs, tracked := status[filepath.ToSlash(rel)]
	if !tracked || fs.Staging == git.Unmodified {
		return append(steps, Step{Name: "commit", OK: true, Output: "nothing to commit, rules file unchanged"})
	}

	commit, err := wt.Commit(opts.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.Author,
			Email: opts.Email,
			When:  time.Now(),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return append(steps, Step{Name: "commit", OK: true, Output: "nothing to commit, rules file unchanged"})
	}
	if err != nil {
		return fail("commit", err)
	}
	steps = append(steps, Step{Name: "commit", OK: true, Output: commit.String()[:7]})

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", opts.Branch, opts.Branch))
	err = repo.Push(&git.PushOptions{
		RemoteName: opts.Remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	switch err {
	case nil:
		steps = append(steps, Step{Name: "push", OK: true,
			Output: fmt.Sprintf("%s -> %s", opts.Branch, opts.Remote)})
	case git.NoErrAlreadyUpToDate:
		steps = append(steps, Step{Name: "push", OK: true, Output: "already up to date"})
	default:
		return fail("push", err)
	}
	return steps
}

// Succeeded reports whether every step of a run passed.
func Succeeded(steps []Step) bool {
	for _, s := range steps {
		if !s.OK {
			return false
		}
	}
	return len(steps) > 0
}

// CurrentBranch returns the checked-out branch name, or an error when HEAD
// is detached or the path is not a repository.
func CurrentBranch(repoPath string) (string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}
