package gitpush

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo creates a worktree with one commit and a local bare remote.
func setupRepo(t *testing.T) (repoPath, storePath string) {
	t.Helper()
	dir := t.TempDir()
	repoPath = filepath.Join(dir, "work")
	barePath := filepath.Join(dir, "remote.git")

	_, err := git.PlainInit(barePath, true)
	require.NoError(t, err)

	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{barePath},
	})
	require.NoError(t, err)

	storePath = filepath.Join(repoPath, "extracted_rules.json")
	require.NoError(t, os.WriteFile(storePath, []byte(`{"rules": []}`), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("extracted_rules.json")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return repoPath, storePath
}

func defaultOpts(repoPath, storePath string) Options {
	return Options{
		RepoPath:  repoPath,
		StorePath: storePath,
		Remote:    "origin",
		Branch:    "master",
		Message:   "Add new rules",
		Author:    "stdguard",
		Email:     "stdguard@example.com",
	}
}

func TestPush(t *testing.T) {
	repoPath, storePath := setupRepo(t)
	require.NoError(t, os.WriteFile(storePath, []byte(`{"rules": [{"rule_id": "R001"}]}`), 0o644))

	steps := Push(defaultOpts(repoPath, storePath))
	require.True(t, Succeeded(steps), "steps: %+v", steps)
	require.Len(t, steps, 4)
	assert.Equal(t, "open repository", steps[0].Name)
	assert.Equal(t, "stage rules file", steps[1].Name)
	assert.Equal(t, "commit", steps[2].Name)
	assert.Equal(t, "push", steps[3].Name)
}

func TestPushNothingToCommit(t *testing.T) {
	repoPath, storePath := setupRepo(t)

	steps := Push(defaultOpts(repoPath, storePath))
	require.True(t, Succeeded(steps), "steps: %+v", steps)
	last := steps[len(steps)-1]
	assert.Equal(t, "commit", last.Name)
	assert.Contains(t, last.Output, "nothing to commit")
}

func TestPushUnchangedStoreDirtyWorktree(t *testing.T) {
	repoPath, storePath := setupRepo(t)
	// Unrelated untracked file; the store itself is unchanged.
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "scratch.txt"), []byte("wip"), 0o644))

	steps := Push(defaultOpts(repoPath, storePath))
	require.True(t, Succeeded(steps), "steps: %+v", steps)
	last := steps[len(steps)-1]
	assert.Equal(t, "commit", last.Name)
	assert.Contains(t, last.Output, "nothing to commit")
}

func TestPushNotARepository(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "extracted_rules.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{}"), 0o644))

	steps := Push(defaultOpts(dir, storePath))
	assert.False(t, Succeeded(steps))
	assert.Equal(t, "open repository", steps[len(steps)-1].Name)
}

func TestPushBadRemote(t *testing.T) {
	repoPath, storePath := setupRepo(t)
	require.NoError(t, os.WriteFile(storePath, []byte(`{"rules": [{"rule_id": "R002"}]}`), 0o644))

	opts := defaultOpts(repoPath, storePath)
	opts.Remote = "upstream"
	steps := Push(opts)
	assert.False(t, Succeeded(steps))
	assert.Equal(t, "push", steps[len(steps)-1].Name)
}

func TestSucceededEmpty(t *testing.T) {
	assert.False(t, Succeeded(nil))
}

func TestCurrentBranch(t *testing.T) {
	repoPath, _ := setupRepo(t)

	branch, err := CurrentBranch(repoPath)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestCurrentBranchNotARepo(t *testing.T) {
	_, err := CurrentBranch(t.TempDir())
	assert.Error(t, err)
}
