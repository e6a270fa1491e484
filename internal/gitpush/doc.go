// Package gitpush publishes the rule store to a git remote.
//
// The flow mirrors add, commit, push, with each stage reported separately so
// the CLI can show exactly where a failing publish stopped. A clean worktree
// counts as success.
package gitpush
