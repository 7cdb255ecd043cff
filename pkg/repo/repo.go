// Package repo locates git repositories beneath a base directory and
// answers ignore-rule queries against them.
package repo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"sweep/pkg/config"
)

// Repo is a discovered repository root.
type Repo struct {
	// Root is the absolute path of the repository's top-level directory.
	Root string
}

// Discover walks base up to maxDepth levels deep and returns the
// repositories found, sorted by path. A directory containing the repository
// marker is recorded and not descended into, so repositories nested inside
// another repository are not reported separately. Depth 0 means base itself
// may be a repository. Unreadable directories are skipped.
func Discover(base string, maxDepth int) []Repo {
	var repos []Repo
	collect(base, maxDepth, 0, &repos)
	sort.Slice(repos, func(i, j int) bool { return repos[i].Root < repos[j].Root })
	return repos
}

func collect(dir string, maxDepth, depth int, repos *[]Repo) {
	if depth > maxDepth {
		return
	}
	// The marker may be a directory or, for worktrees, a file.
	if _, err := os.Lstat(filepath.Join(dir, config.MarkerDir)); err == nil {
		*repos = append(*repos, Repo{Root: dir})
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		// ReadDir does not resolve symlinks, so IsDir is false for a
		// symlink to a directory and links are never followed.
		if !e.IsDir() {
			continue
		}
		collect(filepath.Join(dir, e.Name()), maxDepth, depth+1, repos)
	}
}

// Ignored reports whether rel, a directory path relative to the repository
// root, is excluded by the repository's ignore rules. The path is checked
// with a trailing separator so directory patterns such as "build/" match.
// The verdict comes from git itself; when the check cannot be performed
// (not a repository, git unavailable) the answer is false.
func (r Repo) Ignored(ctx context.Context, rel string) bool {
	rel = filepath.ToSlash(rel) + "/"
	cmd := exec.CommandContext(ctx, "git", "-C", r.Root, "check-ignore", "-q", "--", rel)
	// Exit status 0 means ignored, 1 not ignored, anything else an error.
	return cmd.Run() == nil
}
