// Package scan walks repositories looking for ignored build and cache
// directories, and fans the walk out across many repositories at once.
package scan

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"sweep/pkg/config"
	"sweep/pkg/disk"
	"sweep/pkg/repo"
)

// Candidate is an ignored target directory eligible for deletion.
type Candidate struct {
	// Path is the absolute path of the directory.
	Path string
	// Size is the byte total of regular files beneath Path, captured at
	// scan time.
	Size int64
	// Files is the number of regular files beneath Path.
	Files int
}

// Result pairs one repository with the candidates found beneath it, in
// walk discovery order.
type Result struct {
	Repo       repo.Repo
	Candidates []Candidate
}

// Scan walks the repository tree and returns its purge candidates. A
// directory whose basename is on the target allowlist is classified once
// and never descended into, whether or not it turns out to be ignored.
// Hidden directories that are not targets are skipped, as are symlinks.
// Unreadable directories yield nothing without aborting the walk.
func Scan(ctx context.Context, r repo.Repo) []Candidate {
	var out []Candidate
	walk(ctx, r, r.Root, &out)
	return out
}

func walk(ctx context.Context, r repo.Repo, dir string, out *[]Candidate) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)

		if config.IsTarget(name) {
			rel, err := filepath.Rel(r.Root, path)
			if err != nil {
				continue
			}
			if r.Ignored(ctx, rel) {
				size, files := disk.DirSize(path)
				slog.Debug("classified candidate",
					"path", path,
					"files", files,
					"size", humanize.IBytes(uint64(size)))
				*out = append(*out, Candidate{Path: path, Size: size, Files: files})
			}
			continue
		}

		// Skips .git along with every other hidden directory.
		if strings.HasPrefix(name, ".") {
			continue
		}
		walk(ctx, r, path, out)
	}
}

// Aggregate scans every repository concurrently and returns the results
// that produced at least one candidate, sorted by repository path. The
// repositories are disjoint subtrees, so the scans share nothing but the
// result list.
func Aggregate(ctx context.Context, repos []repo.Repo) []Result {
	var mu sync.Mutex
	var results []Result

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, r := range repos {
		r := r
		g.Go(func() error {
			candidates := Scan(ctx, r)
			if len(candidates) == 0 {
				return nil
			}
			mu.Lock()
			results = append(results, Result{Repo: r, Candidates: candidates})
			mu.Unlock()
			return nil
		})
	}
	// Scans degrade to empty results instead of failing.
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Repo.Root < results[j].Repo.Root
	})
	return results
}
