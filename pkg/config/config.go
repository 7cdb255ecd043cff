// Package config holds the static configuration for sweep: the allowlist of
// purgeable directory basenames and the discovery defaults.
package config

// DefaultDepth is the default maximum depth when searching for repositories.
const DefaultDepth = 3

// MarkerDir is the metadata directory that identifies a repository root.
const MarkerDir = ".git"

// targets is the fixed set of well-known build and cache directory
// basenames. Built once, read-only afterwards, safe to share across scan
// goroutines.
var targets = func() map[string]struct{} {
	names := []string{
		// Java / Gradle / Kotlin
		"build",
		".gradle",
		// .NET / generic
		"bin",
		"obj",
		// Node
		"node_modules",
		// Rust
		"target",
		// Python
		"__pycache__",
		".mypy_cache",
		".pytest_cache",
		".ruff_cache",
		".tox",
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}()

// IsTarget reports whether name is a known build or cache directory basename.
func IsTarget(name string) bool {
	_, ok := targets[name]
	return ok
}
