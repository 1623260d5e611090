package utils

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultIgnoredDirs are never descended into during a scan. Version-control
// metadata, editor state and dependency trees are not the user's source.
var defaultIgnoredDirs = []string{
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	".cache",
	"node_modules",
	"__pycache__",
	"vendor",
	"bin",
	"obj",
	"dist",
	"out",
}

// IsDefaultIgnored checks whether any path segment matches the built-in
// exclusion rules. Hidden directories are skipped wholesale; the scan root
// itself ("." segments) is not.
func IsDefaultIgnored(path string) bool {
	parts := strings.Split(path, string(filepath.Separator))
	for _, part := range parts {
		if part == "." || part == "" {
			continue
		}
		lower := strings.ToLower(part)
		for _, dir := range defaultIgnoredDirs {
			if lower == dir {
				return true
			}
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// IsWithin reports whether path sits at or below dir. The comparison respects
// path-segment boundaries, so /a/bc is never treated as inside /a/b. Both
// arguments must be absolute for the answer to be meaningful.
func IsWithin(path string, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// MatchesExcludeGlob checks a relative path against the configured exclusion
// globs. Patterns use doublestar syntax, so "**/generated/*.go" works as
// expected across directory levels.
func MatchesExcludeGlob(relPath string, patterns []string) bool {
	slashPath := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashPath); err == nil && ok {
			return true
		}
	}
	return false
}
