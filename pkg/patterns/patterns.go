package patterns

import (
	"path/filepath"
	"strings"

	"github.com/bundlekit/stylerules/pkg/types"
)

// Pattern is a pure, total predicate over a candidate
type Pattern interface {
	// Name returns the pattern kind for logging and rule listings
	Name() string

	// Describe returns a human-readable description of this pattern
	Describe() string

	// Match reports whether the candidate satisfies this pattern
	Match(c types.Candidate) bool
}

// hasSegment reports whether any path segment equals one of the names
func hasSegment(path string, names []string) bool {
	if path == "" || len(names) == 0 {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		for _, name := range names {
			if segment == name {
				return true
			}
		}
	}
	return false
}

// withinDir reports whether path is dir or lies underneath it
func withinDir(path, dir string) bool {
	if path == "" || dir == "" {
		return false
	}
	path = filepath.ToSlash(filepath.Clean(path))
	dir = filepath.ToSlash(filepath.Clean(dir))
	return path == dir || strings.HasPrefix(path, dir+"/")
}
