package store

import (
	"path/filepath"
	"strings"
)

// canonicalize resolves path against root into a cleaned absolute path.
// Relative inputs are anchored at the store root, not the process cwd,
// so "doc.md" and "./doc.md" land on the same file regardless of where
// the caller happens to be.
func canonicalize(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// logicalKey derives the map key for a canonical path: relative to the
// root when the file lives under it, absolute otherwise. Keys are what
// List and Status report and what the state file is keyed by.
func logicalKey(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}

// Key returns the logical key the store would use for path, whether or
// not the path is tracked. Callers like the watch daemon use it to
// match filesystem events against tracked documents.
func (s *Store) Key(path string) string {
	return logicalKey(s.root, canonicalize(s.root, path))
}
