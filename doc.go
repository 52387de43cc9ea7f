// Package strata is the Composition Root for the Strata library.
//
// It connects the version store core (pkg/store, pkg/core) with the
// supporting packages (diff, frontmatter, watch) behind a small facade.
//
// Philosophy:
//
// Strata is a local version-tracking store for text documents. It records
// successive full-content snapshots of tracked files together with
// metadata (author, message), a timestamp, and a content hash, and can
// inspect history, restore any prior snapshot byte-for-byte, and diff
// any two snapshots line by line.
//
// Features:
//
//   - **Full-content snapshots**: every version stores the complete text, so restore is trivial and exact.
//   - **Change detection by hash**: an update with unchanged content records nothing.
//   - **Single state file**: the whole store serializes to one JSON file under a hidden directory, replaced atomically on every mutation.
//   - **Line diffs**: any two versions of a document compare as added/removed/unchanged lines.
//   - **Watch automation**: an optional daemon captures versions as tracked files change on disk.
//
// Usage:
//
//	// Initialize a store, then open it
//	_, err := strata.Init("./docs")
//	st, err := strata.Open("./docs", strata.WithLogger(logger))
//
//	// Track a file and record an update
//	doc, err := st.Track("README.md", map[string]string{"author": "ana"})
//	v, changed, err := st.Update("README.md", nil)
package strata
