// Package store implements the version store: every tracked document,
// its full snapshot history, and the persistence protocol around them.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/aretw0/strata/pkg/core"
	"github.com/aretw0/strata/pkg/diff"
)

// Store holds all tracked documents keyed by logical path and persists
// the whole map to the state file after every mutation.
//
// A Store is synchronous and not safe for concurrent in-process callers;
// callers that need concurrency must serialize access themselves.
// Cross-process writers against the same state file are last-writer-wins.
type Store struct {
	root      string
	statePath string
	fs        afero.Fs
	logger    *slog.Logger
	documents map[string]*core.Document
}

// Config holds the configuration for a Store.
type Config struct {
	Root      string
	Fs        afero.Fs // defaults to the OS filesystem
	Logger    *slog.Logger
	SystemDir string // e.g. ".strata"
	MustExist bool   // require an initialized store (system dir present)
}

// DefaultSystemDir is the hidden directory holding the state file.
const DefaultSystemDir = ".strata"

// Open constructs a Store rooted at cfg.Root, loading the persisted
// state if present. State is read once, here; after that the in-memory
// map is authoritative until the next process.
func Open(cfg Config) (*Store, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", cfg.Root, err)
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	systemDir := cfg.SystemDir
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	if cfg.MustExist {
		info, err := fs.Stat(filepath.Join(root, systemDir))
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("no store found at %s (run 'strata init'): %w", root, core.ErrNotFound)
		}
	}

	statePath := filepath.Join(root, systemDir, StateFileName)
	documents, err := loadState(fs, statePath)
	if err != nil {
		return nil, err
	}

	logger.Debug("store opened", "root", root, "documents", len(documents))

	return &Store{
		root:      root,
		statePath: statePath,
		fs:        fs,
		logger:    logger,
		documents: documents,
	}, nil
}

// Init creates the system directory and an empty state file at
// cfg.Root. It reports whether anything was created; calling it on an
// already-initialized store is a no-op.
func Init(cfg Config) (bool, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return false, fmt.Errorf("failed to resolve root %s: %w", cfg.Root, err)
	}
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	systemDir := cfg.SystemDir
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	statePath := filepath.Join(root, systemDir, StateFileName)
	if _, err := fs.Stat(statePath); err == nil {
		return false, nil
	}

	if err := saveState(fs, statePath, map[string]*core.Document{}); err != nil {
		return false, err
	}
	return true, nil
}

// Root returns the absolute root directory of the store.
func (s *Store) Root() string {
	return s.root
}

// Track starts versioning a file: it reads the current content and
// records it as version 1. Tracking an already-tracked path fails;
// Update is the operation for subsequent snapshots.
func (s *Store) Track(path string, metadata map[string]string) (*core.Document, error) {
	abs := canonicalize(s.root, path)
	key := logicalKey(s.root, abs)

	if _, ok := s.documents[key]; ok {
		return nil, fmt.Errorf("%s: %w (use update)", key, core.ErrAlreadyTracked)
	}

	content, err := s.readFile(abs)
	if err != nil {
		return nil, err
	}

	doc := core.NewDocument(path, abs, content, metadata)
	s.documents[key] = doc

	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info("document tracked", "path", key, "version", 1)
	return doc, nil
}

// Update takes a new snapshot of a tracked file if its content changed.
// The boolean result distinguishes "new version recorded" from the
// normal unchanged case, which creates nothing and persists nothing.
func (s *Store) Update(path string, metadata map[string]string) (*core.Version, bool, error) {
	doc, key, err := s.lookup(path)
	if err != nil {
		return nil, false, err
	}

	content, err := s.readFile(doc.Path)
	if err != nil {
		return nil, false, err
	}

	if !doc.HasChanged(content) {
		s.logger.Debug("document unchanged", "path", key, "version", doc.CurrentVersion)
		return nil, false, nil
	}

	v := doc.Append(content, metadata)
	if err := s.persist(); err != nil {
		return nil, false, err
	}

	s.logger.Info("version recorded", "path", key, "version", v.Number)
	return &v, true, nil
}

// Get returns the tracked Document for path.
func (s *Store) Get(path string) (*core.Document, error) {
	doc, _, err := s.lookup(path)
	return doc, err
}

// History returns the full ordered version list for path.
func (s *Store) History(path string) ([]core.Version, error) {
	doc, _, err := s.lookup(path)
	if err != nil {
		return nil, err
	}
	return doc.Versions, nil
}

// Summary describes one tracked document for listings.
type Summary struct {
	Path       string    `json:"path"`
	Name       string    `json:"name"`
	Versions   int       `json:"versions"`
	LastUpdate time.Time `json:"last_update"`
}

// List enumerates all tracked documents, ordered by logical path.
func (s *Store) List() []Summary {
	out := make([]Summary, 0, len(s.documents))
	for key, doc := range s.documents {
		out = append(out, Summary{
			Path:       key,
			Name:       doc.Name,
			Versions:   len(doc.Versions),
			LastUpdate: doc.LastUpdate(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Restore writes the content of the given version back to disk,
// verbatim. An empty output path means the document's own location.
// The store itself is not mutated, so nothing is re-persisted.
func (s *Store) Restore(path string, number int, output string) (*core.Version, error) {
	doc, key, err := s.lookup(path)
	if err != nil {
		return nil, err
	}

	v, err := doc.ByNumber(number)
	if err != nil {
		return nil, err
	}

	target := doc.Path
	if output != "" {
		target = canonicalize(s.root, output)
	}

	if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeFileAtomic(s.fs, target, []byte(v.Content), 0644); err != nil {
		return nil, err
	}

	s.logger.Info("version restored", "path", key, "version", v.Number, "output", target)
	return &v, nil
}

// Diff compares two versions of a document line by line.
func (s *Store) Diff(path string, a, b int) ([]diff.Line, error) {
	doc, _, err := s.lookup(path)
	if err != nil {
		return nil, err
	}

	va, err := doc.ByNumber(a)
	if err != nil {
		return nil, err
	}
	vb, err := doc.ByNumber(b)
	if err != nil {
		return nil, err
	}

	return diff.Lines(va.Content, vb.Content), nil
}

// StatusEntry reports whether one tracked file has drifted from its
// latest recorded snapshot. Err carries a per-file read failure; the
// scan itself never fails.
type StatusEntry struct {
	Path     string `json:"path"`
	Modified bool   `json:"modified"`
	Err      error  `json:"-"`
}

// Status re-reads every tracked file and compares it against the latest
// stored snapshot, ordered by logical path.
func (s *Store) Status() []StatusEntry {
	out := make([]StatusEntry, 0, len(s.documents))
	for key, doc := range s.documents {
		entry := StatusEntry{Path: key}
		content, err := s.readFile(doc.Path)
		if err != nil {
			entry.Err = err
		} else {
			entry.Modified = doc.HasChanged(content)
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// lookup finds the tracked document for path, surfacing ErrNotFound for
// untracked paths. It never creates a document.
func (s *Store) lookup(path string) (*core.Document, string, error) {
	abs := canonicalize(s.root, path)
	key := logicalKey(s.root, abs)

	doc, ok := s.documents[key]
	if !ok {
		return nil, key, fmt.Errorf("document %s is not tracked: %w", key, core.ErrNotFound)
	}
	return doc, key, nil
}

// readFile reads a file's full content, mapping a missing file onto the
// domain's NotFound error.
func (s *Store) readFile(abs string) (string, error) {
	data, err := afero.ReadFile(s.fs, abs)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file %s: %w", abs, core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", abs, err)
	}
	return string(data), nil
}

// persist serializes the whole document map to the state file. Every
// successful mutation goes through here before it is reported as done.
func (s *Store) persist() error {
	if err := saveState(s.fs, s.statePath, s.documents); err != nil {
		return err
	}
	s.logger.Debug("state saved", "documents", len(s.documents), "path", s.statePath)
	return nil
}
