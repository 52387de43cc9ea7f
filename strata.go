package strata

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/aretw0/strata/internal/platform"
	"github.com/aretw0/strata/pkg/store"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Store is a public alias for the version store.
type Store = store.Store

// Summary is a public alias for a document listing entry.
type Summary = store.Summary

// StatusEntry is a public alias for a status scan entry.
type StatusEntry = store.StatusEntry

// --- Configuration ---

// Option defines a functional option for configuring Strata.
type Option = platform.Option

// WithFs injects a custom filesystem (e.g. afero.NewMemMapFs() in tests).
func WithFs(fs afero.Fs) Option {
	return platform.WithFs(fs)
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithMustExist requires an already-initialized store at the root.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".strata").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open constructs a Store rooted at root, loading persisted state.
func Open(root string, opts ...Option) (*store.Store, error) {
	return platform.Open(root, opts...)
}

// Init creates the hidden system directory and an empty state file at
// root. It reports whether anything was created; re-running it on an
// initialized store is a no-op.
func Init(root string, opts ...Option) (bool, error) {
	return platform.Init(root, opts...)
}

// --- Safety & Utils ---

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// ResolveStorePath determines the actual path for the store based on safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// FindRoot recursively looks upwards for a store root indicator.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
