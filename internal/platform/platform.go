// Package platform wires the store together: option parsing, root
// resolution, and the dev-run sandbox.
package platform

import (
	"github.com/aretw0/strata/pkg/store"
)

// Open constructs a Store rooted at root, loading persisted state.
func Open(root string, opts ...Option) (*store.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return store.Open(store.Config{
		Root:      resolveRoot(root, o),
		Fs:        o.fs,
		Logger:    o.logger,
		SystemDir: o.systemDir,
		MustExist: o.mustExist,
	})
}

// Init creates the system directory and an empty state file at root.
// It reports whether anything was created.
func Init(root string, opts ...Option) (bool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return store.Init(store.Config{
		Root:      resolveRoot(root, o),
		Fs:        o.fs,
		SystemDir: o.systemDir,
	})
}

// resolveRoot applies the dev-run sandbox: a `go run` experiment on the
// real filesystem gets re-rooted into a temp directory. An injected
// filesystem is already sandboxed by construction and is left alone.
func resolveRoot(root string, o *options) string {
	forceTemp := o.devSafety && o.fs == nil && IsDevRun()
	return ResolveStorePath(root, forceTemp)
}
