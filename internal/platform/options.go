package platform

import (
	"log/slog"

	"github.com/spf13/afero"
)

// options holds the internal configuration for opening a store.
type options struct {
	fs        afero.Fs
	logger    *slog.Logger
	systemDir string
	mustExist bool
	devSafety bool
}

// Option defines a functional option for configuring Strata.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		fs:        nil, // store defaults to the OS filesystem
		logger:    nil,
		systemDir: "",
		mustExist: false,
		devSafety: true,
	}
}

// WithFs injects a custom filesystem (e.g. afero.NewMemMapFs() in tests).
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMustExist requires an already-initialized store at the root.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".strata").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), Strata re-roots cwd-default stores into a temporary
// directory so experiments never touch a real store.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
