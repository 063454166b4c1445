package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/stockyard/stockyard/pkg/logging"
)

// Option configures a catalog during construction.
type Option func(*catalogOptions)

// catalogOptions holds the resolved construction options.
type catalogOptions struct {
	path     string // backing store path; empty means in-memory
	readOnly bool
	autoLoad bool
	logger   zerolog.Logger
}

// catalogDefaults returns the default options: in-memory, writable,
// auto-loading, logging through the package default logger.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		autoLoad: true,
		logger:   *logging.Default(),
	}
}

// apply applies the given options in order.
func (o *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPath makes the catalog file-backed, loading from and persisting to
// the given line store path.
func WithPath(path string) Option {
	return func(o *catalogOptions) {
		o.path = path
	}
}

// WithMemory makes the catalog purely in-memory. This is the default;
// the option exists to state the choice explicitly.
func WithMemory() Option {
	return func(o *catalogOptions) {
		o.path = ""
	}
}

// WithReadOnly rejects every mutating operation with ErrReadOnly.
func WithReadOnly() Option {
	return func(o *catalogOptions) {
		o.readOnly = true
	}
}

// WithAutoLoad controls whether a file-backed catalog loads its store
// during construction. Defaults to true.
func WithAutoLoad(autoLoad bool) Option {
	return func(o *catalogOptions) {
		o.autoLoad = autoLoad
	}
}

// WithLogger sets the logger used for catalog events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *catalogOptions) {
		o.logger = logger
	}
}
