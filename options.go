package stockyard

import (
	"github.com/rs/zerolog"

	"github.com/stockyard/stockyard/pkg/logging"
)

// Option configures a Client during construction.
type Option func(*options)

// options holds the resolved client options.
type options struct {
	path     string
	readOnly bool
	logger   zerolog.Logger
}

// defaults returns the default client options: in-memory catalog, writable,
// logging through the package default logger.
func defaults() *options {
	return &options{
		logger: *logging.Default(),
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPath backs the catalog with the line store at the given path.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithMemory keeps the catalog purely in-memory (the default).
func WithMemory() Option {
	return func(o *options) {
		o.path = ""
	}
}

// WithReadOnly rejects every mutating catalog operation.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithLogger sets the logger used by the catalog and carts.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
