// Package app provides the application context and dependency management
// for the stockyard CLI. It centralizes configuration, logging, and the
// stockyard client behind one struct that commands receive.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/stockyard/stockyard"
	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
)

// App represents the stockyard application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Stockyard client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client *stockyard.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the stockyard client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (*stockyard.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	opts := []stockyard.Option{
		stockyard.WithPath(a.config.StoreFile),
		stockyard.WithLogger(*a.logger),
	}
	if a.config.ReadOnly {
		opts = append(opts, stockyard.WithReadOnly())
	}

	client, err := stockyard.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", a.config.StoreFile, err)
	}

	a.client = client
	return client, nil
}

// Catalog returns the catalog from the stockyard client. This is a
// convenience method that handles client initialization and catalog
// retrieval in one call.
func (a *App) Catalog() (catalogs.Catalog, error) {
	client, err := a.Client()
	if err != nil {
		return nil, err
	}
	return client.Catalog(), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom stockyard client (useful for testing).
func WithClient(client *stockyard.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
