// Package app provides the application context and dependency management
// for the shelf CLI. It centralizes configuration, logging, and access to
// the book collection and the remote catalog client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shelfctl/shelf/internal/cmd/output"
	"github.com/shelfctl/shelf/internal/sources/googlebooks"
	"github.com/shelfctl/shelf/internal/store"
	"github.com/shelfctl/shelf/pkg/books"
	"github.com/shelfctl/shelf/pkg/errors"
)

// App represents the shelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Lazily-initialized singletons
	mu      sync.Mutex
	library *books.Library
	catalog *googlebooks.Client
}

// Option customizes an App during construction.
type Option func(*App) error

// WithConfig replaces the loaded configuration. Mainly for tests.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLibrary injects a pre-opened library, bypassing the backing file.
// Mainly for tests.
func WithLibrary(library *books.Library) Option {
	return func(a *App) error {
		a.library = library
		return nil
	}
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
		return nil, errors.New("loading configuration: " + err.Error())
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

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Library returns the book collection, loading the backing file on first
// use. An absent file yields an empty collection.
func (a *App) Library(ctx context.Context) (*books.Library, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.library != nil {
		return a.library, nil
	}

	path := a.config.LibraryPath
	a.logger.Debug().Str("file", path).Msg("opening library")

	library, err := books.Open(ctx, store.NewCSV(path).WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.library = library
	return a.library, nil
}

// Catalog returns the remote catalog client, creating it on first use.
func (a *App) Catalog() *googlebooks.Client {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog == nil {
		a.catalog = googlebooks.New(
			googlebooks.WithBaseURL(a.config.CatalogURL),
			googlebooks.WithTimeout(a.config.HTTPTimeout),
		)
	}
	return a.catalog
}

// Format returns the effective output format for the current run.
func (a *App) Format() output.Format {
	return output.DetectFormat(a.config.Format)
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}
