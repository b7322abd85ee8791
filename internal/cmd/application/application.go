// Package application defines the interface command packages use to reach
// application-level dependencies without importing the app package directly.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shelfctl/shelf/internal/cmd/output"
	"github.com/shelfctl/shelf/internal/sources/googlebooks"
	"github.com/shelfctl/shelf/pkg/books"
)

// Application is the dependency surface the cmd/shelf/app.App provides to
// every subcommand.
type Application interface {
	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// Library returns the loaded book collection, opening the backing
	// file on first use.
	Library(ctx context.Context) (*books.Library, error)

	// Catalog returns the remote catalog client used for imports.
	Catalog() *googlebooks.Client

	// Format returns the effective output format for the current run.
	Format() output.Format

	// NoColor reports whether colored output is disabled.
	NoColor() bool
}
