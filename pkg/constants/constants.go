// Package constants provides shared constants used throughout the shelf codebase.
// This includes timeouts, limits, and file permissions that should be consistent
// across the application.
package constants

import "time"

// Timeout constants define timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for catalog lookup requests.
	// Exceeding it is reported as a normal import failure, never a hang.
	DefaultHTTPTimeout = 15 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DefaultImportLimit is the number of catalog candidates requested per import
	DefaultImportLimit = 10

	// MaxImportLimit caps the number of candidates a single import may request
	MaxImportLimit = 40
)

// DefaultLibraryFile is the backing file used when no path is configured.
const DefaultLibraryFile = "library.csv"
