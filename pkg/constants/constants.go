// Package constants provides shared constants used throughout the vodmap codebase.
// This includes timeouts, pacing delays, search defaults, and file permissions
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the timeout for code search requests
	DefaultHTTPTimeout = 30 * time.Second

	// FetchTimeout bounds a single raw content download
	FetchTimeout = 10 * time.Second

	// ProbeTimeout bounds a single liveness probe
	ProbeTimeout = 5 * time.Second

	// ShutdownTimeout is how long the CLI waits for cleanup after an error
	ShutdownTimeout = 5 * time.Second
)

// Pacing constants are the fixed delays used to stay under remote rate limits
const (
	// PageDelay is the pause after every processed search results page
	PageDelay = 5 * time.Second

	// FetchDelay is the pause after every processed file, whatever the outcome
	FetchDelay = 2 * time.Second

	// ProbeDelay is the pause after every liveness probe, whatever the outcome
	ProbeDelay = 1 * time.Second
)

// Search constants describe the code search query
const (
	// SearchAPIURL is the GitHub code search endpoint
	SearchAPIURL = "https://api.github.com/search/code"

	// SearchAccept pins the code search API version
	SearchAccept = "application/vnd.github.v3+json"

	// SearchQuery finds JSON files mentioning the target path
	SearchQuery = `"api.php/provide/vod"+in:file+extension:json`

	// TargetFragment is the path fragment every candidate URL must contain
	TargetFragment = "api.php/provide/vod"

	// DefaultPageSize is the number of search results requested per page
	DefaultPageSize = 100

	// MaxPageSize is the largest page the code search API accepts
	MaxPageSize = 100
)

// Catalog constants
const (
	// DefaultCatalogPath is where the catalog lives when none is configured
	DefaultCatalogPath = "test.json"

	// DefaultGroup is the classification tag stamped on discovered entries
	DefaultGroup = "normal"

	// ProbeQuery is appended to a candidate's base address when probing
	ProbeQuery = "/?ac=list"

	// CatalogIndent is the indentation used when writing the catalog file
	CatalogIndent = "    "
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// EnvToken is the environment variable holding the code search token.
const EnvToken = "GH_TOKEN"

// UserAgent identifies vodmap to remote services. The CLI appends its
// build version.
const UserAgent = "vodmap"
