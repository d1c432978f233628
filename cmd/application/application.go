// Package application provides the application interface for vodmap commands.
//
// Commands accept an Application rather than the concrete App so they can
// be tested with a Mock:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (catalogs.Catalog, catalogs.LoadStatus, error) {
//	        return testCatalog, catalogs.Loaded, nil
//	    },
//	}
//	cmd := list.NewCommand(mock)
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/vodmap/internal/discover"
	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Application provides what commands need from the running CLI.
type Application interface {
	// Catalog loads the configured catalog file.
	Catalog() (catalogs.Catalog, catalogs.LoadStatus, error)

	// CatalogPath returns the configured catalog file path.
	CatalogPath() string

	// Discover runs the discovery pipeline with the configured options,
	// followed by opts.
	Discover(ctx context.Context, opts ...discover.Option) (*discover.Result, error)

	// Checker returns the liveness checker used for probes.
	Checker() probe.Checker

	// Pacing returns the configured delay policy.
	Pacing() pacing.Policy

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
