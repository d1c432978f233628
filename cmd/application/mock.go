package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/vodmap/internal/discover"
	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	CatalogFunc      func() (catalogs.Catalog, catalogs.LoadStatus, error)
	CatalogPathValue string
	DiscoverFunc     func(ctx context.Context, opts ...discover.Option) (*discover.Result, error)
	CheckerValue     probe.Checker
	FormatValue      string
	VersionValue     string
}

var _ Application = (*Mock)(nil)

// Catalog returns a catalog using the mock function or an empty one.
func (m *Mock) Catalog() (catalogs.Catalog, catalogs.LoadStatus, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return catalogs.Catalog{}, catalogs.Missing, nil
}

// CatalogPath returns the mock catalog path.
func (m *Mock) CatalogPath() string {
	return m.CatalogPathValue
}

// Discover runs the mock function or returns an empty result.
func (m *Mock) Discover(ctx context.Context, opts ...discover.Option) (*discover.Result, error) {
	if m.DiscoverFunc != nil {
		return m.DiscoverFunc(ctx, opts...)
	}
	return &discover.Result{CatalogPath: m.CatalogPathValue}, nil
}

// Checker returns the mock checker.
func (m *Mock) Checker() probe.Checker {
	return m.CheckerValue
}

// Pacing returns no delays.
func (m *Mock) Pacing() pacing.Policy {
	return pacing.None()
}

// Logger returns a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the mock format.
func (m *Mock) OutputFormat() string {
	return m.FormatValue
}

// Version returns the mock version.
func (m *Mock) Version() string {
	if m.VersionValue == "" {
		return "dev"
	}
	return m.VersionValue
}

// Commit returns a fixed commit.
func (m *Mock) Commit() string { return "unknown" }

// Date returns a fixed build date.
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns a fixed builder.
func (m *Mock) BuiltBy() string { return "test" }
