// Package app provides the application context and dependency management
// for the vodmap CLI. It centralizes configuration, logging, and the
// construction of the discovery pipeline.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/discover"
	"github.com/agentstation/vodmap/internal/cmd/output"
	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// App represents the vodmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Prober (lazy-initialized, singleton)
	mu      sync.Mutex
	checker probe.Checker
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with the loaded configuration, which can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
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

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the explicit output format, or one detected from
// the terminal.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// UserAgent returns the User-Agent sent to remote services.
func (a *App) UserAgent() string {
	return constants.UserAgent + "/" + a.version
}

// CatalogPath returns the configured catalog file path.
func (a *App) CatalogPath() string {
	return a.config.CatalogPath
}

// Catalog loads the configured catalog file.
func (a *App) Catalog() (catalogs.Catalog, catalogs.LoadStatus, error) {
	return catalogs.Load(a.config.CatalogPath)
}

// Pacing returns the delay policy, or no delays when disabled.
func (a *App) Pacing() pacing.Policy {
	if a.config.NoDelay {
		return pacing.None()
	}
	return pacing.Default()
}

// Checker returns the liveness prober, creating it lazily if needed.
func (a *App) Checker() probe.Checker {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.checker == nil {
		a.checker = probe.NewProber(nil, a.UserAgent())
	}
	return a.checker
}

// Discover runs the discovery pipeline. Options built from the
// configuration are applied first, then opts.
func (a *App) Discover(ctx context.Context, opts ...discover.Option) (*discover.Result, error) {
	return discover.Run(ctx, append(a.discoverOptions(), opts...)...)
}

// Shutdown performs graceful shutdown of the application.
// Nothing runs in the background, so it only flushes a final log line.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// discoverOptions constructs discovery options from the app configuration.
func (a *App) discoverOptions() []discover.Option {
	return []discover.Option{
		discover.WithCatalogPath(a.config.CatalogPath),
		discover.WithGroup(a.config.Group),
		discover.WithQuery(a.config.Query),
		discover.WithPageSize(a.config.PerPage),
		discover.WithMaxPages(a.config.MaxPages),
		discover.WithSearchAPIURL(a.config.SearchAPIURL),
		discover.WithToken(a.config.GitHubToken),
		discover.WithUserAgent(a.UserAgent()),
		discover.WithPacing(a.Pacing()),
		discover.WithChecker(a.Checker()),
	}
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

// WithChecker sets a custom liveness checker (useful for testing).
func WithChecker(checker probe.Checker) Option {
	return func(a *App) error {
		a.checker = checker
		return nil
	}
}
