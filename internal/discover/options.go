package discover

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/vodmap/internal/extract"
	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/internal/search"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Searcher yields code search hits one at a time.
type Searcher interface {
	ForEach(ctx context.Context, fn func(search.Item) bool) error
}

// Options controls a discovery run.
type Options struct {
	// Catalog
	CatalogPath string // catalog file to read and update
	Group       string // group stamped on new entries
	DryRun      bool   // report what would be added without writing

	// Search
	SearchAPIURL string
	Query        string
	PageSize     int
	MaxPages     int // 0 pages until the results run out
	Token        string

	// Run control
	Timeout   time.Duration // bound on the whole run, 0 for none
	Pacing    pacing.Policy
	UserAgent string

	// Dependencies, mostly for tests. Nil values are built from the fields above.
	HTTPClient *http.Client
	Searcher   Searcher
	Source     extract.Source
	Checker    probe.Checker
}

// Option is a function that configures discovery Options.
type Option func(*Options)

// Defaults returns the default discovery options.
func Defaults() *Options {
	return &Options{
		CatalogPath:  constants.DefaultCatalogPath,
		Group:        constants.DefaultGroup,
		SearchAPIURL: constants.SearchAPIURL,
		Query:        constants.SearchQuery,
		PageSize:     constants.DefaultPageSize,
		Pacing:       pacing.Default(),
		UserAgent:    constants.UserAgent,
	}
}

// Apply applies the given options to the discovery options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks if the discovery options are valid.
func (o *Options) Validate() error {
	if o.CatalogPath == "" {
		return &errors.ValidationError{
			Field:   "CatalogPath",
			Value:   o.CatalogPath,
			Message: "catalog path must not be empty",
		}
	}
	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}
	return nil
}

// searcher returns the configured Searcher or builds the code search client.
func (o *Options) searcher() (Searcher, error) {
	if o.Searcher != nil {
		return o.Searcher, nil
	}
	return search.NewClient(
		search.WithAPIURL(o.SearchAPIURL),
		search.WithQuery(o.Query),
		search.WithPageSize(o.PageSize),
		search.WithMaxPages(o.MaxPages),
		search.WithToken(o.Token),
		search.WithUserAgent(o.UserAgent),
		search.WithPacing(o.Pacing),
		search.WithHTTPClient(o.HTTPClient),
	)
}

// source returns the configured Source or builds the raw content fetcher.
func (o *Options) source() extract.Source {
	if o.Source != nil {
		return o.Source
	}
	return extract.NewFetcher(o.HTTPClient, o.UserAgent)
}

// checker returns the configured Checker or builds the liveness prober.
func (o *Options) checker() probe.Checker {
	if o.Checker != nil {
		return o.Checker
	}
	return probe.NewProber(o.HTTPClient, o.UserAgent)
}

// mergeOptions converts discovery options to catalog merge options.
func (o *Options) mergeOptions() []catalogs.MergeOption {
	return []catalogs.MergeOption{catalogs.WithGroup(o.Group)}
}

// WithCatalogPath sets the catalog file.
func WithCatalogPath(path string) Option {
	return func(o *Options) {
		o.CatalogPath = path
	}
}

// WithGroup sets the group stamped on new entries.
func WithGroup(group string) Option {
	return func(o *Options) {
		o.Group = group
	}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// WithSearchAPIURL overrides the code search endpoint.
func WithSearchAPIURL(url string) Option {
	return func(o *Options) {
		o.SearchAPIURL = url
	}
}

// WithQuery overrides the search query.
func WithQuery(query string) Option {
	return func(o *Options) {
		o.Query = query
	}
}

// WithPageSize sets the number of search results per page.
func WithPageSize(n int) Option {
	return func(o *Options) {
		o.PageSize = n
	}
}

// WithMaxPages caps the number of search pages.
func WithMaxPages(n int) Option {
	return func(o *Options) {
		o.MaxPages = n
	}
}

// WithToken sets the code search token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithTimeout bounds the whole run.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithPacing sets the delay policy.
func WithPacing(p pacing.Policy) Option {
	return func(o *Options) {
		o.Pacing = p
	}
}

// WithUserAgent sets the User-Agent sent to every remote.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua != "" {
			o.UserAgent = ua
		}
	}
}

// WithHTTPClient sets the HTTP client the built stages start from.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = hc
	}
}

// WithSearcher replaces the code search stage.
func WithSearcher(s Searcher) Option {
	return func(o *Options) {
		o.Searcher = s
	}
}

// WithSource replaces the file fetch stage.
func WithSource(s extract.Source) Option {
	return func(o *Options) {
		o.Source = s
	}
}

// WithChecker replaces the liveness probe stage.
func WithChecker(c probe.Checker) Option {
	return func(o *Options) {
		o.Checker = c
	}
}
