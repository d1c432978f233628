package search

import (
	"net/http"

	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Options configures a search Client.
type Options struct {
	APIURL     string
	Query      string
	PageSize   int
	MaxPages   int // 0 pages until the results run out
	Token      string
	UserAgent  string
	Pacing     pacing.Policy
	HTTPClient *http.Client
}

// Option is a function that configures Options.
type Option func(*Options)

// Defaults returns search options with default values.
func Defaults() *Options {
	return &Options{
		APIURL:    constants.SearchAPIURL,
		Query:     constants.SearchQuery,
		PageSize:  constants.DefaultPageSize,
		UserAgent: constants.UserAgent,
		Pacing:    pacing.Default(),
	}
}

// Apply applies the given options to the search options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAPIURL overrides the code search endpoint.
func WithAPIURL(url string) Option {
	return func(o *Options) {
		if url != "" {
			o.APIURL = url
		}
	}
}

// WithQuery overrides the search query. A "+" in the query stands for a
// space, as in the query string of a search page URL.
func WithQuery(query string) Option {
	return func(o *Options) {
		if query != "" {
			o.Query = query
		}
	}
}

// WithPageSize sets the number of results requested per page.
func WithPageSize(n int) Option {
	return func(o *Options) {
		o.PageSize = n
	}
}

// WithMaxPages caps the number of pages fetched. Zero means no cap.
func WithMaxPages(n int) Option {
	return func(o *Options) {
		o.MaxPages = n
	}
}

// WithToken sets the bearer token. An empty token searches anonymously.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua != "" {
			o.UserAgent = ua
		}
	}
}

// WithPacing sets the delay policy.
func WithPacing(p pacing.Policy) Option {
	return func(o *Options) {
		o.Pacing = p
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = hc
	}
}
