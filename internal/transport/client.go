// Package transport provides the HTTP client shared by the search,
// fetch, and probe stages.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	auth      Authenticator
	token     string
	service   string
	userAgent string
	headers   http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient bases the client on a copy of hc, so later options such
// as WithTimeout do not change the caller's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithoutRedirects makes the client return 3xx responses as they are
// instead of following them.
func WithoutRedirects() Option {
	return func(c *Client) {
		c.http.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
}

// WithToken sets the credential passed to the authenticator.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithAuth sets the authenticator.
func WithAuth(auth Authenticator) Option {
	return func(c *Client) {
		if auth != nil {
			c.auth = auth
		}
	}
}

// WithService names the remote service in errors.
func WithService(name string) Option {
	return func(c *Client) {
		c.service = name
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		auth:      &NoAuth{},
		service:   "http",
		userAgent: constants.UserAgent,
		headers:   make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name used for this client in errors.
func (c *Client) Service() string {
	return c.service
}

// Do performs an HTTP request with authentication and default headers
// applied. Transport failures are returned as *errors.APIError without a
// status code.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.auth.Apply(req, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, errors.WrapCanceled(req.Method+" "+req.URL.Redacted(), ctxErr)
		}
		return nil, &errors.APIError{
			Service:  c.service,
			Message:  "request failed",
			Endpoint: req.URL.Redacted(),
			Err:      err,
		}
	}
	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewValidationError("url", url, err.Error())
	}
	return c.Do(req)
}
