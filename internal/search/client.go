// Package search pages through code search results for files that mention
// the VOD API path.
package search

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/vodmap/internal/transport"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// serviceName identifies code search in errors and logs.
const serviceName = "code search"

// Client pages through code search results.
type Client struct {
	transport *transport.Client
	opts      *Options
}

// NewClient creates a search client. The page size must be between 1 and
// the largest page the API serves.
func NewClient(opts ...Option) (*Client, error) {
	o := Defaults().Apply(opts...)

	if o.PageSize < 1 || o.PageSize > constants.MaxPageSize {
		return nil, errors.NewValidationError("per_page", o.PageSize,
			"must be between 1 and "+strconv.Itoa(constants.MaxPageSize))
	}
	if o.MaxPages < 0 {
		return nil, errors.NewValidationError("max_pages", o.MaxPages, "must not be negative")
	}
	if _, err := url.Parse(o.APIURL); err != nil {
		return nil, errors.NewValidationError("search_api_url", o.APIURL, err.Error())
	}

	topts := []transport.Option{
		transport.WithHTTPClient(o.HTTPClient),
		transport.WithService(serviceName),
		transport.WithAuth(transport.ForToken(o.Token)),
		transport.WithToken(o.Token),
		transport.WithUserAgent(o.UserAgent),
		transport.WithHeader("Accept", constants.SearchAccept),
	}

	return &Client{
		transport: transport.New(topts...),
		opts:      o,
	}, nil
}

// ForEach calls fn for every item, page by page, starting at page 1.
//
// Paging stops at the first page with no items, at the first page that
// cannot be used (non-200 status or undecodable body, both logged), at the
// page cap, or when fn returns false; all of these return nil. A request
// that fails in transport is returned as an error. Between pages the client
// waits for the policy's AfterPage delay.
func (c *Client) ForEach(ctx context.Context, fn func(Item) bool) error {
	logger := logging.FromContext(ctx)

	for page := 1; c.opts.MaxPages == 0 || page <= c.opts.MaxPages; page++ {
		resp, ok, err := c.fetchPage(ctx, page)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if len(resp.Items) == 0 {
			logger.Debug().Int("page", page).Msg("No more code search results")
			return nil
		}

		logger.Info().
			Int("page", page).
			Int("items", len(resp.Items)).
			Int("total_count", resp.TotalCount).
			Msg("Fetched code search page")

		for _, item := range resp.Items {
			if !fn(item) {
				return nil
			}
		}

		if c.opts.MaxPages != 0 && page == c.opts.MaxPages {
			logger.Debug().Int("max_pages", c.opts.MaxPages).Msg("Reached page limit")
			return nil
		}
		if err := pacing.Wait(ctx, c.opts.Pacing.AfterPage); err != nil {
			return err
		}
	}
	return nil
}

// Items collects every item ForEach yields.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	err := c.ForEach(ctx, func(item Item) bool {
		items = append(items, item)
		return true
	})
	return items, err
}

// fetchPage requests one results page. ok is false when the page could not
// be used and paging should stop quietly.
func (c *Client) fetchPage(ctx context.Context, page int) (*Response, bool, error) {
	logger := logging.FromContext(ctx)

	resp, err := c.transport.Get(ctx, c.pageURL(page))
	if err != nil {
		return nil, false, err
	}

	var result Response
	if err := transport.DecodeResponse(resp, serviceName, &result); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, errors.WrapCanceled("search", ctxErr)
		}

		event := logger.Error().Err(err).Int("page", page)
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) {
			event = event.Int("status", apiErr.StatusCode).Str("body", apiErr.Message)
		}
		if errors.IsRateLimited(err) {
			event = event.Bool("rate_limited", true)
		}
		event.Msg("Failed to retrieve data from code search")
		return nil, false, nil
	}
	return &result, true, nil
}

// pageURL builds the request address for a page.
func (c *Client) pageURL(page int) string {
	q := url.QueryEscape(strings.ReplaceAll(c.opts.Query, "+", " "))

	sep := "?"
	if strings.Contains(c.opts.APIURL, "?") {
		sep = "&"
	}
	return c.opts.APIURL + sep +
		"q=" + q +
		"&per_page=" + strconv.Itoa(c.opts.PageSize) +
		"&page=" + strconv.Itoa(page)
}
