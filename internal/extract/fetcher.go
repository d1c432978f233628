package extract

import (
	"context"
	"net/http"

	"github.com/agentstation/vodmap/internal/transport"
	"github.com/agentstation/vodmap/pkg/constants"
)

// serviceName identifies the raw content host in errors.
const serviceName = "raw content"

// Fetcher downloads and decodes raw JSON files.
type Fetcher struct {
	transport *transport.Client
}

// NewFetcher creates a Fetcher with the content fetch timeout. A nil
// httpClient uses a fresh one.
func NewFetcher(httpClient *http.Client, userAgent string) *Fetcher {
	opts := []transport.Option{
		transport.WithTimeout(constants.FetchTimeout),
		transport.WithService(serviceName),
		transport.WithUserAgent(userAgent),
	}
	if httpClient != nil {
		opts = append([]transport.Option{transport.WithHTTPClient(httpClient)}, opts...)
	}
	return &Fetcher{transport: transport.New(opts...)}
}

// Fetch downloads rawURL and decodes it as JSON. A non-200 status is an
// *errors.APIError and a body that is not JSON is an *errors.ParseError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (any, error) {
	resp, err := f.transport.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := transport.DecodeResponse(resp, serviceName, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
