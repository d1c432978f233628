package probe

import (
	"context"
	"net/http"
	"strings"

	"github.com/agentstation/vodmap/internal/transport"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// serviceName identifies probed endpoints in errors.
const serviceName = "vod endpoint"

// Prober checks whether a candidate endpoint answers its list action.
type Prober struct {
	transport *transport.Client
}

// NewProber creates a Prober with the probe timeout. Redirects are not
// followed, so only an endpoint answering 200 itself is live. A nil
// httpClient uses a fresh one.
func NewProber(httpClient *http.Client, userAgent string) *Prober {
	opts := []transport.Option{
		transport.WithTimeout(constants.ProbeTimeout),
		transport.WithoutRedirects(),
		transport.WithService(serviceName),
		transport.WithUserAgent(userAgent),
	}
	if httpClient != nil {
		opts = append([]transport.Option{transport.WithHTTPClient(httpClient)}, opts...)
	}
	return &Prober{transport: transport.New(opts...)}
}

// URL returns the address probed for baseURL.
func URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + constants.ProbeQuery
}

// Probe requests the list action of baseURL.
func (p *Prober) Probe(ctx context.Context, baseURL string) Outcome {
	outcome, _ := p.Check(ctx, baseURL)
	return outcome
}

// Check is Probe with the reason for a non-live outcome: an
// *errors.APIError carrying the status for NotLive, or the request error
// for Failed.
func (p *Prober) Check(ctx context.Context, baseURL string) (Outcome, error) {
	resp, err := p.transport.Get(ctx, URL(baseURL))
	if err != nil {
		return Failed, err
	}
	defer transport.Close(resp)

	if resp.StatusCode != http.StatusOK {
		apiErr := errors.NewAPIError(serviceName, resp.StatusCode, http.StatusText(resp.StatusCode))
		apiErr.Endpoint = URL(baseURL)
		return NotLive, apiErr
	}
	return Live, nil
}
