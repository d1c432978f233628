package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
)

// maxErrorBody caps how much of a failed response is kept in an error.
const maxErrorBody = 4 << 10

// DecodeResponse decodes a JSON response into the target structure.
// A non-200 status becomes an *errors.APIError carrying the body; a body
// that is not valid JSON becomes an *errors.ParseError.
func DecodeResponse(resp *http.Response, service string, target any) error {
	defer Close(resp)

	if resp.StatusCode != http.StatusOK {
		return StatusError(resp, service)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewParseError("json", endpoint(resp), err.Error(), err)
	}

	return nil
}

// StatusError builds an *errors.APIError from a response with an
// unexpected status, reading at most a few KiB of its body.
func StatusError(resp *http.Response, service string) *errors.APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &errors.APIError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Message:    string(body),
		Endpoint:   endpoint(resp),
	}
}

// Close drains and closes the response body so the connection can be reused.
func Close(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if err := resp.Body.Close(); err != nil {
		logging.Debug().Err(err).Msg("Failed to close response body")
	}
}

func endpoint(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.Redacted()
}
