package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/vodmap/pkg/errors"
)

func TestClientGetAppliesHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(
		WithAuth(&BearerAuth{}),
		WithToken("secret"),
		WithUserAgent("vodmap/test"),
		WithHeader("Accept", "application/vnd.github.v3+json"),
	)

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	Close(resp)

	assert.Equal(t, "Bearer secret", got.Get("Authorization"))
	assert.Equal(t, "vodmap/test", got.Get("User-Agent"))
	assert.Equal(t, "application/vnd.github.v3+json", got.Get("Accept"))
}

func TestClientWithoutRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/final", http.StatusMovedPermanently)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := New(WithoutRedirects()).Get(context.Background(), server.URL+"/moved")
	require.NoError(t, err)
	defer Close(resp)
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)

	followed, err := New().Get(context.Background(), server.URL+"/moved")
	require.NoError(t, err)
	defer Close(followed)
	assert.Equal(t, http.StatusOK, followed.StatusCode)
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := New(WithService("search")).Get(context.Background(), addr)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "search", apiErr.Service)
	assert.Zero(t, apiErr.StatusCode)
	assert.Error(t, apiErr.Unwrap())
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	_, err := New(WithTimeout(50*time.Millisecond)).Get(context.Background(), server.URL)
	require.Error(t, err)
	var apiErr *errors.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestClientCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Get(ctx, server.URL)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestClientInvalidURL(t *testing.T) {
	_, err := New().Get(context.Background(), "http://bad host/\x7f")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecodeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"total_count": 3}`))
		case "/bad":
			_, _ = w.Write([]byte(`{"total_count": `))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`slow down`))
		}
	}))
	defer server.Close()

	client := New()
	get := func(path string) *http.Response {
		resp, err := client.Get(context.Background(), server.URL+path)
		require.NoError(t, err)
		return resp
	}

	var out struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, DecodeResponse(get("/ok"), "search", &out))
	assert.Equal(t, 3, out.TotalCount)

	err := DecodeResponse(get("/bad"), "search", &out)
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "json", parseErr.Format)

	err = DecodeResponse(get("/limited"), "search", &out)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "slow down", apiErr.Message)
	assert.True(t, errors.IsRateLimited(err))
}
