package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-token")

	assert.Empty(t, req.Header)
}

// TestBearerAuth tests Bearer token authentication.
func TestBearerAuth(t *testing.T) {
	auth := &BearerAuth{}

	req := &http.Request{Header: make(http.Header)}
	auth.Apply(req, "test-token")
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))

	anon := &http.Request{Header: make(http.Header)}
	auth.Apply(anon, "")
	assert.Empty(t, anon.Header.Get("Authorization"))
}

// TestHeaderAuth tests custom header authentication.
func TestHeaderAuth(t *testing.T) {
	auth := &HeaderAuth{Header: "X-Token"}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-token")

	assert.Equal(t, "test-token", req.Header.Get("X-Token"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestForToken(t *testing.T) {
	assert.IsType(t, &NoAuth{}, ForToken(""))
	assert.IsType(t, &BearerAuth{}, ForToken("abc"))
}
