package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	var gotUA, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/health")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, clientUserAgent, gotUA)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "/health", gotPath)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()
	defer close(done)

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).R().Get("/slow")

	assert.Error(t, err)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient("http://a", time.Second)
	c2 := NewHTTPClient("http://b", time.Second)

	assert.NotSame(t, c1.Client, c2.Client)
	assert.Equal(t, "http://a", c1.BaseURL)
	assert.Equal(t, "http://b", c2.BaseURL)
}
