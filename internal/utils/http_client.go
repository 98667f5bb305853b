package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// clientUserAgent identifies the CLI client in server access logs.
const clientUserAgent = "go-feed-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for the feed API rooted at baseURL. Every
// request carries the client user agent, expects JSON and is bounded by
// timeout. Failed requests are not retried since POST /posts is not
// idempotent.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", clientUserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
