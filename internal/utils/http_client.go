package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures NewHTTPClient. Zero values leave the resty
// defaults in place.
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request paths. A trailing slash is
	// trimmed.
	BaseURL string
	// Timeout bounds every request made by the client.
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client with its own configuration,
// connection pool and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{
//	    BaseURL: "https://project.supabase.co",
//	    Timeout: 15 * time.Second,
//	    Headers: map[string]string{"apikey": anonKey},
//	})
//	resp, err := client.R().Get("/rest/v1/profiles")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if len(opts.Headers) > 0 {
		client.SetHeaders(opts.Headers)
	}

	return &HTTPClient{Client: client}
}
