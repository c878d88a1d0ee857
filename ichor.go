// Package ichor is a typed client for the itch.io server-side API,
// the one authenticated by an API key embedded in the URL path.
//
// See https://itch.io/docs/api/serverside for the upstream reference.
package ichor

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// BaseURL is the address of the reference itch.io API server
const BaseURL = "https://itch.io/api"

// APIVersion is the version of the server-side API this package speaks
const APIVersion uint8 = 1

// APIDateFormat is the layout of every timestamp the server-side API returns
const APIDateFormat = "2006-01-02 15:04:05"

// A Client allows consuming the itch.io server-side API
type Client struct {
	Key        string
	BaseURL    string
	APIVersion uint8
	HTTPClient *http.Client
	UserAgent  string

	// Logger receives one debug record per request. The full URL
	// is never logged, since it contains the API key.
	Logger *slog.Logger
}

// New creates a client for a given server, API version and key.
// Nothing is validated here: a bad base URL or key only shows
// up when a request is made.
func New(baseURL string, apiVersion uint8, key string) *Client {
	return &Client{
		Key:        key,
		BaseURL:    baseURL,
		APIVersion: apiVersion,
		HTTPClient: http.DefaultClient,
		UserAgent:  "ichor",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// ClientWithKey creates a client for the reference itch.io server
func ClientWithKey(key string) *Client {
	return New(BaseURL, APIVersion, key)
}

// SetServer allows changing the server to which we're making API
// requests, for example a local fake for tests.
func (c *Client) SetServer(baseURL string) *Client {
	c.BaseURL = baseURL
	return c
}

// fullBase is recomputed for every call so that changes to
// BaseURL, APIVersion or Key take effect immediately.
func (c *Client) fullBase() string {
	return fmt.Sprintf("%s/%d/%s", c.BaseURL, c.APIVersion, c.Key)
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}
