// Package fetcher provides the bounded HTTP GET capability used for page
// and icon fetches.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each fetch when the caller does not configure one.
const DefaultTimeout = 5 * time.Second

// DefaultUserAgent is the browser-like user agent sent with every request.
// Some sites return stripped-down pages (or 403) to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Response is the result of a single GET.
type Response struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// HTTPFetcher is the fetch capability consumed by favicon resolution and
// icon download.
type HTTPFetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// DefaultHTTPFetcher implements HTTPFetcher using net/http.
type DefaultHTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTPFetcher with the given timeout and user agent.
// Zero values fall back to the package defaults.
func New(timeout time.Duration, userAgent string) *DefaultHTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &DefaultHTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// NewWithClient creates an HTTPFetcher backed by the given http.Client.
// Used by tests to point at httptest servers.
func NewWithClient(client *http.Client) *DefaultHTTPFetcher {
	return &DefaultHTTPFetcher{client: client, userAgent: DefaultUserAgent}
}

// Fetch performs an HTTP GET and returns the status code and body.
// Non-2xx statuses are not errors; the caller decides what they mean.
func (f *DefaultHTTPFetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("fetcher new request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, doErr := f.client.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("fetcher do request: %w", doErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("fetcher read body: %w", readErr)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
