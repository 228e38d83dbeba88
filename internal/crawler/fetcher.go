package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nao1215/wikiwalk/internal/config"
	"github.com/nao1215/wikiwalk/internal/model"
)

// FetchError describes a failed page retrieval: a transport error, a
// timeout, or a non-success HTTP status. It is recoverable by design; the
// spider logs it as a warning and prunes the branch.
type FetchError struct {
	// URL is the address that failed to fetch.
	URL string

	// StatusCode is the HTTP status code, or 0 for transport errors.
	StatusCode int

	// Err is the underlying transport error, or nil for status failures.
	Err error
}

// Error returns a human-readable cause suitable for warning output.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("could not fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher performs single, timed HTTP GET requests.
// Exactly one outbound network call happens per Fetch invocation; there are
// no retries.
type Fetcher struct {
	// client is the HTTP client used for requests.
	client *http.Client

	// timeout bounds each request independently.
	timeout time.Duration

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize limits the response body size read per page.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
// Non-positive sizes keep the default limit; a literal zero would make
// every fetched body empty.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
// This exists for tests that inject httptest server clients.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher with default settings from the config
// package, adjusted by the given options.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		timeout:     config.DefaultTimeout,
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs one HTTP GET of pageURL and returns the page on success.
// Any failure (request construction, transport error, timeout, or a
// non-2xx status) is reported as a *FetchError; Fetch never panics.
//
// The timeout is applied through the request context, so concurrent fetches
// time out independently and a cancelled crawl context abandons the request
// promptly. Redirects are followed transparently by net/http.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*model.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	return &model.Page{
		URL:         pageURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}
