package manic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/congestionscan/internal/model"
)

// Default client settings.
const (
	// DefaultBaseURL is the production MANIC API endpoint.
	DefaultBaseURL = "https://api.manic.caida.org/v1"

	// DefaultTimeout is the per-request timeout. Range queries over busy
	// network pairs can take tens of seconds server-side, so this is
	// deliberately generous.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxBodySize limits the response body size to read.
	// A 30-day assertion window is at most a few megabytes of JSON;
	// the limit guards against pathological responses.
	DefaultMaxBodySize = 32 * 1024 * 1024 // 32MB

	// queryDateFormat is the compact YYYYMMDD format the API expects for
	// the start and end parameters.
	queryDateFormat = "20060102"
)

// Client issues queries against the MANIC measurement API.
// One Client serves all of a run's window queries; the base URL, timeout,
// and connection pool are fixed at construction.
type Client struct {
	// httpClient performs the underlying HTTP requests.
	httpClient *http.Client

	// baseURL is the API root, without a trailing slash.
	baseURL string

	// userAgent identifies this tool in API request logs.
	userAgent string

	// maxBodySize limits how many response bytes are read.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
// Used to target staging deployments and test servers.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a MANIC API client with default settings.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		baseURL:     DefaultBaseURL,
		userAgent:   "congestionscan (+https://github.com/nao1215/congestionscan)",
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Assertions queries the /asrt endpoint for congestion assertions between
// nearASN and farASN within the given window, with the congestion-only
// filter enabled.
//
// The window bounds are formatted as compact YYYYMMDD dates; the API limits
// a single query to a 30-day range, which model.GenerateWindows guarantees.
func (c *Client) Assertions(ctx context.Context, nearASN, farASN string, w model.Window) (*AsrtResponse, error) {
	queryURL := fmt.Sprintf("%s/asrt?near_org_asn=%s&far_asn=%s&start=%s&end=%s&is_congested=true",
		c.baseURL,
		url.QueryEscape(nearASN),
		url.QueryEscape(farASN),
		w.Start.Format(queryDateFormat),
		w.End.Format(queryDateFormat),
	)

	body, err := c.get(ctx, queryURL)
	if err != nil {
		return nil, err
	}

	var resp AsrtResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, queryURL, err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf(`%w: %s: missing top-level "data" field`, ErrMalformedResponse, queryURL)
	}

	return &resp, nil
}

// asnResponse is the wire shape of an /asns/{asn} lookup.
// Pointer fields distinguish absent fields from empty values.
type asnResponse struct {
	Data *struct {
		Name *string `json:"name"`
	} `json:"data"`
}

// ASNName queries the /asns endpoint for the human-readable name of the
// given ASN. The lookup fails with ErrMalformedResponse if the response
// lacks the data.name field.
func (c *Client) ASNName(ctx context.Context, asn string) (string, error) {
	lookupURL := fmt.Sprintf("%s/asns/%s?verbose=true", c.baseURL, url.PathEscape(asn))

	body, err := c.get(ctx, lookupURL)
	if err != nil {
		return "", err
	}

	var resp asnResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedResponse, lookupURL, err)
	}
	if resp.Data == nil || resp.Data.Name == nil {
		return "", fmt.Errorf(`%w: %s: missing "data.name" field`, ErrMalformedResponse, lookupURL)
	}

	return *resp.Data.Name, nil
}

// get fetches rawURL and returns the response body.
// Non-2xx statuses map to the package sentinel errors with the URL and
// status code attached for reproduction.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s returned %d", ErrServerError, rawURL, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s returned %d", ErrInvalidQuery, rawURL, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	return body, nil
}
