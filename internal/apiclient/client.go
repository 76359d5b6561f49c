package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single upstream round trip.
const DefaultTimeout = 30 * time.Second

// Client talks to the upstream content platform.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	headers http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHeaders adds headers sent with every request, e.g. a session cookie.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers.Set(k, v)
		}
	}
}

// New creates a client for the upstream at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing upstream url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("upstream url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		headers: http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL resolves an upstream path to an absolute URL.
func (c *Client) URL(path string) string {
	return c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
}

// RequestOption adjusts a single request.
type RequestOption func(h http.Header)

// WithHeader sets a header on one request, overriding defaults.
func WithHeader(key, value string) RequestOption {
	return func(h http.Header) { h.Set(key, value) }
}

// Do sends a JSON request and decodes a JSON response into out. body and
// out may be nil. Content-Type defaults to application/json; client-wide
// headers and then opts are layered on top.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.send(req, opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(req, fmt.Errorf("reading response: %w", err))
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(req, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// FetchPage returns the HTML of an upstream page.
func (c *Client) FetchPage(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(req, fmt.Errorf("reading page: %w", err))
	}
	return data, nil
}

// send applies headers, performs the round trip and maps failures onto
// NetworkError and HTTPError. The caller owns the returned body.
func (c *Client) send(req *http.Request, opts ...RequestOption) (*http.Response, error) {
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	for _, opt := range opts {
		opt(req.Header)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(req, &NetworkError{Method: req.Method, URL: req.URL.String(), Err: err})
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, c.fail(req, &HTTPError{Method: req.Method, URL: req.URL.String(), Status: resp.StatusCode})
	}
	return resp, nil
}

func (c *Client) fail(req *http.Request, err error) error {
	log.Printf("apiclient: %s %s: %v", req.Method, req.URL.Path, err)
	return err
}
