// the apiclient package provides the HTTP client used by the dashboard to call the Datos Provida API.
//
// There is one shared client per process (see Shared). It is built on first use from the environment and never rebuilt,
// so every caller sees the same base URL, timeout, default headers and response interceptors.
//
// Request errors are returned to the caller exactly as they were produced - presenting them is the caller's job (see UserMessage).
package apiclient

import (
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:4000/api/v1"
	DefaultTimeout = 15 * time.Second
)

// Config holds the settings a Client is built with
type Config struct {
	BaseURL string
	Timeout time.Duration
	Headers http.Header
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Headers: http.Header{
			"Content-Type": []string{"application/json"},
		},
	}
}

// Client handles communication with the Datos Provida API
type Client struct {
	baseURL      string
	timeout      time.Duration
	headers      http.Header
	httpClient   *http.Client
	interceptors []ResponseInterceptor
}

type Option func(*Client)

// WithResponseInterceptor appends an interceptor to the client's response chain.
// Interceptors run in the order they are added.
func WithResponseInterceptor(i ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, i)
	}
}

// WithHTTPClient uses a copy of hc for requests (transport, redirects, jar).
// The configured timeout is applied to the copy; hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.httpClient = &cp
	}
}

// New builds an unshared client. Zero values in cfg are replaced by the defaults.
// No network calls are made.
func New(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Headers == nil {
		cfg.Headers = def.Headers
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		headers:    cfg.Headers.Clone(),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Timeout = c.timeout

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Headers returns a copy of the default request headers
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}
