// Package stubhub is a client for the StubHub seller REST API: login,
// listing management, sales, pricing, event lookup and ticket fulfillment.
//
// A Client is created once per seller account. Login stores the issued
// tokens on the client and every other call authenticates with them. The
// session is guarded by a mutex so reads are safe from any goroutine, but
// the client has a single-writer contract: concurrent Login calls on the
// same client race and the last response wins.
package stubhub

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://api.stubhub.com"

	defaultTimeout = 30 * time.Second
)

// Client talks to the StubHub API on behalf of one seller.
type Client struct {
	consumerKey    string
	consumerSecret string

	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	proxy       ProxyConfig
	log         *slog.Logger
	rateLimiter *RateLimiter
	nowFunc     func() time.Time

	mu      sync.RWMutex
	session Session
	sandbox bool
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client. Proxy and timeout
// options are ignored when a client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithProxy routes requests through the given proxy instead of the one
// read from the environment.
func WithProxy(p ProxyConfig) Option {
	return func(c *Client) {
		c.proxy = p
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithRateLimiter gates every outbound request through r.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithSandbox routes requests to the sandbox environment.
func WithSandbox(enabled bool) Option {
	return func(c *Client) {
		c.sandbox = enabled
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// New creates a client for the given application credentials. It performs
// no network I/O and starts without a session.
func New(consumerKey, consumerSecret string, opts ...Option) *Client {
	c := &Client{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		baseURL:        DefaultBaseURL,
		timeout:        defaultTimeout,
		proxy:          ProxyFromEnv(),
		log:            slog.Default(),
		nowFunc:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: c.proxy.transport(),
		}
	}
	return c
}

// Session returns a copy of the current session.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SetSession replaces the current session, typically with one restored
// from storage.
func (c *Client) SetSession(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// Authenticated reports whether the client holds an access token.
func (c *Client) Authenticated() bool {
	return c.Session().Authenticated()
}

// Sandbox reports whether requests are routed to the sandbox environment.
func (c *Client) Sandbox() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sandbox
}

// SetSandbox toggles sandbox routing.
func (c *Client) SetSandbox(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sandbox = enabled
}

func (c *Client) clearAccessToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.AccessToken = ""
}

// userID returns the seller GUID for seller-scoped paths.
func (c *Client) userID() (string, error) {
	s := c.Session()
	if !s.Authenticated() {
		return "", ErrNotAuthenticated
	}
	if s.UserID == "" {
		return "", ErrMissingUserID
	}
	return s.UserID, nil
}

// requireSession fails fast for operations that must not fall back to
// application credentials.
func (c *Client) requireSession() error {
	if !c.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}
