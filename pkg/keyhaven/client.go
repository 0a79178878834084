// Package keyhaven is the Go client for the Keyhaven secrets-management
// API. A Client authenticates with a bearer token, issues one blocking
// HTTPS request per operation, and maps JSON responses into typed records.
// Failures are *apierror.Error values carrying kind, status, code and
// details uniformly.
package keyhaven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/keyhaven/keyhaven-go/internal/httpclient"
	"github.com/keyhaven/keyhaven-go/pkg/config"
	"github.com/keyhaven/keyhaven-go/pkg/utils"
)

const (
	// DefaultBaseURL is the production Keyhaven endpoint.
	DefaultBaseURL = "https://api.keyhaven.io"
	// DefaultTimeout bounds both connection establishment and response
	// reading on every request.
	DefaultTimeout = 30 * time.Second

	apiPrefix = "/api/v1"
)

// Client is a synchronous Keyhaven API client. Construction fixes the
// token, endpoint and cache configuration for the client's lifetime. A
// Client owns its export cache exclusively; concurrent use of one Client
// must be serialized by the caller.
type Client struct {
	logger    *zap.Logger
	transport *httpclient.Transport
	cache     *exportCache
	cacheTTL  time.Duration
	environ   Environ
	now       func() time.Time
}

type options struct {
	baseURL    string
	timeout    time.Duration
	cacheTTL   time.Duration
	logger     *zap.Logger
	httpClient *http.Client
	environ    Environ
	now        func() time.Time
}

// Option customizes a Client at construction.
type Option func(*options)

// WithBaseURL overrides the API endpoint (and the KEYHAVEN_API_URL
// environment variable).
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout overrides the per-request connect/read timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithCacheTTL enables the export cache with the given time-to-live. A TTL
// of zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

// WithLogger attaches a zap logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPClient substitutes the underlying http.Client. The caller becomes
// responsible for timeout configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithEnviron substitutes the process-environment writer used by LoadEnv.
func WithEnviron(environ Environ) Option {
	return func(o *options) { o.environ = environ }
}

// WithClock substitutes the wall-clock source used for cache expiry and
// env-file timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a Client for the given bearer token. The base URL and cache
// TTL default from KEYHAVEN_API_URL and KEYHAVEN_CACHE_TTL (seconds) when
// the corresponding options are not supplied.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("keyhaven: token must not be empty")
	}

	o := options{
		baseURL:  config.GetEnv(config.EnvBaseURL, DefaultBaseURL),
		timeout:  DefaultTimeout,
		cacheTTL: config.GetEnvSeconds(config.EnvCacheTTL, 0),
		logger:   zap.NewNop(),
		environ:  osEnviron{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var transport *httpclient.Transport
	if o.httpClient != nil {
		transport = httpclient.NewWithClient(o.logger, o.baseURL, token, o.httpClient)
	} else {
		transport = httpclient.New(o.logger, o.baseURL, token, o.timeout)
	}

	c := &Client{
		logger:    o.logger,
		transport: transport,
		cache:     newExportCache(),
		cacheTTL:  o.cacheTTL,
		environ:   o.environ,
		now:       o.now,
	}
	c.logger.Debug("keyhaven.client_initialized",
		zap.String("base_url", o.baseURL),
		zap.String("token", utils.MaskToken(token)),
		zap.Duration("timeout", o.timeout),
		zap.Duration("cache_ttl", o.cacheTTL))
	return c, nil
}

// Me returns the user the token authenticates as.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.get(ctx, apiPrefix+"/me", &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// get issues a GET and decodes the payload into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

// call delegates to the transport and decodes the unwrapped payload into
// out when both are non-nil.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	payload, err := c.transport.Send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
