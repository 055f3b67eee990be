package sdk

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Client is the OSS SDK client. It is safe for concurrent use; every call
// works on a snapshot of the settings taken when it starts.
type Client struct {
	mu     sync.RWMutex
	cfg    Config
	http   *resty.Client
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sends requests through hc instead of a fresh http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// WithLogger sets the logger used for retries and request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new SDK client. Zero fields of cfg take defaults,
// e.g. sdk.NewClient(sdk.Config{}) talks to DefaultBaseURL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}

	// Retries happen in Client.do.
	c.http.SetRetryCount(0)
	c.http.SetLogger(restyLogger{c.logger})

	return c, nil
}

// Configure applies u on top of the current settings. Calls already in
// flight keep the settings they started with.
func (c *Client) Configure(u ConfigUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cfg.apply(u).normalize()
	if err := next.validate(); err != nil {
		return err
	}
	c.cfg = next
	c.logger.Debug("oss client configured", "config", next.String())
	return nil
}

// Config returns a copy of the current settings.
func (c *Client) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// restyLogger routes resty's internal messages to slog.
type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
