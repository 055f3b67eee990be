package sdk

import (
	"fmt"
	"strings"
	"time"

	"github.com/beanbocchi/ossclient/pkg/validator"
)

// ProfileName selects the endpoint set and response format of the remote API.
type ProfileName string

const (
	// ProfileEnveloped talks to /v1/osss, where every response is a {code,data,message} envelope.
	ProfileEnveloped ProfileName = "enveloped"
	// ProfilePlain talks to /api/oss, where responses are bare JSON or text.
	ProfilePlain ProfileName = "plain"
)

const (
	DefaultBaseURL           = "http://localhost:8088/v1/osss"
	DefaultPlainBaseURL      = "http://localhost:8088/api/oss"
	DefaultTimeout           = 30 * time.Second
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = time.Second
	DefaultExpirationSeconds = 3600
)

// Config holds the client settings. Zero fields take the defaults above.
// MaxRetries is the total number of attempts per call; the pause before
// attempt n+1 is RetryDelay*n.
type Config struct {
	BaseURL    string        `mapstructure:"baseUrl" validate:"required,url"`
	Profile    ProfileName   `mapstructure:"profile" validate:"oneof=enveloped plain"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries int           `mapstructure:"maxRetries" validate:"gt=0"`
	RetryDelay time.Duration `mapstructure:"retryDelay" validate:"gt=0"`
}

// ConfigUpdate changes a subset of the settings. Nil fields are left untouched.
type ConfigUpdate struct {
	BaseURL    *string
	Profile    *ProfileName
	Timeout    *time.Duration
	MaxRetries *int
	RetryDelay *time.Duration
}

func (p ProfileName) defaultBaseURL() string {
	if p == ProfilePlain {
		return DefaultPlainBaseURL
	}
	return DefaultBaseURL
}

func (c Config) normalize() Config {
	if c.Profile == "" {
		c.Profile = ProfileEnveloped
	}
	c.Profile = ProfileName(strings.ToLower(string(c.Profile)))
	if c.BaseURL == "" {
		c.BaseURL = c.Profile.defaultBaseURL()
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}

func (c Config) apply(u ConfigUpdate) Config {
	if u.BaseURL != nil {
		c.BaseURL = *u.BaseURL
	}
	if u.Profile != nil {
		next := ProfileName(strings.ToLower(string(*u.Profile)))
		// A base URL still at the old profile's default follows the profile.
		if u.BaseURL == nil && c.BaseURL == c.Profile.defaultBaseURL() {
			c.BaseURL = next.defaultBaseURL()
		}
		c.Profile = next
	}
	if u.Timeout != nil {
		c.Timeout = *u.Timeout
	}
	if u.MaxRetries != nil {
		c.MaxRetries = *u.MaxRetries
	}
	if u.RetryDelay != nil {
		c.RetryDelay = *u.RetryDelay
	}
	return c
}

func (c Config) validate() error {
	if err := validator.Validate(&c); err != nil {
		return &Error{Kind: KindInvalidInput, Message: "invalid client config", Cause: err}
	}
	return nil
}

// delay returns the pause before the attempt following attempt n (1-based).
func (c Config) delay(n int) time.Duration {
	return c.RetryDelay * time.Duration(n)
}

func (c Config) String() string {
	return fmt.Sprintf("%s profile=%s timeout=%s attempts=%d delay=%s",
		c.BaseURL, c.Profile, c.Timeout, c.MaxRetries, c.RetryDelay)
}
