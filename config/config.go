package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/beanbocchi/ossclient/pkg/sdk"
	"github.com/beanbocchi/ossclient/pkg/validator"
)

// EnvPrefix prefixes environment overrides, e.g. OSS_CLIENT_BASEURL.
const EnvPrefix = "OSS"

// FlagKeys maps command-line flags to configuration keys.
var FlagKeys = map[string]string{
	"env":         "env",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"base-url":    "client.baseUrl",
	"profile":     "client.profile",
	"timeout":     "client.timeout",
	"retries":     "client.maxRetries",
	"retry-delay": "client.retryDelay",
	"locale":      "client.locale",
	"addr":        "mock.addr",
	"root":        "mock.root",
	"bucket":      "mock.bucket",
	"endpoint":    "mock.endpoint",
	"secret":      "mock.secret",
	"public-url":  "mock.publicUrl",
	"seed":        "mock.seed",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.addSource", false)

	v.SetDefault("client.baseUrl", "")
	v.SetDefault("client.profile", string(sdk.ProfileEnveloped))
	v.SetDefault("client.timeout", sdk.DefaultTimeout)
	v.SetDefault("client.maxRetries", sdk.DefaultMaxRetries)
	v.SetDefault("client.retryDelay", sdk.DefaultRetryDelay)
	v.SetDefault("client.locale", "zh")

	v.SetDefault("mock.addr", ":8088")
	v.SetDefault("mock.root", "./data")
	v.SetDefault("mock.bucket", "demo-bucket")
	v.SetDefault("mock.endpoint", "oss-cn-hangzhou.aliyuncs.com")
	v.SetDefault("mock.secret", "local-dev-secret")
	v.SetDefault("mock.publicUrl", "")
	v.SetDefault("mock.seed", "")
}

// Load reads the configuration. Later sources win: defaults, the YAML file
// at path (optional), OSS_* environment variables, then changed flags.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SDK converts the client section into an sdk.Config.
func (c Client) SDK() sdk.Config {
	return sdk.Config{
		BaseURL:    c.BaseURL,
		Profile:    sdk.ProfileName(c.Profile),
		Timeout:    c.Timeout,
		MaxRetries: c.MaxRetries,
		RetryDelay: c.RetryDelay,
	}
}

// PublicBaseURL is the base of public object URLs.
func (m Mock) PublicBaseURL() string {
	if m.PublicURL != "" {
		return strings.TrimRight(m.PublicURL, "/")
	}
	return fmt.Sprintf("https://%s.%s", m.Bucket, m.Endpoint)
}
