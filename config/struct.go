package config

import "time"

type Config struct {
	// General configuration
	Env string `yaml:"env" mapstructure:"env" validate:"required,oneof=development production test"`
	Log Log    `yaml:"log" mapstructure:"log" validate:"required"`

	// SDK client used by the CLI
	Client Client `yaml:"client" mapstructure:"client" validate:"required"`

	// Local fake of the OSS API
	Mock Mock `yaml:"mock" mapstructure:"mock" validate:"required"`
}

type Log struct {
	Level     string `yaml:"level" mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format    string `yaml:"format" mapstructure:"format" validate:"oneof=json text"`
	AddSource bool   `yaml:"addSource" mapstructure:"addSource"`
}

type Client struct {
	BaseURL    string        `yaml:"baseUrl" mapstructure:"baseUrl" validate:"omitempty,url"`
	Profile    string        `yaml:"profile" mapstructure:"profile" validate:"oneof=enveloped plain"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	MaxRetries int           `yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	RetryDelay time.Duration `yaml:"retryDelay" mapstructure:"retryDelay" validate:"gte=0"`
	Locale     string        `yaml:"locale" mapstructure:"locale" validate:"oneof=zh en"`
}

type Mock struct {
	Addr     string `yaml:"addr" mapstructure:"addr" validate:"required"`
	Root     string `yaml:"root" mapstructure:"root" validate:"required"`
	Bucket   string `yaml:"bucket" mapstructure:"bucket" validate:"required"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required"`
	Secret   string `yaml:"secret" mapstructure:"secret" validate:"required,min=8"`
	// PublicURL overrides the https://<bucket>.<endpoint> base of object URLs.
	PublicURL string `yaml:"publicUrl" mapstructure:"publicUrl" validate:"omitempty,url"`
	// Seed is a directory uploaded into the store at startup.
	Seed string `yaml:"seed" mapstructure:"seed"`
}
