package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStoreDynamoDB = "dynamodb"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Relay   RelayConfig
	Session SessionConfig
	Redis   RedisConfig
	AWS     AWSConfig

	RateLimitPerMinute int  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	CookieSecure       bool `env:"COOKIE_SECURE" envDefault:"false"`
}

type RelayConfig struct {
	Endpoint  string        `env:"RELAY_ENDPOINT" envDefault:"https://api.web3forms.com/submit"`
	AccessKey string        `env:"RELAY_ACCESS_KEY,required,notEmpty"`
	Subject   string        `env:"RELAY_SUBJECT" envDefault:"New Pro-Wash quote request"`
	FromName  string        `env:"RELAY_FROM_NAME" envDefault:"Pro-Wash Quotes"`
	Timeout   time.Duration `env:"RELAY_TIMEOUT" envDefault:"30s"`
	Mock      string        `env:"RELAY_MOCK"`
}

type SessionConfig struct {
	Store string        `env:"SESSION_STORE" envDefault:"memory"`
	TTL   time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	Table string        `env:"SESSIONS_TABLE" envDefault:"quote_sessions"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Session.Store = strings.ToLower(strings.TrimSpace(cfg.Session.Store))
	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreRedis, SessionStoreDynamoDB:
	default:
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", cfg.Session.Store)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	return &cfg, nil
}

// IsDevelopment switches on human-friendly logging.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// RelayMockEnabled accepts the same truthy spellings as the other mock switches.
func (c *Config) RelayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Relay.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
