package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTP     HTTPConfig     `yaml:"http"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Latency  LatencyConfig  `yaml:"latency"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Session  SessionConfig  `yaml:"session"`
	Upstream UpstreamConfig `yaml:"upstream"`
}

type HTTPConfig struct {
	ListingsPort      string        `yaml:"listings_port" env:"LISTINGS_PORT" env-default:"8082"`
	SessionPort       string        `yaml:"session_port" env:"SESSION_PORT" env-default:"8081"`
	GatewayPort       string        `yaml:"gateway_port" env:"GATEWAY_PORT" env-default:"8080"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type CatalogConfig struct {
	Size int `yaml:"size" env:"CATALOG_SIZE" env-default:"60"`
	// Seed 0 draws from system entropy.
	Seed uint64 `yaml:"seed" env:"CATALOG_SEED" env-default:"0"`
}

type LatencyConfig struct {
	Lookup   time.Duration `yaml:"lookup" env:"LATENCY_LOOKUP" env-default:"200ms"`
	Search   time.Duration `yaml:"search" env:"LATENCY_SEARCH" env-default:"300ms"`
	Reviews  time.Duration `yaml:"reviews" env:"LATENCY_REVIEWS" env-default:"300ms"`
	Disabled bool          `yaml:"disabled" env:"LATENCY_DISABLED" env-default:"false"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Token   string `yaml:"token" env:"METRICS_TOKEN"`
}

type SessionConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"dev-secret-change-me-dev-secret-32"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"1h"`
}

type UpstreamConfig struct {
	ListingsURL string `yaml:"listings_url" env:"LISTINGS_URL" env-default:"http://localhost:8082"`
	SessionURL  string `yaml:"session_url" env:"SESSION_URL" env-default:"http://localhost:8081"`
}

const minSecretLen = 32

// Load reads path (yaml/json/toml/env, optional) and then the environment.
// A .env file in the working directory is applied first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Catalog.Size < 0 {
		errs = append(errs, fmt.Errorf("catalog size must be >= 0, got %d", c.Catalog.Size))
	}
	if c.Latency.Lookup < 0 || c.Latency.Search < 0 || c.Latency.Reviews < 0 {
		errs = append(errs, errors.New("latencies must be >= 0"))
	}
	if len(c.Session.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d chars", minSecretLen))
	}
	return errors.Join(errs...)
}

// Effective returns the simulated delays to apply, all zero when disabled.
func (c LatencyConfig) Effective() (lookup, search, reviews time.Duration) {
	if c.Disabled {
		return 0, 0, 0
	}
	return c.Lookup, c.Search, c.Reviews
}
