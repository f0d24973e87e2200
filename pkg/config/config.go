package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every field tag carries the full variable name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Upstream.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"JERSEYFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"JERSEYFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"JERSEYFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"JERSEYFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points at the external product REST API the storefront
// and admin panel are thin clients over.
type UpstreamConfig struct {
	BaseURL      string        `envconfig:"JERSEYFRONT_UPSTREAM_BASE_URL" required:"true"`
	ImageBaseURL string        `envconfig:"JERSEYFRONT_UPSTREAM_IMAGE_BASE_URL"`
	Timeout      time.Duration `envconfig:"JERSEYFRONT_UPSTREAM_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	Origins []string `envconfig:"JERSEYFRONT_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (u *UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid upstream base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("upstream base url must be absolute, got %q", u.BaseURL)
	}
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")

	// Image references default to resolving against the API origin itself.
	if u.ImageBaseURL == "" {
		u.ImageBaseURL = parsed.Scheme + "://" + parsed.Host
	}
	u.ImageBaseURL = strings.TrimRight(u.ImageBaseURL, "/")

	if u.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", u.Timeout)
	}
	return nil
}
