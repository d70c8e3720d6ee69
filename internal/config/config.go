package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config is the dashboard server configuration, read from environment variables.
// The API base URL is not part of it - it is resolved by the apiclient package the first time the client is used.
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=dev" validate:"oneof=dev test perf staging prod"`
	Host           string        `env:"HOST,default=0.0.0.0"`
	Port           int           `env:"PORT,default=3000" validate:"min=1,max=65535"`
	LogLevel       string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT,default=15s" validate:"gt=0"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT,default=15s" validate:"gt=0"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT,default=60s" validate:"gt=0"`
	PublicBaseURL  string        `env:"PUBLIC_BASE_URL,default=http://localhost:3000" validate:"required,url"` // used to build absolute metadata urls (og:url)
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS,separator=|,default=*"`
	RateLimitRPS   int32         `env:"RATE_LIMIT_RPS,default=100" validate:"min=0"` // 0 disables rate limiting
	RateLimitBurst int32         `env:"RATE_LIMIT_BURST,default=20" validate:"min=0"`
}

const (
	ServerShutdownTimeout = 10 * time.Second
	RequestTimeout        = 60 * time.Second
	CORSMaxAgeInSeconds   = 86400 // 24 hours
)

var validate = validator.New()

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fe := ves[0]
	switch fe.Field() {
	case "Environment":
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, perf, staging, prod", cfg.Environment)
	case "Port":
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	case "ReadTimeout", "WriteTimeout", "IdleTimeout":
		return fmt.Errorf("%s must be positive, got %v", fieldLabel(fe.Field()), fe.Value())
	case "PublicBaseURL":
		return fmt.Errorf("PUBLIC_BASE_URL must be an absolute url, got '%s'", cfg.PublicBaseURL)
	default:
		return fmt.Errorf("%s failed validation for tag '%s'", fieldLabel(fe.Field()), fe.Tag())
	}
}

// fieldLabel turns ReadTimeout into "read timeout" and RateLimitRPS into "rate limit rps"
func fieldLabel(field string) string {
	var sb strings.Builder
	var prev rune
	for _, r := range field {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return strings.ToLower(sb.String())
}
