package config

import (
	"errors"
	"fmt"
	"strings"

	"request-uuid/pkg/requestid"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Identifier formats accepted in REQUEST_ID_FORMAT.
const (
	FormatDefault  = "default"
	FormatFull     = "full"
	FormatSimple   = "simple"
	FormatPrefixed = "prefixed"
)

// ErrUnknownFormat is returned for a REQUEST_ID_FORMAT outside the known set.
var ErrUnknownFormat = errors.New("unknown request ID format")

// Config holds configuration loaded from environment variables.
type Config struct {
	ListenAddr              string `env:"LISTEN_ADDR" envDefault:":8080"`
	GracefulShutdownTimeout int    `env:"GRACEFUL_SHUTDOWN_TIMEOUT" envDefault:"15"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`

	RequestID RequestIDConfig `envPrefix:"REQUEST_ID_"`
}

// RequestIDConfig selects how the service generates request identifiers.
type RequestIDConfig struct {
	Length int    `env:"LENGTH" envDefault:"36"`
	Header string `env:"HEADER" envDefault:"request-id"`
	Format string `env:"FORMAT" envDefault:"default"`
	// Prefix is only used by the prefixed format.
	Prefix string `env:"PREFIX" envDefault:"req-"`
}

// Load reads an optional .env file and the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Middleware builds the request ID middleware described by c. Configuration
// mistakes surface here, at startup, rather than on the first request.
func (c RequestIDConfig) Middleware() (*requestid.Middleware, error) {
	var mw *requestid.Middleware
	switch strings.ToLower(c.Format) {
	case "", FormatDefault:
		m, err := requestid.New(c.Length)
		if err != nil {
			return nil, err
		}
		mw = m
	case FormatFull:
		mw = requestid.Default().WithFullUUID()
	case FormatSimple:
		mw = requestid.Default().WithSimpleUUID()
	case FormatPrefixed:
		prefix := c.Prefix
		mw = requestid.Default().WithCustomUUIDFormat(func(u uuid.UUID) string {
			return prefix + requestid.SimpleString(u)
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	mw = mw.HeaderName(c.Header)
	if err := mw.Validate(); err != nil {
		return nil, err
	}
	return mw, nil
}
