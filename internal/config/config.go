// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/goliatone/go-formdesigner/internal/logctx"
)

// Storage backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config for the form designer server. Defaults are provided via struct tags.
type Config struct {
	// Addr is the listen address. ENV: FORMDESIGNER_ADDR
	Addr string `env:"FORMDESIGNER_ADDR,default=:8080"`
	// DatabaseURL is the SQLite DSN. ENV: FORMDESIGNER_DATABASE_URL
	DatabaseURL string `env:"FORMDESIGNER_DATABASE_URL,default=file:formdesigner.db"`
	// Store selects the backend, sqlite or memory. ENV: FORMDESIGNER_STORE
	Store string `env:"FORMDESIGNER_STORE,default=sqlite"`
	// BaseURL prefixes share links in API responses. ENV: FORMDESIGNER_BASE_URL
	BaseURL string `env:"FORMDESIGNER_BASE_URL"`
	// ShutdownTimeout bounds graceful shutdown. ENV: FORMDESIGNER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"FORMDESIGNER_SHUTDOWN_TIMEOUT,default=10s"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load decodes the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: FORMDESIGNER_ADDR is required")
	}
	switch c.Store {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("config: FORMDESIGNER_DATABASE_URL is required for the sqlite store")
		}
	default:
		return fmt.Errorf("config: unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreMemory)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

// Logger builds the process logger writing to w. Records carry the request
// and form groups attached through logctx.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(c.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(logctx.New(handler))
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("config: invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}
