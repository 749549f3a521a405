// Package config loads runtime settings from the environment and lets
// command-line flags override them.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Config holds all runtime settings.
type Config struct {
	LogLevel       string        `env:"HOMEDESIGNS_LOG_LEVEL" envDefault:"info"`
	LogFile        string        `env:"HOMEDESIGNS_LOG_FILE"`
	WebhookURL     string        `env:"HOMEDESIGNS_WEBHOOK_URL"`
	WebhookTimeout time.Duration `env:"HOMEDESIGNS_WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookRetries int           `env:"HOMEDESIGNS_WEBHOOK_RETRIES" envDefault:"0"`
	AltScreen      bool          `env:"HOMEDESIGNS_ALT_SCREEN" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers flags whose defaults are the already-loaded values, so
// an explicit flag wins over the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.StringVar(&c.WebhookURL, "webhook-url", c.WebhookURL, "also POST submissions to this URL")
	fs.DurationVar(&c.WebhookTimeout, "webhook-timeout", c.WebhookTimeout, "webhook request timeout")
	fs.IntVar(&c.WebhookRetries, "webhook-retries", c.WebhookRetries, "webhook retry count")
	fs.BoolVar(&c.AltScreen, "alt-screen", c.AltScreen, "run the TUI in the terminal's alternate screen")
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger builds the text logger described by c. When LogFile is set the
// returned closer must be closed by the caller.
func (c Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	w := fallback
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
