package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/netx"
	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the contactdesk CLI.
//
// Export settings: when ExportBucket is set, reports go to that bucket
// (optionally through ExportEndpoint for S3-compatible stores); otherwise
// they are written under ExportDir.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration

	LogLevel    string
	LogPretty   bool
	HistoryFile string

	ExportDir       string
	ExportBucket    string
	ExportPrefix    string
	ExportRegion    string
	ExportEndpoint  string
	ExportAccessKey string
	ExportSecretKey string

	// StorageKey, when set, encrypts the stored credential. It is read from
	// the environment only.
	StorageKey string
}

var ErrInvalidConfig = errors.New("invalid config")

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "contactdesk.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.LogPretty = true
	c.HistoryFile = ".contactdesk_history"
	c.ExportDir = "exports"
	c.ExportPrefix = "reports"
	c.ExportRegion = "us-east-1"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	if _, err := netx.JoinURL(c.ServerBaseURL, ""); err != nil {
		return fmt.Errorf("%w: server base url: %w", ErrInvalidConfig, err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidConfig)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database path is empty", ErrInvalidConfig)
	}
	return nil
}

// Load builds a Config from defaults, the JSON file, the environment (read
// through lookuper) and args, in that order of precedence.
func Load(ctx context.Context, args []string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookuper); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
