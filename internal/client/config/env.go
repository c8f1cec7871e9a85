package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors Config for the environment. Unset variables leave the
// pointer nil and the earlier value in place.
type envConfig struct {
	ServerBaseURL   *string        `env:"CONTACTDESK_SERVER_URL, noinit"`
	DatabasePath    *string        `env:"CONTACTDESK_DATABASE_PATH, noinit"`
	RequestTimeout  *time.Duration `env:"CONTACTDESK_REQUEST_TIMEOUT, noinit"`
	LogLevel        *string        `env:"CONTACTDESK_LOG_LEVEL, noinit"`
	LogPretty       *bool          `env:"CONTACTDESK_LOG_PRETTY, noinit"`
	HistoryFile     *string        `env:"CONTACTDESK_HISTORY_FILE, noinit"`
	ExportDir       *string        `env:"CONTACTDESK_EXPORT_DIR, noinit"`
	ExportBucket    *string        `env:"CONTACTDESK_EXPORT_BUCKET, noinit"`
	ExportPrefix    *string        `env:"CONTACTDESK_EXPORT_PREFIX, noinit"`
	ExportRegion    *string        `env:"CONTACTDESK_EXPORT_REGION, noinit"`
	ExportEndpoint  *string        `env:"CONTACTDESK_EXPORT_ENDPOINT, noinit"`
	ExportAccessKey *string        `env:"CONTACTDESK_EXPORT_ACCESS_KEY, noinit"`
	ExportSecretKey *string        `env:"CONTACTDESK_EXPORT_SECRET_KEY, noinit"`
	StorageKey      *string        `env:"CONTACTDESK_STORAGE_KEY, noinit"`
}

func parseEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var ec envConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &ec, Lookuper: lookuper}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setString(&cfg.ServerBaseURL, ec.ServerBaseURL)
	setString(&cfg.DatabasePath, ec.DatabasePath)
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	setString(&cfg.LogLevel, ec.LogLevel)
	if ec.LogPretty != nil {
		cfg.LogPretty = *ec.LogPretty
	}
	setString(&cfg.HistoryFile, ec.HistoryFile)
	setString(&cfg.ExportDir, ec.ExportDir)
	setString(&cfg.ExportBucket, ec.ExportBucket)
	setString(&cfg.ExportPrefix, ec.ExportPrefix)
	setString(&cfg.ExportRegion, ec.ExportRegion)
	setString(&cfg.ExportEndpoint, ec.ExportEndpoint)
	setString(&cfg.ExportAccessKey, ec.ExportAccessKey)
	setString(&cfg.ExportSecretKey, ec.ExportSecretKey)
	setString(&cfg.StorageKey, ec.StorageKey)
	return nil
}
