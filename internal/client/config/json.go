package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/flagx"
	"github.com/dmitrijs2005/contactdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value, so a file only overrides
// what it mentions.
type JsonConfig struct {
	ServerBaseURL   *string         `json:"server_base_url"`
	DatabasePath    *string         `json:"database_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	LogLevel        *string         `json:"log_level"`
	LogPretty       *bool           `json:"log_pretty"`
	HistoryFile     *string         `json:"history_file"`
	ExportDir       *string         `json:"export_dir"`
	ExportBucket    *string         `json:"export_bucket"`
	ExportPrefix    *string         `json:"export_prefix"`
	ExportRegion    *string         `json:"export_region"`
	ExportEndpoint  *string         `json:"export_endpoint"`
	ExportAccessKey *string         `json:"export_access_key"`
	ExportSecretKey *string         `json:"export_secret_key"`
}

// parseJSON overlays cfg with the file named by -c/-config or
// $CONTACTDESK_CONFIG. No file configured is not an error.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
	setString(&cfg.HistoryFile, jc.HistoryFile)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.ExportBucket, jc.ExportBucket)
	setString(&cfg.ExportPrefix, jc.ExportPrefix)
	setString(&cfg.ExportRegion, jc.ExportRegion)
	setString(&cfg.ExportEndpoint, jc.ExportEndpoint)
	setString(&cfg.ExportAccessKey, jc.ExportAccessKey)
	setString(&cfg.ExportSecretKey, jc.ExportSecretKey)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
