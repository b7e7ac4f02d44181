package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	Backend          string         `json:"backend"`
	SQLitePath       string         `json:"sqlite_path"`
	PostgresDSN      string         `json:"postgres_dsn"`
	AdminEmails      []string       `json:"admin_emails"`
	PrincipalID      string         `json:"principal_id"`
	PrincipalName    string         `json:"principal_name"`
	PrincipalEmail   string         `json:"principal_email"`
	ReconnectBackoff timex.Duration `json:"reconnect_backoff"`
}

// applyJSON overlays cfg with values from the JSON file at path. An empty
// path means no file is loaded. Only fields present in the file override the
// defaults.
func applyJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.SQLitePath != "" {
		cfg.SQLitePath = jc.SQLitePath
	}
	if jc.PostgresDSN != "" {
		cfg.PostgresDSN = jc.PostgresDSN
	}
	if len(jc.AdminEmails) > 0 {
		cfg.AdminEmails = jc.AdminEmails
	}
	if jc.PrincipalID != "" {
		cfg.Principal.ID = jc.PrincipalID
	}
	if jc.PrincipalName != "" {
		cfg.Principal.DisplayName = jc.PrincipalName
	}
	if jc.PrincipalEmail != "" {
		cfg.Principal.Email = jc.PrincipalEmail
	}
	if jc.ReconnectBackoff.Duration != 0 {
		cfg.ReconnectBackoff = time.Duration(jc.ReconnectBackoff.Duration)
	}
	return nil
}
