// Package config holds runtime settings for the lost & found CLI.
package config

import (
	"time"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

// Backend selects a store implementation.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds runtime settings.
//
// Fields:
//   - Backend: "sqlite" (local single-client) or "postgres" (shared remote).
//   - SQLitePath: database file for the sqlite backend.
//   - PostgresDSN: connection string for the postgres backend.
//   - AdminEmails: the configured administrator identity set.
//   - Principal: the current principal as resolved by the identity provider;
//     an empty ID means anonymous.
//   - ReconnectBackoff: delay before the postgres listener reconnects.
type Config struct {
	Backend          string
	SQLitePath       string
	PostgresDSN      string
	AdminEmails      []string
	Principal        models.Principal
	ReconnectBackoff time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.SQLitePath = "lostfound.db"
	c.ReconnectBackoff = 3 * time.Second
}

// Load constructs a Config from defaults overlaid with values from the JSON
// file at path (if non-empty). Command-line flags are applied on top by the
// CLI layer, so later sources take precedence over earlier ones.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := applyJSON(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CurrentPrincipal returns the configured principal, or nil when anonymous.
func (c *Config) CurrentPrincipal() *models.Principal {
	if c.Principal.ID == "" {
		return nil
	}
	p := c.Principal
	return &p
}
