package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lostfound/internal/authz"
	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/store"
	"github.com/dmitrijs2005/lostfound/internal/store/postgres"
	"github.com/dmitrijs2005/lostfound/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg *config.Config, log logging.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath, log)
	case config.BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres backend requires --dsn or postgres_dsn in the config file")
		}
		return postgres.Open(ctx, cfg.PostgresDSN, cfg.ReconnectBackoff, log)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func newGate(cfg *config.Config) *authz.Gate {
	return authz.NewGate(cfg.AdminEmails)
}

// principal returns the configured principal, nil when anonymous.
func principal() *models.Principal {
	return cfg.CurrentPrincipal()
}

// renderItem prints one item the way the list views show it.
func renderItem(w io.Writer, item models.Item) {
	badges := ""
	if item.Claimed {
		badges += " [claimed]"
	}
	if item.Reported {
		badges += " [reported]"
	}
	fmt.Fprintf(w, "%s  [%s]%s  %s\n", item.ID, item.Type, badges, item.Title)
	if item.Desc != "" {
		fmt.Fprintf(w, "    %s\n", item.Desc)
	}
	if item.Location != "" || item.Date != "" {
		fmt.Fprintf(w, "    location: %s  date: %s\n", item.Location, item.Date)
	}
	if item.Contact != "" {
		fmt.Fprintf(w, "    contact: %s\n", item.Contact)
	}
}

func renderReport(w io.Writer, report models.Report) {
	fmt.Fprintf(w, "%s  item=%s  at=%s  %s\n", report.ID, report.ReportedItemID, report.ReportedAt, report.Title)
}
