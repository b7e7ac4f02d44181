// Package sqlite implements the local single-client store backend.
//
// Data is durable on this device only and there is no cross-client push:
// subscriptions degenerate to "snapshot after each local mutation". Unlike
// the shared backend, a caller-supplied id is preserved on create, so a
// re-imported local export keeps its identities.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/logging"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/store"
	"github.com/dmitrijs2005/lostfound/internal/store/sqlite/migrations"
)

// Store implements store.Store over a local sqlite database.
type Store struct {
	db      *sql.DB
	log     logging.Logger
	items   *store.Notifier[models.Item]
	reports *store.Notifier[models.Report]
}

// Open opens (or creates) the database at dsn and applies pending migrations.
func Open(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.NewNoopLogger()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single connection: sqlite is a single-writer store, and this also keeps
	// ":memory:" databases from splitting across pool connections
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &Store{
		db:      db,
		log:     log,
		items:   store.NewNotifier[models.Item](),
		reports: store.NewNotifier[models.Report](),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// unavailable wraps a driver failure so callers can match it with errors.Is.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStoreUnavailable, err)
}
