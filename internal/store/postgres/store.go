// Package postgres implements the shared remote store backend.
//
// The database is the authoritative, multi-client collection. Push updates
// ride on LISTEN/NOTIFY: statement triggers installed by the migration fire a
// notification on every change, and each watching client re-lists the
// collection and publishes a full snapshot. Ids are owned by this store: a
// caller-supplied id on create is ignored and a fresh uuid is minted, so an
// imported batch is always inserted as new records.
//
// The client-side authz gate is advisory only. Deployments must mirror it at
// this boundary (row-level security policies keyed on owner_id plus an
// administrator role), since nothing stops another client from issuing
// arbitrary SQL against a shared database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/logging"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/store"
	"github.com/dmitrijs2005/lostfound/internal/store/postgres/migrations"
)

// Store implements store.Store over a shared postgres database.
type Store struct {
	db      *sql.DB
	dsn     string
	log     logging.Logger
	backoff time.Duration

	items   *store.Notifier[models.Item]
	reports *store.Notifier[models.Report]

	lifeCtx context.Context
	stop    context.CancelFunc

	itemsOnce   sync.Once
	reportsOnce sync.Once
}

// Open connects to dsn, applies pending migrations and prepares the listener
// machinery. backoff is the delay before a broken listener connection is
// re-established.
func Open(ctx context.Context, dsn string, backoff time.Duration, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.NewNoopLogger()
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, unavailable("ping postgres", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	lifeCtx, stop := context.WithCancel(context.Background())
	return &Store{
		db:      db,
		dsn:     dsn,
		log:     log,
		backoff: backoff,
		items:   store.NewNotifier[models.Item](),
		reports: store.NewNotifier[models.Report](),
		lifeCtx: lifeCtx,
		stop:    stop,
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close stops the listeners and closes the pool.
func (s *Store) Close() error {
	s.stop()
	return s.db.Close()
}

// listen keeps one dedicated connection listening on channel for the lifetime
// of the store, reconnecting after backoff on failure. Every notification, and
// every (re)connect, triggers a fresh list-and-publish so subscribers converge
// even across missed notifications.
func (s *Store) listen(ctx context.Context, channel string, publish func(context.Context)) {
	for {
		if err := s.listenOnce(ctx, channel, publish); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Warn(ctx, "listener disconnected", "channel", channel, "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.backoff):
		}
	}
}

func (s *Store) listenOnce(ctx context.Context, channel string, publish func(context.Context)) error {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return err
	}

	// catch up on anything that changed while disconnected
	publish(ctx)

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			return err
		}
		publish(ctx)
	}
}

// unavailable wraps a transport failure so callers can match it with errors.Is.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStoreUnavailable, err)
}
