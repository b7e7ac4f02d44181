package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/store"
)

// CreateItem inserts the item and returns its id. A caller-supplied id is
// preserved; otherwise a new uuid is assigned.
func (s *Store) CreateItem(ctx context.Context, item models.Item) (string, error) {
	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}

	query := `INSERT INTO items (id, type, title, description, location, date, contact, photo, claimed, reported, created, owner_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		id, item.Type, item.Title, item.Desc, item.Location, item.Date,
		item.Contact, item.Photo, item.Claimed, item.Reported, item.Created, item.OwnerID)
	if err != nil {
		return "", unavailable("insert item", err)
	}

	s.publishItems(ctx)
	return id, nil
}

// UpdateItem merges the mutable flags. Flags only ever move false→true here:
// a patch carrying false leaves the stored value alone.
func (s *Store) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error {
	claimed := patch.Claimed != nil && *patch.Claimed
	reported := patch.Reported != nil && *patch.Reported

	query := `UPDATE items
			SET claimed = CASE WHEN ? THEN 1 ELSE claimed END,
				reported = CASE WHEN ? THEN 1 ELSE reported END
			WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, claimed, reported, id)
	if err != nil {
		return unavailable("update item", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	s.publishItems(ctx)
	return nil
}

// DeleteItem removes the item. A missing id returns common.ErrorNotFound,
// which callers treat as losing a benign race.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return unavailable("delete item", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	s.publishItems(ctx)
	return nil
}

// ListItems returns the full collection, created descending.
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, type, title, description, location, date, contact, photo, claimed, reported, created, owner_id
			FROM items ORDER BY created DESC, id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("select items", err)
	}
	defer rows.Close()

	var result []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Type, &item.Title, &item.Desc, &item.Location, &item.Date,
			&item.Contact, &item.Photo, &item.Claimed, &item.Reported, &item.Created, &item.OwnerID,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WatchItems subscribes to item snapshots. The current snapshot is delivered
// immediately; later ones follow each local mutation.
func (s *Store) WatchItems(ctx context.Context) (*store.Subscription[models.Item], error) {
	sub := s.items.Subscribe()

	snapshot, err := s.ListItems(ctx)
	if err != nil {
		sub.Cancel()
		return nil, err
	}
	sub.Send(snapshot)

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Cancel()
		}()
	}
	return sub, nil
}

// publishItems pushes the current collection state to local subscribers.
// A listing failure here only costs a refresh; the mutation already happened.
func (s *Store) publishItems(ctx context.Context) {
	snapshot, err := s.ListItems(ctx)
	if err != nil {
		s.log.Warn(ctx, "skipping item snapshot publish", "error", err)
		return
	}
	s.items.Publish(snapshot)
}
