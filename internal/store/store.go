// Package store defines the capability contracts every backend implements.
//
// Two interchangeable backends exist: a shared remote store (postgres,
// multi-client, authoritative) and a local single-client store (sqlite,
// durable on this device only). Consumers depend only on these interfaces.
package store

import (
	"context"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

// ItemStore is the capability surface over the item collection.
//
// Watch delivers full-collection snapshots ordered by creation timestamp
// descending: one at subscribe time, then one whenever any record changes.
// There is no delta mode — consumers must treat every event as a replacement.
type ItemStore interface {
	// CreateItem assigns and returns a new unique identifier. Whether a
	// caller-supplied id is preserved is backend-specific and documented on
	// each implementation.
	CreateItem(ctx context.Context, item models.Item) (string, error)

	// UpdateItem applies a partial merge of the mutable flags. Returns
	// common.ErrorNotFound if no such id exists. Flags are monotonic: an
	// update never resets claimed or reported back to false.
	UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error

	// DeleteItem removes the record. Deleting a missing id returns
	// common.ErrorNotFound, which callers treat as a benign race.
	DeleteItem(ctx context.Context, id string) error

	// ListItems returns the full collection, created descending.
	ListItems(ctx context.Context) ([]models.Item, error)

	// WatchItems subscribes to full-collection snapshots.
	WatchItems(ctx context.Context) (*Subscription[models.Item], error)
}

// ReportStore is the capability surface over the report collection, ordered
// by reportedAt descending.
type ReportStore interface {
	CreateReport(ctx context.Context, report models.Report) (string, error)
	DeleteReport(ctx context.Context, id string) error
	ListReports(ctx context.Context) ([]models.Report, error)
	WatchReports(ctx context.Context) (*Subscription[models.Report], error)
}

// Store is a backend implementing both collections.
type Store interface {
	ItemStore
	ReportStore
	Close() error
}
