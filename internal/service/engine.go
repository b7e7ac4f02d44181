// Package service implements the item synchronization and presentation
// engine: it keeps the mirror consistent with the store under live push
// updates, enforces permission-gated mutations, and reconciles bulk
// import/export.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/authz"
	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/logging"
	"github.com/dmitrijs2005/lostfound/internal/mirror"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/query"
	"github.com/dmitrijs2005/lostfound/internal/store"
)

// Engine wires a store backend, the mirror, and the authorization gate.
// All mutations go through the store; the mirror only ever reflects snapshots
// the store pushed back, so a user action closes its loop asynchronously.
type Engine struct {
	store   store.Store
	mirror  *mirror.Mirror
	gate    *authz.Gate
	log     logging.Logger
	now     func() time.Time
	updates chan struct{}
}

// New builds an engine. A nil logger falls back to a no-op logger.
func New(st store.Store, gate *authz.Gate, log logging.Logger) *Engine {
	if log == nil {
		log = logging.NewNoopLogger()
	}
	return &Engine{
		store:   st,
		mirror:  mirror.New(),
		gate:    gate,
		log:     log,
		now:     time.Now,
		updates: make(chan struct{}, 1),
	}
}

// Mirror exposes the read-only snapshot holder to presentation collaborators.
func (e *Engine) Mirror() *mirror.Mirror {
	return e.mirror
}

// Gate exposes the authorization gate so a UI can decide which affordances
// to offer.
func (e *Engine) Gate() *authz.Gate {
	return e.gate
}

// Updates signals after each applied snapshot. The channel is coalesced: a
// slow consumer sees at least one signal for any burst of changes.
func (e *Engine) Updates() <-chan struct{} {
	return e.updates
}

func (e *Engine) signal() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}

// Start subscribes to both collections and pumps snapshots into the mirror
// until ctx is cancelled. Each received snapshot replaces its collection
// wholesale.
func (e *Engine) Start(ctx context.Context) error {
	itemsSub, err := e.store.WatchItems(ctx)
	if err != nil {
		return fmt.Errorf("watch items: %w", err)
	}
	reportsSub, err := e.store.WatchReports(ctx)
	if err != nil {
		itemsSub.Cancel()
		return fmt.Errorf("watch reports: %w", err)
	}

	go func() {
		for snapshot := range itemsSub.C {
			e.mirror.ReplaceItems(snapshot)
			e.log.Debug(ctx, "item snapshot applied", "records", len(snapshot))
			e.signal()
		}
	}()
	go func() {
		for snapshot := range reportsSub.C {
			e.mirror.ReplaceReports(snapshot)
			e.log.Debug(ctx, "report snapshot applied", "records", len(snapshot))
			e.signal()
		}
	}()

	return nil
}

// Refresh lists both collections directly into the mirror. One-shot callers
// use this instead of waiting for a subscription to deliver.
func (e *Engine) Refresh(ctx context.Context) error {
	items, err := e.store.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	reports, err := e.store.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	e.mirror.ReplaceItems(items)
	e.mirror.ReplaceReports(reports)
	e.signal()
	return nil
}

// SubmitItem validates the draft and creates the item. Anonymous submission
// is blocked here, at the submission boundary.
func (e *Engine) SubmitItem(ctx context.Context, principal *models.Principal, draft models.Draft) (string, error) {
	if principal == nil {
		return "", fmt.Errorf("%w: login required to add items", common.ErrorUnauthorized)
	}
	if err := draft.Validate(); err != nil {
		return "", err
	}

	id, err := e.store.CreateItem(ctx, draft.Item(e.now(), principal))
	if err != nil {
		return "", fmt.Errorf("submit item: %w", err)
	}
	return id, nil
}

// ClaimItem marks the item claimed. The flag is monotonic; claiming an
// already claimed item is a harmless no-op write.
func (e *Engine) ClaimItem(ctx context.Context, principal *models.Principal, id string) error {
	if !e.gate.CanClaim(principal) {
		return common.ErrorUnauthorized
	}

	claimed := true
	err := e.store.UpdateItem(ctx, id, models.ItemPatch{Claimed: &claimed})
	if errors.Is(err, common.ErrorNotFound) {
		e.log.Warn(ctx, "claim raced a delete", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("claim item: %w", err)
	}
	return nil
}

// ReportItem appends a report derived from the item's current fields, then
// flags the item reported. The two writes are independent store calls: if the
// second fails, the report exists while the item still shows unreported. That
// gap is accepted; there is no cross-collection transaction.
func (e *Engine) ReportItem(ctx context.Context, principal *models.Principal, id string) error {
	if !e.gate.CanReport(principal) {
		return common.ErrorUnauthorized
	}

	item, ok := e.mirror.ItemByID(id)
	if !ok {
		// already deleted or not yet synced
		e.log.Warn(ctx, "report target not in mirror", "id", id)
		return nil
	}

	if _, err := e.store.CreateReport(ctx, models.NewReport(item, e.now())); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	reported := true
	err := e.store.UpdateItem(ctx, id, models.ItemPatch{Reported: &reported})
	if errors.Is(err, common.ErrorNotFound) {
		e.log.Warn(ctx, "report flag raced a delete", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("flag item reported: %w", err)
	}
	return nil
}

// DeleteItem removes the item after a gate check. Losing a race with another
// deleter is benign.
func (e *Engine) DeleteItem(ctx context.Context, principal *models.Principal, id string) error {
	item, ok := e.mirror.ItemByID(id)
	if !ok {
		e.log.Warn(ctx, "delete target not in mirror", "id", id)
		return nil
	}
	if !e.gate.CanDelete(principal, item) {
		return common.ErrorUnauthorized
	}

	err := e.store.DeleteItem(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		e.log.Warn(ctx, "delete raced another deleter", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// View derives the presentation list for the given filter mode and search
// text from the current mirror snapshot.
func (e *Engine) View(mode query.Mode, search string) []models.Item {
	return query.FilteredItems(e.mirror.Items(), mode, search)
}

// ReportedItems returns the items surfaced through the report view.
func (e *Engine) ReportedItems() []models.Item {
	return query.ReportedItems(e.mirror.Items())
}

// Reports returns the current report snapshot.
func (e *Engine) Reports() []models.Report {
	return e.mirror.Reports()
}
