package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/models"
)

// RecordFailure identifies one record a bulk operation could not process.
type RecordFailure struct {
	Collection string
	ID         string
	Err        error
}

// ResetResult reports the outcome of a best-effort bulk erase.
type ResetResult struct {
	ItemsDeleted   int
	ReportsDeleted int
	Failed         []RecordFailure
}

// ResetAll erases every record in both collections. Administrator only.
// Deletion is issued per record; a failure on one record does not stop the
// rest, and the result carries every failure so callers can report partial
// completion. Records already gone count as deleted.
func (e *Engine) ResetAll(ctx context.Context, principal *models.Principal) (ResetResult, error) {
	if !e.gate.CanResetAll(principal) {
		return ResetResult{}, fmt.Errorf("%w: only an administrator can reset all data", common.ErrorUnauthorized)
	}

	var result ResetResult

	for _, item := range e.mirror.Items() {
		err := e.store.DeleteItem(ctx, item.ID)
		switch {
		case err == nil, errors.Is(err, common.ErrorNotFound):
			result.ItemsDeleted++
		default:
			e.log.Error(ctx, "reset failed to delete item", "id", item.ID, "error", err)
			result.Failed = append(result.Failed, RecordFailure{Collection: common.CollectionItems, ID: item.ID, Err: err})
		}
	}

	for _, report := range e.mirror.Reports() {
		err := e.store.DeleteReport(ctx, report.ID)
		switch {
		case err == nil, errors.Is(err, common.ErrorNotFound):
			result.ReportsDeleted++
		default:
			e.log.Error(ctx, "reset failed to delete report", "id", report.ID, "error", err)
			result.Failed = append(result.Failed, RecordFailure{Collection: common.CollectionReports, ID: report.ID, Err: err})
		}
	}

	return result, nil
}
