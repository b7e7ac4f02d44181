package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/models"
)

// ImportResult reports the outcome of a batch import.
type ImportResult struct {
	Created int
	Skipped int
	Failed  []RecordFailure
}

// Export writes the current item snapshot as a pretty-printed JSON array.
// The conventional file name is common.ExportFileName.
func (e *Engine) Export(w io.Writer) error {
	items := e.mirror.Items()
	if items == nil {
		items = []models.Item{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	return nil
}

// Import merges an externally supplied batch by identity. A top-level shape
// that is not a JSON array is rejected wholesale with common.ErrMalformedBatch.
// Entries whose id already exists in the mirror are skipped — no update, no
// duplicate. The rest are submitted as creations; whether their ids survive is
// the backend's documented choice (the local store preserves them, the shared
// store mints new ones). Per-entry failures do not stop the batch.
func (e *Engine) Import(ctx context.Context, data []byte) (ImportResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ImportResult{}, fmt.Errorf("%w: expected a JSON array of items", common.ErrMalformedBatch)
	}

	var entries []models.Item
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", common.ErrMalformedBatch, err)
	}

	var result ImportResult
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.ID != "" {
			if _, dup := seen[entry.ID]; dup || e.mirror.HasItem(entry.ID) {
				result.Skipped++
				continue
			}
			seen[entry.ID] = struct{}{}
		}
		if _, err := e.store.CreateItem(ctx, entry); err != nil {
			e.log.Error(ctx, "import failed to create item", "id", entry.ID, "title", entry.Title, "error", err)
			result.Failed = append(result.Failed, RecordFailure{Collection: common.CollectionItems, ID: entry.ID, Err: err})
			continue
		}
		result.Created++
	}
	return result, nil
}
