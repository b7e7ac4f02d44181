// Package mirror holds the client's in-memory reflection of the item and
// report collections. Each collection is replaced wholesale on every snapshot,
// never patched entry by entry, so a reader always observes some state the
// store actually served.
package mirror

import (
	"sync"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

// Mirror is safe for concurrent use. All mutation goes through the store;
// the mirror only ever swaps in snapshots the store delivered.
type Mirror struct {
	mu      sync.RWMutex
	items   []models.Item
	reports []models.Report
}

func New() *Mirror {
	return &Mirror{}
}

// ReplaceItems atomically swaps in a new item snapshot.
func (m *Mirror) ReplaceItems(snapshot []models.Item) {
	items := make([]models.Item, len(snapshot))
	copy(items, snapshot)

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// ReplaceReports atomically swaps in a new report snapshot.
func (m *Mirror) ReplaceReports(snapshot []models.Report) {
	reports := make([]models.Report, len(snapshot))
	copy(reports, snapshot)

	m.mu.Lock()
	m.reports = reports
	m.mu.Unlock()
}

// Items returns a copy of the current item snapshot.
func (m *Mirror) Items() []models.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Item, len(m.items))
	copy(items, m.items)
	return items
}

// Reports returns a copy of the current report snapshot.
func (m *Mirror) Reports() []models.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]models.Report, len(m.reports))
	copy(reports, m.reports)
	return reports
}

// ItemByID looks up an item in the current snapshot.
func (m *Mirror) ItemByID(id string) (models.Item, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// HasItem reports whether an item with the given id is in the current snapshot.
func (m *Mirror) HasItem(id string) bool {
	_, ok := m.ItemByID(id)
	return ok
}
