package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

func TestReplaceItemsSwapsWholesale(t *testing.T) {
	m := New()

	m.ReplaceItems([]models.Item{{ID: "a"}, {ID: "b"}})
	require.Len(t, m.Items(), 2)

	// the next snapshot fully replaces the previous one, no merging
	m.ReplaceItems([]models.Item{{ID: "c"}})
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "c", items[0].ID)
}

func TestReadersGetCopies(t *testing.T) {
	m := New()
	m.ReplaceItems([]models.Item{{ID: "a", Title: "original"}})

	items := m.Items()
	items[0].Title = "mutated"

	again := m.Items()
	assert.Equal(t, "original", again[0].Title)
}

func TestReplaceCopiesCallerSlice(t *testing.T) {
	m := New()
	snapshot := []models.Item{{ID: "a", Title: "original"}}
	m.ReplaceItems(snapshot)

	snapshot[0].Title = "mutated"
	assert.Equal(t, "original", m.Items()[0].Title)
}

func TestItemByID(t *testing.T) {
	m := New()
	m.ReplaceItems([]models.Item{{ID: "a", Title: "Wallet"}})

	item, ok := m.ItemByID("a")
	require.True(t, ok)
	assert.Equal(t, "Wallet", item.Title)

	_, ok = m.ItemByID("missing")
	assert.False(t, ok)
	assert.True(t, m.HasItem("a"))
	assert.False(t, m.HasItem("missing"))
}

func TestReportsIndependentOfItems(t *testing.T) {
	m := New()
	m.ReplaceItems([]models.Item{{ID: "a"}})
	m.ReplaceReports([]models.Report{{ID: "r1"}, {ID: "r2"}})

	m.ReplaceItems(nil)

	assert.Empty(t, m.Items())
	assert.Len(t, m.Reports(), 2)
}
