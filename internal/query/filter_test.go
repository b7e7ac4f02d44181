package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

func sampleItems() []models.Item {
	return []models.Item{
		{ID: "a", Type: models.ItemTypeLost, Title: "Black Wallet", Location: "Library", Created: 100},
		{ID: "b", Type: models.ItemTypeFound, Title: "Keys", Desc: "on a red keyring", Created: 200},
		{ID: "c", Type: models.ItemTypeLost, Title: "Umbrella", Claimed: true, Created: 300},
		{ID: "d", Type: models.ItemTypeFound, Title: "Phone", Reported: true, Created: 400},
	}
}

func ids(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilteredItemsModes(t *testing.T) {
	items := sampleItems()

	tests := []struct {
		name string
		mode Mode
		want []string
	}{
		{"all excludes reported", ModeAll, []string{"c", "b", "a"}},
		{"lost", ModeLost, []string{"c", "a"}},
		{"found excludes reported", ModeFound, []string{"b"}},
		{"claimed only", ModeClaimedOnly, []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilteredItems(items, tt.mode, "")
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilteredItemsOrdersByCreatedDescending(t *testing.T) {
	// two items created at timestamps 100 and 200: the newer one comes first
	items := []models.Item{
		{ID: "old", Type: models.ItemTypeLost, Title: "Old", Created: 100},
		{ID: "new", Type: models.ItemTypeLost, Title: "New", Created: 200},
	}
	got := FilteredItems(items, ModeAll, "")
	require.Equal(t, []string{"new", "old"}, ids(got))
}

func TestFilteredItemsTieBreaksByID(t *testing.T) {
	items := []models.Item{
		{ID: "b", Type: models.ItemTypeLost, Title: "B", Created: 100},
		{ID: "a", Type: models.ItemTypeLost, Title: "A", Created: 100},
	}
	got := FilteredItems(items, ModeAll, "")
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilteredItemsSearch(t *testing.T) {
	items := sampleItems()

	// case-insensitive, matches any searchable field
	assert.Equal(t, []string{"a"}, ids(FilteredItems(items, ModeAll, "WALLET")))
	assert.Equal(t, []string{"a"}, ids(FilteredItems(items, ModeAll, "library")))
	assert.Equal(t, []string{"b"}, ids(FilteredItems(items, ModeAll, "red keyring")))
	assert.Empty(t, FilteredItems(items, ModeAll, "no such thing"))
}

func TestFilteredItemsSearchContainment(t *testing.T) {
	items := sampleItems()
	for _, item := range FilteredItems(items, ModeAll, "e") {
		assert.Contains(t, item.SearchBlob(), "e")
	}
}

func TestFilteredItemsIdempotent(t *testing.T) {
	items := sampleItems()
	first := FilteredItems(items, ModeLost, "wallet")
	second := FilteredItems(items, ModeLost, "wallet")
	assert.Equal(t, first, second)
}

func TestFilteredItemsDoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	FilteredItems(items, ModeAll, "")
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "d", items[3].ID)
}

func TestReportedItems(t *testing.T) {
	got := ReportedItems(sampleItems())
	assert.Equal(t, []string{"d"}, ids(got))
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{
		"": ModeAll, "all": ModeAll, "Lost": ModeLost, "FOUND": ModeFound, "claimed": ModeClaimedOnly,
	} {
		got, err := ParseMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("stolen")
	require.Error(t, err)
}
